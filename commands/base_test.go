package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/mdevan/gosh/core/config"
	"github.com/mdevan/gosh/core/history"
)

func testEnv() (*Env, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	return &Env{
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &stderr,
		FS:      afero.NewMemMapFs(),
		Config:  config.Default(),
		History: history.New(),
	}, &stdout, &stderr
}

func TestDispatch(t *testing.T) {
	cases := []struct {
		name    string
		tokens  []string
		handled bool
	}{
		{"empty", nil, false},
		{"builtin pwd", []string{"pwd"}, true},
		{"builtin ls", []string{"ls"}, true},
		{"builtin clear", []string{"clear"}, true},
		{"external program", []string{"grep", "-c", "x"}, false},
		{"exit is not a builtin", []string{"exit"}, false},
		{"builtin name as argument only", []string{"echo", "ls"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env, _, _ := testEnv()
			_, handled := Dispatch(env, tc.tokens)
			assert.Equal(t, tc.handled, handled)
		})
	}
}

func TestEnv_colorFallbacks(t *testing.T) {
	env, _, _ := testEnv()
	env.Config = nil

	assert.NotNil(t, env.DirectoryColor())
	assert.NotNil(t, env.FilenameColor())
	assert.NotNil(t, env.ErrorColor())
}

func TestEnv_Errorf(t *testing.T) {
	env, _, stderr := testEnv()

	env.Errorf("Error: %s", "boom")
	assert.Contains(t, stderr.String(), "Error: boom")
	assert.True(t, strings.HasSuffix(stderr.String(), "\n"))
}

func TestSimpleCommand_help(t *testing.T) {
	env, stdout, _ := testEnv()
	cmd := &SimpleCommand{Use: "frob [OPTION...]", Short: "Frobnicate."}

	code := cmd.Run(env, []string{"frob", "--help"}, func() int {
		t.Fatal("callback must not run when help is requested")
		return 1
	})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "usage: frob [OPTION...]")
	assert.Contains(t, stdout.String(), "Frobnicate.")
}

func TestSimpleCommand_badFlag(t *testing.T) {
	env, _, stderr := testEnv()
	cmd := &SimpleCommand{Use: "frob", Short: "Frobnicate."}

	code := cmd.Run(env, []string{"frob", "--no-such-flag"}, func() int {
		t.Fatal("callback must not run when flag parsing fails")
		return 0
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error:")
}
