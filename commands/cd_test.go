package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirBack returns to the original working directory when the test ends.
func chdirBack(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestCd(t *testing.T) {
	chdirBack(t)
	target := t.TempDir()

	env, _, _ := testEnv()
	assert.Equal(t, 0, Cd(env, []string{"cd", target}))

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, resolved, wd)
}

func TestCd_errors(t *testing.T) {
	chdirBack(t)

	t.Run("missing directory", func(t *testing.T) {
		env, _, stderr := testEnv()
		assert.Equal(t, 1, Cd(env, []string{"cd", "no-such-dir-xyz"}))
		assert.Contains(t, stderr.String(), "Could not change directories")
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		env, _, stderr := testEnv()
		assert.Equal(t, 1, Cd(env, []string{"cd", file}))
		assert.Contains(t, stderr.String(), "not a valid directory")
	})

	t.Run("no arguments", func(t *testing.T) {
		env, _, stderr := testEnv()
		assert.Equal(t, 1, Cd(env, []string{"cd"}))
		assert.Contains(t, stderr.String(), "Usage: cd")
	})
}

func TestPwd(t *testing.T) {
	env, stdout, _ := testEnv()

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, 0, Pwd(env, []string{"pwd"}))
	assert.Equal(t, wd+"\n", stdout.String())
}

func TestClear(t *testing.T) {
	env, stdout, _ := testEnv()

	assert.Equal(t, 0, Clear(env, []string{"clear"}))
	assert.Equal(t, "\x1b[2J\x1b[1;1H", stdout.String())
}

func TestClear_tooManyArgs(t *testing.T) {
	env, _, stderr := testEnv()

	assert.Equal(t, 1, Clear(env, []string{"clear", "extra"}))
	assert.Contains(t, stderr.String(), "Usage: clear")
}
