package commands

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTouch(t *testing.T) {
	t.Run("creates missing files", func(t *testing.T) {
		env, _, _ := testEnv()

		assert.Equal(t, 0, Touch(env, []string{"touch", "new1.txt", "new2.txt"}))

		for _, f := range []string{"new1.txt", "new2.txt"} {
			exists, err := afero.Exists(env.FS, f)
			require.NoError(t, err)
			assert.True(t, exists)
		}
	})

	t.Run("bumps times of existing files", func(t *testing.T) {
		env, _, _ := testEnv()
		require.NoError(t, afero.WriteFile(env.FS, "old.txt", []byte("keep me"), 0644))
		stale := time.Now().Add(-24 * time.Hour)
		require.NoError(t, env.FS.Chtimes("old.txt", stale, stale))

		assert.Equal(t, 0, Touch(env, []string{"touch", "old.txt"}))

		info, err := env.FS.Stat("old.txt")
		require.NoError(t, err)
		assert.True(t, info.ModTime().After(stale))

		content, err := afero.ReadFile(env.FS, "old.txt")
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(content), "contents are untouched")
	})

	t.Run("no arguments", func(t *testing.T) {
		env, _, stderr := testEnv()

		assert.Equal(t, 1, Touch(env, []string{"touch"}))
		assert.Contains(t, stderr.String(), "usage: touch")
	})
}
