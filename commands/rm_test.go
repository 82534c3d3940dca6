package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRm(t *testing.T) {
	t.Run("removes files", func(t *testing.T) {
		env, _, _ := testEnv()
		require.NoError(t, afero.WriteFile(env.FS, "a.txt", []byte("a"), 0644))
		require.NoError(t, afero.WriteFile(env.FS, "b.txt", []byte("b"), 0644))

		assert.Equal(t, 0, Rm(env, []string{"rm", "a.txt", "b.txt"}))

		for _, f := range []string{"a.txt", "b.txt"} {
			exists, err := afero.Exists(env.FS, f)
			require.NoError(t, err)
			assert.False(t, exists)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		env, _, stderr := testEnv()

		assert.Equal(t, 1, Rm(env, []string{"rm", "nope.txt"}))
		assert.Contains(t, stderr.String(), "no such file or directory")
	})

	t.Run("directory needs -r", func(t *testing.T) {
		env, _, stderr := testEnv()
		require.NoError(t, env.FS.MkdirAll("dir/sub", 0755))

		assert.Equal(t, 1, Rm(env, []string{"rm", "dir"}))
		assert.Contains(t, stderr.String(), "is a directory")

		exists, err := afero.DirExists(env.FS, "dir")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("recursive removal", func(t *testing.T) {
		env, _, _ := testEnv()
		require.NoError(t, env.FS.MkdirAll("dir/sub", 0755))
		require.NoError(t, afero.WriteFile(env.FS, "dir/sub/f.txt", []byte("x"), 0644))

		assert.Equal(t, 0, Rm(env, []string{"rm", "-r", "dir"}))

		exists, err := afero.DirExists(env.FS, "dir")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("no arguments", func(t *testing.T) {
		env, _, stderr := testEnv()

		assert.Equal(t, 1, Rm(env, []string{"rm"}))
		assert.Contains(t, stderr.String(), "usage: rm")
	})
}
