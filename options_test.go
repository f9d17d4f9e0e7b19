package libpolicy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Options(t *testing.T) {
	t.Run("should default to UseAll", func(t *testing.T) {
		assert.Equal(t, Options{PolicyName: "UseAll"}, DefaultOptions())
	})

	t.Run("should return defaults for an empty document", func(t *testing.T) {
		opts, err := ParseOptions(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultOptions(), opts)
	})

	t.Run("should decode name and args", func(t *testing.T) {
		opts, err := ParseOptions([]byte("policy_name: UseOnly\nargs:\n  - com.example:lib\n  - other\n"))
		require.NoError(t, err)
		assert.Equal(t, "UseOnly", opts.PolicyName)
		assert.Equal(t, []string{"com.example:lib", "other"}, opts.Args)
	})

	t.Run("should keep the default name when only args are set", func(t *testing.T) {
		opts, err := ParseOptions([]byte("args: [a]\n"))
		require.NoError(t, err)
		assert.Equal(t, "UseAll", opts.PolicyName)
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := ParseOptions([]byte("policy: UseAll\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing options")
	})

	t.Run("should reject a second document", func(t *testing.T) {
		_, err := ParseOptions([]byte("policy_name: UseAll\n---\npolicy_name: IgnoreAll\n"))
		require.Error(t, err)
		assert.EqualError(t, err, "parsing options: more than one document")
	})

	t.Run("should accept a single document with a leading separator", func(t *testing.T) {
		opts, err := ParseOptions([]byte("---\npolicy_name: IgnoreAll\n"))
		require.NoError(t, err)
		assert.Equal(t, "IgnoreAll", opts.PolicyName)
	})

	t.Run("should load from a file and resolve", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "libraries.yml")
		require.NoError(t, os.WriteFile(path, []byte("policy_name: IgnoreAll\n"), 0644))

		opts, err := LoadOptions(path)
		require.NoError(t, err)
		p, err := NewMapper().MapOptions(opts)
		require.NoError(t, err)
		assert.Equal(t, IgnoreAll{}, p)
	})

	t.Run("should wrap read failures", func(t *testing.T) {
		_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "reading options")
	})

	t.Run("should surface validation errors from loaded options", func(t *testing.T) {
		opts, err := ParseOptions([]byte("policy_name: UseAll\nargs: [arg1]\n"))
		require.NoError(t, err)
		_, err = NewMapper().MapOptions(opts)
		assert.EqualError(t, err, "No args should be passed for the 'UseAll' policy")
	})
}
