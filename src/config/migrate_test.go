package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateToLatest(t *testing.T) {
	t.Parallel()

	t.Run("unversioned yaml gains version", func(t *testing.T) {
		t.Parallel()

		out, err := MigrateToLatest([]byte("strict: true\n"), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "version: 1\nstrict: true\n", string(out))

		ver, err := peekVersion(out, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, 1, ver)
	})

	t.Run("unversioned toml gains version", func(t *testing.T) {
		t.Parallel()

		out, err := MigrateToLatest([]byte("strict = true\n"), FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, "version = 1\nstrict = true\n", string(out))
	})

	t.Run("latest is a no-op", func(t *testing.T) {
		t.Parallel()

		in := []byte("version: 1\nreact: true\n")
		out, err := MigrateToLatest(in, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("future version", func(t *testing.T) {
		t.Parallel()

		_, err := MigrateToLatest([]byte("version: 3\n"), FormatYAML)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := MigrateToLatest([]byte("version: [\n"), FormatYAML)
		require.Error(t, err)
	})
}

func TestMigrateToLatest_KeepsSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		input  string
		format FileFormat
	}{
		{"document marker", ".lintcomposer.yml", "---\nstrict: true\nreact: true\n", FormatYAML},
		{"comment then marker", ".lintcomposer.yml", "# project lint\n---\nstrict: true\nreact: true\n", FormatYAML},
		{"flow mapping", ".lintcomposer.yml", "{strict: true, react: true}\n", FormatYAML},
		{"explicit zero", ".lintcomposer.yml", "version: 0\nstrict: true\nreact: true\n", FormatYAML},
		{"explicit zero toml", ".lintcomposer.toml", "version = 0\nstrict = true\nreact = true\n", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := MigrateToLatest([]byte(tt.input), tt.format)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, out, 0o644))

			cfg, err := Load(path)
			require.NoError(t, err, "migrated output:\n%s", out)
			assert.Equal(t, LatestVersion, cfg.Version)
			assert.Equal(t, true, cfg.Options["strict"])
			assert.Equal(t, true, cfg.Options["react"])
			assert.NotContains(t, cfg.Options, "version")

			again, err := MigrateToLatest(out, tt.format)
			require.NoError(t, err)
			assert.Equal(t, out, again, "second run is a no-op")
		})
	}
}

func TestMigrateToLatest_KeepsIgnoresAndComments(t *testing.T) {
	t.Parallel()

	in := "# lint settings\nstrict: true\nignores:\n  - '**/dist'\n  - '**/coverage'\n"
	out, err := MigrateToLatest([]byte(in), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# lint settings")

	path := filepath.Join(t.TempDir(), ".lintcomposer.yml")
	require.NoError(t, os.WriteFile(path, out, 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/dist", "**/coverage"}, cfg.Ignores)
}

func TestMigrateToLatest_RejectsNonMapping(t *testing.T) {
	t.Parallel()

	_, err := MigrateToLatest([]byte("- strict\n- react\n"), FormatYAML)
	require.Error(t, err)

	_, err = stampYAML([]byte("- strict\n- react\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level must be a mapping")
}

func TestMigrateToLatest_EmptyFile(t *testing.T) {
	t.Parallel()

	out, err := MigrateToLatest(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(out))
}
