package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, os.FileMode(0644), cfg.Files.Mode.Perm())
	assert.Equal(t, os.FileMode(0755), cfg.Files.DirMode.Perm())
	assert.Equal(t, "2006-01-02@15:04:05", cfg.Backup.TimeFormat)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Empty(t, cfg.Source)
}

func TestLoad(t *testing.T) {
	t.Run("explicit_file_overrides_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[files]
mode = "0600"

[output]
format = "json"
`), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), cfg.Files.Mode.Perm())
		assert.Equal(t, os.FileMode(0755), cfg.Files.DirMode.Perm(), "untouched keys keep defaults")
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("missing_explicit_file_fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_toml_fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[files\nmode ="), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[backup]\ntime_format = \"20060102\"\n"), 0644))

		t.Setenv("LINEINFILE_BACKUP_TIME_FORMAT", "2006")
		t.Setenv("LINEINFILE_OUTPUT_COLOR", "false")
		t.Setenv("LINEINFILE_FILES_DIR_MODE", "0700")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "2006", cfg.Backup.TimeFormat)
		assert.False(t, cfg.Output.Color)
		assert.Equal(t, os.FileMode(0700), cfg.Files.DirMode.Perm())
	})

	t.Run("unknown_output_format_is_rejected", func(t *testing.T) {
		t.Setenv("LINEINFILE_OUTPUT_FORMAT", "xml")
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestFileModeText(t *testing.T) {
	text, err := FileMode(0640).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0640", string(text))

	var m FileMode
	require.NoError(t, m.UnmarshalText([]byte("0755")))
	assert.Equal(t, os.FileMode(0755), m.Perm())

	assert.Error(t, m.UnmarshalText([]byte("rwx")))
}

func TestDump(t *testing.T) {
	out, err := Dump(Default())
	require.NoError(t, err)

	assert.Contains(t, out, "[files]")
	assert.Regexp(t, `(?m)^mode = ['"]0644['"]$`, out)
	assert.Regexp(t, `(?m)^time_format = ['"]2006-01-02@15:04:05['"]$`, out)
	assert.NotContains(t, out, "Source")
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[files]")
	assert.Contains(t, content, `# mode = "0644"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}
