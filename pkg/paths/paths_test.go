package paths

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resolved, ok := HomeDir()
	require.True(t, ok)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", resolved},
		{"~/.profile", filepath.Join(resolved, ".profile")},
		{"~/a/b", filepath.Join(resolved, "a", "b")},
		{"~other/file", "~other/file"},
		{"/etc/hosts", "/etc/hosts"},
		{"relative/~/x", "relative/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.input))
		})
	}
}

func TestConfigLocations(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	assert.Equal(t, filepath.Join(dir, "lineinfile"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "lineinfile", "config.toml"), ConfigFile())
	assert.Equal(t, filepath.Join(dir, "lineinfile", "styles.yaml"), StylesFile())
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "lineinfile"), StateDir())
	assert.Equal(t, filepath.Join(dir, "lineinfile", "lineinfile.log"), LogFile())
}
