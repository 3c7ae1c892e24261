package backup

import (
	"os"
	"testing"
	"time"

	"github.com/arthur-debert/lineinfile/pkg/clock"
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedPID() int { return 4242 }

func TestFileBackuper(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/etc/app.conf", []byte("a=1\n"), 0600))

	clk := clock.NewMockClock(time.Date(2024, 5, 17, 9, 30, 5, 0, time.UTC))
	b := NewFileBackuper(afs, WithClock(clk), WithPID(fixedPID))

	dest, err := b.BackupIfRequested("/etc/app.conf")
	require.NoError(t, err)
	assert.Equal(t, "/etc/app.conf.4242.2024-05-17@09:30:05~", dest)

	content, err := afero.ReadFile(afs, dest)
	require.NoError(t, err)
	assert.Equal(t, "a=1\n", string(content))

	info, err := afs.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileBackuper_TimeFormat(t *testing.T) {
	afs := afero.NewMemMapFs()
	clk := clock.NewMockClock(time.Date(2024, 5, 17, 9, 30, 5, 0, time.UTC))
	b := NewFileBackuper(afs, WithClock(clk), WithPID(fixedPID), WithTimeFormat("20060102T150405"))

	assert.Equal(t, "/f.4242.20240517T093005~", b.Name("/f"))

	clk.Advance(time.Second)
	assert.Equal(t, "/f.4242.20240517T093006~", b.Name("/f"))
}

func TestFileBackuper_MissingSource(t *testing.T) {
	b := NewFileBackuper(afero.NewMemMapFs())
	_, err := b.BackupIfRequested("/nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackup))
}

func TestDisabled(t *testing.T) {
	dest, err := Disabled{}.BackupIfRequested("/anything")
	require.NoError(t, err)
	assert.Empty(t, dest)
}
