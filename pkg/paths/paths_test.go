package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/styledot/pkg/errors"
)

func TestConfigDir(t *testing.T) {
	t.Run("honors override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/config")
		assert.Equal(t, "/custom/config", ConfigDir())
	})

	t.Run("defaults under xdg config home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		assert.True(t, strings.HasSuffix(ConfigDir(), AppDirName))
	})
}

func TestStateDir(t *testing.T) {
	t.Setenv(EnvStateDir, "/custom/state")
	assert.Equal(t, "/custom/state", StateDir())
}

func TestFilePaths(t *testing.T) {
	t.Setenv(EnvConfigDir, "/cfg")
	t.Setenv(EnvStateDir, "/st")

	assert.Equal(t, filepath.Join("/cfg", ConfigFileName), ConfigFilePath())
	assert.Equal(t, filepath.Join("/st", LogFileName), LogFilePath())
}

func TestFindStylesheet(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	sheet := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(sheet, []byte("nav: {}\n"), 0o644))

	t.Run("explicit path", func(t *testing.T) {
		found, err := FindStylesheet(sheet)
		require.NoError(t, err)
		assert.Equal(t, sheet, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := FindStylesheet(filepath.Join(dir, "gone.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("bare name searches config dir", func(t *testing.T) {
		found, err := FindStylesheet("app")
		require.NoError(t, err)
		assert.Equal(t, sheet, found)
	})

	t.Run("bare name missing", func(t *testing.T) {
		_, err := FindStylesheet("nothere")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}
