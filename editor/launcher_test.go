package editor

import (
	"testing"

	"github.com/grovetools/gmux/config"
	"github.com/grovetools/gmux/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func launcherWithEnv(env map[string]string) *Launcher {
	return &Launcher{lookupEnv: func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"simple", "nvim", []string{"nvim"}, false},
		{"with flags", "code --wait --new-window", []string{"code", "--wait", "--new-window"}, false},
		{"double quotes", `"/Applications/My Editor" -f`, []string{"/Applications/My Editor", "-f"}, false},
		{"single quotes", "emacs -e '(fn \"x\")'", []string{"emacs", "-e", `(fn "x")`}, false},
		{"escaped space", `my\ editor`, []string{"my editor"}, false},
		{"escaped quote in double quotes", `vim "-c \"echo\""`, []string{"vim", `-c "echo"`}, false},
		{"empty single-quoted arg survives", "vim ''", []string{"vim", ""}, false},
		{"empty double-quoted arg survives", `vim "" -f`, []string{"vim", "", "-f"}, false},
		{"adjacent quotes join one arg", `vim ''"-f"`, []string{"vim", "-f"}, false},
		{"unterminated single quote", "vim 'oops", nil, true},
		{"unterminated double quote", `vim "oops`, nil, true},
		{"trailing backslash", `vim \`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitCommand(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("entry override wins", func(t *testing.T) {
		l := launcherWithEnv(map[string]string{"EDITOR": "vi"})
		cmd, err := l.Resolve("code --wait", "nvim")
		require.NoError(t, err)
		assert.Equal(t, "code --wait", cmd)
	})

	t.Run("default editor second", func(t *testing.T) {
		l := launcherWithEnv(map[string]string{"EDITOR": "vi"})
		cmd, err := l.Resolve("", "nvim")
		require.NoError(t, err)
		assert.Equal(t, "nvim", cmd)
	})

	t.Run("environment fallback order", func(t *testing.T) {
		l := launcherWithEnv(map[string]string{
			"EDITOR":      "vi",
			"GMUX_EDITOR": "hx",
		})
		cmd, err := l.Resolve("", "")
		require.NoError(t, err)
		assert.Equal(t, "hx", cmd)
	})

	t.Run("blank env vars are skipped", func(t *testing.T) {
		l := launcherWithEnv(map[string]string{
			"GMUX_EDITOR": "  ",
			"EDITOR":      "vi",
		})
		cmd, err := l.Resolve("", "")
		require.NoError(t, err)
		assert.Equal(t, "vi", cmd)
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		l := launcherWithEnv(nil)
		_, err := l.Resolve("", "")
		assert.True(t, errors.Is(err, errors.ErrCodeEditorUnset))
	})
}

func TestLaunch(t *testing.T) {
	dir := t.TempDir()

	t.Run("spawn failure is reported", func(t *testing.T) {
		l := launcherWithEnv(nil)
		err := l.Launch(config.Entry{Path: dir, Editor: "definitely-not-a-real-editor-binary"}, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeSpawn))
	})

	t.Run("unparseable command is reported", func(t *testing.T) {
		l := launcherWithEnv(nil)
		err := l.Launch(config.Entry{Path: dir, Editor: "vim 'oops"}, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeSpawn))
	})

	t.Run("successful spawn", func(t *testing.T) {
		l := launcherWithEnv(nil)
		err := l.Launch(config.Entry{Path: dir, Editor: "true"}, "")
		assert.NoError(t, err)
	})
}
