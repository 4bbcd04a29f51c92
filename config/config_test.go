package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"landbattle/game"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "127.0.0.1:3000", cfg.Listen)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, game.StandardRules(), cfg.GameRules())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
listen: ":8080"
log_level: debug
rules:
  bomb_beats_landmine: true
  max_moves: 500
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, game.Rules{BombBeatsLandmine: true, MaxMoves: 500}, cfg.GameRules())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9000\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "info", cfg.LogLevel, "unset fields fall back to defaults")
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "an explicitly named file must exist")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Listen = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Rules.MaxMoves = -1
	require.Error(t, cfg.Validate())
}
