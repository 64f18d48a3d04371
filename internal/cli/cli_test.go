package cli_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/internal/cli"
	"github.com/katalvlaran/flowgrid/search"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := cli.Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "", cfg.PuzzlePath)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, 3, cfg.Pairs)
	assert.NotZero(t, cfg.Seed)
	assert.Equal(t, search.MethodBFS, cfg.Method)
	assert.False(t, cfg.MethodSet)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Flags(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{
		"-width", "7", "-height", "4", "-pairs", "2", "-seed", "11",
		"-method", "A*", "-log-level", "DEBUG", "-log-format", "json", "board.hcl",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "board.hcl", cfg.PuzzlePath)
	assert.Equal(t, 7, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, 2, cfg.Pairs)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, search.MethodAStar, cfg.Method)
	assert.True(t, cfg.MethodSet)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_PuzzleFlagWins(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-puzzle", "a.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "a.hcl", cfg.PuzzlePath)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-method")
}

func TestParse_UsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"UnknownFlag": {"--nope"},
		"Method":      {"-method", "dijkstra"},
		"LogLevel":    {"-log-level", "trace"},
		"LogFormat":   {"-log-format", "xml"},
		"TwoFiles":    {"a.hcl", "b.hcl"},
		"BadInt":      {"-width", "wide"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, cli.ExitUsage, exitErr.Code)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-log-level", "info", "-log-format", "json"}, &bytes.Buffer{})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	log := cfg.NewLogger(buf)
	log.Debug("hidden")
	log.WithField("pair", 1).Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"pair":1`)
}
