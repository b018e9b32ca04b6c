package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newLogLevelContext(t *testing.T, level string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", level, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			assert.NoError(t, setupLogger(newLogLevelContext(t, level)), "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := setupLogger(newLogLevelContext(t, "verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestReadSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.TXT"), []byte("bravo"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	t.Run("directory picks up txt files only", func(t *testing.T) {
		sources, err := readSources([]string{dir})
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, "alpha", sources[0].Text)
	})

	t.Run("explicit file of any extension", func(t *testing.T) {
		sources, err := readSources([]string{filepath.Join(dir, "notes.md")})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "skip", sources[0].Text)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := readSources([]string{filepath.Join(dir, "absent.txt")})
		assert.Error(t, err)
	})
}

func TestIngestCommandRequiresArgs(t *testing.T) {
	app := &cli.App{
		Name: "govdoc",
		Commands: []*cli.Command{
			{Name: "ingest", Action: ingestCommand},
		},
	}

	err := app.Run([]string{"govdoc", "ingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one file or directory")
}
