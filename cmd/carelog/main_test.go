package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/carelog/ingest"
)

func newClassifyApp() *cli.App {
	return &cli.App{
		Name: "carelog",
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Classify every note of a batch file by urgency",
				Action: classifyCommand,
				Flags:  batchFlags(),
			},
		},
	}
}

func TestClassifyCommandFlags(t *testing.T) {
	app := newClassifyApp()

	t.Run("db is required", func(t *testing.T) {
		args := []string{"carelog", "classify", "--store-root", "/tmp/store", "--bucket", "uploads", "--key", "visits.json"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("key is required", func(t *testing.T) {
		args := []string{"carelog", "classify", "--db", "/tmp/test", "--store-root", "/tmp/store", "--bucket", "uploads"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key")
	})

	t.Run("host has default value", func(t *testing.T) {
		var hostFlag *cli.StringFlag
		for _, flag := range app.Commands[0].Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})

	t.Run("model has default value", func(t *testing.T) {
		var modelFlag *cli.StringFlag
		for _, flag := range app.Commands[0].Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "model" {
				modelFlag = f
				break
			}
		}
		require.NotNil(t, modelFlag)
		assert.Equal(t, "qwen2.5:3b", modelFlag.Value)
	})

	t.Run("pool-size defaults to zero", func(t *testing.T) {
		var poolFlag *cli.IntFlag
		for _, flag := range app.Commands[0].Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "pool-size" {
				poolFlag = f
				break
			}
		}
		require.NotNil(t, poolFlag)
		assert.Equal(t, 0, poolFlag.Value)
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ingest.Mode
		wantErr bool
	}{
		{"classify", ingest.ModeTriage, false},
		{"triage", ingest.ModeTriage, false},
		{"CLASSIFY", ingest.ModeTriage, false},
		{"summarise", ingest.ModeDigest, false},
		{"summarize", ingest.ModeDigest, false},
		{"digest", ingest.ModeDigest, false},
		{"frobnicate", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := parseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}
