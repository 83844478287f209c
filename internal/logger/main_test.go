package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Log
		wantErr error
	}{
		{
			name: "console only",
			cfg: Log{
				LogLevel:    "info",
				AppName:     "referencedata",
				ServiceName: "referencedata",
				Console:     Console{Enabled: true},
			},
		},
		{
			name: "unknown level",
			cfg: Log{
				LogLevel:    "loud",
				AppName:     "referencedata",
				ServiceName: "referencedata",
			},
			wantErr: nil, // wrapped parse error, checked separately
		},
		{
			name: "missing service name",
			cfg: Log{
				LogLevel: "info",
				AppName:  "referencedata",
			},
			wantErr: ErrServiceNameIsEmpty,
		},
		{
			name: "missing app name",
			cfg: Log{
				LogLevel:    "info",
				ServiceName: "referencedata",
			},
			wantErr: ErrAppNameIsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.cfg)

			switch {
			case tt.name == "unknown level":
				require.Error(t, err)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestLevelWriterSplitsByLevel(t *testing.T) {
	var infoBuf, warnBuf, errBuf, traceBuf bytes.Buffer

	lw := &LevelWriter{
		InfoWriter:  &infoBuf,
		WarnWriter:  &warnBuf,
		ErrorWriter: &errBuf,
		TraceWriter: &traceBuf,
	}

	logger := zerolog.New(lw).Level(zerolog.TraceLevel)

	logger.Trace().Msg("trace line")
	logger.Info().Msg("info line")
	logger.Warn().Msg("warn line")
	logger.Error().Msg("error line")

	assert.Contains(t, traceBuf.String(), "trace line")
	assert.Contains(t, infoBuf.String(), "info line")
	assert.Contains(t, warnBuf.String(), "warn line")
	assert.Contains(t, errBuf.String(), "error line")

	assert.NotContains(t, infoBuf.String(), "error line")
}

func TestLevelWriterDropsDisabled(t *testing.T) {
	var infoBuf bytes.Buffer

	lw := &LevelWriter{InfoWriter: &infoBuf}

	n, err := lw.WriteLevel(zerolog.Disabled, []byte("nope"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, infoBuf.String())
}
