package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/task-backend/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		wantLevel zerolog.Level
	}{
		{env: config.EnvLocal, wantLevel: zerolog.TraceLevel},
		{env: config.EnvDev, wantLevel: zerolog.DebugLevel},
		{env: config.EnvProd, wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			l, err := New(Default(), tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, l.GetLevel())
		})
	}
}

func TestNewUnknownEnv(t *testing.T) {
	base := Default()

	l, err := New(base, "staging")
	assert.Error(t, err)
	assert.Equal(t, base.GetLevel(), l.GetLevel())
}
