package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/support-api/internal/config"
)

func TestSetup_DisabledReturnsNoopShutdown(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"tracing off", config.Config{EnableTracing: false, OTLPEndpoint: "collector:4318"}},
		{"no endpoint", config.Config{EnableTracing: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), &tt.cfg, zerolog.Nop())
			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}
