package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpack/internal/adapters/telemetry/progrock"
)

func TestRecorder_Integration(t *testing.T) {
	telemetry := progrock.New()
	ctx := context.Background()

	_, built := telemetry.Record(ctx, "six==1.10.0")
	_, err := built.Stdout().Write([]byte("Created package {:path=>\"python-six_1.10.0_all.deb\"}\n"))
	require.NoError(t, err)
	_, err = built.Stderr().Write([]byte("warning\n"))
	require.NoError(t, err)
	built.Complete(nil)

	_, skipped := telemetry.Record(ctx, "puka")
	skipped.Cached()
	skipped.Complete(nil)

	_, failed := telemetry.Record(ctx, "broken==0.1")
	failed.Complete(errors.New("fpm exited with status 1"))

	assert.NoError(t, telemetry.Close())
}
