package progrock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinpack/internal/adapters/telemetry/progrock"
	"go.trai.ch/pinpack/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)

	var _ ports.Telemetry = recorder
}
