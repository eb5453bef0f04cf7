package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beaconscope/internal/capture"
	"beaconscope/pkg/providers"
)

func TestManager_StartFailsWithoutDevTools(t *testing.T) {
	t.Parallel()

	m := capture.NewManager(providers.NewRegistry(), nil)

	_, err := m.Start(capture.Config{DevToolsURL: "http://127.0.0.1:1"})
	assert.Error(t, err)
	assert.Empty(t, m.List(), "failed start must not register a session")
}

func TestManager_UnknownSession(t *testing.T) {
	t.Parallel()

	m := capture.NewManager(providers.NewRegistry(), nil)

	_, ok := m.Get("nope")
	assert.False(t, ok)

	err := m.Stop("nope")
	assert.ErrorContains(t, err, "not found")

	assert.Empty(t, m.List())
}
