package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beaconscope/internal/logger"
)

func TestNop_AcceptsAnyPairs(t *testing.T) {
	t.Parallel()

	l := logger.NewNop()
	l.Debug("d", "k", 1)
	l.Info("i")
	l.Warn("w", "odd")
	l.Error("e", "k", "v", 42, true)

	child := l.With("sessionID", "abc")
	assert.NotNil(t, child)
	child.Info("from child", "k", "v")
}
