package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullLogger_AllMethodsNoOp(t *testing.T) {
	logger := NullLogger{}

	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.Debug("debug")

	scoped := logger.WithFields(StringField("k", "v"))
	assert.NotNil(t, scoped)
	assert.NoError(t, logger.Close())
}
