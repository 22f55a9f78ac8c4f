package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(LevelInfo)

	var buf bytes.Buffer
	l := New(&buf)

	SetLevel(LevelWarn)
	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "WARN")

	buf.Reset()
	SetLevel(LevelDebug)
	l.Debugf("details")
	assert.Contains(t, buf.String(), "DEBUG")

	buf.Reset()
	SetLevel("verbose")
	l.Debugf("dropped")
	l.Infof("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
