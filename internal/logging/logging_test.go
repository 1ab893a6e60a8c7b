package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	t.Cleanup(func() { _ = Setup("info", "text", os.Stderr) })

	var buf bytes.Buffer
	require.NoError(t, Setup("debug", "json", &buf))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("intent", "general.thanks").Debug("answered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "answered", entry["msg"])
	assert.Equal(t, "general.thanks", entry["intent"])
}

func TestSetup_Errors(t *testing.T) {
	t.Cleanup(func() { _ = Setup("info", "text", os.Stderr) })

	assert.Error(t, Setup("loud", "text", nil))
	assert.Error(t, Setup("info", "xml", nil))
}
