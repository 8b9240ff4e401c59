package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("test message %s", "arg")

	assert.Equal(t, "[DEBUG] test message arg\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("test message")
	Info("info")
	Warn("warn")
	Section("section")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Lookup")

	assert.Equal(t, "\n=== Lookup ===\n", buf.String())
}

func TestInfoAndWarn(t *testing.T) {
	buf := capture(t, true)

	Info("cache hit for %q", "xy")
	Warn("slow response")

	assert.Equal(t, "[INFO] cache hit for \"xy\"\n[WARN] slow response\n", buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("attach failed: %v", "view is required")

	assert.Equal(t, "[ERROR] attach failed: view is required\n", buf.String())
}

func TestFor(t *testing.T) {
	buf := capture(t, true)
	log := For("field:accountId")

	log.Debug("schedule %d", 1)
	log.Info("open")
	log.Warn("stale response dropped")
	log.Error("boom")

	assert.Equal(t,
		"[DEBUG] field:accountId: schedule 1\n"+
			"[INFO] field:accountId: open\n"+
			"[WARN] field:accountId: stale response dropped\n"+
			"[ERROR] field:accountId: boom\n",
		buf.String())
}

func TestFor_NotVerbose(t *testing.T) {
	buf := capture(t, false)

	For("x").Debug("hidden")
	For("x").Warn("hidden")

	assert.Empty(t, buf.String())
}
