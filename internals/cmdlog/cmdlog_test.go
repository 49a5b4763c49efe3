package cmdlog

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/minepkg/launchkit/internals/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ events.Sink = (*Logger)(nil)
	_ events.Sink = (*StructuredSink)(nil)
)

func TestLogger_CountsDownloads(t *testing.T) {
	out := &bytes.Buffer{}
	l := &Logger{out: out}

	l.Progress(events.Progress{Name: "a", Total: 1500})
	l.Progress(events.Progress{Name: "a", Total: 500})
	l.Downloaded("a")
	l.StopProgress()

	assert.Equal(t, "1 files downloaded (2.0 kB)\n", stripANSI(out.String()))
}

func TestLogger_DebugNeedsVerbose(t *testing.T) {
	out := &bytes.Buffer{}
	l := &Logger{out: out}

	l.Debug("hidden")
	assert.Empty(t, out.String())

	l.Verbose = true
	l.Debug("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestLogger_ConcurrentWarnings(t *testing.T) {
	out := &bytes.Buffer{}
	l := &Logger{out: out}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Warn("native collision")
			l.Progress(events.Progress{Name: "a", Total: 10})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(stripANSI(out.String())), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, "native collision", line)
	}
}

func TestLogger_PausesSpinner(t *testing.T) {
	out := &bytes.Buffer{}
	spinnerOut := &bytes.Buffer{}
	l := &Logger{out: out}
	l.spinner = spinner.New(spinner.CharSets[14], 10*time.Millisecond, spinner.WithWriter(spinnerOut))
	l.spinner.Start()

	l.Warn("careful")

	assert.True(t, l.spinner.Active(), "spinner is running again after the line")
	assert.Equal(t, "careful\n", stripANSI(out.String()))
	l.StopProgress()
	assert.Nil(t, l.spinner)
}

func TestStructuredSink_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	sink := NewStructuredSink(out, "json", false)

	sink.Progress(events.Progress{Name: "a", Total: 10})
	sink.Downloaded("a.jar")
	sink.Warn("careful")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "progress is only logged in verbose mode")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "downloaded", entry["msg"])
	assert.Equal(t, "a.jar", entry["file"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "warning", entry["level"])
}

// stripANSI removes color codes
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
