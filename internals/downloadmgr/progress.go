package downloadmgr

import (
	"io"
	"math"

	"github.com/minepkg/launchkit/internals/events"
)

// progressUnit is the divisor for the reported on disk size
const progressUnit = 10000

// progressWriter reports every chunk written to the underlying writer
type progressWriter struct {
	w       io.Writer
	name    string
	written int64
	sink    events.Sink
}

func newProgressWriter(w io.Writer, name string, sink events.Sink) *progressWriter {
	return &progressWriter{w: w, name: name, sink: sink}
}

// Write implements io.Writer and relays progress.
// The reported size is what already is on disk before this chunk.
func (p *progressWriter) Write(b []byte) (int, error) {
	p.sink.Progress(events.Progress{
		Name:    p.name,
		Current: int64(math.Round(float64(p.written) / progressUnit)),
		Total:   len(b),
	})
	n, err := p.w.Write(b)
	p.written += int64(n)
	return n, err
}
