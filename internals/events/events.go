// Package events contains the one-way notification sink used by the install
// pipeline. Nothing in the pipeline waits for, or depends on, a sink.
package events

// Progress is emitted for every received chunk of a download.
// Current is the size of the partial file on disk divided by 10000 (rounded),
// Total is the length of the received chunk. It is a heuristic, not a percentage.
type Progress struct {
	Name    string
	Current int64
	Total   int
}

// Sink receives pipeline notifications. Implementations must be safe for
// concurrent use because downloads report from many goroutines at once.
type Sink interface {
	// Progress is called for every received chunk of a download
	Progress(p Progress)
	// Downloaded is called with the file name after a download completed
	Downloaded(name string)
	// Debug is a trace message
	Debug(msg string)
	// Warn is used for expected, non fatal problems (overlapping natives for example)
	Warn(msg string)
	// PackageExtracted is called after a client package was extracted
	PackageExtracted()
}

// Nop is a Sink that discards everything
type Nop struct{}

func (Nop) Progress(Progress) {}
func (Nop) Downloaded(string) {}
func (Nop) Debug(string)      {}
func (Nop) Warn(string)       {}
func (Nop) PackageExtracted() {}

// Funcs adapts plain callbacks to a Sink. Unset callbacks are ignored.
type Funcs struct {
	OnProgress         func(p Progress)
	OnDownloaded       func(name string)
	OnDebug            func(msg string)
	OnWarn             func(msg string)
	OnPackageExtracted func()
}

func (f *Funcs) Progress(p Progress) {
	if f.OnProgress != nil {
		f.OnProgress(p)
	}
}

func (f *Funcs) Downloaded(name string) {
	if f.OnDownloaded != nil {
		f.OnDownloaded(name)
	}
}

func (f *Funcs) Debug(msg string) {
	if f.OnDebug != nil {
		f.OnDebug(msg)
	}
}

func (f *Funcs) Warn(msg string) {
	if f.OnWarn != nil {
		f.OnWarn(msg)
	}
}

func (f *Funcs) PackageExtracted() {
	if f.OnPackageExtracted != nil {
		f.OnPackageExtracted()
	}
}

// OrNop returns s or Nop if s is nil
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}
