package cmdlog

import (
	"io"

	"github.com/minepkg/launchkit/internals/events"
	"github.com/sirupsen/logrus"
)

// StructuredSink logs all pipeline events with logrus. It is meant for
// non interactive use (CI, log collection)
type StructuredSink struct {
	log *logrus.Logger
}

// NewStructuredSink returns a sink writing to out. format can be "json" or "text"
func NewStructuredSink(out io.Writer, format string, verbose bool) *StructuredSink {
	log := logrus.New()
	log.SetOutput(out)
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.TraceLevel)
	}
	return &StructuredSink{log: log}
}

// Progress is logged on trace level, there is one for every chunk
func (s *StructuredSink) Progress(p events.Progress) {
	s.log.WithFields(logrus.Fields{
		"file":    p.Name,
		"current": p.Current,
		"total":   p.Total,
	}).Trace("progress")
}

func (s *StructuredSink) Downloaded(name string) {
	s.log.WithField("file", name).Info("downloaded")
}

func (s *StructuredSink) Debug(msg string) {
	s.log.Debug(msg)
}

func (s *StructuredSink) Warn(msg string) {
	s.log.Warn(msg)
}

func (s *StructuredSink) PackageExtracted() {
	s.log.Info("package extracted")
}
