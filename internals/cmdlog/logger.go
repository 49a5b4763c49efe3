package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
	"github.com/minepkg/launchkit/internals/events"
)

// Logger loggs pretty stuff to the console. It also is an events.Sink that
// shows download progress in a spinner
type Logger struct {
	// Verbose enables debug output
	Verbose bool

	emojis    bool
	indention int
	out       io.Writer

	mu      sync.Mutex
	spinner *spinner.Spinner
	files   int
	bytes   int64
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// New returns a new Logger
func New() *Logger {
	emojis := runtime.GOOS != "windows"

	// disable color for CI
	if os.Getenv("CI") != "" {
		emojis = false
		gchalk.SetLevel(gchalk.LevelNone)
	}
	return &Logger{emojis: emojis, out: os.Stdout}
}

// SetOutput sets the writer for all console output
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// helper for indention
func (l *Logger) println(a string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeLine(strings.Repeat(" ", l.indention) + a)
}

// writeLine expects l.mu to be locked. A running spinner is paused while
// writing so the line does not end up in the middle of it
func (l *Logger) writeLine(s string) {
	if l.spinner != nil && l.spinner.Active() {
		l.spinner.Stop()
		defer l.spinner.Start()
	}
	fmt.Fprintln(l.out, s)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Headline prints a bold cyan line
func (l *Logger) Headline(s string) {
	l.println(gchalk.Bold(gchalk.Cyan(s)))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.println(l.sprintEmoji("⚠️ ") + gchalk.Bold(gchalk.Yellow(s)))
}

// Fail will print the given message and then exit 1
func (l *Logger) Fail(s string) {
	l.println(l.sprintEmoji("💣") + gchalk.Bold(gchalk.Red("Error: ")) + gchalk.Bold(s))
	os.Exit(1)
}

// Debug prints gray text if Verbose is set
func (l *Logger) Debug(s string) {
	if l.Verbose {
		l.println(gchalk.Gray(s))
	}
}

// Progress counts the received bytes
func (l *Logger) Progress(p events.Progress) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bytes += int64(p.Total)
	l.updateSpinner()
}

// Downloaded counts the downloaded files
func (l *Logger) Downloaded(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files++
	l.updateSpinner()
}

// PackageExtracted prints a success message
func (l *Logger) PackageExtracted() {
	l.println(l.sprintEmoji("📦") + gchalk.Green("Package extracted"))
}

// StartProgress shows a spinner with the given prefix that counts downloads.
// Nothing is shown if stdout is no terminal
func (l *Logger) StartProgress(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files, l.bytes = 0, 0
	if !IsTerminal() {
		l.writeLine(prefix)
		return
	}

	l.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	l.spinner.Prefix = prefix + " "
	l.updateSpinner()
	l.spinner.Start()
}

// StopProgress stops the spinner and prints a summary
func (l *Logger) StopProgress() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.spinner != nil {
		l.spinner.Stop()
		l.spinner = nil
	}
	if l.files != 0 {
		l.writeLine(gchalk.Gray(l.progressText()))
	}
}

func (l *Logger) progressText() string {
	return fmt.Sprintf("%d files downloaded (%s)", l.files, humanize.Bytes(uint64(l.bytes)))
}

// updateSpinner expects l.mu to be locked
func (l *Logger) updateSpinner() {
	if l.spinner == nil {
		return
	}
	l.spinner.Lock()
	l.spinner.Suffix = " " + l.progressText()
	l.spinner.Unlock()
}
