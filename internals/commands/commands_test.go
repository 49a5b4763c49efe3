package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestPrintError(t *testing.T) {
	EmojiEnabled = false
	defer func() { EmojiEnabled = true }()

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "plain error",
			err:      errors.New("something broke"),
			contains: []string{"Error: something broke"},
		},
		{
			name: "wrapped cli error",
			err: errors.Wrap(&CliError{
				Text:        "Unknown version 9.9.9",
				Help:        "Run launchkit versions",
				Suggestions: []string{"Check for typos"},
			}, "install"),
			contains: []string{"Unknown version 9.9.9", "Run launchkit versions", "Suggestion:", "Check for typos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			PrintError(out, tt.err)
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output does not contain %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestCliError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &CliError{Text: "outer", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("expected CliError to unwrap to inner error")
	}
	if err.Error() != "outer: inner" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
