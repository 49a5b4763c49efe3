package commands

import (
	"os"
	"runtime"
)

var emojiSupport = true

// EmojiEnabled can be used to turn off emojis (--no-emoji)
var EmojiEnabled = true

func init() {
	// logs of CI systems usually mangle them
	if os.Getenv("CI") != "" {
		emojiSupport = false
		return
	}

	// everything that is not windows usually has emoji support
	if runtime.GOOS != "windows" {
		return
	}

	// raw cmd and powershell set this, the windows terminal does not
	if os.Getenv("SESSIONNAME") != "" {
		emojiSupport = false
	}
}

// EmojiSupported returns true if the terminal (probably) can render emojis
func EmojiSupported() bool {
	return emojiSupport
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
