package display

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal helpers for the live watch view.

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the terminal width with a fallback for pipes and very
// narrow windows.
func Width() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 60 {
		return 74
	}
	return termWidth
}

// ClearScreen clears the terminal and homes the cursor before a refresh.
func ClearScreen() {
	fmt.Print("\033[2J")
	fmt.Print("\033[H")
}
