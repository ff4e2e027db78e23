package term

import (
	"os"

	xterm "golang.org/x/term"
)

// Size reports the current terminal dimensions in columns and rows, falling
// back to 80x24 when stdout is not a terminal.
func Size() (cols, rows int) {
	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}
