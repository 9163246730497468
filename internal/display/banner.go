package display

import (
	"fmt"
	"os"

	"github.com/backmassage/cardforge/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ____              _ _____
 / ___|__ _ _ __ __| |  ___|__  _ __ __ _  ___
| |   / _`+"`"+` | '__/ _`+"`"+` | |_ / _ \| '__/ _`+"`"+` |/ _ \
| |__| (_| | | | (_| |  _| (_) | | | (_| |  __/
 \____\__,_|_|  \__,_|_|  \___/|_|  \__, |\___|
                                    |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
