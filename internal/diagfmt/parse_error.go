package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"wordforge/internal/mask"
)

// PrettyParseError writes a mask parse failure with a caret marking the
// offending position under the mask text. Color is applied only when
// colorize is set.
func PrettyParseError(w io.Writer, perr *mask.ParseError, colorize bool) {
	label := "error:"
	caret := "^"
	if colorize {
		red := color.New(color.FgRed, color.Bold)
		label = red.Sprint(label)
		caret = red.Sprint(caret)
	}
	fmt.Fprintf(w, "%s %s\n", label, perr.Msg)
	fmt.Fprintf(w, "  %s\n", perr.Mask)

	offset := perr.Offset
	if offset > len(perr.Mask) {
		offset = len(perr.Mask)
	}
	pad := runewidth.StringWidth(perr.Mask[:offset])
	fmt.Fprintf(w, "  %s%s offset %d\n", strings.Repeat(" ", pad), caret, perr.Offset)
}
