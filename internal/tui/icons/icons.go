// Package icons picks the glyphs the canvas draws with. Terminals without
// good Unicode fonts can switch to plain ASCII with DRAGBOX_ICON_SET=ascii.
package icons

import (
	"os"
	"strings"
)

// IconSetEnv selects the glyph set.
const IconSetEnv = "DRAGBOX_ICON_SET"

type IconSet struct {
	// Handle marks a resize grip cell.
	Handle rune
	// Dot marks a grid intersection on the backdrop.
	Dot rune
	// Tiny draws a widget that is a single cell wide or tall.
	Tiny rune
	// Lock prefixes the title of an aspect-locked widget.
	Lock string
	// Ellipsis ends truncated labels.
	Ellipsis string
}

var Unicode = IconSet{
	Handle:   '■',
	Dot:      '·',
	Tiny:     '□',
	Lock:     "⇔",
	Ellipsis: "…",
}

var ASCII = IconSet{
	Handle:   '#',
	Dot:      '.',
	Tiny:     'o',
	Lock:     "=",
	Ellipsis: "~",
}

// Active returns the set chosen by the environment.
func Active() IconSet {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(IconSetEnv))) {
	case "ascii":
		return ASCII
	default:
		return Unicode
	}
}
