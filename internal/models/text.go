package models

import (
	"golang.org/x/text/encoding/charmap"
)

// Printable reports whether s can be drawn with the core PDF fonts, which
// cover the Windows-1252 repertoire only.
func Printable(s string) bool {
	_, err := charmap.Windows1252.NewEncoder().String(s)
	return err == nil
}
