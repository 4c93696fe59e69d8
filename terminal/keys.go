// Package terminal runs the game on a character grid using tcell.
package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	NoAction Action = iota
	// Steer forwards a key name to hockey.Controls.
	Steer
	ResetGame
	Quit
)

// Translate maps a key event to an action. For Steer the returned name uses
// the same spelling as the desktop frontend ("ArrowLeft", "A").
func Translate(ev *tcell.EventKey) (Action, string) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, ""
	case tcell.KeyLeft:
		return Steer, "ArrowLeft"
	case tcell.KeyRight:
		return Steer, "ArrowRight"
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Quit, ""
		case 'r', 'R':
			return ResetGame, ""
		}
		return Steer, strings.ToUpper(string(ev.Rune()))
	}
	return NoAction, ""
}
