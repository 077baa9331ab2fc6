package tweety

import "github.com/vovakirdan/tweety-escape/internal/core"

// Button identifies a clickable region.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonInstruction
	ButtonBack
	ButtonPlayAgain
	ButtonMainMenu
)

// Label returns the text drawn on the button.
func (b Button) Label() string {
	switch b {
	case ButtonStart:
		return "START"
	case ButtonInstruction:
		return "Instruction"
	case ButtonBack:
		return "Back"
	case ButtonPlayAgain:
		return "Play Again"
	case ButtonMainMenu:
		return "Main Menu"
	default:
		return ""
	}
}

// Region is a button and the surface rectangle that triggers it.
type Region struct {
	Button Button
	Box    core.Box
}

// Regions returns the clickable regions of a mode on a w×h surface.
// Modes without buttons return nil.
func Regions(m Mode, w, h float64) []Region {
	switch m {
	case ModeMenu:
		return []Region{
			{ButtonStart, core.NewBox(w/2+150, h/2-20, 250, 50)},
			{ButtonInstruction, core.NewBox(w/2+150, h/2+40, 250, 50)},
		}
	case ModeHowToPlay:
		return []Region{
			{ButtonBack, core.NewBox(w/1.25-100, h/1.5+60, 100, 50)},
		}
	case ModeGameOver:
		return []Region{
			{ButtonPlayAgain, core.NewBox(w/2-150, h/2+80, 300, 50)},
			{ButtonMainMenu, core.NewBox(w/2-150, h/2+140, 300, 50)},
		}
	default:
		return nil
	}
}

// HitTest returns the button under p, or ButtonNone.
// Edges are inclusive; non-finite points never match.
func HitTest(m Mode, w, h float64, p core.Point) Button {
	for _, r := range Regions(m, w, h) {
		if r.Box.Contains(p) {
			return r.Button
		}
	}
	return ButtonNone
}
