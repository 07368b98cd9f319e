// Package control attaches icons to GUI controls.
//
// The package does not depend on any GUI toolkit. A toolkit provides thin
// wrappers that satisfy Label, Button, BarButtonItem, TabBarItem or
// ImageButton, and an Adapter sets icons on them either as text in the
// icon font or as a rendered bitmap.
//
// Example usage:
//
//	font, _ := faicon.LoadFontFile("fontawesome-webfont.ttf")
//	a, _ := control.NewAdapter(font)
//
//	a.SetLabelIconDefault(myLabel, icons.Home)
//	a.SetTabIcon(myTab, icons.Cog)
package control

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/gogpu/faicon"
)

// State is the control state a title or image applies to.
type State int

const (
	StateNormal State = iota
	StateHighlighted
	StateDisabled
	StateSelected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateDisabled:
		return "disabled"
	case StateSelected:
		return "selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Label is a control that shows a single line of text.
type Label interface {
	// SetFace sets the font face used to draw the text.
	SetFace(face font.Face)

	// SetText sets the displayed text.
	SetText(text string)

	// FontSize returns the current font size in points.
	FontSize() float64
}

// Button is a control with a per-state text title.
type Button interface {
	// SetFace sets the font face used for the title.
	SetFace(face font.Face)

	// SetTitle sets the title shown in state.
	SetTitle(title string, state State)

	// FontSize returns the current title font size in points.
	FontSize() float64
}

// ImageButton is a control with a per-state image.
type ImageButton interface {
	SetImage(img *faicon.Bitmap, state State)
}

// BarButtonItem is a toolbar or navigation bar item with a text title.
type BarButtonItem interface {
	SetTitle(title string)
	SetTitleFace(face font.Face, state State)
}

// TabBarItem is a tab with an image.
type TabBarItem interface {
	SetImage(img *faicon.Bitmap)
}
