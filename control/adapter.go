package control

import (
	"fmt"

	"github.com/gogpu/faicon"
)

// Defaults for adapters.
const (
	// DefaultBarButtonSize is the icon size for bar button items.
	DefaultBarButtonSize = 22

	// DefaultTabBarSize is the icon height for tab bar items.
	DefaultTabBarSize = 24

	// DefaultTabBarInset is the padding on every side of tab bar icons.
	DefaultTabBarInset = 1
)

// Adapter sets icons from one font on host controls. It holds no mutable
// state and is safe for concurrent use.
type Adapter struct {
	font          *faicon.Font
	tabBar        faicon.ImageCreator
	barButtonSize float64
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithTabBar replaces the image creator used for tab bar items.
func WithTabBar(gen faicon.ImageCreator) AdapterOption {
	return func(a *Adapter) {
		a.tabBar = gen
	}
}

// WithBarButtonSize sets the default size for bar button items.
func WithBarButtonSize(size float64) AdapterOption {
	return func(a *Adapter) {
		a.barButtonSize = size
	}
}

// NewAdapter returns an adapter for f. Unless WithTabBar is given, tab
// icons are rendered at DefaultTabBarSize with DefaultTabBarInset.
func NewAdapter(f *faicon.Font, opts ...AdapterOption) (*Adapter, error) {
	if f == nil {
		return nil, faicon.ErrNilFont
	}
	a := &Adapter{font: f, barButtonSize: DefaultBarButtonSize}
	for _, opt := range opts {
		opt(a)
	}
	if a.barButtonSize <= 0 {
		return nil, fmt.Errorf("control: bar button size: %w", faicon.ErrInvalidSize)
	}
	if a.tabBar == nil {
		gen, err := NewTabBarGenerator(f)
		if err != nil {
			return nil, err
		}
		a.tabBar = gen
	}
	return a, nil
}

// NewTabBarGenerator returns the generator used for tab bar icons.
func NewTabBarGenerator(f *faicon.Font) (*faicon.Generator, error) {
	return faicon.NewGenerator(f,
		faicon.WithSize(DefaultTabBarSize),
		faicon.WithInsets(faicon.UniformInsets(DefaultTabBarInset)))
}

// SetLabelIcon shows icon in l using the icon font at size.
func (a *Adapter) SetLabelIcon(l Label, icon string, size float64) error {
	face, err := a.font.Face(size)
	if err != nil {
		return fmt.Errorf("control: label face: %w", err)
	}
	l.SetFace(face)
	l.SetText(icon)
	return nil
}

// SetLabelIconDefault is SetLabelIcon at the label's current font size.
func (a *Adapter) SetLabelIconDefault(l Label, icon string) error {
	return a.SetLabelIcon(l, icon, l.FontSize())
}

// SetButtonIcon shows icon as b's title for state.
func (a *Adapter) SetButtonIcon(b Button, icon string, size float64, state State) error {
	face, err := a.font.Face(size)
	if err != nil {
		return fmt.Errorf("control: button face: %w", err)
	}
	b.SetFace(face)
	b.SetTitle(icon, state)
	return nil
}

// SetButtonIconDefault is SetButtonIcon at the button's current font size.
func (a *Adapter) SetButtonIconDefault(b Button, icon string, state State) error {
	return a.SetButtonIcon(b, icon, b.FontSize(), state)
}

// SetBarButtonIcon shows icon as item's title. The face applies to the
// normal state.
func (a *Adapter) SetBarButtonIcon(item BarButtonItem, icon string, size float64) error {
	face, err := a.font.Face(size)
	if err != nil {
		return fmt.Errorf("control: bar button face: %w", err)
	}
	item.SetTitle(icon)
	item.SetTitleFace(face, StateNormal)
	return nil
}

// SetBarButtonIconDefault is SetBarButtonIcon at the adapter's bar button
// size.
func (a *Adapter) SetBarButtonIconDefault(item BarButtonItem, icon string) error {
	return a.SetBarButtonIcon(item, icon, a.barButtonSize)
}

// SetTabIcon renders icon with the tab bar generator and assigns it.
func (a *Adapter) SetTabIcon(tab TabBarItem, icon string) error {
	bm, err := a.tabBar.CreateImage(icon)
	if err != nil {
		return fmt.Errorf("control: tab icon: %w", err)
	}
	tab.SetImage(bm)
	return nil
}

// SetTabIconSize is SetTabIcon with a glyph of height size. The image
// keeps the tab bar canvas size.
func (a *Adapter) SetTabIconSize(tab TabBarItem, icon string, size float64) error {
	bm, err := a.tabBar.CreateImageSize(icon, size)
	if err != nil {
		return fmt.Errorf("control: tab icon: %w", err)
	}
	tab.SetImage(bm)
	return nil
}

// SetButtonImage renders icon with gen and assigns it to b for state. Use
// it when the icon needs colors, gradients or a stroke. A nil gen renders
// with the default configuration.
func (a *Adapter) SetButtonImage(b ImageButton, gen faicon.ImageCreator, icon string, state State) error {
	if gen == nil {
		g, err := faicon.NewGenerator(a.font)
		if err != nil {
			return err
		}
		gen = g
	}
	bm, err := gen.CreateImage(icon)
	if err != nil {
		return fmt.Errorf("control: button image: %w", err)
	}
	b.SetImage(bm, state)
	faicon.Logger().Debug("control: button image set",
		"state", state.String(),
		"width", bm.Width(),
		"height", bm.Height())
	return nil
}
