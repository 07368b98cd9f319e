package richtext

import (
	"fmt"

	"github.com/gogpu/faicon"
)

// Composer builds strings with icon attachments rendered by a generator.
// Every call derives its own generator for the requested size, so a
// Composer can be shared.
type Composer struct {
	gen *faicon.Generator
}

// NewComposer returns a composer that renders icons with gen's styling.
func NewComposer(gen *faicon.Generator) *Composer {
	return &Composer{gen: gen}
}

// Attachment returns a string holding a single icon at size points.
func (c *Composer) Attachment(icon string, size float64) (*String, error) {
	run, err := c.attachment(icon, size)
	if err != nil {
		return nil, err
	}
	return NewString(run), nil
}

// IconBefore returns icon followed by text.
func (c *Composer) IconBefore(icon, text string, size float64) (*String, error) {
	run, err := c.attachment(icon, size)
	if err != nil {
		return nil, err
	}
	return NewString(run, TextRun{Text: text}), nil
}

// IconAfter returns text followed by icon.
func (c *Composer) IconAfter(text, icon string, size float64) (*String, error) {
	run, err := c.attachment(icon, size)
	if err != nil {
		return nil, err
	}
	return NewString(TextRun{Text: text}, run), nil
}

// AppendIcon returns s with icon added at the end.
func (c *Composer) AppendIcon(s *String, icon string, size float64) (*String, error) {
	run, err := c.attachment(icon, size)
	if err != nil {
		return nil, err
	}
	return s.Append(NewString(run)), nil
}

// BaselineOffset returns the offset that aligns a padded icon of height
// size with the text baseline.
func (c *Composer) BaselineOffset(size float64) float64 {
	m := c.gen.Font().Metrics()
	return -m.Descent / float64(m.UnitsPerEm) * size
}

func (c *Composer) attachment(icon string, size float64) (AttachmentRun, error) {
	gen, err := c.gen.With(faicon.WithSize(size))
	if err != nil {
		return AttachmentRun{}, fmt.Errorf("richtext: %w", err)
	}
	bm, err := gen.CreateImage(icon)
	if err != nil {
		return AttachmentRun{}, fmt.Errorf("richtext: %w", err)
	}
	return AttachmentRun{Image: bm, BaselineOffset: c.BaselineOffset(size)}, nil
}
