// Package richtext builds attributed strings that mix text with inline
// icon images.
//
// A String is an ordered list of runs. Text runs carry an optional font
// face; attachment runs carry a rendered icon and the vertical offset that
// puts the icon's baseline on the text baseline. Host toolkits walk Runs
// to lay the string out.
package richtext

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/faicon"
)

// ObjectReplacement is the character that stands in for an attachment in
// the plain text of a String.
const ObjectReplacement = '\ufffc'

// Run is one piece of a String: a TextRun or an AttachmentRun.
type Run interface {
	// text returns the plain-text form of the run.
	text() string
}

// TextRun is literal text. A nil Face means the host's default face.
type TextRun struct {
	Text string
	Face font.Face
}

func (r TextRun) text() string { return r.Text }

// AttachmentRun is an inline image.
type AttachmentRun struct {
	Image *faicon.Bitmap

	// BaselineOffset moves the image down from the text baseline, in
	// points. It is negative for images that extend below the baseline.
	BaselineOffset float64
}

func (r AttachmentRun) text() string { return string(ObjectReplacement) }

// String is an immutable attributed string. The zero value is empty and
// ready to use.
type String struct {
	runs []Run
}

// NewString returns a string of runs. Text runs are NFC-normalized and
// empty text runs are dropped.
func NewString(runs ...Run) *String {
	s := &String{}
	return s.append(runs)
}

// Plain returns a string with a single text run.
func Plain(text string, face font.Face) *String {
	return NewString(TextRun{Text: text, Face: face})
}

// Runs returns a copy of the runs.
func (s *String) Runs() []Run {
	if s == nil {
		return nil
	}
	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// Text returns the plain text with U+FFFC for every attachment.
func (s *String) Text() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range s.runs {
		b.WriteString(r.text())
	}
	return b.String()
}

// Len returns the number of runes in Text.
func (s *String) Len() int {
	n := 0
	for range s.Text() {
		n++
	}
	return n
}

// Attachments returns the attachment runs in order.
func (s *String) Attachments() []AttachmentRun {
	if s == nil {
		return nil
	}
	var out []AttachmentRun
	for _, r := range s.runs {
		if a, ok := r.(AttachmentRun); ok {
			out = append(out, a)
		}
	}
	return out
}

// Append returns a new string with the runs of others after the runs of s.
func (s *String) Append(others ...*String) *String {
	out := &String{runs: s.Runs()}
	for _, o := range others {
		if o != nil {
			out.runs = append(out.runs, o.runs...)
		}
	}
	return out
}

// AppendText returns a new string with text added at the end.
func (s *String) AppendText(text string, face font.Face) *String {
	out := &String{runs: s.Runs()}
	return out.append([]Run{TextRun{Text: text, Face: face}})
}

// append adds runs to s in place. It is only used on strings that have
// not been returned to a caller yet.
func (s *String) append(runs []Run) *String {
	for _, r := range runs {
		if t, ok := r.(TextRun); ok {
			t.Text = norm.NFC.String(t.Text)
			if t.Text == "" {
				continue
			}
			r = t
		}
		s.runs = append(s.runs, r)
	}
	return s
}
