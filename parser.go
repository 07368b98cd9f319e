package faicon

import (
	"fmt"
	"strings"
)

// Parser selects the font parsing backend.
type Parser uint8

const (
	// ParserSFNT parses with golang.org/x/image/font/sfnt. This is the default.
	ParserSFNT Parser = iota

	// ParserGoText parses with github.com/go-text/typesetting/font.
	ParserGoText
)

// String returns the parser name used by ParseParser.
func (p Parser) String() string {
	switch p {
	case ParserSFNT:
		return "sfnt"
	case ParserGoText:
		return "gotext"
	default:
		return fmt.Sprintf("Parser(%d)", uint8(p))
	}
}

// ParseParser returns the parser with the given name.
func ParseParser(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sfnt", "ximage":
		return ParserSFNT, nil
	case "gotext", "go-text":
		return ParserGoText, nil
	}
	return 0, fmt.Errorf("faicon: unknown parser %q", name)
}

// FontOption configures LoadFont.
type FontOption func(*fontConfig)

type fontConfig struct {
	parser Parser
}

func defaultFontConfig() fontConfig {
	return fontConfig{parser: ParserSFNT}
}

// WithParser selects the parsing backend. Both backends produce the same
// outlines and metrics for TrueType and CFF fonts.
func WithParser(p Parser) FontOption {
	return func(c *fontConfig) {
		c.parser = p
	}
}
