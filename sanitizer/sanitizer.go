// FILE: lixenwraith/bwdebug/sanitizer/sanitizer.go
// Package sanitizer provides a fluent and composable interface for sanitizing
// strings based on configurable rules using bitwise filter flags and transforms.
// It also strips markup left in rendered values.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable    uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                            // Matches control characters (unicode.IsControl)
	FilterWhitespace                         // Matches whitespace characters (unicode.IsSpace)
	FilterTerminalControl                    // Matches control characters other than '\n' and '\t'
)

// Transform flags for character transformation
const (
	TransformStrip      uint64 = 1 << iota // Removes the character
	TransformHexEncode                     // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformJSONEscape                    // Escapes the character with JSON-style backslashes (e.g., '\n', '\u0000')
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw      PolicyPreset = "raw"      // Raw is a no-op (passthrough)
	PolicyJSON     PolicyPreset = "json"     // Policy for strings embedded in JSON
	PolicyTxt      PolicyPreset = "txt"      // Policy for single-line text
	PolicyTerminal PolicyPreset = "terminal" // Policy for multi-line text viewed in a terminal
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:      {},
	PolicyTxt:      {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyJSON:     {{filter: FilterControl, transform: TransformJSONEscape}},
	PolicyTerminal: {{filter: FilterTerminalControl, transform: TransformHexEncode}},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterTerminalControl: func(r rune) bool {
		return r != '\n' && r != '\t' && unicode.IsControl(r)
	},
}

// Sanitizer provides chainable text sanitization
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.buf[:0]

	for _, r := range data {
		matched := false
		// First matching rule wins
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}

	return string(s.buf)
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform to the buffer
func applyTransform(buf *[]byte, r rune, transformMask uint64) {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		*buf = append(*buf, '<')
		*buf = append(*buf, hex.EncodeToString(runeBytes[:n])...)
		*buf = append(*buf, '>')

	case (transformMask & TransformJSONEscape) != 0:
		switch r {
		case '\n':
			*buf = append(*buf, '\\', 'n')
		case '\r':
			*buf = append(*buf, '\\', 'r')
		case '\t':
			*buf = append(*buf, '\\', 't')
		case '\b':
			*buf = append(*buf, '\\', 'b')
		case '\f':
			*buf = append(*buf, '\\', 'f')
		case '"':
			*buf = append(*buf, '\\', '"')
		case '\\':
			*buf = append(*buf, '\\', '\\')
		default:
			if r < 0x20 || r == 0x7f {
				*buf = append(*buf, fmt.Sprintf("\\u%04x", r)...)
			} else {
				*buf = utf8.AppendRune(*buf, r)
			}
		}
	}
}

// tagPattern matches HTML-like opening, closing and self-closing tags and comments
var tagPattern = regexp.MustCompile(`<!--[\s\S]*?-->|</?[A-Za-z][A-Za-z0-9:-]*(?:\s[^<>]*)?/?>`)

// StripTags removes HTML-like tags from s and decodes HTML entities.
// Matches listed in keep (e.g. "<nil>") are left in place.
func StripTags(s string, keep ...string) string {
	stripped := tagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		for _, k := range keep {
			if tag == k {
				return tag
			}
		}
		return ""
	})
	return html.UnescapeString(stripped)
}
