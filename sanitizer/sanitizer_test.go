// FILE: lixenwraith/bwdebug/sanitizer/sanitizer_test.go
package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizerPolicies(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   PolicyPreset
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes newline",
			input:    "a\nb",
			policy:   PolicyTxt,
			expected: "a<0a>b",
		},
		{
			name:     "terminal keeps newline and tab",
			input:    "line1\n\tline2",
			policy:   PolicyTerminal,
			expected: "line1\n\tline2",
		},
		{
			name:     "terminal encodes escape sequences",
			input:    "red\x1b[31mtext",
			policy:   PolicyTerminal,
			expected: "red<1b>[31mtext",
		},
		{
			name:     "terminal encodes carriage return and bell",
			input:    "a\rb\x07",
			policy:   PolicyTerminal,
			expected: "a<0d>b<07>",
		},
		{
			name:     "terminal encodes multi-byte control",
			input:    "line1\u0085line2",
			policy:   PolicyTerminal,
			expected: "line1<c285>line2",
		},
		{
			name:     "terminal preserves UTF-8",
			input:    "Hello 世界 ✓",
			policy:   PolicyTerminal,
			expected: "Hello 世界 ✓",
		},
		{
			name:     "json escapes control chars",
			input:    "line1\nline2\ttab\rreturn",
			policy:   PolicyJSON,
			expected: `line1\nline2\ttab\rreturn`,
		},
		{
			name:     "json escapes unicode control",
			input:    "a\x01b",
			policy:   PolicyJSON,
			expected: `a\u0001b`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := New().Policy(tc.policy).Sanitize(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestSanitizerRules(t *testing.T) {
	t.Run("strip control", func(t *testing.T) {
		s := New().Rule(FilterControl, TransformStrip)
		assert.Equal(t, "cleantxt", s.Sanitize("clean\x00\x07\ntxt"))
	})

	t.Run("strip whitespace", func(t *testing.T) {
		s := New().Rule(FilterWhitespace, TransformStrip)
		assert.Equal(t, "helloworld", s.Sanitize("hello \tworld\n"))
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		s := New().
			Rule(FilterTerminalControl, TransformStrip).
			Rule(FilterControl, TransformHexEncode)
		assert.Equal(t, "ab<0a>", s.Sanitize("a\x1bb\n"))
	})

	t.Run("unknown policy adds no rules", func(t *testing.T) {
		s := New().Policy("nope")
		assert.Equal(t, "a\x00", s.Sanitize("a\x00"))
	})

	t.Run("reuse does not leak buffer", func(t *testing.T) {
		s := New().Policy(PolicyTerminal)
		long := strings.Repeat("x", 512)
		assert.Equal(t, long, s.Sanitize(long))
		assert.Equal(t, "y", s.Sanitize("y"))
	})
}

func TestStripTags(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		keep     []string
		expected string
	}{
		{"plain text unchanged", "hello world", nil, "hello world"},
		{"removes tags", "<b>bold</b> and <i class=\"x\">italic</i>", nil, "bold and italic"},
		{"removes self closing", "line<br/>next", nil, "linenext"},
		{"removes comments", "a<!-- hidden\ncomment -->b", nil, "ab"},
		{"decodes entities", "[0] =&gt; &quot;x&quot; &amp; y", nil, `[0] => "x" & y`},
		{"comparison is not a tag", "a < b > c", nil, "a < b > c"},
		{"keeps listed markers", "(*int)(<nil>) <b>x</b>", []string{"<nil>"}, "(*int)(<nil>) x"},
		{"keeps markers with spaces", "<max depth reached>", []string{"<max depth reached>"}, "<max depth reached>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripTags(tc.input, tc.keep...))
		})
	}
}
