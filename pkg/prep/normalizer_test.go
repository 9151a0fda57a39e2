package prep

import (
	"testing"
)

func TestLowercase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HELLO", "hello"},
		{"@Remy", "@remy"},
		{"ÊTRE", "être"},
	}

	for _, tt := range tests {
		result := Lowercase(tt.input)
		if result != tt.expected {
			t.Errorf("Lowercase(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"être", "etre"},
		{"café crème", "cafe creme"},
		{"e\u0301", "e"},
		{"naïve", "naive"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		result := StripAccents(tt.input)
		if result != tt.expected {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestReduceLengthening(t *testing.T) {
	p := DefaultPatterns()

	tests := []struct {
		input    string
		expected string
	}{
		{"waaaaayyyy", "waaayyy"},
		{"sooo", "sooo"},
		{"soo", "soo"},
		{"!!!!!!", "!!!"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		result := p.ReduceLengthening(tt.input)
		if result != tt.expected {
			t.Errorf("ReduceLengthening(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSplitAttachedURLs(t *testing.T) {
	p := DefaultPatterns()

	tests := []struct {
		input    string
		expected string
	}{
		{":http://t.co/skU8zM7Slh", ": http://t.co/skU8zM7Slh"},
		{"seeker:https://x.co", "seeker: https://x.co"},
		{"see http://t.co", "see http://t.co"},
		{"http://t.co", "http://t.co"},
	}

	for _, tt := range tests {
		result := p.SplitAttachedURLs(tt.input)
		if result != tt.expected {
			t.Errorf("SplitAttachedURLs(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestRemoveVariationSelectors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"\uFE00", ""},
		{"❤\uFE0F", "❤"},
		{"a\uFE0Eb\uFE0Fc", "abc"},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		result := RemoveVariationSelectors(tt.input)
		if result != tt.expected {
			t.Errorf("RemoveVariationSelectors(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"“hi”", "\"hi\""},
		{"it’s", "it's"},
		{"‘single’", "'single'"},
		{"''quoted''", "\"quoted\""},
		{"«bonjour»", "\"bonjour\""},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		result := NormalizeQuotes(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeQuotes(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestUnescapeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"fish &amp; chips", "fish & chips"},
		{"&lt;3", "<3"},
		{"it&#39;s", "it's"},
		{"no entities", "no entities"},
	}

	for _, tt := range tests {
		result := UnescapeHTML(tt.input)
		if result != tt.expected {
			t.Errorf("UnescapeHTML(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestFixEncoding(t *testing.T) {
	tests := []struct {
		input    string
		remove   bool
		expected string
	}{
		{"café", false, "café"},
		{"a日本b", false, "a\uFFFDb"},
		{"a日本b", true, "ab"},
		{"a\uFFFD\uFFFDb", false, "a\uFFFDb"},
		{"aï¿½b", true, "ab"},
	}

	for _, tt := range tests {
		fix, err := FixEncoding("ISO-8859-1", tt.remove)
		if err != nil {
			t.Fatalf("FixEncoding: %v", err)
		}
		result := fix(tt.input)
		if result != tt.expected {
			t.Errorf("FixEncoding(remove=%v)(%q) = %q, want %q", tt.remove, tt.input, result, tt.expected)
		}
	}
}

func TestFixEncoding_Unknown(t *testing.T) {
	if _, err := FixEncoding("no-such-charset", false); err == nil {
		t.Error("FixEncoding with an unknown charset should fail")
	}
	if _, err := NewPreprocessor(nil, PreprocessOptions{Encoding: "no-such-charset"}); err == nil {
		t.Error("NewPreprocessor with an unknown charset should fail")
	}
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		input    string
		opts     PreprocessOptions
		expected string
	}{
		{
			input:    "Asylum Seeker:http://t.co/skU8zM7Slh",
			opts:     DefaultPreprocessOptions(),
			expected: "asylum seeker: http://t.co/sku8zm7slh",
		},
		{
			input:    "This is WAAAAAYYYY too much",
			opts:     PreprocessOptions{ToLower: true, ReduceLen: true},
			expected: "this is waaayyy too much",
		},
		{
			input:    "Être &amp; Naïve",
			opts:     PreprocessOptions{StripAccents: true},
			expected: "Etre & Naive",
		},
		{
			input:    "I ❤\uFE0F it’s",
			opts:     PreprocessOptions{},
			expected: "I ❤ it's",
		},
		{
			input:    "bad\xffbyte",
			opts:     PreprocessOptions{},
			expected: "bad\uFFFDbyte",
		},
	}

	for _, tt := range tests {
		result, err := Preprocess(tt.input, tt.opts)
		if err != nil {
			t.Fatalf("Preprocess(%q): %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("Preprocess(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestPreprocessorWithSteps(t *testing.T) {
	pp := NewPreprocessorWithSteps(Lowercase, StripAccents)
	if got := pp.Preprocess("ÊTRE"); got != "etre" {
		t.Errorf("Preprocess(%q) = %q, want %q", "ÊTRE", got, "etre")
	}
}
