package prep

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var fuzzSeeds = []string{
	"123 @hello #world www.url.com abc@gmail.com",
	"asylum seeker:http://t.co/skU8zM7Slh",
	"@abc😂#hashtag",
	"waaaaayyyy",
	"<p>fish &amp; chips</p> (◕‿◕✿) :) <3",
	"#中国 加油#",
	"ab\xffcd",
	"",
	"   ",
}

func FuzzPrep(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	actions := Actions{Mention: Tag, URL: Tag, Emoji: Demojize, HTMLTag: Remove}
	opts := PreprocessOptions{ToLower: true, ReduceLen: true}

	f.Fuzz(func(t *testing.T, input string) {
		pt, err := Parse(input, opts, actions)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		for i, tok := range pt.Tokens() {
			if tok.Text == "" {
				t.Fatalf("Parse(%q) left empty token %d", input, i)
			}
		}

		pt.PostProcess()
		value := pt.Value()
		if !utf8.ValidString(value) {
			t.Fatalf("Parse(%q) produced invalid UTF-8 %q", input, value)
		}
		if value != strings.TrimSpace(value) || strings.Contains(value, "  ") {
			t.Fatalf("PostProcess left extra whitespace in %q", value)
		}

		pt.PostProcess()
		if again := pt.Value(); again != value {
			t.Fatalf("PostProcess not idempotent: %q then %q", value, again)
		}
	})
}

func FuzzTokenize(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	p := DefaultPatterns()
	f.Fuzz(func(t *testing.T, input string) {
		last := 0
		for _, s := range Split(p, input) {
			if s.Start < last || s.End <= s.Start || s.End > len(input) {
				t.Fatalf("Split(%q) produced bad span %+v", input, s)
			}
			if input[s.Start:s.End] != s.Text {
				t.Fatalf("Split(%q) span %+v does not match input", input, s)
			}
			if gap := input[last:s.Start]; strings.IndexFunc(gap, isVisibleASCII) >= 0 {
				t.Fatalf("Split(%q) skipped %q", input, gap)
			}
			last = s.End
		}
	})
}

func isVisibleASCII(r rune) bool {
	return r > ' ' && r < utf8.RuneSelf && r != 0x7f
}
