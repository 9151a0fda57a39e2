package prep

import (
	"github.com/dlclark/regexp2"
)

// Span is a piece of input text matched by the composite tokenizer pattern.
// Start and End are byte offsets into the input.
type Span struct {
	Text  string
	Start int
	End   int
}

// Split segments text into spans with the Twitter composite pattern.
// Matches are leftmost and non-overlapping; whitespace yields no span.
func Split(p *Patterns, text string) []Span {
	return splitWith(p.tweetTokens, text)
}

// SplitWeibo is Split with the Weibo composite pattern.
func SplitWeibo(p *Patterns, text string) []Span {
	return splitWith(p.weiboTokens, text)
}

func splitWith(re *regexp2.Regexp, text string) []Span {
	var spans []Span
	if text == "" {
		return spans
	}

	// regexp2 reports rune positions; offsets[i] is the byte offset of rune i.
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		if m.Length > 0 {
			start, end := offsets[m.Index], offsets[m.Index+m.Length]
			spans = append(spans, Span{
				Text:  text[start:end],
				Start: start,
				End:   end,
			})
		}
		m, err = re.FindNextMatch(m)
	}
	return spans
}
