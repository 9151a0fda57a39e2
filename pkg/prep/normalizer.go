package prep

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PreprocessOptions selects the optional cleaning steps.
type PreprocessOptions struct {
	// Encoding is an IANA charset name. Characters the charset cannot
	// represent become U+FFFD. Empty means no re-encoding.
	Encoding string
	// RemoveUnencodableChar drops U+FFFD instead of collapsing runs of it.
	RemoveUnencodableChar bool
	ToLower               bool
	StripAccents          bool
	// ReduceLen shortens runs of three or more identical characters to three.
	ReduceLen bool
}

// DefaultPreprocessOptions lowercases and leaves everything else off.
func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{ToLower: true}
}

// NormalizerFunc defines a single cleaning step.
type NormalizerFunc func(string) string

// Preprocessor applies a fixed pipeline of cleaning steps.
type Preprocessor struct {
	steps []NormalizerFunc
}

// NewPreprocessor builds the pipeline for opts. Steps run in this order:
// encoding fix, lowercase, accent stripping, length reduction, variation
// selector removal, URL splitting, quote folding, entity decoding.
func NewPreprocessor(p *Patterns, opts PreprocessOptions) (*Preprocessor, error) {
	if p == nil {
		p = DefaultPatterns()
	}

	steps := []NormalizerFunc{ValidUTF8}
	if opts.Encoding != "" {
		fix, err := FixEncoding(opts.Encoding, opts.RemoveUnencodableChar)
		if err != nil {
			return nil, err
		}
		steps = append(steps, fix)
	}
	if opts.ToLower {
		steps = append(steps, Lowercase)
	}
	if opts.StripAccents {
		steps = append(steps, StripAccents)
	}
	if opts.ReduceLen {
		steps = append(steps, p.ReduceLengthening)
	}
	steps = append(steps,
		RemoveVariationSelectors,
		p.SplitAttachedURLs,
		NormalizeQuotes,
		UnescapeHTML,
	)

	return &Preprocessor{steps: steps}, nil
}

// NewPreprocessorWithSteps creates a preprocessor with a custom pipeline.
func NewPreprocessorWithSteps(steps ...NormalizerFunc) *Preprocessor {
	return &Preprocessor{steps: steps}
}

// Preprocess applies all configured steps in order.
func (pp *Preprocessor) Preprocess(text string) string {
	for _, step := range pp.steps {
		text = step(text)
	}
	return text
}

// Preprocess cleans text with the default patterns.
func Preprocess(text string, opts PreprocessOptions) (string, error) {
	pp, err := NewPreprocessor(DefaultPatterns(), opts)
	if err != nil {
		return "", err
	}
	return pp.Preprocess(text), nil
}

// ValidUTF8 replaces each run of invalid bytes with U+FFFD.
func ValidUTF8(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// mojibake is U+FFFD decoded as Latin-1 after a UTF-8 round trip.
const mojibake = "ï¿½"

// FixEncoding returns a step that keeps only the characters the named
// charset can encode. The rest become U+FFFD, runs of which collapse to one
// or, with remove set, disappear.
func FixEncoding(name string, remove bool) (NormalizerFunc, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %q", name)
	}
	if enc == nil {
		return nil, errors.Errorf("encoding %q is not supported", name)
	}

	return func(s string) string {
		encoder := enc.NewEncoder()
		var result strings.Builder
		result.Grow(len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				if _, err := encoder.String(string(r)); err == nil {
					result.WriteRune(r)
					continue
				}
			}
			result.WriteRune(utf8.RuneError)
		}
		return squeezeReplacementChars(result.String(), remove)
	}, nil
}

// squeezeReplacementChars collapses runs of U+FFFD to one, or drops them.
func squeezeReplacementChars(s string, remove bool) string {
	s = strings.ReplaceAll(s, mojibake, string(utf8.RuneError))
	if !strings.ContainsRune(s, utf8.RuneError) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))
	prev := false
	for _, r := range s {
		if r == utf8.RuneError {
			if !remove && !prev {
				result.WriteRune(r)
			}
			prev = true
			continue
		}
		prev = false
		result.WriteRune(r)
	}
	return result.String()
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// StripAccents removes nonspacing marks after canonical decomposition and
// recomposes what is left: "être" becomes "etre".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RemoveVariationSelectors deletes U+FE00..U+FE0F.
func RemoveVariationSelectors(s string) string {
	return stripVariationSelectors(s)
}

// ReduceLengthening shortens runs of three or more identical characters to
// exactly three: "waaaaayyyy" becomes "waaayyy".
func (p *Patterns) ReduceLengthening(s string) string {
	return replace(p.repeatedChars, s, "$1$1$1")
}

// SplitAttachedURLs inserts a space before "http://" or "https://" when it
// follows a non-space character.
func (p *Patterns) SplitAttachedURLs(s string) string {
	return replace(p.attachedURL, s, "$1 $2")
}

// quoteReplacements maps typographic quotes and apostrophes to ASCII.
var quoteReplacements = map[rune]rune{
	'“': '"',  // left double quote
	'”': '"',  // right double quote
	'„': '"',  // double low-9 quote
	'‟': '"',  // double high-reversed-9 quote
	'″': '"',  // double prime
	'«': '"',  // left guillemet
	'»': '"',  // right guillemet
	'‘': '\'', // left single quote
	'’': '\'', // right single quote
	'‚': '\'', // single low-9 quote
	'‛': '\'', // single high-reversed-9 quote
	'′': '\'', // prime
}

// NormalizeQuotes converts typographic quotes to ASCII and a doubled
// apostrophe to a double quote.
func NormalizeQuotes(s string) string {
	if strings.ContainsFunc(s, isTypographicQuote) {
		var result strings.Builder
		result.Grow(len(s))
		for _, r := range s {
			if replacement, ok := quoteReplacements[r]; ok {
				result.WriteRune(replacement)
			} else {
				result.WriteRune(r)
			}
		}
		s = result.String()
	}
	return strings.ReplaceAll(s, "''", `"`)
}

func isTypographicQuote(r rune) bool {
	_, ok := quoteReplacements[r]
	return ok
}

// UnescapeHTML decodes character references such as "&amp;" and "&#39;".
func UnescapeHTML(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	return html.UnescapeString(s)
}
