package prep

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
)

// DefaultSeparator joins tokens in ParsedText.Value.
const DefaultSeparator = " "

// ParsedText is an ordered token sequence together with its joined value.
// The joined value is memoized until the tokens change.
type ParsedText struct {
	tokens    []*Token
	separator string
	value     string
	joined    bool
}

// NewParsedText wraps tokens. An empty separator means DefaultSeparator.
func NewParsedText(tokens []*Token, separator string) *ParsedText {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &ParsedText{tokens: tokens, separator: separator}
}

// Process applies actions to every token and drops the tokens left empty.
// All actions are validated first; on error no token is touched.
func (pt *ParsedText) Process(actions Actions) error {
	if err := actions.Validate(); err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}

	kept := pt.tokens[:0]
	for _, tok := range pt.tokens {
		if _, err := actions.Apply(tok); err != nil {
			return err
		}
		if !tok.Empty() {
			kept = append(kept, tok)
		}
	}
	clear(pt.tokens[len(kept):])
	pt.tokens = kept
	pt.Invalidate()
	return nil
}

// Value returns the tokens joined with the separator.
func (pt *ParsedText) Value() string {
	if !pt.joined {
		pt.value = pt.Join()
		pt.joined = true
	}
	return pt.value
}

// Join joins the current token texts without consulting the memo.
// Tokens emptied through Token(i) are skipped.
func (pt *ParsedText) Join() string {
	var b strings.Builder
	first := true
	for _, tok := range pt.tokens {
		if tok.Empty() {
			continue
		}
		if !first {
			b.WriteString(pt.separator)
		}
		b.WriteString(tok.Text)
		first = false
	}
	return b.String()
}

// PostProcess collapses whitespace runs in the value to one space and trims
// both ends. Running it twice gives the same value.
func (pt *ParsedText) PostProcess() {
	pt.value = strings.Join(strings.Fields(pt.Value()), " ")
	pt.joined = true
}

// Invalidate drops the memoized value. Call it after changing a token
// obtained from Token or Tokens.
func (pt *ParsedText) Invalidate() {
	pt.value = ""
	pt.joined = false
}

// Separator returns the string placed between tokens.
func (pt *ParsedText) Separator() string { return pt.separator }

// Len returns the number of tokens.
func (pt *ParsedText) Len() int { return len(pt.tokens) }

// Tokens returns the live token slice.
func (pt *ParsedText) Tokens() []*Token { return pt.tokens }

// Token returns the i-th token.
func (pt *ParsedText) Token(i int) *Token { return pt.tokens[i] }

// SetToken replaces the text of the i-th token.
func (pt *ParsedText) SetToken(i int, text string) {
	pt.tokens[i].Text = text
	pt.Invalidate()
}

// Texts returns the current token texts.
func (pt *ParsedText) Texts() []string {
	texts := make([]string, 0, len(pt.tokens))
	for _, tok := range pt.tokens {
		texts = append(texts, tok.Text)
	}
	return texts
}

// Filter returns the texts of the tokens in cat, in order.
func (pt *ParsedText) Filter(cat Category) []string {
	var out []string
	for _, tok := range pt.tokens {
		if tok.Is(cat) {
			out = append(out, tok.Text)
		}
	}
	return out
}

func (pt *ParsedText) Mentions() []string  { return pt.Filter(Mention) }
func (pt *ParsedText) URLs() []string      { return pt.Filter(URL) }
func (pt *ParsedText) Digits() []string    { return pt.Filter(Digit) }
func (pt *ParsedText) Emails() []string    { return pt.Filter(Email) }
func (pt *ParsedText) Emojis() []string    { return pt.Filter(Emoji) }
func (pt *ParsedText) Emoticons() []string { return pt.Filter(Emoticon) }

// Hashtags returns the hashtags without their '#' markers.
func (pt *ParsedText) Hashtags() []string {
	var out []string
	for _, tok := range pt.tokens {
		if tok.IsHashtag() {
			out = append(out, tok.classifier.hashtags.Name(tok.Text))
		}
	}
	return out
}

// Stem replaces every plain word token with its Snowball stem in language
// ("english", "french", "russian", ...). Tokens in a category are kept.
func (pt *ParsedText) Stem(language string) error {
	for _, tok := range pt.tokens {
		if !tok.classifier.IsPlainWord(tok.Text) {
			continue
		}
		stemmed, err := snowball.Stem(tok.Text, language, true)
		if err != nil {
			return errors.Wrapf(err, "stem %q", language)
		}
		if stemmed != "" {
			tok.Text = stemmed
		}
	}
	pt.Invalidate()
	return nil
}

// Option configures a Parser.
type Option func(*Parser)

// WithSeparator sets the string placed between tokens.
func WithSeparator(sep string) Option {
	return func(p *Parser) {
		p.separator = sep
	}
}

// WithFilters drops tokens whose exact text is in d before classification.
func WithFilters(d *Dictionary) Option {
	return func(p *Parser) {
		p.filters = d
	}
}

// WithTokenizer replaces the default cached Twitter tokenizer.
func WithTokenizer(t *Tokenizer) Option {
	return func(p *Parser) {
		p.tokenizer = t
	}
}

// WithPreprocessOptions sets the cleaning options. The default is
// DefaultPreprocessOptions.
func WithPreprocessOptions(opts PreprocessOptions) Option {
	return func(p *Parser) {
		p.options = opts
	}
}

// WithStemmer stems plain word tokens in language after the actions ran.
func WithStemmer(language string) Option {
	return func(p *Parser) {
		p.stemLanguage = language
	}
}

// Parser runs text through preprocessing, tokenization, filtering and
// actions. It is safe for concurrent use.
type Parser struct {
	preprocessor *Preprocessor
	tokenizer    *Tokenizer
	filters      *Dictionary
	separator    string
	options      PreprocessOptions
	stemLanguage string
}

// NewParser creates a parser. It fails only on a bad configuration, such as
// an unknown encoding.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		separator: DefaultSeparator,
		options:   DefaultPreprocessOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tokenizer == nil {
		p.tokenizer = NewTokenizer(nil)
	}

	if p.stemLanguage != "" {
		if _, err := snowball.Stem("test", p.stemLanguage, true); err != nil {
			return nil, errors.Wrapf(err, "stemmer %q", p.stemLanguage)
		}
	}

	pp, err := NewPreprocessor(p.tokenizer.classifier.patterns, p.options)
	if err != nil {
		return nil, err
	}
	p.preprocessor = pp
	return p, nil
}

// Tokenizer returns the tokenizer the parser uses.
func (p *Parser) Tokenizer() *Tokenizer { return p.tokenizer }

// Preprocess cleans text with the parser's options.
func (p *Parser) Preprocess(text string) string {
	return p.preprocessor.Preprocess(text)
}

// Parse cleans and tokenizes text, drops filtered tokens and applies actions.
func (p *Parser) Parse(text string, actions Actions) (*ParsedText, error) {
	if err := actions.Validate(); err != nil {
		return nil, err
	}

	tokens := p.tokenizer.Tokenize(p.preprocessor.Preprocess(text))
	if p.filters != nil {
		kept := tokens[:0]
		for _, tok := range tokens {
			if !p.filters.Contains(tok.Text) {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	pt := NewParsedText(tokens, p.separator)
	if err := pt.Process(actions); err != nil {
		return nil, err
	}
	if p.stemLanguage != "" {
		if err := pt.Stem(p.stemLanguage); err != nil {
			return nil, err
		}
	}
	return pt, nil
}

// Prep parses text and returns the post-processed value.
func (p *Parser) Prep(text string, actions Actions) (string, error) {
	pt, err := p.Parse(text, actions)
	if err != nil {
		return "", err
	}
	pt.PostProcess()
	return pt.Value(), nil
}

// Parse parses text with a cache-less Twitter tokenizer.
func Parse(text string, opts PreprocessOptions, actions Actions) (*ParsedText, error) {
	p, err := NewParser(WithPreprocessOptions(opts), WithTokenizer(NewTokenizerNoCache(nil)))
	if err != nil {
		return nil, err
	}
	return p.Parse(text, actions)
}

// Prep returns the post-processed value of Parse.
func Prep(text string, opts PreprocessOptions, actions Actions) (string, error) {
	pt, err := Parse(text, opts, actions)
	if err != nil {
		return "", err
	}
	pt.PostProcess()
	return pt.Value(), nil
}

// maxLineSize bounds a single input line in PrepFile.
const maxLineSize = 1 << 20

// PrepFile runs Prep on every line of in and writes one result line per
// input line to out. It stops between lines when ctx is done.
func PrepFile(ctx context.Context, in io.Reader, out io.Writer, p *Parser, actions Actions) (int, error) {
	if err := actions.Validate(); err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	w := bufio.NewWriter(out)

	lines := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			w.Flush()
			return lines, err
		}
		value, err := p.Prep(scanner.Text(), actions)
		if err != nil {
			return lines, err
		}
		if _, err := w.WriteString(value + "\n"); err != nil {
			return lines, errors.Wrap(err, "write output")
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		w.Flush()
		return lines, errors.Wrap(err, "read input")
	}
	return lines, w.Flush()
}
