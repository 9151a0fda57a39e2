package prep

import "unicode/utf8"

// Token is a unit of text produced by the tokenizer. Its categories are
// recomputed from the current text on every call.
type Token struct {
	Text       string
	classifier *Classifier
}

// NewToken creates a token classified with c. A nil c uses DefaultClassifier.
func NewToken(text string, c *Classifier) *Token {
	if c == nil {
		c = DefaultClassifier()
	}
	return &Token{Text: text, classifier: c}
}

func (t *Token) IsMention() bool  { return t.classifier.IsMention(t.Text) }
func (t *Token) IsHashtag() bool  { return t.classifier.IsHashtag(t.Text) }
func (t *Token) IsURL() bool      { return t.classifier.IsURL(t.Text) }
func (t *Token) IsDigit() bool    { return t.classifier.IsDigit(t.Text) }
func (t *Token) IsEmoji() bool    { return t.classifier.IsEmoji(t.Text) }
func (t *Token) IsEmoticon() bool { return t.classifier.IsEmoticon(t.Text) }
func (t *Token) IsPunct() bool    { return t.classifier.IsPunct(t.Text) }
func (t *Token) IsEmail() bool    { return t.classifier.IsEmail(t.Text) }
func (t *Token) IsHTMLTag() bool  { return t.classifier.IsHTMLTag(t.Text) }

// Is reports whether the token belongs to cat.
func (t *Token) Is(cat Category) bool { return t.classifier.Is(cat, t.Text) }

// Categories returns every category the token belongs to, in precedence order.
func (t *Token) Categories() []Category { return t.classifier.Categories(t.Text) }

// Classifier returns the classifier the token was created with.
func (t *Token) Classifier() *Classifier { return t.classifier }

// Len returns the length of the text in runes.
func (t *Token) Len() int { return utf8.RuneCountInString(t.Text) }

// Empty reports whether the token has been removed.
func (t *Token) Empty() bool { return t.Text == "" }

func (t *Token) String() string { return t.Text }
