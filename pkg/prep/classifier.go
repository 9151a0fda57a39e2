package prep

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// IsPunctuation reports whether r is in Unicode general category P (any subclass).
func IsPunctuation(r rune) bool {
	return unicode.IsPunct(r)
}

// IsNonspacingMark reports whether r is in Unicode category Mn.
func IsNonspacingMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// isPunct reports whether s is exactly one punctuation rune.
func isPunct(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return false
	}
	return IsPunctuation(r)
}

// HashtagStrategy decides what a hashtag looks like for a text source.
type HashtagStrategy interface {
	// IsHashtag reports whether the whole of s is a hashtag.
	IsHashtag(s string) bool
	// Name returns the hashtag without its markers.
	Name(s string) string
	// tokens returns the composite expression that segments text for this source.
	tokens() *regexp2.Regexp
}

// TwitterHashtags treats "#word" as a hashtag, unless the word is all digits.
type TwitterHashtags struct {
	Patterns *Patterns
}

func (h TwitterHashtags) IsHashtag(s string) bool { return h.Patterns.IsHashtag(s) }
func (h TwitterHashtags) Name(s string) string    { return strings.TrimPrefix(s, "#") }
func (h TwitterHashtags) tokens() *regexp2.Regexp { return h.Patterns.tweetTokens }

// WeiboHashtags treats "#topic#" as a hashtag; topics may contain spaces.
type WeiboHashtags struct {
	Patterns *Patterns
}

func (h WeiboHashtags) IsHashtag(s string) bool { return h.Patterns.IsWeiboHashtag(s) }
func (h WeiboHashtags) Name(s string) string    { return strings.TrimSuffix(strings.TrimPrefix(s, "#"), "#") }
func (h WeiboHashtags) tokens() *regexp2.Regexp { return h.Patterns.weiboTokens }

// Classifier answers category membership questions for token text.
// It holds only immutable state and is safe for concurrent use.
type Classifier struct {
	patterns *Patterns
	emojis   *EmojiTable
	hashtags HashtagStrategy
}

// NewClassifier creates a classifier from its parts.
func NewClassifier(p *Patterns, emojis *EmojiTable, hashtags HashtagStrategy) *Classifier {
	return &Classifier{
		patterns: p,
		emojis:   emojis,
		hashtags: hashtags,
	}
}

var (
	defaultClassifier     *Classifier
	defaultClassifierOnce sync.Once
)

// DefaultClassifier returns the shared Twitter classifier.
func DefaultClassifier() *Classifier {
	defaultClassifierOnce.Do(func() {
		p := DefaultPatterns()
		defaultClassifier = NewClassifier(p, DefaultEmojiTable(), TwitterHashtags{Patterns: p})
	})
	return defaultClassifier
}

// NewWeiboClassifier returns a classifier for Weibo text, where hashtags are
// wrapped in a pair of '#'.
func NewWeiboClassifier() *Classifier {
	p := DefaultPatterns()
	return NewClassifier(p, DefaultEmojiTable(), WeiboHashtags{Patterns: p})
}

// Patterns returns the pattern set the classifier uses.
func (c *Classifier) Patterns() *Patterns { return c.patterns }

// Emojis returns the emoji table the classifier uses.
func (c *Classifier) Emojis() *EmojiTable { return c.emojis }

// Hashtags returns the hashtag strategy.
func (c *Classifier) Hashtags() HashtagStrategy { return c.hashtags }

func (c *Classifier) IsMention(s string) bool  { return c.patterns.IsMention(s) }
func (c *Classifier) IsHashtag(s string) bool  { return c.hashtags.IsHashtag(s) }
func (c *Classifier) IsURL(s string) bool      { return c.patterns.IsURL(s) }
func (c *Classifier) IsDigit(s string) bool    { return c.patterns.IsDigit(s) }
func (c *Classifier) IsEmoji(s string) bool    { return c.emojis.IsEmoji(s) }
func (c *Classifier) IsEmoticon(s string) bool { return c.patterns.IsEmoticon(s) }
func (c *Classifier) IsPunct(s string) bool    { return isPunct(s) }
func (c *Classifier) IsEmail(s string) bool    { return c.patterns.IsEmail(s) }
func (c *Classifier) IsHTMLTag(s string) bool  { return c.patterns.IsHTMLTag(s) }

// Is reports whether s belongs to the category.
func (c *Classifier) Is(cat Category, s string) bool {
	switch cat {
	case Mention:
		return c.IsMention(s)
	case Hashtag:
		return c.IsHashtag(s)
	case URL:
		return c.IsURL(s)
	case Digit:
		return c.IsDigit(s)
	case Emoji:
		return c.IsEmoji(s)
	case Emoticon:
		return c.IsEmoticon(s)
	case Punctuation:
		return c.IsPunct(s)
	case Email:
		return c.IsEmail(s)
	case HTMLTag:
		return c.IsHTMLTag(s)
	default:
		return false
	}
}

// Categories returns every category s belongs to, in precedence order.
func (c *Classifier) Categories(s string) []Category {
	var cats []Category
	for _, cat := range Precedence {
		if c.Is(cat, s) {
			cats = append(cats, cat)
		}
	}
	return cats
}

// IsPlainWord reports whether s is a word token that belongs to no category.
func (c *Classifier) IsPlainWord(s string) bool {
	return c.patterns.IsWord(s) && len(c.Categories(s)) == 0
}
