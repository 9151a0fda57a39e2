package prep

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Category identifies the kind of content a token carries.
type Category int

const (
	Mention Category = iota
	Hashtag
	URL
	Digit
	Emoji
	Emoticon
	Punctuation
	Email
	HTMLTag
)

// Precedence is the order in which categories are tested against a token.
// The first category whose requested operation fires wins.
var Precedence = []Category{
	Mention,
	Hashtag,
	URL,
	Digit,
	Emoji,
	Emoticon,
	Punctuation,
	Email,
	HTMLTag,
}

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownOperation = errors.New("unknown operation")
)

// String returns the category name, e.g. "mention".
func (c Category) String() string {
	switch c {
	case Mention:
		return "mention"
	case Hashtag:
		return "hashtag"
	case URL:
		return "url"
	case Digit:
		return "digit"
	case Emoji:
		return "emoji"
	case Emoticon:
		return "emoticon"
	case Punctuation:
		return "punct"
	case Email:
		return "email"
	case HTMLTag:
		return "html_tag"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Condition returns the predicate name used for the category, e.g. "is_mention".
func (c Category) Condition() string {
	return "is_" + c.String()
}

// Tag returns the replacement text used by the tag operation.
// HTMLTag has no tag.
func (c Category) Tag() string {
	switch c {
	case Mention:
		return "<MENTION>"
	case Hashtag:
		return "<HASHTAG>"
	case URL:
		return "<URL>"
	case Digit:
		return "<DIGIT>"
	case Emoji:
		return "<EMOJI>"
	case Emoticon:
		return "<EMOTICON>"
	case Punctuation:
		return "<PUNCT>"
	case Email:
		return "<EMAIL>"
	default:
		return ""
	}
}

// Operations returns the operations that may be requested for the category.
func (c Category) Operations() []Operation {
	switch c {
	case Emoji:
		return []Operation{Remove, Tag, Demojize, Emojize}
	case HTMLTag:
		return []Operation{Remove}
	case Mention, Hashtag, URL, Digit, Emoticon, Punctuation, Email:
		return []Operation{Remove, Tag}
	default:
		return nil
	}
}

// Allows reports whether op is a legal operation for the category.
func (c Category) Allows(op Operation) bool {
	for _, allowed := range c.Operations() {
		if allowed == op {
			return true
		}
	}
	return false
}

var categoryNames = map[string]Category{
	"mention":     Mention,
	"mentions":    Mention,
	"hashtag":     Hashtag,
	"hashtags":    Hashtag,
	"url":         URL,
	"urls":        URL,
	"digit":       Digit,
	"digits":      Digit,
	"emoji":       Emoji,
	"emojis":      Emoji,
	"emoticon":    Emoticon,
	"emoticons":   Emoticon,
	"punct":       Punctuation,
	"puncts":      Punctuation,
	"punctuation": Punctuation,
	"email":       Email,
	"emails":      Email,
	"html_tag":    HTMLTag,
	"html_tags":   HTMLTag,
}

// ParseCategory resolves a category from its name, its plural, or its
// condition name ("is_url"). Hyphens are accepted in place of underscores.
func ParseCategory(name string) (Category, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	key = strings.TrimPrefix(key, "is_")
	if c, ok := categoryNames[key]; ok {
		return c, nil
	}
	return 0, errors.Wrapf(ErrUnknownCategory, "%q", name)
}

// Operation is a rewrite applied to tokens of a category.
type Operation string

const (
	None     Operation = ""
	Remove   Operation = "remove"
	Tag      Operation = "tag"
	Demojize Operation = "demojize"
	Emojize  Operation = "emojize"
)

// ParseOperation resolves an operation name. The empty string is None.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(name))); op {
	case None, Remove, Tag, Demojize, Emojize:
		return op, nil
	default:
		return None, errors.Wrapf(ErrUnknownOperation, "%q", name)
	}
}
