package prep

import (
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// The expressions below are adapted from ekphrasis' generate_expressions.py
// and NLTK's TweetTokenizer. They rely on lookaround and leftmost-first
// alternation, so they are compiled with regexp2 rather than regexp.
// Email parts are bounded to RFC 5321 lengths so a failing attempt costs a
// constant number of steps.
const (
	hashtagExpr      = `#\b[\w\-_]+\b`
	numericTagExpr   = `#\b\p{N}+\b`
	weiboHashtagExpr = `#[^#]+#`
	mentionExpr      = `@\w+`
	urlExpr          = `(?:https?://[^\s.]+\.[^\s]{2,}|www\.[^\s]+\.[^\s]{2,})`
	emailExpr        = `(?:^|(?<=[^\w@.)]))(?:[\w+-](?:\.(?!\.))?){0,63}?[\w+-]@(?:\w-?){0,62}?\w{1,63}(?:\.(?:[a-z]{2,63})){1,3}(?:$|(?=\b))`
	htmlTagExpr      = `<[^<>\s]+>`
	asciiArrowExpr   = `-+>|<-+`
	digitExpr        = `(?:[+\-]?\d+[,/.:-]?\d*[+\-]?)`
	ellipsisExpr     = `(?:\.(?:\s*\.)+)`
	emojiAliasExpr   = `(?::\w+:)`
	wordExpr         = `(?:[^\W\d|(?:_](?:[^\W\d_]|['\-_]|[\u0E00-\u0E7F])+[^\W\d_]?)[^\W\d]?`
	anyExpr          = `\S`

	attachedURLExpr   = `([^ ])(https?://)`
	repeatedCharsExpr = `(.)\1{2,}`
)

// Western faces read left to right: hat, eyes, tears, nose, mouth.
var ltrFace = []string{
	// optional hat
	`(?:(?<![a-zA-Z])[DPO]|(?<!\d)[03]|[|}><=])?`,
	// eyes
	`(?:(?<![a-zA-Z(])[xXB](?![a-ce-oq-zA-CE-OQ-Z,./])|(?<![:])[:=|](?![.])|(?<![%#\d])[%#](?![%#\d])|(?<![\d$])[$](?![\d.,$])|[;](?!\()|(?<![\d(\-+])8(?![\da-ce-zA-CE-Z\\/])|\*(?![*\d,.]))`,
	// optional tears
	`(?:['",])?`,
	// optional nose
	`(?:(?<![\w*])[oc](?![a-zA-Z])|(?:[-‑^]))?`,
	// mouth
	`(?:[(){}\[\]<>|/\\]+|[Þ×þ]|(?<!\d)[30](?!\d)|(?<![\d*])[*,.@#&](?![*\d,.])|(?<![\d$])[$](?![\d.,$])|[DOosSJLxXpPbc](?![a-zA-Z]))`,
}

// Western faces read right to left: mouth, nose, tears, eyes, hat.
var rtlFace = []string{
	`(?<![\w])`,
	// mouth
	`(?:[(){}\[\]<>|/\\]+|(?<![\d.,])[0](?![\d.])|(?![\d*,.@#&])[*,.@#&]|[$]|(?<![a-zA-Z])[DOosSxX])`,
	// optional nose
	`(?:[-‑^])?`,
	// optional tears
	`(?:['",])?`,
	// eyes
	`(?:[xX]|[:=|]|[%#]|[$8](?![\d.])|[;]|\*)`,
	// optional hat
	`(?:[O]|[0]|[|{><=])?`,
	`(?![a-zA-Z])`,
}

// Kaomoji use a wider palette than western faces. [^\p{L}\p{N}] stands for
// "not a letter or number", which keeps connector punctuation such as ‿
// available to the face.
const easternFace = `(?<![\w])(?:` +
	`(?:[<>]?[\^;](?:[^\p{L}\p{N}]|m)[;^][;<>]?)` +
	`|(?:[^\s()]?m?\((?:[^\p{L}\p{N}]|[oTOJ]){1,3}\s?(?:[^\p{L}\p{N}]|[oTOJ]){1,3}\)m?[^\s()]?)` +
	`|(?:\*?[v>\-/\\][o0O_.][v\-</\\]\*?)` +
	`|(?:[oO0>][\-_/oO.\\]{1,2}[oO0>])` +
	`|(?:\^\^)` +
	`)(?![\w])`

const restFace = `(?<![A-Za-z0-9/()])(?:\^5|<3)(?![A-Za-z0-9/()])`

func emoticonExpr() string {
	return strings.Join([]string{
		strings.Join(ltrFace, ""),
		strings.Join(rtlFace, ""),
		easternFace,
		restFace,
	}, "|")
}

// tweetPipeline lists the composite alternation in precedence order.
var tweetPipeline = []string{
	urlExpr,
	emailExpr,
	mentionExpr,
	hashtagExpr,
	htmlTagExpr,
	asciiArrowExpr,
	digitExpr,
	ellipsisExpr,
	emojiAliasExpr,
	wordExpr,
	anyExpr,
}

// weiboPipeline tries the #...# hashtag form ahead of the Twitter one.
var weiboPipeline = []string{
	urlExpr,
	emailExpr,
	mentionExpr,
	weiboHashtagExpr,
	hashtagExpr,
	htmlTagExpr,
	asciiArrowExpr,
	digitExpr,
	ellipsisExpr,
	emojiAliasExpr,
	wordExpr,
	anyExpr,
}

// Patterns holds every compiled expression used by the package.
// A Patterns value is immutable and safe for concurrent use.
type Patterns struct {
	hashtag      *regexp2.Regexp
	numericTag   *regexp2.Regexp
	weiboHashtag *regexp2.Regexp
	mention      *regexp2.Regexp
	url          *regexp2.Regexp
	email        *regexp2.Regexp
	digit        *regexp2.Regexp
	htmlTag      *regexp2.Regexp
	emoticon     *regexp2.Regexp
	word         *regexp2.Regexp

	tweetTokens *regexp2.Regexp
	weiboTokens *regexp2.Regexp

	attachedURL   *regexp2.Regexp
	repeatedChars *regexp2.Regexp
}

// CompilePatterns compiles the fixed pattern set.
func CompilePatterns() (*Patterns, error) {
	c := compiler{}
	p := &Patterns{
		hashtag:      c.anchored("hashtag", hashtagExpr),
		numericTag:   c.anchored("numeric hashtag", numericTagExpr),
		weiboHashtag: c.anchored("weibo hashtag", weiboHashtagExpr),
		mention:      c.anchored("mention", mentionExpr),
		url:          c.anchored("url", urlExpr),
		email:        c.anchored("email", emailExpr),
		digit:        c.anchored("digit", digitExpr),
		htmlTag:      c.anchored("html tag", htmlTagExpr),
		emoticon:     c.anchored("emoticon", emoticonExpr()),
		word:         c.anchored("word", wordExpr),

		tweetTokens: c.compile("tweet tokens", strings.Join(tweetPipeline, "|")),
		weiboTokens: c.compile("weibo tokens", strings.Join(weiboPipeline, "|")),

		attachedURL:   c.compile("attached url", attachedURLExpr),
		repeatedChars: c.compile("repeated chars", repeatedCharsExpr),
	}
	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}

var (
	defaultPatterns     *Patterns
	defaultPatternsOnce sync.Once
)

// DefaultPatterns returns the process-wide pattern set, compiling it on first use.
// The expressions are fixed, so a compile failure is a programming error and panics.
func DefaultPatterns() *Patterns {
	defaultPatternsOnce.Do(func() {
		p, err := CompilePatterns()
		if err != nil {
			panic(err)
		}
		defaultPatterns = p
	})
	return defaultPatterns
}

// compiler keeps the first compile error so CompilePatterns reads as a table.
type compiler struct {
	err error
}

func (c *compiler) compile(name, expr string) *regexp2.Regexp {
	if c.err != nil {
		return nil
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		c.err = errors.Wrapf(err, "compile %s pattern", name)
		return nil
	}
	return re
}

// anchored compiles expr so that it must match the whole input.
func (c *compiler) anchored(name, expr string) *regexp2.Regexp {
	return c.compile(name, `^(?:`+expr+`)\z`)
}

// matches reports whether re matches s. Match errors only come from timeouts,
// which are not configured, so they count as a non-match.
func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// IsHashtag reports whether s is a Twitter hashtag. A hashtag cannot be
// purely numeric.
func (p *Patterns) IsHashtag(s string) bool {
	return matches(p.hashtag, s) && !matches(p.numericTag, s)
}

// IsWeiboHashtag reports whether s is a Weibo hashtag (#...#).
func (p *Patterns) IsWeiboHashtag(s string) bool {
	return matches(p.weiboHashtag, s)
}

func (p *Patterns) IsMention(s string) bool  { return matches(p.mention, s) }
func (p *Patterns) IsURL(s string) bool      { return matches(p.url, s) }
func (p *Patterns) IsEmail(s string) bool    { return matches(p.email, s) }
func (p *Patterns) IsDigit(s string) bool    { return matches(p.digit, s) }
func (p *Patterns) IsHTMLTag(s string) bool  { return matches(p.htmlTag, s) }
func (p *Patterns) IsEmoticon(s string) bool { return matches(p.emoticon, s) }
func (p *Patterns) IsWord(s string) bool     { return matches(p.word, s) }

// replace rewrites every match of re in s, returning s unchanged on error.
func replace(re *regexp2.Regexp, s, replacement string) string {
	out, err := re.Replace(s, replacement, -1, -1)
	if err != nil {
		return s
	}
	return out
}
