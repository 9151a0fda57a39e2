package prep

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize is the maximum number of texts whose segmentation is cached.
// Tweets repeat heavily in retweet-rich streams.
const CacheSize = 10_000

// Tokenizer segments text into tokens with the composite pattern of its
// classifier's hashtag strategy.
type Tokenizer struct {
	classifier *Classifier
	cache      *lru.Cache[string, []Span]
}

// NewTokenizer creates a tokenizer with the segmentation cache enabled.
// A nil c uses DefaultClassifier.
func NewTokenizer(c *Classifier) *Tokenizer {
	if c == nil {
		c = DefaultClassifier()
	}
	cache, _ := lru.New[string, []Span](CacheSize)
	return &Tokenizer{
		classifier: c,
		cache:      cache,
	}
}

// NewTokenizerNoCache creates a tokenizer without caching.
func NewTokenizerNoCache(c *Classifier) *Tokenizer {
	if c == nil {
		c = DefaultClassifier()
	}
	return &Tokenizer{classifier: c}
}

// Spans returns the segmentation of text. The returned slice may be shared
// with the cache and must not be modified.
func (t *Tokenizer) Spans(text string) []Span {
	if t.cache == nil {
		return t.split(text)
	}
	if spans, ok := t.cache.Get(text); ok {
		return spans
	}
	spans := t.split(text)
	t.cache.Add(text, spans)
	return spans
}

func (t *Tokenizer) split(text string) []Span {
	return splitWith(t.classifier.hashtags.tokens(), text)
}

// Tokenize returns fresh tokens for text, in order.
func (t *Tokenizer) Tokenize(text string) []*Token {
	spans := t.Spans(text)
	tokens := make([]*Token, 0, len(spans))
	for _, s := range spans {
		tokens = append(tokens, &Token{Text: s.Text, classifier: t.classifier})
	}
	return tokens
}

// Classifier returns the classifier attached to every token.
func (t *Tokenizer) Classifier() *Classifier { return t.classifier }

// CacheSize returns the number of cached segmentations (0 if cache is disabled).
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// ClearCache clears the segmentation cache.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}

// Tokenize segments text with a cache-less Twitter tokenizer.
func Tokenize(text string) []*Token {
	return NewTokenizerNoCache(nil).Tokenize(text)
}
