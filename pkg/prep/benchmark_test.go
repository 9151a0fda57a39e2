package prep

import (
	"testing"
)

const benchTweet = "RT @remy: This is waaaaayyyy #too much for you 😂 http://t.co/skU8zM7Slh &amp; more :)"

func BenchmarkTokenize_Tweet(b *testing.B) {
	tok := NewTokenizerNoCache(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(benchTweet)
	}
}

func BenchmarkTokenize_CacheHit(b *testing.B) {
	tok := NewTokenizer(nil)
	tok.Tokenize(benchTweet) // Prime the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(benchTweet)
	}
}

func BenchmarkPreprocessor_FullPipeline(b *testing.B) {
	pp, err := NewPreprocessor(nil, PreprocessOptions{
		Encoding:     "ISO-8859-1",
		ToLower:      true,
		StripAccents: true,
		ReduceLen:    true,
	})
	if err != nil {
		b.Fatalf("Failed to create preprocessor: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pp.Preprocess(benchTweet)
	}
}

func BenchmarkParser_Prep(b *testing.B) {
	p, err := NewParser(WithTokenizer(NewTokenizerNoCache(nil)))
	if err != nil {
		b.Fatalf("Failed to create parser: %v", err)
	}
	actions := Actions{Mention: Tag, URL: Tag, Emoji: Demojize, Punctuation: Remove}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Prep(benchTweet, actions); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEmojiTable_Demojize(b *testing.B) {
	table := DefaultEmojiTable()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Demojize("😂")
	}
}

func BenchmarkDictionary_Contains(b *testing.B) {
	dict, err := NewDictionary("rt", "via", "cc", "mt")
	if err != nil {
		b.Fatalf("Failed to create dictionary: %v", err)
	}
	defer dict.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.Contains("via")
	}
}
