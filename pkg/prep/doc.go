// Package prep cleans and tokenizes short social-media text.
//
// Text goes through a Preprocessor (case folding, accent stripping,
// lengthening reduction, URL splitting, entity decoding), is segmented by a
// Tokenizer into typed tokens (mentions, hashtags, URLs, digits, emoji,
// emoticons, punctuation, emails, HTML tags and words), and is rewritten by
// per-category Actions:
//
//	pt, err := prep.Parse("@abc😂#hashtag", prep.DefaultPreprocessOptions(),
//		prep.Actions{prep.Emoji: prep.Demojize})
//	// pt.Value() == "@abc :joy: #hashtag"
//
// Patterns, EmojiTable and Classifier are immutable and may be shared
// between goroutines. A ParsedText belongs to one goroutine.
package prep
