package prep

import (
	"testing"
)

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{',', true},
		{'。', true},
		{'’', true},
		{'«', true},
		{'-', true},
		{'a', false},
		{'1', false},
		{' ', false},
		{'+', false}, // Sm, not P
	}

	for _, tt := range tests {
		if got := IsPunctuation(tt.input); got != tt.expected {
			t.Errorf("IsPunctuation(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsNonspacingMark(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'\u0301', true},
		{'\u0308', true},
		{'e', false},
		{'é', false},
	}

	for _, tt := range tests {
		if got := IsNonspacingMark(tt.input); got != tt.expected {
			t.Errorf("IsNonspacingMark(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClassifier_Is(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		category Category
		input    string
		expected bool
	}{
		{Hashtag, "#emnlp2019", true},
		{Hashtag, "#nlp", true},
		{Hashtag, "#123", false},
		{Hashtag, "nlp", false},

		{URL, "https://buff.ly/2Uclr2A", true},
		{URL, "www.google.fr", true},
		{URL, "http://t.co/skU8zM7Slh", true},
		{URL, "google", false},

		{Mention, "@tutu", true},
		{Mention, "@@", false},
		{Mention, "tutu@gmail.com", false},

		{Emoji, "😰", true},
		{Emoji, ":joy:", true},
		{Emoji, ":notemoji:", false},
		{Emoji, "joy", false},

		{Digit, "1", true},
		{Digit, "123", true},
		{Digit, "12.34", true},
		{Digit, "12/34", true},
		{Digit, "12abc", false},

		{Punctuation, ",", true},
		{Punctuation, "。", true},
		{Punctuation, "’", true},
		{Punctuation, "@nlp", false},
		{Punctuation, "#nlp", false},
		{Punctuation, "12", false},
		{Punctuation, "", false},

		{Email, "tutu@gmail.com", true},
		{Email, "first.last@mail.co.uk", true},
		{Email, "@tutu", false},

		{HTMLTag, "<p>", true},
		{HTMLTag, "</p>", true},
		{HTMLTag, "</p", false},

		{Emoticon, ":)", true},
		{Emoticon, ":-)", true},
		{Emoticon, ";)", true},
		{Emoticon, "<3", true},
		{Emoticon, "(◕‿◕✿)", true},
		{Emoticon, "hello", false},
		{Emoticon, "12", false},
	}

	for _, tt := range tests {
		if got := c.Is(tt.category, tt.input); got != tt.expected {
			t.Errorf("Is(%s, %q) = %v, want %v", tt.category, tt.input, got, tt.expected)
		}
	}
}

func TestWeiboClassifier_Hashtags(t *testing.T) {
	weibo := NewWeiboClassifier()
	twitter := DefaultClassifier()

	tests := []struct {
		input   string
		weibo   bool
		twitter bool
	}{
		{"#中国#", true, false},
		{"#中国", false, true},
		{"#中国 加油#", true, false},
		{"##", false, false},
	}

	for _, tt := range tests {
		if got := weibo.IsHashtag(tt.input); got != tt.weibo {
			t.Errorf("weibo IsHashtag(%q) = %v, want %v", tt.input, got, tt.weibo)
		}
		if got := twitter.IsHashtag(tt.input); got != tt.twitter {
			t.Errorf("twitter IsHashtag(%q) = %v, want %v", tt.input, got, tt.twitter)
		}
	}
}

func TestHashtagStrategy_Name(t *testing.T) {
	p := DefaultPatterns()

	if got := (TwitterHashtags{Patterns: p}).Name("#nlp"); got != "nlp" {
		t.Errorf("TwitterHashtags.Name(%q) = %q, want %q", "#nlp", got, "nlp")
	}
	if got := (WeiboHashtags{Patterns: p}).Name("#中国#"); got != "中国" {
		t.Errorf("WeiboHashtags.Name(%q) = %q, want %q", "#中国#", got, "中国")
	}
}

func TestClassifier_Categories(t *testing.T) {
	emojis, err := NewEmojiTable(map[string]string{":bang:": "!"})
	if err != nil {
		t.Fatalf("NewEmojiTable: %v", err)
	}
	p := DefaultPatterns()
	c := NewClassifier(p, emojis, TwitterHashtags{Patterns: p})

	got := c.Categories("!")
	if len(got) != 2 || got[0] != Emoji || got[1] != Punctuation {
		t.Errorf("Categories(%q) = %v, want [emoji punct]", "!", got)
	}
	if got := c.Categories("hello"); len(got) != 0 {
		t.Errorf("Categories(%q) = %v, want none", "hello", got)
	}
}

func TestClassifier_IsPlainWord(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		input    string
		expected bool
	}{
		{"running", true},
		{"don't", true},
		{"#running", false},
		{"@bob", false},
		{"123", false},
		{",", false},
	}

	for _, tt := range tests {
		if got := c.IsPlainWord(tt.input); got != tt.expected {
			t.Errorf("IsPlainWord(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
