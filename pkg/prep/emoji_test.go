package prep

import (
	"testing"
)

func TestDefaultEmojiTable(t *testing.T) {
	table := DefaultEmojiTable()

	demojize := []struct {
		input    string
		expected string
	}{
		{"😀", ":grinning:"},
		{"😂", ":joy:"},
		{"notanemoji", ":notanemoji:"},
		{":joy:", ":joy:"},
	}
	for _, tt := range demojize {
		if got := table.Demojize(tt.input); got != tt.expected {
			t.Errorf("Demojize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	emojize := []struct {
		input    string
		expected string
	}{
		{":grinning:", "😀"},
		{":joy:", "😂"},
		{":notemoji:", ":notemoji:"},
		{"joy", "joy"},
		{"::", "::"},
	}
	for _, tt := range emojize {
		if got := table.Emojize(tt.input); got != tt.expected {
			t.Errorf("Emojize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	if table.Len() == 0 {
		t.Error("default table is empty")
	}
}

func TestEmojiTable_RoundTrip(t *testing.T) {
	table := DefaultEmojiTable()

	for _, g := range []string{"😀", "😂", "😰"} {
		if got := table.Emojize(table.Demojize(g)); got != g {
			t.Errorf("Emojize(Demojize(%q)) = %q", g, got)
		}
	}
}

func TestNewEmojiTable(t *testing.T) {
	table, err := NewEmojiTable(map[string]string{
		":smile:":       "😄",
		":smiley_face:": "😄",
		":happy:":       "😄",
		":ok:":          "🆗\uFE0F",
		"":              "x",
	})
	if err != nil {
		t.Fatalf("NewEmojiTable: %v", err)
	}

	if got := table.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	// shortest alias wins, ties broken alphabetically
	if got := table.Demojize("😄"); got != ":happy:" {
		t.Errorf("Demojize(%q) = %q, want %q", "😄", got, ":happy:")
	}
	if got := table.Demojize("🆗"); got != ":ok:" {
		t.Errorf("Demojize(%q) = %q, want %q", "🆗", got, ":ok:")
	}
	if !table.IsGrapheme("🆗\uFE0F") || !table.IsGrapheme("🆗") {
		t.Error("variation selectors should not affect grapheme lookup")
	}
	if got := table.Emojize(":smiley_face:"); got != "😄" {
		t.Errorf("Emojize(%q) = %q, want %q", ":smiley_face:", got, "😄")
	}
	if table.IsEmoji("x") {
		t.Error("empty alias should be skipped")
	}
}
