package prep

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
	"github.com/kyokomi/emoji/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// variationSelectors is U+FE00..U+FE0F. They only pick a presentation and
// are ignored when comparing emoji.
var variationSelectors = rangetable.New(
	'\uFE00', '\uFE01', '\uFE02', '\uFE03', '\uFE04', '\uFE05', '\uFE06', '\uFE07',
	'\uFE08', '\uFE09', '\uFE0A', '\uFE0B', '\uFE0C', '\uFE0D', '\uFE0E', '\uFE0F',
)

func stripVariationSelectors(s string) string {
	if !strings.ContainsFunc(s, isVariationSelector) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isVariationSelector(r) {
			return -1
		}
		return r
	}, s)
}

var isVariationSelector = runes.In(variationSelectors).Contains

// EmojiTable maps emoji graphemes to their short aliases and back.
// Aliases live in an FST whose values index into graphemes.
type EmojiTable struct {
	fst       *vellum.FST
	graphemes []string
	canonical map[string]string // grapheme without variation selectors -> alias
}

// NewEmojiTable builds a table from a ":alias:" -> grapheme map.
// When several aliases name one grapheme, the shortest one (then the
// lexicographically smallest) is used by Demojize.
func NewEmojiTable(codes map[string]string) (*EmojiTable, error) {
	names := make([]string, 0, len(codes))
	byName := make(map[string]string, len(codes))
	for code, grapheme := range codes {
		name := strings.Trim(code, ":")
		grapheme = strings.TrimSpace(grapheme)
		if name == "" || grapheme == "" {
			continue
		}
		if _, dup := byName[name]; dup {
			continue
		}
		byName[name] = grapheme
		names = append(names, name)
	}
	sort.Strings(names)

	t := &EmojiTable{canonical: make(map[string]string, len(names))}
	index := make(map[string]uint64, len(names))

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create emoji fst")
	}
	for _, name := range names {
		grapheme := byName[name]
		i, ok := index[grapheme]
		if !ok {
			i = uint64(len(t.graphemes))
			index[grapheme] = i
			t.graphemes = append(t.graphemes, grapheme)
		}
		if err := builder.Insert([]byte(name), i); err != nil {
			builder.Close()
			return nil, errors.Wrapf(err, "insert emoji alias %q", name)
		}

		key := stripVariationSelectors(grapheme)
		if cur, ok := t.canonical[key]; !ok || len(name) < len(cur) {
			// names are sorted, so an equal-length alias seen earlier is smaller
			t.canonical[key] = name
		}
	}
	if err := builder.Close(); err != nil {
		return nil, errors.Wrap(err, "close emoji fst")
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "load emoji fst")
	}
	t.fst = fst
	return t, nil
}

var (
	defaultEmojis     *EmojiTable
	defaultEmojisOnce sync.Once
)

// DefaultEmojiTable returns the table built from the gemoji shortcode set.
func DefaultEmojiTable() *EmojiTable {
	defaultEmojisOnce.Do(func() {
		t, err := NewEmojiTable(emoji.CodeMap())
		if err != nil {
			panic(err)
		}
		defaultEmojis = t
	})
	return defaultEmojis
}

// lookup returns the grapheme for an alias name given without colons.
func (t *EmojiTable) lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	i, ok, err := t.fst.Get([]byte(name))
	if err != nil || !ok || i >= uint64(len(t.graphemes)) {
		return "", false
	}
	return t.graphemes[i], true
}

// aliasName returns the text between the colons of ":name:".
func aliasName(s string) (string, bool) {
	if len(s) < 3 || s[0] != ':' || s[len(s)-1] != ':' {
		return "", false
	}
	name := s[1 : len(s)-1]
	if strings.Contains(name, ":") {
		return "", false
	}
	return name, true
}

// IsGrapheme reports whether s is a known emoji, variation selectors aside.
func (t *EmojiTable) IsGrapheme(s string) bool {
	_, ok := t.canonical[stripVariationSelectors(s)]
	return ok
}

// IsAlias reports whether s is ":name:" with a known name.
func (t *EmojiTable) IsAlias(s string) bool {
	name, ok := aliasName(s)
	if !ok {
		return false
	}
	_, ok = t.lookup(name)
	return ok
}

// IsEmoji reports whether s is a known grapheme or a known alias.
func (t *EmojiTable) IsEmoji(s string) bool {
	return t.IsGrapheme(s) || t.IsAlias(s)
}

// Demojize returns ":alias:" for a known grapheme. Text that already is an
// alias is returned as is; anything else is wrapped in colons.
func (t *EmojiTable) Demojize(s string) string {
	if name, ok := t.canonical[stripVariationSelectors(s)]; ok {
		return ":" + name + ":"
	}
	if t.IsAlias(s) {
		return s
	}
	return ":" + s + ":"
}

// Emojize returns the grapheme for a known ":alias:" and s otherwise.
func (t *EmojiTable) Emojize(s string) string {
	name, ok := aliasName(s)
	if !ok {
		return s
	}
	if g, ok := t.lookup(name); ok {
		return g
	}
	return s
}

// Len returns the number of aliases in the table.
func (t *EmojiTable) Len() int {
	return t.fst.Len()
}
