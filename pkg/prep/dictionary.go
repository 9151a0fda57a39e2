package prep

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// Dictionary is a set of exact token texts held in an FST. Parsers use it as
// a block list: tokens whose text is in the dictionary are dropped.
type Dictionary struct {
	fst   *vellum.FST
	words map[string]struct{} // source of truth for modifications
	path  string
	mu    sync.RWMutex
}

// NewDictionary creates an in-memory dictionary holding words.
func NewDictionary(words ...string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			d.words[w] = struct{}{}
		}
	}
	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDictionary reads one word per line from path. Blank lines and lines
// starting with '#' are skipped. Save writes the set back to the same path.
func LoadDictionary(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dictionary %s", path)
	}
	defer file.Close()

	d, err := ReadDictionary(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read dictionary %s", path)
	}
	d.path = path
	return d, nil
}

// ReadDictionary reads a dictionary in the LoadDictionary format from r.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

// Contains reports whether word is in the dictionary. Matching is exact.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get([]byte(word))
	return exists
}

// AddWord adds a word and rebuilds the FST.
func (d *Dictionary) AddWord(word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.words[word] = struct{}{}
	return d.rebuildFST()
}

// RemoveWord removes a word and rebuilds the FST.
func (d *Dictionary) RemoveWord(word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.words, strings.TrimSpace(word))
	return d.rebuildFST()
}

// Words returns the dictionary contents in sorted order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sortedWords()
}

func (d *Dictionary) sortedWords() []string {
	sorted := make([]string, 0, len(d.words))
	for word := range d.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// rebuildFST rebuilds the FST without locking (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	fst, err := buildSet(d.sortedWords())
	if err != nil {
		return err
	}
	if d.fst != nil {
		d.fst.Close()
	}
	d.fst = fst
	return nil
}

// buildSet builds an in-memory FST from sorted keys, all mapped to 0.
func buildSet(sorted []string) (*vellum.FST, error) {
	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create fst")
	}
	for _, word := range sorted {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return nil, errors.Wrapf(err, "insert %q", word)
		}
	}
	if err := builder.Close(); err != nil {
		return nil, errors.Wrap(err, "close fst")
	}
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "load fst")
	}
	return fst, nil
}

// Save writes the words back to the file the dictionary was loaded from.
func (d *Dictionary) Save() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.path == "" {
		return errors.New("dictionary has no backing file")
	}
	return d.writeFile(d.path)
}

// SaveAs writes the words to path and makes it the backing file.
func (d *Dictionary) SaveAs(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.writeFile(path); err != nil {
		return err
	}
	d.path = path
	return nil
}

func (d *Dictionary) writeFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create dictionary %s", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range d.sortedWords() {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return errors.Wrapf(err, "write dictionary %s", path)
		}
	}
	return w.Flush()
}

// Path returns the backing file, or "" for an in-memory dictionary.
func (d *Dictionary) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
