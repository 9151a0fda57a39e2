package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hitchhicker/faster-tweet-nlp-toolkit/pkg/prep"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	var opts []prep.Option
	filters, err := prep.NewDictionary("rt", "via")
	if len(os.Args) > 1 {
		filters, err = prep.LoadDictionary(os.Args[1])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer filters.Close()
	opts = append(opts, prep.WithFilters(filters))

	fmt.Print("Building emoji table and patterns... ")
	start := time.Now()
	emojis := prep.DefaultEmojiTable()
	patterns := prep.DefaultPatterns()
	p, err := prep.NewParser(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("done (%d emoji aliases, %d filters in %v)\n",
		emojis.Len(), filters.WordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	actions := prep.Actions{
		prep.Mention: prep.Tag,
		prep.Hashtag: prep.Remove,
		prep.URL:     prep.Tag,
		prep.Digit:   prep.Tag,
		prep.Emoji:   prep.Demojize,
	}

	short := "asylum seeker:http://t.co/skU8zM7Slh"
	tweet := "RT @bob: Sooooo happy \U0001F602 #blessed 100 times &amp; more https://t.co/x"
	sentence := "The quick brown fox jumps over the lazy dog near the river bank today"

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Short tweet", func() { p.Prep(short, actions) })
	bench("Tweet with entities", func() { p.Prep(tweet, actions) })
	bench("Sentence (13 words)", func() { p.Prep(sentence, actions) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")

	bench("Filter lookup", func() {
		filters.Contains("via")
	})

	pp, err := prep.NewPreprocessor(patterns, prep.DefaultPreprocessOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bench("Preprocessor (full)", func() {
		pp.Preprocess(tweet)
	})

	bench("Demojize", func() {
		emojis.Demojize("\U0001F602")
	})

	bench("Classify token", func() {
		p.Tokenizer().Classifier().Categories("#blessed")
	})

	tok := p.Tokenizer()
	tok.ClearCache()
	tok.Tokenize(tweet)
	bench("Split (cache hit)", func() {
		tok.Tokenize(tweet)
	})

	bench("Split (cache miss)", func() {
		tok.ClearCache()
		tok.Tokenize(tweet)
	})
	printFooter()
	fmt.Println()

	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("Lowercase", func() {
		prep.Lowercase("Sooooo HAPPY")
	})
	bench("Strip accents", func() {
		prep.StripAccents("café naïve")
	})
	bench("Reduce lengthening", func() {
		patterns.ReduceLengthening("sooooo happyyyyy")
	})
	bench("Split attached URLs", func() {
		patterns.SplitAttachedURLs(short)
	})
	bench("Normalize quotes", func() {
		prep.NormalizeQuotes("\u201Cquoted\u201D it''s")
	})
	bench("Unescape HTML", func() {
		prep.UnescapeHTML("fish &amp; chips &lt;3")
	})
	bench("Remove variation selectors", func() {
		prep.RemoveVariationSelectors("\u2764\uFE0F")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
