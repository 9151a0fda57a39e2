package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hitchhicker/faster-tweet-nlp-toolkit/pkg/prep"
	"github.com/spf13/cobra"
)

type tokenJSON struct {
	Text       string   `json:"text"`
	Categories []string `json:"categories,omitempty"`
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text...]",
	Short: "Print the tokens of a text as JSON; interactive when no text is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, closeParser, err := newParser()
		if err != nil {
			return err
		}
		defer closeParser()

		out := cmd.OutOrStdout()

		// If text provided as argument, tokenize and exit
		if len(args) > 0 {
			return printTokens(out, p, strings.Join(args, " "), "")
		}

		// Interactive mode
		fmt.Fprintln(out, "Tweet tokenizer (interactive mode)")
		fmt.Fprintln(out, "Type a tweet, press Enter to tokenize. Ctrl+D to exit.")
		fmt.Fprintln(out)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				break
			}
			text := scanner.Text()
			if text == "" {
				continue
			}
			if err := printTokens(out, p, text, "  "); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		return scanner.Err()
	},
}

// printTokens writes the tokens of the preprocessed text with their categories.
func printTokens(w io.Writer, p *prep.Parser, text, indent string) error {
	tokens := p.Tokenizer().Tokenize(p.Preprocess(text))

	result := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		var cats []string
		for _, c := range tok.Categories() {
			cats = append(cats, c.String())
		}
		result = append(result, tokenJSON{Text: tok.Text, Categories: cats})
	}

	output, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%s\n", indent, output)
	return err
}
