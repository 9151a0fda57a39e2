package main

import (
	"fmt"

	"github.com/hitchhicker/faster-tweet-nlp-toolkit/pkg/prep"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Manage a filter file (tokens dropped before classification)",
}

var filtersAddCmd = &cobra.Command{
	Use:   "add <file> <word> [word...]",
	Short: "Add words to the filter file",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDictionary(args[0], func(d *prep.Dictionary) error {
			for _, word := range args[1:] {
				if err := d.AddWord(word); err != nil {
					return errors.Wrapf(err, "add %q", word)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", word)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total words: %d\n", d.WordCount())
			return d.Save()
		})
	},
}

var filtersRemoveCmd = &cobra.Command{
	Use:   "remove <file> <word> [word...]",
	Short: "Remove words from the filter file",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDictionary(args[0], func(d *prep.Dictionary) error {
			for _, word := range args[1:] {
				if err := d.RemoveWord(word); err != nil {
					return errors.Wrapf(err, "remove %q", word)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed: %s\n", word)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total words: %d\n", d.WordCount())
			return d.Save()
		})
	},
}

var filtersContainsCmd = &cobra.Command{
	Use:   "contains <file> <word>",
	Short: "Check whether a word is filtered",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDictionary(args[0], func(d *prep.Dictionary) error {
			word := args[1]
			if !d.Contains(word) {
				return errors.Errorf("'%s' NOT in %s", word, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "'%s' exists in %s\n", word, args[0])
			return nil
		})
	},
}

var filtersListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "Print the filter words in sorted order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDictionary(args[0], func(d *prep.Dictionary) error {
			for _, word := range d.Words() {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		})
	},
}

var filtersStatsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show filter file statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDictionary(args[0], func(d *prep.Dictionary) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Filters: %s\n", d.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Word count: %d\n", d.WordCount())
			return nil
		})
	},
}

func init() {
	filtersCmd.AddCommand(filtersAddCmd, filtersRemoveCmd, filtersContainsCmd, filtersListCmd, filtersStatsCmd)
}

func withDictionary(path string, fn func(*prep.Dictionary) error) error {
	d, err := prep.LoadDictionary(path)
	if err != nil {
		return err
	}
	defer d.Close()
	return fn(d)
}
