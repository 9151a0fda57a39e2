package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hitchhicker/faster-tweet-nlp-toolkit/pkg/prep"
	"github.com/spf13/cobra"
)

var prepCmd = &cobra.Command{
	Use:   "prep [text...]",
	Short: "Clean text given as arguments, or stdin line by line",
	Example: `  tweetprep prep --urls tag "asylum seeker:http://t.co/skU8zM7Slh"
  cat tweets.txt | tweetprep prep --mentions remove --emojis demojize`,
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := loadActions()
		if err != nil {
			return err
		}
		p, closeParser, err := newParser()
		if err != nil {
			return err
		}
		defer closeParser()

		if len(args) > 0 {
			value, err := p.Prep(strings.Join(args, " "), actions)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		start := time.Now()
		n, err := prep.PrepFile(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), p, actions)
		if err != nil {
			return err
		}
		slog.Debug("stdin prepared", "lines", n, "elapsed", time.Since(start).Round(time.Millisecond))
		return nil
	},
}
