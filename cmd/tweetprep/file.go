package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hitchhicker/faster-tweet-nlp-toolkit/pkg/prep"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file <input> <output>",
	Short: "Clean a file line by line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, outPath := args[0], args[1]

		actions, err := loadActions()
		if err != nil {
			return err
		}
		p, closeParser, err := newParser()
		if err != nil {
			return err
		}
		defer closeParser()

		in, err := os.Open(inPath)
		if err != nil {
			return errors.Wrapf(err, "open %s", inPath)
		}
		defer in.Close()

		out, err := os.Create(outPath)
		if err != nil {
			return errors.Wrapf(err, "create %s", outPath)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		start := time.Now()
		n, err := prep.PrepFile(ctx, in, out, p, actions)
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", outPath)
		}
		if err != nil {
			slog.Error("prep file failed", "input", inPath, "lines", n, "error", err)
			return err
		}

		slog.Info("file prepared",
			"input", inPath,
			"output", outPath,
			"lines", n,
			"elapsed", time.Since(start).Round(time.Millisecond))
		return nil
	},
}
