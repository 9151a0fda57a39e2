package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tweetprep",
	Short: "Clean and tokenize tweets",
	Long: `tweetprep normalizes short social-media text and rewrites its mentions,
hashtags, URLs, digits, emoji, emoticons, punctuation, emails and HTML tags.

Every flag can also be set with a TWEETPREP_ environment variable
(TWEETPREP_URLS=tag) or in a YAML file passed with --config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if path := viper.GetString("config"); path != "" {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "read config %s", path)
			}
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(viper.GetString("log-level")),
		}))
		slog.SetDefault(logger)
		if path := viper.ConfigFileUsed(); path != "" {
			slog.Debug("config loaded", "path", path)
		}
		return nil
	},
}

// actionFlags maps flag names to the categories they configure.
var actionFlags = []struct {
	name  string
	usage string
}{
	{"mentions", "action for mentions: remove|tag"},
	{"hashtags", "action for hashtags: remove|tag"},
	{"urls", "action for URLs: remove|tag"},
	{"digits", "action for digits: remove|tag"},
	{"emojis", "action for emoji: remove|tag|demojize|emojize"},
	{"emoticons", "action for emoticons: remove|tag"},
	{"puncts", "action for punctuation: remove|tag"},
	{"emails", "action for emails: remove|tag"},
	{"html-tags", "action for HTML tags: remove"},
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.String("config", "", "YAML config file")
	flags.String("log-level", "info", "log level: debug|info|warn|error")

	for _, f := range actionFlags {
		flags.String(f.name, "", f.usage)
	}

	flags.String("encoding", "", "IANA charset; characters it cannot encode become U+FFFD")
	flags.Bool("remove-unencodable", false, "drop characters the encoding cannot represent")
	flags.Bool("lower", true, "lowercase the text")
	flags.Bool("strip-accents", false, "remove accents")
	flags.Bool("reduce-len", false, "shorten runs of 3+ identical characters to 3")
	flags.Bool("weibo", false, "treat #topic# as a hashtag")
	flags.String("filters", "", "file of tokens to drop, one per line")
	flags.String("separator", " ", "string placed between tokens")
	flags.String("stem", "", "Snowball stemmer language for plain words (e.g. english)")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("tweetprep")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(prepCmd, fileCmd, tokenizeCmd, filtersCmd)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
