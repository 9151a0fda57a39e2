package main

import (
	"log/slog"

	"github.com/hitchhicker/faster-tweet-nlp-toolkit/pkg/prep"
	"github.com/spf13/viper"
)

// loadActions reads the per-category action flags.
func loadActions() (prep.Actions, error) {
	named := make(map[string]string, len(actionFlags))
	for _, f := range actionFlags {
		named[f.name] = viper.GetString(f.name)
	}
	return prep.ParseActions(named)
}

func loadPreprocessOptions() prep.PreprocessOptions {
	return prep.PreprocessOptions{
		Encoding:              viper.GetString("encoding"),
		RemoveUnencodableChar: viper.GetBool("remove-unencodable"),
		ToLower:               viper.GetBool("lower"),
		StripAccents:          viper.GetBool("strip-accents"),
		ReduceLen:             viper.GetBool("reduce-len"),
	}
}

func newClassifier() *prep.Classifier {
	if viper.GetBool("weibo") {
		return prep.NewWeiboClassifier()
	}
	return prep.DefaultClassifier()
}

// newParser builds a parser from flags. The returned close function
// releases the filter dictionary, if any.
func newParser() (*prep.Parser, func(), error) {
	opts := []prep.Option{
		prep.WithPreprocessOptions(loadPreprocessOptions()),
		prep.WithSeparator(viper.GetString("separator")),
		prep.WithTokenizer(prep.NewTokenizer(newClassifier())),
	}
	if lang := viper.GetString("stem"); lang != "" {
		opts = append(opts, prep.WithStemmer(lang))
	}

	closer := func() {}
	if path := viper.GetString("filters"); path != "" {
		filters, err := prep.LoadDictionary(path)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("filters loaded", "path", path, "words", filters.WordCount())
		opts = append(opts, prep.WithFilters(filters))
		closer = func() { filters.Close() }
	}

	p, err := prep.NewParser(opts...)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return p, closer, nil
}
