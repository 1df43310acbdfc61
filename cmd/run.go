package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brainit/fastpath/internal/app"
	"github.com/brainit/fastpath/internal/catalog"
	"github.com/brainit/fastpath/internal/quiz"
	"github.com/brainit/fastpath/internal/ui/components"
)

// runApp builds the session from the loaded config and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rec, err := cfg.Recommender()
	if err != nil {
		return err
	}

	opts := app.Options{
		Session:      quiz.NewSession(quiz.WithRecommender(rec), quiz.WithLogger(logger)),
		BooleanStyle: components.BooleanStyle(cfg.UI.BooleanStyle),
		SkipSplash:   cfg.UI.SkipSplash,
		Logger:       logger,
	}

	if name, _ := cmd.Flags().GetString("industry"); name != "" {
		ind, err := parseIndustry(name)
		if err != nil {
			return err
		}
		opts.Industry = ind
	}

	return app.Run(opts)
}

func parseIndustry(name string) (catalog.Industry, error) {
	ind, ok := catalog.ParseIndustry(name)
	if !ok {
		slugs := make([]string, 0, len(catalog.Industries()))
		for _, i := range catalog.Industries() {
			slugs = append(slugs, i.Slug())
		}
		return "", fmt.Errorf("unknown industry %q (choose one of %v)", name, slugs)
	}
	return ind, nil
}
