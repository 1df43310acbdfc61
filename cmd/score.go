package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brainit/fastpath/internal/quiz"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive quiz",
	Long: "Score a set of answers without the interactive quiz.\n\n" +
		"Questions not listed under --yes count as no.\n\n" +
		"Example:\n  fastpath score --industry boutique --yes ai_agent,pos_sync,booking --choice urgency=high",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("industry")
		ind, err := parseIndustry(name)
		if err != nil {
			return err
		}
		rec, err := cfg.Recommender()
		if err != nil {
			return err
		}

		s := quiz.NewSession(quiz.WithRecommender(rec), quiz.WithLogger(logger))
		s.SelectIndustry(ind)

		yes, _ := cmd.Flags().GetStringSlice("yes")
		no, _ := cmd.Flags().GetStringSlice("no")
		choices, _ := cmd.Flags().GetStringSlice("choice")
		if err := record(s, yes, no, choices); err != nil {
			return err
		}

		missing := s.Missing()
		res := s.SubmitPartial()

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Fprintf(out, "Industry:        %s\n", res.Industry)
		fmt.Fprintf(out, "Score:           %d / %d\n", res.Score, res.MaxScore)
		fmt.Fprintf(out, "Recommendation:  %s (%s)\n", res.Recommendation.Label, res.Recommendation.Tier)
		fmt.Fprintf(out, "Next step:       %s: %s\n", res.Recommendation.CTA, res.Recommendation.Link)
		if u, ok := res.Choice(quiz.UrgencyQuestion); ok {
			fmt.Fprintf(out, "Urgency:         %s\n", strings.ToUpper(u.Value))
		}
		if len(missing) > 0 {
			fmt.Fprintf(out, "Unanswered:      %s\n", strings.Join(missing, ", "))
		}
		fmt.Fprintf(out, "\n%s\n", quiz.AdvisoryNote)
		return nil
	},
}

func init() {
	f := scoreCmd.Flags()
	f.String("industry", "", "Industry name or slug")
	f.StringSlice("yes", nil, "Question ids answered yes")
	f.StringSlice("no", nil, "Question ids answered no")
	f.StringSlice("choice", nil, "Choice answers as id=value")
	f.Bool("json", false, "Print JSON")
	_ = scoreCmd.MarkFlagRequired("industry")
}

// record applies the answers from the command line. Unlisted questions stay
// unanswered and score as no.
func record(s *quiz.Session, yes, no, choices []string) error {
	for _, id := range no {
		if err := s.SetBool(id, false); err != nil {
			return err
		}
	}
	for _, id := range yes {
		if err := s.SetBool(id, true); err != nil {
			return err
		}
	}
	for _, c := range choices {
		id, value, ok := strings.Cut(c, "=")
		if !ok {
			return fmt.Errorf("--choice %q: want id=value", c)
		}
		if err := s.Choose(strings.TrimSpace(id), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}
