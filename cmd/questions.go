package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/brainit/fastpath/internal/catalog"
)

type industryQuestions struct {
	Industry  catalog.Industry   `json:"industry"`
	Slug      string             `json:"slug"`
	MaxScore  int                `json:"max_score"`
	Questions []catalog.Question `json:"questions"`
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions for each industry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		industries := catalog.Industries()
		if name, _ := cmd.Flags().GetString("industry"); name != "" {
			ind, err := parseIndustry(name)
			if err != nil {
				return err
			}
			industries = []catalog.Industry{ind}
		}

		sets := make([]industryQuestions, 0, len(industries))
		for _, ind := range industries {
			sets = append(sets, industryQuestions{
				Industry:  ind,
				Slug:      ind.Slug(),
				MaxScore:  catalog.MaxScore(ind),
				Questions: catalog.QuestionsFor(ind),
			})
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sets)
		}

		for i, set := range sets {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (%s), max score %d\n", set.Industry, set.Slug, set.MaxScore)
			fmt.Fprintln(out, questionTable(set.Questions))
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("industry", "", "Only list this industry (name or slug)")
	questionsCmd.Flags().Bool("json", false, "Print JSON")
}

func questionTable(qs []catalog.Question) string {
	t := table.New().Headers("ID", "Question", "Kind", "Weight")
	for _, q := range qs {
		weight := strconv.Itoa(q.EffectiveWeight())
		if q.IsChoice() {
			weight = "-"
			for i, o := range q.Options {
				if i == 0 {
					weight = o.Value
				} else {
					weight += "/" + o.Value
				}
			}
		}
		t.Row(q.ID, q.Prompt, string(q.Kind), weight)
	}
	return t.String()
}
