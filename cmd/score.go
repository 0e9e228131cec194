package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/assessiz/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer file against an assessment",
	Long: `Score a map of question id to answer without running a session.

The answers file is YAML, or JSON when it ends in .json:

  "1": 60 mph
  "2": Garage`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("assessment")
		path, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg, zap.NewNop())
		if err != nil {
			return err
		}
		a, err := b.Assessment(id)
		if err != nil {
			return err
		}
		answers, err := readAnswers(path)
		if err != nil {
			return err
		}

		res := scoring.Score(a.Strategy, a.Questions, answers)
		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Fprintf(out, "%s: %d%% (%s)\n", a.Title, res.OverallScore, scoring.Label(res.OverallScore))
		if len(res.CategoryScores) > 0 {
			var rows [][]string
			for _, cs := range res.CategoryScores {
				rows = append(rows, []string{cs.Category, fmt.Sprintf("%d%%", cs.Score), scoring.Label(cs.Score)})
			}
			fmt.Fprintln(out, renderTable([]string{"Category", "Score", "Label"}, rows))
		}
		for _, in := range res.Insights {
			fmt.Fprintln(out, "•", in)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("assessment", "", "Assessment id")
	scoreCmd.Flags().String("answers", "", "Answers file (YAML or JSON)")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = scoreCmd.MarkFlagRequired("assessment")
	_ = scoreCmd.MarkFlagRequired("answers")
}

// readAnswers decodes a question id to answer map.
func readAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	answers := make(map[string]string)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &answers)
	} else {
		err = yaml.Unmarshal(data, &answers)
	}
	if err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return answers, nil
}
