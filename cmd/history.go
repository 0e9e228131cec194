package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessiz/internal/session"
	"github.com/abhisek/assessiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		assessment, _ := cmd.Flags().GetString("assessment")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().QueryAttempts(cmd.Context(), store.QueryOpts{
			Limit:        limit,
			AssessmentID: assessment,
		})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		var rows [][]string
		for _, a := range attempts {
			cats := make([]string, 0, len(a.CategoryScores))
			for _, cs := range a.CategoryScores {
				cats = append(cats, fmt.Sprintf("%s %d%%", cs.Category, cs.Score))
			}
			rows = append(rows, []string{
				a.StartedAt.Local().Format("2006-01-02 15:04"),
				a.Title,
				fmt.Sprintf("%d%%", a.OverallScore),
				fmt.Sprintf("%d/%d", a.Answered, a.Total),
				session.FormatClock(a.DurationSecs),
				a.Reason,
				strings.Join(cats, ", "),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Started", "Assessment", "Score", "Answered", "Time", "Ended", "Categories"}, rows))
		fmt.Fprintln(out, strconv.Itoa(len(attempts))+" attempt(s)")
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 for all)")
	historyCmd.Flags().String("assessment", "", "Only show attempts of this assessment")
}
