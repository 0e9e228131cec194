package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show score statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.AttemptRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if stats.TotalAttempts == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		fmt.Fprintf(out, "Attempts: %d   Average: %d%%   Time: %d min\n",
			stats.TotalAttempts, stats.AverageScore, (stats.TotalSeconds+30)/60)

		var rows [][]string
		for _, a := range stats.ByAssessment {
			rows = append(rows, []string{
				a.Title,
				strconv.Itoa(a.Attempts),
				fmt.Sprintf("%d%%", a.AverageScore),
				fmt.Sprintf("%d%%", a.BestScore),
				fmt.Sprintf("%d%%", a.LastScore),
			})
		}
		fmt.Fprintln(out, renderTable([]string{"Assessment", "Attempts", "Average", "Best", "Last"}, rows))
		return nil
	},
}
