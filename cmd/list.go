package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg, zap.NewNop())
		if err != nil {
			return err
		}

		var rows [][]string
		for _, a := range b.List() {
			rows = append(rows, []string{
				a.ID,
				a.Title,
				a.Duration,
				strconv.Itoa(a.AdvertisedCount()),
				a.Style,
				string(a.Strategy),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(),
			renderTable([]string{"ID", "Title", "Duration", "Questions", "Style", "Scoring"}, rows))
		return nil
	},
}
