package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessiz/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Work with question bank files",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate question bank files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			assessments, err := bank.LoadFile(path)
			if err == nil {
				fmt.Fprintf(out, "%s: ok (%d assessments)\n", path, len(assessments))
				continue
			}

			failed++
			var verr *bank.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s: %d problem(s)\n", path, len(verr.Issues))
				for _, is := range verr.Issues {
					fmt.Fprintf(out, "  %s: %s\n", is.Field, is.Message)
				}
				continue
			}
			fmt.Fprintf(out, "%s: %v\n", path, err)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d bank files invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
}
