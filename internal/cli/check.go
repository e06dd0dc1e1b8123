package cli

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Verify committed generated output is current",
	Long: `Renders the generated output in memory and compares it against the files
on disk. Exits non-zero when any file is missing or stale, which makes it
suitable for CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := newRunner(args)
		if err != nil {
			return err
		}

		return runner.Check()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
