package cli

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [patterns...]",
	Short: "Generate mirror adapters for annotated packages",
	Long: `Scans the given package patterns (default "./..." or the patterns from
mirrorgen.yaml) for mirror directives and writes one generated file next to
each annotated package.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := newRunner(args)
		if err != nil {
			return err
		}

		return runner.Generate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
