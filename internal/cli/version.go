package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridable at link time.
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the mirror-gen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mirror-gen %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
