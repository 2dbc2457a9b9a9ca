package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/palisade/obfuscate"
)

var rootCmd = &cobra.Command{
	Use:   "palisade",
	Short: "Hardened error reporting for deception environments",
	Long:  "Error core for systems operating in hostile territory. External output is uniform and opaque; internal diagnostics stay behind capability gates and are erased on destruction.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Fresh session salt per invocation so obfuscated codes never
		// correlate across runs.
		if err := obfuscate.InitSession(); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: %v (running degraded)\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
