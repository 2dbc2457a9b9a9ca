package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/palisade/registry"
)

var (
	codesFile     string
	codesInternal bool
)

func init() {
	codesCmd.Flags().StringVar(&codesFile, "file", "codes.yaml", "code definition file to validate")
	codesCmd.Flags().BoolVar(&codesInternal, "internal", false, "print full rejection details (trusted terminals only)")
	rootCmd.AddCommand(codesCmd)
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Validate a code definition file",
	Long:  "Loads a YAML code definition file through checked construction and reports what was accepted. Rejections print sanitized by default; --internal shows the underlying detail.",
	RunE:  runCodes,
}

func runCodes(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load(codesFile)
	if err != nil {
		return fmt.Errorf("load %s: %w", codesFile, err)
	}

	fmt.Printf("accepted %d code(s):\n", reg.Len())
	for _, name := range reg.Names() {
		code, _ := reg.Lookup(name)
		fmt.Printf("  %-28s %s  %s/%s", name, code, code.Category().DisplayName(), code.Level())
		if code.Retryable() {
			fmt.Print("  retryable")
		}
		fmt.Println()
	}

	report := reg.SanitizedReport()
	if len(report) == 0 {
		return nil
	}

	fmt.Fprintf(os.Stderr, "\nrejected %d entrie(s):\n", len(report))
	if codesInternal {
		for _, issue := range reg.Issues() {
			name := issue.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(os.Stderr, "  %s: %v\n", name, issue.Detail)
		}
	} else {
		for _, line := range report {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
	}
	os.Exit(1)
	return nil
}
