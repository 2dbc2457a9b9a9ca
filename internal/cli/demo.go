package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/palisade"
	"github.com/ppiankov/palisade/forensic"
	"github.com/ppiankov/palisade/taxonomy"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the honeypot error-handling walkthrough",
	Long:  "Raises operational and dual-context errors the way a deception host would, then shows what crosses the trust boundary versus what stays inside.",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("=== palisade honeypot walkthrough ===")
	fmt.Println("What an intruder sees on the left; what operators keep on the right.")
	fmt.Println()

	logger := forensic.New(16, 4096)

	// Operational error: a config load that an intruder can trigger.
	cfgErr := palisade.Config(taxonomy.CfgParseFailed,
		"load_lure_profile", "unexpected key 'ssh_banner' at line 14").
		WithMetadata("profile", "lure-02")
	defer cfgErr.Destroy()
	logger.Log(cfgErr, "config")

	fmt.Println("--- operational error ---")
	fmt.Printf("external: %v\n", cfgErr)
	cfgErr.WithInternalView(func(v *palisade.InternalView) {
		fmt.Printf("internal: code=%s operation=%s details=%q\n",
			v.Code, v.Operation, v.Details)
	})
	fmt.Println()

	// I/O error with path splitting: the path never reaches external text.
	_, openErr := os.Open("/var/lib/palisade/honeytokens.db")
	if openErr == nil {
		openErr = fs.ErrNotExist
	}
	ioErr := palisade.FromIOError(taxonomy.IOOpenFailed,
		"open_honeytoken_store", "/var/lib/palisade/honeytokens.db", openErr)
	defer ioErr.Destroy()
	logger.Log(ioErr, "io")

	fmt.Println("--- i/o error (path withheld) ---")
	fmt.Printf("external: %v\n", ioErr)
	ioErr.WithInternalView(func(v *palisade.InternalView) {
		fmt.Printf("internal: kind=%s sensitive=%v\n", v.SourceInternal, v.HasSensitive)
	})
	fmt.Println()

	// Dual-context error: the lie an intruder reads, the truth we keep.
	lie := palisade.WithLie(
		"Connection reset by peer",
		"session redirected to sandbox, keystrokes recorded",
		taxonomy.CatDeception)
	defer lie.Destroy()
	logger.Log(lie, "deception")

	fmt.Println("--- dual-context error ---")
	fmt.Printf("external: %s (category: %s)\n", lie.ExternalMessage(), lie.ExternalCategory())
	if p, ok := lie.Internal().Payload(); ok {
		fmt.Printf("internal: %s\n", p)
	}
	fmt.Println()

	// Forensic ring buffer: everything above was retained in memory.
	fmt.Println("--- forensic buffer (newest first) ---")
	for _, e := range logger.All() {
		fmt.Printf("%s  %-12s %-28s %s\n",
			e.Timestamp.Format("15:04:05"), e.Source, e.Code, e.Operation)
	}
	fmt.Printf("\nretained=%d evicted=%d\n", logger.Len(), logger.Evictions())
	return nil
}
