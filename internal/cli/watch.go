package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/palisade/registry"
)

var watchFile string

func init() {
	watchCmd.Flags().StringVar(&watchFile, "file", "codes.yaml", "code definition file to watch")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload a code definition file on change",
	Long:  "Loads the definition file and reloads it whenever it changes on disk. An invalid write keeps the previous snapshot. Runs until interrupted.",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load(watchFile)
	if err != nil {
		return fmt.Errorf("load %s: %w", watchFile, err)
	}
	fmt.Printf("watching %s (%d code(s) loaded)\n", watchFile, reg.Len())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return reg.Watch(ctx, func(err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "reload failed, keeping previous snapshot: %v\n", err)
			return
		}
		fmt.Printf("reloaded: %d code(s)", reg.Len())
		if report := reg.SanitizedReport(); len(report) > 0 {
			fmt.Printf(", %d rejected", len(report))
		}
		fmt.Println()
	})
}
