package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var preloadWorkers int

var preloadCmd = &cobra.Command{
	Use:   "preload [from] [to]",
	Short: "Resolve and persist an ID range through the external sources",
	Long: `Walks the inclusive stop ID range through the external source chain
and persists every stop found. Useful against providers that expose no full
stop listing: the local store becomes the listing.`,
	Args: cobra.ExactArgs(2),
	RunE: runPreload,
}

func init() {
	preloadCmd.Flags().IntVar(&preloadWorkers, "workers", 1, "number of concurrent lookups")
	rootCmd.AddCommand(preloadCmd)
}

func runPreload(cmd *cobra.Command, args []string) error {
	if stopService == nil {
		return errors.New("stop service not configured")
	}

	from, err := parseStopID(args[0])
	if err != nil {
		return err
	}
	to, err := parseStopID(args[1])
	if err != nil {
		return err
	}

	report, err := stopService.PreloadStops(cmd.Context(), from, to, preloadWorkers)
	if err != nil {
		return fmt.Errorf("preloading stops %d-%d: %w", from, to, err)
	}

	cmd.Printf("Preloaded stops %d-%d: %d resolved, %d missing, %d failed\n",
		from, to, len(report.Resolved), len(report.Missing), len(report.Failed))
	if len(report.Failed) > 0 {
		cmd.Printf("Failed IDs: %v\n", report.Failed)
	}
	return nil
}
