package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

var (
	busesSort  string
	busesLimit int
	busesJSON  bool
)

var busesCmd = &cobra.Command{
	Use:   "buses [stop-id]",
	Short: "Show incoming buses for a stop",
	Long: `Queries the configured bus sources in order and shows the first
authoritative arrival board. An empty board means the stop currently has no
expected arrivals.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuses,
}

func init() {
	busesCmd.Flags().StringVar(&busesSort, "sort", "", "sort order: time, line, route, lineroute, timelineroute")
	busesCmd.Flags().IntVarP(&busesLimit, "limit", "n", 0, "maximum number of arrivals (0 = configured default)")
	busesCmd.Flags().BoolVar(&busesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(busesCmd)
}

// busView is the JSON output shape for one arrival.
type busView struct {
	Line     string   `json:"line"`
	Route    string   `json:"route"`
	Time     int      `json:"time"`
	Distance *float64 `json:"distance,omitempty"`
}

func runBuses(cmd *cobra.Command, args []string) error {
	if busService == nil {
		return errors.New("bus service not configured")
	}

	id, err := parseStopID(args[0])
	if err != nil {
		return err
	}

	sortMethod := defaultSort
	if busesSort != "" {
		sortMethod, err = domain.ParseBusSortMethod(busesSort)
		if err != nil {
			return err
		}
	}

	buses, err := busService.IncomingBuses(cmd.Context(), id, sortMethod)
	if err != nil {
		return fmt.Errorf("fetching buses for stop %d: %w", id, err)
	}

	// Cap after sorting so the nearest arrivals survive the cut.
	limit := defaultBusLimit
	if cmd.Flags().Changed("limit") {
		limit = busesLimit
	}
	if limit > 0 && len(buses) > limit {
		buses = buses[:limit]
	}

	if busesJSON {
		views := make([]busView, len(buses))
		for i, b := range buses {
			views[i] = busView{Line: b.Line, Route: b.Route, Time: b.Time, Distance: b.Distance}
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling buses: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(buses) == 0 {
		cmd.Printf("No incoming buses for stop %d.\n", id)
		return nil
	}

	cmd.Printf("Incoming buses for stop %d:\n", id)
	for _, b := range buses {
		cmd.Printf("  %-10s %-30s %4dm\n", b.Line, b.Route, b.Time)
	}
	return nil
}
