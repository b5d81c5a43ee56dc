package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/logger"
)

var stopJSON bool

var stopCmd = &cobra.Command{
	Use:   "stop [id]",
	Short: "Resolve a stop by ID",
	Long: `Resolves a stop through the source chain: cache, store, then the
configured external sources in order. A stop found externally is persisted
so the next lookup is served locally.`,
	Args: cobra.ExactArgs(1),
	RunE: runStop,
}

func init() {
	stopCmd.Flags().BoolVar(&stopJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(stopCmd)
}

// stopView is the JSON output shape for a resolved stop.
type stopView struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	RegisteredAt string   `json:"registered_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

func runStop(cmd *cobra.Command, args []string) error {
	if stopService == nil {
		return errors.New("stop service not configured")
	}

	id, err := parseStopID(args[0])
	if err != nil {
		return err
	}

	stop, err := stopService.ResolveStop(cmd.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStopNotExist):
			cmd.Printf("Stop %d does not exist.\n", id)
			return nil
		case stop != nil && errors.Is(err, domain.ErrStorage):
			// Resolved but not persisted; still a usable answer.
			logger.Warn("stop %d resolved but not persisted: %v", id, err)
		default:
			return fmt.Errorf("resolving stop %d: %w", id, err)
		}
	}

	if stopJSON {
		return outputStopJSON(cmd, stop)
	}
	outputStopText(cmd, stop)
	return nil
}

func outputStopJSON(cmd *cobra.Command, stop *domain.Stop) error {
	view := stopView{
		ID:   stop.ID,
		Name: stop.Name,
		Lat:  stop.Lat,
		Lon:  stop.Lon,
	}
	if !stop.RegisteredAt.IsZero() {
		view.RegisteredAt = stop.RegisteredAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if !stop.UpdatedAt.IsZero() {
		view.UpdatedAt = stop.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling stop: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputStopText(cmd *cobra.Command, stop *domain.Stop) {
	name := stop.Name
	if name == "" {
		name = "(unnamed)"
	}
	cmd.Printf("Stop %d: %s\n", stop.ID, name)
	if stop.HasLocation() {
		cmd.Printf("  Location: %.6f, %.6f\n", *stop.Lat, *stop.Lon)
	}
}

// parseStopID parses a numeric stop ID argument.
func parseStopID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid stop ID %q", arg)
	}
	return id, nil
}
