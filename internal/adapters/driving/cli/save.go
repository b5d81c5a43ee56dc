package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

var (
	saveLat float64
	saveLon float64
)

var saveCmd = &cobra.Command{
	Use:   "save [id] [name]",
	Short: "Persist a stop manually",
	Long: `Persists a stop without consulting external sources, for stops the
providers do not expose. Saving an existing ID updates its name and
location.`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().Float64Var(&saveLat, "lat", 0, "stop latitude")
	saveCmd.Flags().Float64Var(&saveLon, "lon", 0, "stop longitude")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	if stopService == nil {
		return errors.New("stop service not configured")
	}

	id, err := parseStopID(args[0])
	if err != nil {
		return err
	}

	stop := domain.NewStop(id, args[1])
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
			return errors.New("--lat and --lon must be given together")
		}
		stop.WithLocation(saveLat, saveLon)
	}

	if err := stopService.SaveStop(cmd.Context(), stop); err != nil {
		return fmt.Errorf("saving stop %d: %w", id, err)
	}

	cmd.Printf("Saved stop %d: %s\n", stop.ID, stop.Name)
	return nil
}
