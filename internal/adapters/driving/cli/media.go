package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
)

var (
	mapVertical bool
	mapTerrain  bool
	mapRecord   string

	streetRecord string
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Look up or record media references for stops",
	Long: `Manages the external file IDs of images already delivered for a
stop. References are recorded once and never replaced, so collaborators can
reuse a delivered image instead of rendering it again.`,
}

var mediaMapCmd = &cobra.Command{
	Use:   "map [stop-id]",
	Short: "Look up or record a map image reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaMap,
}

var mediaStreetCmd = &cobra.Command{
	Use:   "streetview [stop-id]",
	Short: "Look up or record a street view reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaStreet,
}

func init() {
	mediaMapCmd.Flags().BoolVar(&mapVertical, "vertical", false, "portrait orientation variant")
	mediaMapCmd.Flags().BoolVar(&mapTerrain, "terrain", false, "terrain map variant")
	mediaMapCmd.Flags().StringVar(&mapRecord, "record", "", "record this file ID instead of looking up")
	mediaStreetCmd.Flags().StringVar(&streetRecord, "record", "", "record this file ID instead of looking up")

	mediaCmd.AddCommand(mediaMapCmd)
	mediaCmd.AddCommand(mediaStreetCmd)
	rootCmd.AddCommand(mediaCmd)
}

func runMediaMap(cmd *cobra.Command, args []string) error {
	if mediaService == nil {
		return errors.New("media service not configured")
	}

	id, err := parseStopID(args[0])
	if err != nil {
		return err
	}
	variant := domain.MapVariant{Vertical: mapVertical, Terrain: mapTerrain}

	if mapRecord != "" {
		if err := mediaService.RecordMapImage(cmd.Context(), id, variant, mapRecord); err != nil {
			return fmt.Errorf("recording map image for stop %d: %w", id, err)
		}
		cmd.Printf("Recorded map image (%s) for stop %d.\n", variant, id)
		return nil
	}

	ref, err := mediaService.MapImage(cmd.Context(), id, variant)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No map image (%s) recorded for stop %d.\n", variant, id)
			return nil
		}
		return fmt.Errorf("looking up map image for stop %d: %w", id, err)
	}

	cmd.Printf("Map image (%s) for stop %d: %s\n", variant, id, ref.FileID)
	return nil
}

func runMediaStreet(cmd *cobra.Command, args []string) error {
	if mediaService == nil {
		return errors.New("media service not configured")
	}

	id, err := parseStopID(args[0])
	if err != nil {
		return err
	}

	if streetRecord != "" {
		if err := mediaService.RecordStreetView(cmd.Context(), id, streetRecord); err != nil {
			return fmt.Errorf("recording street view for stop %d: %w", id, err)
		}
		cmd.Printf("Recorded street view for stop %d.\n", id)
		return nil
	}

	ref, err := mediaService.StreetView(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No street view recorded for stop %d.\n", id)
			return nil
		}
		return fmt.Errorf("looking up street view for stop %d: %w", id, err)
	}

	cmd.Printf("Street view for stop %d: %s\n", id, ref.FileID)
	return nil
}
