package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:   "forget [id]",
	Short: "Remove a stop from the store and cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runForget,
}

func init() {
	rootCmd.AddCommand(forgetCmd)
}

func runForget(cmd *cobra.Command, args []string) error {
	if stopService == nil {
		return errors.New("stop service not configured")
	}

	id, err := parseStopID(args[0])
	if err != nil {
		return err
	}

	removed, err := stopService.ForgetStop(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("forgetting stop %d: %w", id, err)
	}

	if removed {
		cmd.Printf("Forgot stop %d.\n", id)
	} else {
		cmd.Printf("Stop %d was not persisted.\n", id)
	}
	return nil
}
