// Package cli implements the command-line driving adapter. Commands talk to
// the core exclusively through the driving ports; wiring of concrete
// services happens in the entry point via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driving"
	"github.com/stopline-labs/stopline-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services bundles the driving ports the commands depend on.
type Services struct {
	Stop  driving.StopService
	Buses driving.BusService
	Media driving.MediaService
}

var (
	stopService  driving.StopService
	busService   driving.BusService
	mediaService driving.MediaService

	// defaultSort is the configured bus ordering, overridable per command.
	defaultSort domain.BusSortMethod

	// defaultBusLimit caps the printed board length. Zero means unlimited.
	defaultBusLimit int

	verbose bool
)

// SetServices wires the concrete services into the commands.
func SetServices(s Services) {
	stopService = s.Stop
	busService = s.Buses
	mediaService = s.Media
}

// SetDefaultBusSort sets the configured default bus ordering.
func SetDefaultBusSort(method domain.BusSortMethod) {
	defaultSort = method
}

// SetDefaultBusLimit sets the configured board length cap. Zero disables
// the cap.
func SetDefaultBusLimit(limit int) {
	defaultBusLimit = limit
}

var rootCmd = &cobra.Command{
	Use:   "stopline",
	Short: "Resolve transit stops and live arrivals from chained sources",
	Long: `Stopline resolves transit stop data through a chain of sources:
a process-local cache, a persistent store, and external providers queried
in configured order. Resolved stops are written back so later lookups are
served locally.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
