package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wintoast",
		Short: "Show Windows toast notifications from the command line",
		Long: `Wintoast shows Windows toast notifications and reports how the
user interacted with them.

Configuration is read from config.toml in the working directory or the
per-user config directory (aum_id, display_name, icon_path). Without a
registered AUM_ID the PowerShell identity is used, which works out of
the box but shows up as "Windows PowerShell" in the shade.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		showCmd(),
		registerCmd(),
		unregisterCmd(),
		removeCmd(),
		clearCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
