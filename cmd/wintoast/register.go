package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/config"
)

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the configured AUM_ID with the notification platform",
		Long: `Register the configured AUM_ID with the notification platform.

Writes the AppUserModelId record (display name and optional icon) to
the per-user registry so the platform accepts toasts for the identity
configured as aum_id in config.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AumID == "" {
				return fmt.Errorf("no aum_id configured; the PowerShell identity needs no registration")
			}
			if err := wintoast.Register(cfg.AumID, cfg.DisplayName, cfg.IconPath); err != nil {
				return err
			}
			fmt.Printf("registered %s as %q\n", cfg.AumID, cfg.DisplayName)
			return nil
		},
	}
	return cmd
}

func unregisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unregister",
		Short: "Remove the configured AUM_ID registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AumID == "" {
				return fmt.Errorf("no aum_id configured")
			}
			if err := wintoast.Unregister(cfg.AumID); err != nil {
				return err
			}
			fmt.Printf("unregistered %s\n", cfg.AumID)
			return nil
		},
	}
	return cmd
}
