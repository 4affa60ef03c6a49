package main

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/config"
)

func removeCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "remove [tag]",
		Short: "Remove shown notifications by tag and/or group",
		Long: `Remove shown notifications by tag and/or group.

With a tag argument, removes that notification (scoped to --group if
given). With only --group, removes the whole group. Removing a target
that no longer exists succeeds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := managerFromConfig()
			if err != nil {
				return err
			}
			switch {
			case len(args) == 1 && group != "":
				return manager.RemoveGroupedTag(args[0], group)
			case len(args) == 1:
				return manager.Remove(args[0])
			case group != "":
				return manager.RemoveGroup(group)
			default:
				return cmd.Help()
			}
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Correlation group to remove from")

	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all of this application's notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := managerFromConfig()
			if err != nil {
				return err
			}
			return manager.Clear()
		},
	}
}

func managerFromConfig() (*wintoast.ToastManager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	aumID := cfg.AumID
	if aumID == "" {
		aumID = wintoast.PowerShellAumID
	}
	return wintoast.NewToastManager(aumID), nil
}
