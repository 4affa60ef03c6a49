//go:build windows

package wintoast

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// Register writes the AppUserModelId record the platform requires
// before it accepts Show calls for aumID. iconPath must be absolute
// or empty; empty removes any previously registered icon.
func Register(aumID, displayName, iconPath string) error {
	if iconPath != "" && !filepath.IsAbs(iconPath) {
		return ErrInvalidPath
	}

	key, _, err := registry.CreateKey(registry.CURRENT_USER, aumIDKeyPath(aumID), registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("create AppUserModelId key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("DisplayName", displayName); err != nil {
		return fmt.Errorf("set DisplayName: %w", err)
	}
	if iconPath != "" {
		if err := key.SetStringValue("IconUri", iconPath); err != nil {
			return fmt.Errorf("set IconUri: %w", err)
		}
	} else {
		// Stale icons from an earlier registration would keep showing.
		_ = key.DeleteValue("IconUri")
	}
	return nil
}

// Unregister removes the record written by Register.
func Unregister(aumID string) error {
	if err := registry.DeleteKey(registry.CURRENT_USER, aumIDKeyPath(aumID)); err != nil {
		return fmt.Errorf("delete AppUserModelId key: %w", err)
	}
	return nil
}

func aumIDKeyPath(aumID string) string {
	return `SOFTWARE\Classes\AppUserModelId\` + aumID
}
