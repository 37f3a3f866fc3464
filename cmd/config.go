package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
)

// Config carries the resolved runtime settings.
type Config struct {
	// StorageDir is the extension's private storage directory.
	StorageDir string

	// ReleaseOwner and ReleaseRepo locate the minc release index.
	ReleaseOwner string
	ReleaseRepo  string

	// ReleaseURL is the release index base URL.
	ReleaseURL string

	// Verbose enables debug logging.
	Verbose bool
}

// LoadConfig resolves settings from flags and MINC_DESKTOP_* environment
// variables, with flags taking precedence.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix("MINC_DESKTOP")
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	err := vip.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	vip.SetDefault("release-owner", "minc-org")
	vip.SetDefault("release-repo", "minc")

	config := &Config{
		StorageDir:   vip.GetString("storage-dir"),
		ReleaseOwner: vip.GetString("release-owner"),
		ReleaseRepo:  vip.GetString("release-repo"),
		ReleaseURL:   vip.GetString("release-url"),
		Verbose:      vip.GetBool("verbose"),
	}

	if config.StorageDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}

		config.StorageDir = filepath.Join(home, ".minc-desktop")
	}

	if config.ReleaseURL == "" {
		config.ReleaseURL = ghrelease.DefaultBaseURL
	}

	return config, nil
}
