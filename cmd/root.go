package cmd

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/config"
)

var (
	// Global flags
	configPath string
	baseDomain string
	token      string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gitbridge",
	Short: "Provider-agnostic bridge to Azure DevOps repositories and work items",
	Long: `A CLI that maps the Azure DevOps organization/project/repository/work-item
hierarchy onto generic Git provider abstractions.

It can:
- Discover every repository reachable with a Personal Access Token
- List branch refs of a single repository
- Suggest open work items assigned to you, correlated to their repositories
- Package a set of files into a single prompt-formatted document`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
		logger.SetFormatter(&logger.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
		if verbose || os.Getenv("DEBUG") == "true" {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&baseDomain, "base-domain", "d", "",
		"Azure DevOps host or organization URL (e.g., https://myorg.visualstudio.com)")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "",
		"Personal Access Token (or set AZURE_DEVOPS_PAT env var)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}

// loadConfig reads the configured (or auto-detected) config file. A missing
// file is not an error; flags and env vars can stand alone.
func loadConfig() (*Config, error) {
	path := configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{file: cfg}, nil
}

// Config wraps the optional file configuration for flag merging.
type Config struct {
	file *config.Config
}

// resolveProviderConfig merges the config file with CLI flags and env vars,
// flags winning over the file.
func resolveProviderConfig() (config.ProviderConfig, error) {
	provCfg := config.ProviderConfig{Type: "azuredevops"}

	cfg, err := loadConfig()
	if err != nil {
		return config.ProviderConfig{}, err
	}
	if cfg != nil && cfg.file != nil && len(cfg.file.Providers) > 0 {
		provCfg = cfg.file.Providers[0]
	}

	if token != "" {
		provCfg.Token = token
	}
	if provCfg.Token == "" {
		provCfg.Token = os.Getenv("AZURE_DEVOPS_PAT")
	}
	if baseDomain != "" {
		provCfg.BaseDomain = baseDomain
	}

	if provCfg.Token == "" {
		return config.ProviderConfig{}, errors.New(
			"no token configured; set --token, AZURE_DEVOPS_PAT, or a config file",
		)
	}

	return provCfg, nil
}

// resolvePromptBinary returns the configured files-to-prompt binary path,
// empty when the PATH lookup should be used.
func resolvePromptBinary() string {
	cfg, err := loadConfig()
	if err != nil || cfg == nil || cfg.file == nil {
		return ""
	}
	return cfg.file.Prompt.Binary
}
