package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/oneconcern/overrides/pkg/dlogger"
	"github.com/oneconcern/overrides/pkg/fetch"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// keep names of fields the same as the serialized names, for viper
	Root        string `json:"root" yaml:"root" mapstructure:"root"`                         // Directory holding the overrides
	Index       string `json:"index" yaml:"index" mapstructure:"index"`                      // Package index archive
	LogLevel    string `json:"loglevel" yaml:"loglevel" mapstructure:"loglevel"`             // Log level
	Cabal2Nix   string `json:"cabal2nix" yaml:"cabal2nix" mapstructure:"cabal2nix"`          // Build expression generator
	PrefetchGit string `json:"prefetch-git" yaml:"prefetch-git" mapstructure:"prefetch-git"` // Git prefetcher
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setOverridesParams fills flags left unset from the configuration
func (c *CLIConfig) setOverridesParams(flags *flagsT) {
	if flags.root.store == "" {
		flags.root.store = c.Root
	}
	if flags.root.index == "" {
		flags.root.index = c.Index
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("root", ".overrides")
	viper.SetDefault("index", defaultIndex())
	viper.SetDefault("loglevel", dlogger.LogLevelWarn)
	viper.SetDefault("cabal2nix", fetch.DefaultCabal2Nix)
	viper.SetDefault("prefetch-git", fetch.DefaultPrefetchGit)
	if os.Getenv("OVERRIDES_CONFIG") != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv("OVERRIDES_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.overrides")
		viper.SetConfigName("overrides")
	}

	viper.SetEnvPrefix("overrides")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // prefetch-git is read from OVERRIDES_PREFETCH_GIT
	viper.AutomaticEnv()                                   // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
		return
	}
	config.setOverridesParams(&overridesFlags)
}

// defaultIndex is the package index downloaded by "cabal update"
func defaultIndex() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "01-index.tar"
	}
	return home + "/.cabal/packages/hackage.haskell.org/01-index.tar"
}
