package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-projects/pkg/catalog"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

var cfgFile string

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "pj")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PJ")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "pj"))
	viper.SetDefault("open_command", service.DefaultOpenCommand)
	viper.SetDefault("stale_after", service.DefaultStaleAfter)

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func InitService(logger *logrus.Logger) (*service.Service, error) {
	dataDir := viper.GetString("data_dir")

	kv, err := catalog.NewDB(dataDir)
	if err != nil {
		return nil, err
	}

	config := &service.Config{
		DataDir:     dataDir,
		OpenCommand: viper.GetString("open_command"),
		StaleAfter:  viper.GetDuration("stale_after"),
	}

	return service.New(config, catalog.NewStore(kv), logger), nil
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pj/config.yaml)")
}
