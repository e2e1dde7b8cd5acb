package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initConfig wires viper to an optional config file plus STOMPCTL_*
// environment variables, mirroring the config-file-then-env precedence
// every cobra+viper CLI in the pack uses.
func initConfig(root *cobra.Command) {
	if cfgFile, _ := root.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".stompctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("stompctl")
	viper.AutomaticEnv()

	viper.SetDefault("default-content-type", "text/plain")
	viper.SetDefault("default-host", "localhost")
	viper.SetDefault("max-frame-bytes", 1<<20)

	_ = viper.ReadInConfig() // absent config file is not an error
}
