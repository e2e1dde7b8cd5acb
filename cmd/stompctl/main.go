// Command stompctl is a small driver over the message package: it parses
// STOMP frames from stdin and prints their fields, or builds a frame from
// flags and renders it to stdout. It exists to exercise the codec end to
// end, the way a hand-written client or broker would call it.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stompctl",
		Short: "Inspect and build STOMP 1.2 frames",
	}

	root.PersistentFlags().String("config", "", "config file (default: $HOME/.stompctl.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	cobra.OnInitialize(func() {
		initConfig(root)
		level, err := logrus.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			log.WithError(err).Warn("invalid log level, defaulting to info")
			level = logrus.InfoLevel
		}
		log.SetLevel(level)
	})

	root.AddCommand(newParseCmd())
	root.AddCommand(newSendCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
