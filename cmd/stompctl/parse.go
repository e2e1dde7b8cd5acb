package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/herblet/stomp-parser/message"
)

func newParseCmd() *cobra.Command {
	var asServer bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a single STOMP frame and print its fields",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readInput(args)
			if err != nil {
				return err
			}

			if max := viper.GetInt("max-frame-bytes"); len(buf) > max {
				log.WithFields(logrus.Fields{"bytes": len(buf), "max": max}).Error("frame exceeds configured size limit")
				return fmt.Errorf("stompctl: frame of %d bytes exceeds max-frame-bytes (%d)", len(buf), max)
			}

			if asServer {
				f, err := message.ParseServer(buf)
				if err != nil {
					log.WithError(err).Error("failed to parse server frame")
					return err
				}
				printFrame(f)
				return nil
			}

			f, err := message.ParseClient(buf)
			if err != nil {
				log.WithError(err).Error("failed to parse client frame")
				return err
			}
			printFrame(f)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asServer, "server", false, "parse as a server-sent frame instead of a client-sent one")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

// printFrame prints a human-readable summary. It type-switches on the
// handful of concrete frame types instead of reaching into the codec's
// unexported representation.
func printFrame(f interface{}) {
	switch v := f.(type) {
	case *message.ConnectFrame:
		fmt.Printf("CONNECT host=%s accept-version=%s\n", v.Host(), v.AcceptVersion())
	case *message.SendFrame:
		body, _ := v.Body()
		fmt.Printf("SEND destination=%s body=%q\n", v.Destination(), body)
	case *message.SubscribeFrame:
		fmt.Printf("SUBSCRIBE destination=%s id=%s\n", v.Destination(), v.ID())
	case *message.ConnectedFrame:
		fmt.Printf("CONNECTED version=%s\n", v.Version())
	case *message.MessageFrame:
		body, _ := v.Body()
		fmt.Printf("MESSAGE destination=%s subscription=%s body=%q\n", v.Destination(), v.Subscription(), body)
	case *message.ErrorFrame:
		body, _ := v.Body()
		fmt.Printf("ERROR body=%q\n", body)
	default:
		fmt.Printf("%T\n", f)
	}
}
