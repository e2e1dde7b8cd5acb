package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/herblet/stomp-parser/message"
)

func newSendCmd() *cobra.Command {
	var destination, contentType, body string
	var autoReceipt bool

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build a SEND frame from flags and render it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentType == "" {
				contentType = viper.GetString("default-content-type")
			}

			builder := message.NewSendFrameBuilder().
				Destination(destination).
				ContentType(contentType).
				Body([]byte(body))

			if autoReceipt {
				builder = builder.Receipt(uuid.NewString())
			}

			f, err := builder.Build()
			if err != nil {
				log.WithError(err).Error("could not build SEND frame")
				errFrame := message.NewErrorFrameFromMessage(err.Error())
				os.Stdout.Write(message.Render(errFrame))
				return err
			}

			os.Stdout.Write(message.Render(f))
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "destination to send to (required)")
	cmd.Flags().StringVar(&contentType, "content-type", "", "MIME content-type of the body")
	cmd.Flags().StringVar(&body, "body", "", "message body")
	cmd.Flags().BoolVar(&autoReceipt, "receipt", false, "attach an auto-generated receipt header")
	cmd.MarkFlagRequired("destination")

	return cmd
}
