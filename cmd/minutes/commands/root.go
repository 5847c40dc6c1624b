package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
)

var (
	apiURL         string
	timeoutSeconds uint16
	asJSON         bool

	client *minutes.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:   "minutes",
		Short: "Look up minutes balances from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := minutes.NewClient(minutes.ClientConfig{
				BaseURL: apiURL,
				Timeout: time.Duration(timeoutSeconds) * time.Second,
				Logger:  slog.New(slog.DiscardHandler),
			})
			if err != nil {
				return err
			}
			client = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", "https://backend.kiraniapp.com", "minutes API base URL")
	root.PersistentFlags().Uint16Var(&timeoutSeconds, "timeout", 30, "request timeout in seconds (0 disables)")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print the raw record as JSON")

	root.AddCommand(lookupCmd())
	return root.Execute()
}
