package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/phone"
)

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <phone>",
		Short: "Fetch the minutes balance for a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := phone.Digits(args[0])
			if digits == "" {
				return errors.New("please enter a phone number")
			}

			record, err := client.Lookup(cmd.Context(), digits)
			if err != nil {
				return fmt.Errorf("%s: %s", domain.Category(err), domain.ErrorMessage(err))
			}

			if asJSON {
				fmt.Println(record.FormatJSON())
				return nil
			}

			fmt.Printf("Status: %s\n", record.Status())
			for key, value := range record {
				if key == "status" {
					continue
				}
				fmt.Printf("%s: %v\n", key, value)
			}
			return nil
		},
	}
	return cmd
}
