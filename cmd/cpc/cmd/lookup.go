package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-checker/internal/present"
)

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <title>",
		Short: "Look up a card title",
		Long:  "Matches the title against the catalog and shows graded price statistics.",
		Example: `  cpc lookup "PSA 10 2023 Pokemon Japanese Pikachu #025/100"
  cpc lookup "PSA 10 SV2a 173/165 Charizard ex" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return present.WriteText(os.Stdout, resp.Patch)
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <title>",
		Short: "Show the identity and queries derived from a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Normalize(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printPlan(os.Stdout, resp)
		},
	}
}
