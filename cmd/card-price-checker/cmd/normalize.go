package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-checker/pkg/query"
	"github.com/donaldgifford/card-price-checker/pkg/title"
)

func normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <title>",
		Short: "Show the identity and queries derived from a title",
		Long:  "Parses the title and prints the ranked catalog queries without making any requests.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			m := cfg.Matching
			id := title.New(
				title.WithLanguages(m.Languages),
				title.WithSetDenylist(m.SetDenylist),
				title.WithDefaultLanguage(m.DefaultLanguage),
			).Normalize(args[0])
			plan := query.NewBuilder(query.WithFranchise(m.Franchise)).Build(id)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Subject:\t%s\n", id.Subject)
			fmt.Fprintf(tw, "Card number:\t%s\n", id.CardNumber)
			fmt.Fprintf(tw, "Set marker:\t%s\n", id.SetMarker)
			fmt.Fprintf(tw, "Year:\t%s\n", id.Year)
			fmt.Fprintf(tw, "Language:\t%s\n", id.Language)
			fmt.Fprintf(tw, "Cleaned:\t%s\n\n", id.Cleaned)
			fmt.Fprintf(tw, "TIER\tKIND\tQUERY\n")
			for _, q := range plan.Primary {
				fmt.Fprintf(tw, "primary\t%s\t%s\n", q.Kind, q.Text)
			}
			for _, q := range plan.Fallback {
				fmt.Fprintf(tw, "fallback\t%s\t%s\n", q.Kind, q.Text)
			}
			return tw.Flush()
		},
	}
}
