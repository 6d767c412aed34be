package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-checker/internal/present"
)

func popupCmd() *cobra.Command {
	var (
		wait     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "popup [title]",
		Short: "Show or open the popup",
		Long: "Without arguments prints the current popup state. With a title, opens the\n" +
			"popup for it; --wait polls until the lookup has finished.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx := cmd.Context()

			if len(args) == 1 {
				s, err := c.OpenPopup(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "opened session %s (token %d)\n", s.ID, s.Token)
			}

			for {
				snap, err := c.Popup(ctx)
				if err != nil {
					return err
				}
				if !wait || !snap.Pending {
					if jsonOutput() {
						return outputJSON(snap)
					}
					return present.WriteText(os.Stdout, snap.Patch)
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(interval):
				}
			}
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the lookup completes")
	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "poll interval with --wait")

	return cmd
}
