package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-checker/internal/engine"
	"github.com/donaldgifford/card-price-checker/internal/pagetitle"
	"github.com/donaldgifford/card-price-checker/internal/present"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

func lookupCommand() *cobra.Command {
	var (
		pageURL string
		cookie  string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [title]",
		Short: "Look up a card title against the catalog",
		Long: "Runs the full pipeline in-process. With --url the title is read from the\n" +
			"marketplace page using a headless browser instead of the argument.",
		Example: `  card-price-checker lookup "PSA 10 2023 Pokemon Japanese Pikachu #025/100"
  card-price-checker lookup --url https://snkrdunk.com/en/trading-cards/104221 --json`,
		Args: func(_ *cobra.Command, args []string) error {
			if pageURL == "" && len(args) != 1 {
				return errors.New("requires a title argument or --url")
			}
			if pageURL != "" && len(args) > 0 {
				return errors.New("a title argument and --url are mutually exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			p, err := newPipeline(cfg, logger)
			if err != nil {
				return err
			}

			ctx := snkrdunk.ContextWithCookieHeader(cmd.Context(), cookie)

			var res domain.LookupResult
			if pageURL != "" {
				reader := pagetitle.NewReader(
					pagetitle.WithBrowserBin(cfg.Browser.Bin),
					pagetitle.WithControlURL(cfg.Browser.ControlURL),
					pagetitle.WithTimeout(cfg.Browser.Timeout),
					pagetitle.WithLogger(logger),
				)
				defer func() {
					if cerr := reader.Close(); cerr != nil {
						logger.Warn("closing browser", "error", cerr)
					}
				}()

				res, err = p.engine.LookupPage(ctx, reader, pageURL)
				if err != nil && !errors.Is(err, engine.ErrTitleUnavailable) {
					return err
				}
				if err != nil {
					logger.Warn("reading page title", "url", pageURL, "error", err)
				}
			} else {
				res = p.engine.Lookup(ctx, args[0])
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(struct {
					Result domain.LookupResult `json:"result"`
					Patch  present.Patch       `json:"patch"`
				}{res, present.RenderResult(res)}); err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				return nil
			}
			return present.WriteText(out, present.RenderResult(res))
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "read the title from this product page")
	cmd.Flags().StringVar(&cookie, "cookie", "", "Cookie header forwarded to the catalog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")

	return cmd
}
