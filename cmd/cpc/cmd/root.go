// Package cmd implements the cpc CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/card-price-checker/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "cpc",
		Short: "CLI client for Card Price Checker",
		Long: "cpc is a command-line client for the Card Price Checker API.\n" +
			"It looks up card titles, inspects query plans, fetches product\n" +
			"statistics, and reports the catalog request budget.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.cpc.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("cookie", "", "Cookie header forwarded to the catalog")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("cookie", rootCmd.PersistentFlags().Lookup("cookie")))

	rootCmd.AddCommand(lookupCmd())
	rootCmd.AddCommand(normalizeCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(popupCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cpc")
	}

	viper.SetEnvPrefix("CPC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(
		viper.GetString("server"),
		apiclient.WithCatalogCookie(viper.GetString("cookie")),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
