// Package main is the entry point for the card-price-checker server.
package main

import (
	"os"

	"github.com/donaldgifford/card-price-checker/cmd/card-price-checker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
