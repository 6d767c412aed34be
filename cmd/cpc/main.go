// Package main is the entry point for the cpc CLI client.
package main

import (
	"github.com/donaldgifford/card-price-checker/cmd/cpc/cmd"
)

func main() {
	cmd.Execute()
}
