// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pharmacy-cost/core/batch"
	"pharmacy-cost/core/output"
	"pharmacy-cost/internal/config"
)

var (
	quoteJSON   string
	quoteFormat string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [vendor=price ...]",
	Short: "Compute delivery charges for a basket of vendor prices",
	Long: `Compute the hidden/delivery charge for each vendor in the basket.

Entries for unknown vendors or prices below 1 render as "unavailable"
without affecting the other entries.

Examples:
  pharmacy-cost quote apollopharmacy=100
  pharmacy-cost quote netmeds=250 netmeds2=250
  pharmacy-cost quote --json '{"mrmed": 1500, "truemeds": 399}'`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteJSON, "json", "j", "", "price batch as a JSON object of vendor to price")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json); defaults to config")
}

func runQuote(cmd *cobra.Command, args []string) error {
	prices, err := parseBatch(args)
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		return fmt.Errorf("no prices given; pass vendor=price arguments or --json")
	}

	format := output.Format(quoteFormat)
	if format == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}

	charges := batch.Compute(prices)
	switch format {
	case output.FormatJSON:
		rendered, err := output.RenderChargesJSON(charges)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
	case output.FormatCLI, "":
		fmt.Print(output.RenderCharges(charges))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}

func parseBatch(args []string) (map[string]float64, error) {
	prices := make(map[string]float64)

	if quoteJSON != "" {
		if err := json.Unmarshal([]byte(quoteJSON), &prices); err != nil {
			return nil, fmt.Errorf("invalid --json batch: %w", err)
		}
	}

	for _, arg := range args {
		vendor, raw, ok := strings.Cut(arg, "=")
		if !ok || vendor == "" {
			return nil, fmt.Errorf("invalid entry %q: expected vendor=price", arg)
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price in %q: %w", arg, err)
		}
		prices[vendor] = price
	}

	return prices, nil
}
