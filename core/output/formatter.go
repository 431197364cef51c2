// Package output renders charge batches and fee schedules as
// human-readable text for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"pharmacy-cost/core/tariff"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// RenderCharges formats a computed charge batch as an aligned table,
// sorted by vendor name. Sentinel entries render as "unavailable".
func RenderCharges(charges map[string]float64) string {
	vendors := make([]string, 0, len(charges))
	width := 0
	for v := range charges {
		vendors = append(vendors, v)
		if len(v) > width {
			width = len(v)
		}
	}
	sort.Strings(vendors)

	var b strings.Builder
	for _, v := range vendors {
		charge := charges[v]
		if math.IsNaN(charge) {
			fmt.Fprintf(&b, "%-*s  unavailable\n", width, v)
			continue
		}
		fmt.Fprintf(&b, "%-*s  ₹%s\n", width, v, decimal.NewFromFloat(charge).String())
	}
	return b.String()
}

// RenderChargesJSON encodes a charge batch as indented JSON. Sentinel
// entries encode as null, matching the HTTP wire contract.
func RenderChargesJSON(charges map[string]float64) (string, error) {
	out := make(map[string]interface{}, len(charges))
	for vendor, charge := range charges {
		if math.IsNaN(charge) {
			out[vendor] = nil
			continue
		}
		out[vendor] = charge
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// RenderSchedules formats vendor fee schedules, one block per vendor.
func RenderSchedules(schedules []tariff.Schedule) string {
	var b strings.Builder
	for i, s := range schedules {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n", s.Vendor)
		for _, band := range s.Bands {
			switch {
			case band.Open():
				fmt.Fprintf(&b, "  otherwise      ₹%s\n", band.Fee)
			case band.Inclusive:
				fmt.Fprintf(&b, "  price <= %-5s ₹%s\n", trimFloat(band.UpTo), band.Fee)
			default:
				fmt.Fprintf(&b, "  price < %-6s ₹%s\n", trimFloat(band.UpTo), band.Fee)
			}
		}
		for _, sur := range s.Surcharges {
			fmt.Fprintf(&b, "  + %s ₹%s\n", sur.Name, sur.Amount)
		}
	}
	return b.String()
}

func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
