// Package batch - dispatcher contract tests
// The dispatcher must be total: any input batch yields an output batch
// with the same key set, failures degrading to the sentinel per entry.
package batch

import (
	"math"
	"testing"
)

func TestComputeLiteralScenarios(t *testing.T) {
	cases := []struct {
		name   string
		prices map[string]float64
		want   map[string]float64
	}{
		{
			name:   "apollo base band plus surcharges",
			prices: map[string]float64{"apollopharmacy": 100},
			want:   map[string]float64{"apollopharmacy": 109},
		},
		{
			name:   "apollo upper band plus surcharges",
			prices: map[string]float64{"apollopharmacy": 260},
			want:   map[string]float64{"apollopharmacy": 39},
		},
		{
			name:   "apollo zero band keeps surcharges",
			prices: map[string]float64{"apollopharmacy": 300},
			want:   map[string]float64{"apollopharmacy": 10},
		},
		{
			name:   "mrmed inclusive boundary",
			prices: map[string]float64{"mrmed": 1500},
			want:   map[string]float64{"mrmed": 89},
		},
		{
			name:   "mrmed past inclusive boundary",
			prices: map[string]float64{"mrmed": 1501},
			want:   map[string]float64{"mrmed": 59},
		},
		{
			name:   "unknown vendor",
			prices: map[string]float64{"unknownvendor": 500},
			want:   map[string]float64{"unknownvendor": math.NaN()},
		},
		{
			name:   "invalid price",
			prices: map[string]float64{"medkart": 0},
			want:   map[string]float64{"medkart": math.NaN()},
		},
		{
			name:   "mixed batch with independent outcomes",
			prices: map[string]float64{"truemeds": 399, "truemeds2": 50},
			want:   map[string]float64{"truemeds": 39, "truemeds2": math.NaN()},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.prices)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tc.want))
			}
			for vendor, want := range tc.want {
				charge, ok := got[vendor]
				if !ok {
					t.Fatalf("missing entry for %s", vendor)
				}
				if math.IsNaN(want) {
					if !math.IsNaN(charge) {
						t.Errorf("%s = %v, want sentinel", vendor, charge)
					}
					continue
				}
				if charge != want {
					t.Errorf("%s = %v, want %v", vendor, charge, want)
				}
			}
		})
	}
}

func TestComputeTotality(t *testing.T) {
	batches := []map[string]float64{
		{},
		{"apollopharmacy": 100},
		{"APOLLOPHARMACY": 100},
		{"netmeds": -50, "tata1mg": 0, "pharmeasy": math.NaN()},
		{"a": 1, "b": 2, "c": 3},
		{"wellnessforever": math.Inf(1), "mrmed": math.Inf(-1)},
	}

	for _, prices := range batches {
		charges := Compute(prices)
		if len(charges) != len(prices) {
			t.Fatalf("Compute(%v): got %d entries, want %d", prices, len(charges), len(prices))
		}
		for vendor := range prices {
			if _, ok := charges[vendor]; !ok {
				t.Errorf("Compute(%v): missing key %s", prices, vendor)
			}
		}
	}
}

func TestComputeChargesNonNegative(t *testing.T) {
	prices := map[string]float64{
		"apollopharmacy":  100,
		"kauverymeds":     10,
		"medkart":         10,
		"mrmed":           3000,
		"netmeds":         500,
		"pharmeasy":       400,
		"tata1mg":         250,
		"truemeds":        600,
		"wellnessforever": 2000,
	}

	for vendor, charge := range Compute(prices) {
		if IsUnavailable(charge) {
			t.Errorf("%s unexpectedly unavailable", vendor)
			continue
		}
		if charge < 0 {
			t.Errorf("%s charge %v is negative", vendor, charge)
		}
	}
}

func TestComputeInvalidPriceSentinelAllVendors(t *testing.T) {
	for _, price := range []float64{0, -5} {
		prices := map[string]float64{
			"apollopharmacy":  price,
			"kauverymeds":     price,
			"medkart":         price,
			"mrmed":           price,
			"netmeds":         price,
			"pharmeasy":       price,
			"tata1mg":         price,
			"truemeds":        price,
			"wellnessforever": price,
		}
		for vendor, charge := range Compute(prices) {
			if !IsUnavailable(charge) {
				t.Errorf("%s with price %v: got %v, want sentinel", vendor, price, charge)
			}
		}
	}
}

func TestUnavailableSentinel(t *testing.T) {
	if !IsUnavailable(Unavailable()) {
		t.Error("Unavailable() is not recognized by IsUnavailable")
	}
	if IsUnavailable(0) {
		t.Error("zero charge must be distinct from the sentinel")
	}
}
