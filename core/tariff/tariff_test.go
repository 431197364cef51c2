// Package tariff - fee schedule tests
// Boundary prices are exercised exactly and just either side, since
// the per-vendor < vs <= semantics are intentional business rules.
package tariff

import (
	"math"
	"testing"
)

func charge(t *testing.T, vendor Vendor, price float64) float64 {
	t.Helper()
	schedule, ok := Lookup(string(vendor))
	if !ok {
		t.Fatalf("vendor %s not registered", vendor)
	}
	c, err := schedule.Charge(price)
	if err != nil {
		t.Fatalf("Charge(%s, %v) returned error: %v", vendor, price, err)
	}
	return c.InexactFloat64()
}

func TestScheduleCharges(t *testing.T) {
	cases := []struct {
		vendor Vendor
		price  float64
		want   float64
	}{
		// apollopharmacy: bands + platform 4 + handling 6
		{VendorApolloPharmacy, 1, 109},
		{VendorApolloPharmacy, 100, 109},
		{VendorApolloPharmacy, 149.99, 109},
		{VendorApolloPharmacy, 150, 89},
		{VendorApolloPharmacy, 249.99, 89},
		{VendorApolloPharmacy, 250, 39},
		{VendorApolloPharmacy, 299.99, 39},
		{VendorApolloPharmacy, 260, 39},
		{VendorApolloPharmacy, 300, 10},
		{VendorApolloPharmacy, 100000, 10},

		// kauverymeds and medkart: flat fees
		{VendorKauveryMeds, 1, 75},
		{VendorKauveryMeds, 9999, 75},
		{VendorMedkart, 1, 59},
		{VendorMedkart, 9999, 59},

		// mrmed: first band inclusive at 1500
		{VendorMrMed, 1, 89},
		{VendorMrMed, 1500, 89},
		{VendorMrMed, 1500.01, 59},
		{VendorMrMed, 1501, 59},
		{VendorMrMed, 1699.99, 59},
		{VendorMrMed, 1700, 39},
		{VendorMrMed, 1999.99, 39},
		{VendorMrMed, 2000, 0},

		// netmeds: both limits inclusive
		{VendorNetmeds, 250, 69},
		{VendorNetmeds, 250.01, 49},
		{VendorNetmeds, 350, 49},
		{VendorNetmeds, 350.01, 0},

		// pharmeasy: bands + platform 7
		{VendorPharmEasy, 299.99, 106},
		{VendorPharmEasy, 300, 82},
		{VendorPharmEasy, 349.99, 82},
		{VendorPharmEasy, 350, 7},

		// tata1mg: bands + platform 4
		{VendorTata1mg, 99.99, 83},
		{VendorTata1mg, 100, 79},
		{VendorTata1mg, 199.99, 79},
		{VendorTata1mg, 200, 4},

		// truemeds
		{VendorTruemeds, 399, 39},
		{VendorTruemeds, 399.99, 39},
		{VendorTruemeds, 400, 29},
		{VendorTruemeds, 499.99, 29},
		{VendorTruemeds, 500, 0},

		// wellnessforever
		{VendorWellnessForever, 999.99, 50},
		{VendorWellnessForever, 1000, 0},
	}

	for _, tc := range cases {
		got := charge(t, tc.vendor, tc.price)
		if got != tc.want {
			t.Errorf("Charge(%s, %v) = %v, want %v", tc.vendor, tc.price, got, tc.want)
		}
	}
}

// TestInfinitePriceMatchesTerminalBand pins the terminal band for a
// price of +Inf: flat-fee vendors keep their constant and banded
// vendors keep their surcharges, never a fall-through zero.
func TestInfinitePriceMatchesTerminalBand(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		vendor Vendor
		want   float64
	}{
		{VendorKauveryMeds, 75},
		{VendorMedkart, 59},
		{VendorApolloPharmacy, 10},
		{VendorPharmEasy, 7},
		{VendorWellnessForever, 0},
	}
	for _, tc := range cases {
		if got := charge(t, tc.vendor, inf); got != tc.want {
			t.Errorf("Charge(%s, +Inf) = %v, want %v", tc.vendor, got, tc.want)
		}
	}
}

func TestChargeNonNegative(t *testing.T) {
	prices := []float64{1, 1.5, 99, 150, 250, 350, 500, 1000, 1500, 2000, 1e9}
	for _, schedule := range Schedules() {
		for _, price := range prices {
			c, err := schedule.Charge(price)
			if err != nil {
				t.Fatalf("Charge(%s, %v) returned error: %v", schedule.Vendor, price, err)
			}
			if c.IsNegative() {
				t.Errorf("Charge(%s, %v) = %s, want non-negative", schedule.Vendor, price, c)
			}
		}
	}
}

func TestInvalidPriceRejected(t *testing.T) {
	invalid := []float64{0, -5, 0.99, math.NaN()}
	for _, schedule := range Schedules() {
		for _, price := range invalid {
			_, err := schedule.Charge(price)
			if err == nil {
				t.Errorf("Charge(%s, %v) accepted an invalid price", schedule.Vendor, price)
			}
		}
	}
}

// TestBandTablesWellFormed proves the band tables are disjoint and
// exhaustive over [1, inf): limits strictly ascend, the terminal band
// is open-ended, and no band has a negative fee.
func TestBandTablesWellFormed(t *testing.T) {
	for _, schedule := range Schedules() {
		if len(schedule.Bands) == 0 {
			t.Fatalf("%s has no bands", schedule.Vendor)
		}

		prev := math.Inf(-1)
		for i, band := range schedule.Bands {
			if band.UpTo <= prev {
				t.Errorf("%s band %d limit %v does not ascend past %v", schedule.Vendor, i, band.UpTo, prev)
			}
			if band.Fee.IsNegative() {
				t.Errorf("%s band %d has negative fee %s", schedule.Vendor, i, band.Fee)
			}
			if band.Open() && i != len(schedule.Bands)-1 {
				t.Errorf("%s band %d is open-ended but not terminal", schedule.Vendor, i)
			}
			prev = band.UpTo
		}

		last := schedule.Bands[len(schedule.Bands)-1]
		if !last.Open() {
			t.Errorf("%s terminal band is not open-ended", schedule.Vendor)
		}
	}
}

// TestExactlyOneBandMatches sweeps prices across every schedule and
// checks that first-match evaluation and interval membership agree:
// each valid price belongs to exactly one band interval.
func TestExactlyOneBandMatches(t *testing.T) {
	for _, schedule := range Schedules() {
		for price := 1.0; price <= 2500; price += 0.25 {
			matches := 0
			lower := math.Inf(-1)
			lowerInclusive := false
			for _, band := range schedule.Bands {
				aboveLower := price > lower || (price == lower && !lowerInclusive)
				belowUpper := price < band.UpTo || (band.Inclusive && price == band.UpTo)
				if aboveLower && belowUpper {
					matches++
				}
				lower = band.UpTo
				lowerInclusive = band.Inclusive
			}
			if matches != 1 {
				t.Fatalf("%s: price %v matched %d bands, want exactly 1", schedule.Vendor, price, matches)
			}
		}
	}
}

func TestRegistry(t *testing.T) {
	vendors := Vendors()
	if len(vendors) != 9 {
		t.Fatalf("registry has %d vendors, want 9", len(vendors))
	}

	if _, ok := Lookup("apollopharmacy"); !ok {
		t.Error("apollopharmacy missing from registry")
	}
	if _, ok := Lookup("ApolloPharmacy"); ok {
		t.Error("registry lookup should be case-sensitive")
	}
	if _, ok := Lookup("unknownvendor"); ok {
		t.Error("unknownvendor should not resolve")
	}
}
