// Package tariff defines the fixed delivery fee schedules for every
// supported pharmacy vendor. Schedules are business constants: a
// schedule maps a listed price (MRP) to a base hidden cost via ordered
// price bands, plus any fixed surcharges the vendor adds on top.
package tariff

import (
	"math"

	"github.com/shopspring/decimal"

	"pharmacy-cost/internal/errors"
)

// MinPrice is the smallest listed price any schedule accepts
const MinPrice = 1

// Vendor identifies a pharmacy vendor
type Vendor string

const (
	VendorApolloPharmacy  Vendor = "apollopharmacy"
	VendorKauveryMeds     Vendor = "kauverymeds"
	VendorMedkart         Vendor = "medkart"
	VendorMrMed           Vendor = "mrmed"
	VendorNetmeds         Vendor = "netmeds"
	VendorPharmEasy       Vendor = "pharmeasy"
	VendorTata1mg         Vendor = "tata1mg"
	VendorTruemeds        Vendor = "truemeds"
	VendorWellnessForever Vendor = "wellnessforever"
)

// String returns the string representation
func (v Vendor) String() string {
	return string(v)
}

// Band maps a contiguous price range to a fixed base fee.
// A band matches when price < UpTo, or price <= UpTo when Inclusive is
// set. Bands are evaluated in order; the first match wins. The terminal
// band of every schedule is open-ended (UpTo is +Inf).
type Band struct {
	// UpTo is the upper price limit of the band
	UpTo float64

	// Inclusive makes the limit part of the band (<= instead of <)
	Inclusive bool

	// Fee is the base hidden cost charged within the band
	Fee decimal.Decimal
}

// Open reports whether the band is the open-ended terminal band
func (b Band) Open() bool {
	return math.IsInf(b.UpTo, 1)
}

// Surcharge is a fixed add-on applied regardless of the matched band
type Surcharge struct {
	// Name labels the surcharge (e.g. "platform", "handling")
	Name string

	// Amount is the fixed fee added to the base cost
	Amount decimal.Decimal
}

// Schedule is one vendor's complete fee schedule
type Schedule struct {
	// Vendor is the owning vendor
	Vendor Vendor

	// Bands are the price bands in ascending order of UpTo
	Bands []Band

	// Surcharges are fixed add-ons summed onto every charge
	Surcharges []Surcharge
}

// Charge computes the total hidden charge for a listed price.
// The price must be at least MinPrice; anything below (or NaN) is an
// INVALID_PRICE error, never coerced.
func (s Schedule) Charge(price float64) (decimal.Decimal, error) {
	if math.IsNaN(price) || price < MinPrice {
		return decimal.Decimal{}, errors.InvalidPrice(price)
	}

	total := s.baseFee(price)
	for _, sur := range s.Surcharges {
		total = total.Add(sur.Amount)
	}
	return total, nil
}

func (s Schedule) baseFee(price float64) decimal.Decimal {
	for _, band := range s.Bands {
		// The open terminal band matches any price, +Inf included
		if band.Open() || price < band.UpTo || (band.Inclusive && price == band.UpTo) {
			return band.Fee
		}
	}
	return decimal.Zero
}

// Band table constructors

func fee(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

// below builds an exclusive band: price < limit
func below(limit float64, f decimal.Decimal) Band {
	return Band{UpTo: limit, Fee: f}
}

// through builds an inclusive band: price <= limit
func through(limit float64, f decimal.Decimal) Band {
	return Band{UpTo: limit, Inclusive: true, Fee: f}
}

// above builds the open-ended terminal band
func above(f decimal.Decimal) Band {
	return Band{UpTo: math.Inf(1), Fee: f}
}
