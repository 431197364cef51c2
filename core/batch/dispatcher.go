// Package batch dispatches a basket of vendor prices across the tariff
// registry. The dispatcher is a total function: it always returns one
// charge per input entry and never fails as a whole. Failures degrade
// to the NaN sentinel for that entry alone, with a log line as the only
// diagnostic.
package batch

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pharmacy-cost/core/tariff"
	"pharmacy-cost/internal/errors"
	"pharmacy-cost/internal/logging"
)

// Unavailable is the sentinel charge meaning "could not be computed"
func Unavailable() float64 {
	return math.NaN()
}

// IsUnavailable reports whether a charge is the sentinel
func IsUnavailable(charge float64) bool {
	return math.IsNaN(charge)
}

// Compute prices every entry of the batch independently. The result
// has exactly the same key set as the input: unknown vendors and
// invalid prices yield the sentinel instead of removing the entry or
// failing the batch.
func Compute(prices map[string]float64) map[string]float64 {
	charges := make(map[string]float64, len(prices))

	for vendor, price := range prices {
		charge, err := quote(vendor, price)
		if err == nil {
			charges[vendor] = charge.InexactFloat64()
			continue
		}

		switch {
		case errors.IsType(err, errors.TypeUnknownVendor):
			logging.Warn("unknown pharmacy vendor",
				zap.String("vendor", vendor))
		case errors.IsType(err, errors.TypeInvalidPrice):
			logging.Warn("invalid price for vendor",
				zap.String("vendor", vendor),
				zap.Float64("price", price),
				zap.Error(err))
		default:
			logging.Error("charge computation failed",
				zap.String("vendor", vendor),
				zap.Float64("price", price),
				zap.Error(err))
		}
		charges[vendor] = Unavailable()
	}

	return charges
}

// quote evaluates a single (vendor, price) entry. The recover converts
// a panicking rule into an internal error; with the fixed registry this
// path is unreachable, but an unhandled panic here would turn one bad
// entry into a whole-batch failure.
func quote(vendor string, price float64) (charge decimal.Decimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Internal(fmt.Sprintf("tariff rule panicked: %v", r), nil)
		}
	}()

	schedule, ok := tariff.Lookup(vendor)
	if !ok {
		return decimal.Decimal{}, errors.UnknownVendor(vendor)
	}

	return schedule.Charge(price)
}
