// Package api - HTTP handler for delivery charge calculation
// The handler wraps the batch engine; it contains no charge logic.
package api

import (
	"fmt"
	"time"

	"pharmacy-cost/core/batch"
	"pharmacy-cost/core/tariff"
)

// Handler executes cost requests against the batch engine
type Handler struct {
	version string
}

// NewHandler creates a new handler
func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// execute runs the batch computation and assembles the response.
// It cannot fail: the engine is total over any price batch.
func (h *Handler) execute(requestID string, req *CostRequest) *CostResponse {
	start := time.Now()

	charges := batch.Compute(req.Prices)

	costs := make(map[string]Charge, len(charges))
	for vendor, charge := range charges {
		costs[vendor] = Charge(charge)
	}

	return &CostResponse{
		DeliveryCosts: costs,
		Metadata: &ResponseMetadata{
			RequestID:     requestID,
			EngineVersion: h.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}
}

// vendorCatalog describes every registered fee schedule
func vendorCatalog() []VendorInfo {
	schedules := tariff.Schedules()
	infos := make([]VendorInfo, 0, len(schedules))

	for _, s := range schedules {
		info := VendorInfo{Name: s.Vendor.String()}
		for _, band := range s.Bands {
			bi := BandInfo{Fee: band.Fee.String(), Inclusive: band.Inclusive}
			if !band.Open() {
				limit := band.UpTo
				bi.UpTo = &limit
			}
			info.Bands = append(info.Bands, bi)
		}
		for _, sur := range s.Surcharges {
			info.Surcharges = append(info.Surcharges, SurchargeInfo{
				Name:   sur.Name,
				Amount: sur.Amount.String(),
			})
		}
		infos = append(infos, info)
	}

	return infos
}

func generateRequestID() string {
	return fmt.Sprintf("cost-%d", time.Now().UnixNano())
}
