// Package api - API types for delivery charge calculation
// These types define the contract for the /cost endpoint.
// The API is stateless and deterministic.
package api

import (
	"encoding/json"
	"math"
)

// CostRequest is the input to POST /cost
type CostRequest struct {
	// Prices maps vendor name to listed price (MRP). Keys are not
	// required to be recognized vendors.
	Prices map[string]float64 `json:"prices"`
}

// Charge is a computed delivery charge. NaN means the charge could not
// be computed for that vendor/price combination; JSON has no NaN, so
// the sentinel encodes as null on the wire.
type Charge float64

// MarshalJSON implements json.Marshaler
func (c Charge) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(c)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Charge) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Charge(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Charge(f)
	return nil
}

// CostResponse is the output of POST /cost
type CostResponse struct {
	// DeliveryCosts maps every input vendor name to its charge
	DeliveryCosts map[string]Charge `json:"delivery_costs"`

	// Metadata describes the request handling
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata contains request tracking information
type ResponseMetadata struct {
	RequestID     string `json:"request_id"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// VendorInfo describes one vendor's fee schedule for GET /vendors
type VendorInfo struct {
	// Name is the registry key for the vendor
	Name string `json:"name"`

	// Bands are the price bands in match order
	Bands []BandInfo `json:"bands"`

	// Surcharges are fixed add-ons applied to every charge
	Surcharges []SurchargeInfo `json:"surcharges,omitempty"`
}

// BandInfo is one price band of a fee schedule
type BandInfo struct {
	// UpTo is the upper price limit; nil for the open-ended band
	UpTo *float64 `json:"up_to,omitempty"`

	// Inclusive marks the limit as part of the band
	Inclusive bool `json:"inclusive,omitempty"`

	// Fee is the base hidden cost, as a decimal string
	Fee string `json:"fee"`
}

// SurchargeInfo is a fixed add-on fee
type SurchargeInfo struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ErrorDetail provides error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
