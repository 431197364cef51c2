// Package tariff - fixed vendor registry
package tariff

import "sort"

// registry is the closed set of vendor fee schedules. It is built once
// and never mutated; vendor names are case-sensitive.
var registry = map[Vendor]Schedule{
	VendorApolloPharmacy: {
		Vendor: VendorApolloPharmacy,
		Bands: []Band{
			below(150, fee(99)),
			below(250, fee(79)),
			below(300, fee(29)),
			above(fee(0)),
		},
		Surcharges: []Surcharge{
			{Name: "platform", Amount: fee(4)},
			{Name: "handling", Amount: fee(6)},
		},
	},
	VendorKauveryMeds: {
		Vendor: VendorKauveryMeds,
		Bands:  []Band{above(fee(75))},
	},
	VendorMedkart: {
		Vendor: VendorMedkart,
		Bands:  []Band{above(fee(59))},
	},
	VendorMrMed: {
		Vendor: VendorMrMed,
		Bands: []Band{
			through(1500, fee(89)),
			below(1700, fee(59)),
			below(2000, fee(39)),
			above(fee(0)),
		},
	},
	VendorNetmeds: {
		Vendor: VendorNetmeds,
		Bands: []Band{
			through(250, fee(69)),
			through(350, fee(49)),
			above(fee(0)),
		},
	},
	VendorPharmEasy: {
		Vendor: VendorPharmEasy,
		Bands: []Band{
			below(300, fee(99)),
			below(350, fee(75)),
			above(fee(0)),
		},
		Surcharges: []Surcharge{
			{Name: "platform", Amount: fee(7)},
		},
	},
	VendorTata1mg: {
		Vendor: VendorTata1mg,
		Bands: []Band{
			below(100, fee(79)),
			below(200, fee(75)),
			above(fee(0)),
		},
		Surcharges: []Surcharge{
			{Name: "platform", Amount: fee(4)},
		},
	},
	VendorTruemeds: {
		Vendor: VendorTruemeds,
		Bands: []Band{
			below(400, fee(39)),
			below(500, fee(29)),
			above(fee(0)),
		},
	},
	VendorWellnessForever: {
		Vendor: VendorWellnessForever,
		Bands: []Band{
			below(1000, fee(50)),
			above(fee(0)),
		},
	},
}

// Lookup returns the fee schedule for a vendor name
func Lookup(name string) (Schedule, bool) {
	schedule, ok := registry[Vendor(name)]
	return schedule, ok
}

// Vendors returns all registered vendor names in sorted order
func Vendors() []Vendor {
	vendors := make([]Vendor, 0, len(registry))
	for v := range registry {
		vendors = append(vendors, v)
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i] < vendors[j] })
	return vendors
}

// Schedules returns all fee schedules ordered by vendor name
func Schedules() []Schedule {
	vendors := Vendors()
	schedules := make([]Schedule, 0, len(vendors))
	for _, v := range vendors {
		schedules = append(schedules, registry[v])
	}
	return schedules
}
