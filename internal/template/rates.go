package template

import "math"

// productionRates holds working days per 1000 SF by rate code and
// building type, calibrated for 20,000-150,000 SF commercial work.
var productionRates = map[string]map[string]float64{
	// Sitework and foundations
	"EARTHWORK":        {"office": 0.25, "retail": 0.20, "warehouse": 0.15, "medical": 0.30, "education": 0.25, "mixed_use": 0.25},
	"UNDERGROUND_UTIL": {"office": 0.30, "retail": 0.25, "warehouse": 0.15, "medical": 0.40, "education": 0.30, "mixed_use": 0.30},
	"FOUNDATIONS":      {"office": 0.35, "retail": 0.30, "warehouse": 0.20, "medical": 0.40, "education": 0.35, "mixed_use": 0.35},
	"SLAB_ON_GRADE":    {"office": 0.15, "retail": 0.15, "warehouse": 0.10, "medical": 0.20, "education": 0.15, "mixed_use": 0.15},

	// Structure
	"STRUCTURAL_STEEL":   {"office": 0.40, "retail": 0.30, "warehouse": 0.20, "medical": 0.45, "education": 0.35, "mixed_use": 0.40},
	"METAL_DECK":         {"office": 0.10, "retail": 0.10, "warehouse": 0.08, "medical": 0.12, "education": 0.10, "mixed_use": 0.10},
	"CONCRETE_STRUCTURE": {"office": 0.25, "retail": 0.20, "warehouse": 0.10, "medical": 0.30, "education": 0.25, "mixed_use": 0.25},
	"MASONRY":            {"office": 0.20, "retail": 0.25, "warehouse": 0.15, "medical": 0.25, "education": 0.25, "mixed_use": 0.22},

	// Envelope
	"ROOFING":            {"office": 0.15, "retail": 0.15, "warehouse": 0.10, "medical": 0.18, "education": 0.15, "mixed_use": 0.15},
	"EXTERIOR_WALL":      {"office": 0.25, "retail": 0.20, "warehouse": 0.15, "medical": 0.30, "education": 0.25, "mixed_use": 0.25},
	"WINDOWS_STOREFRONT": {"office": 0.15, "retail": 0.20, "warehouse": 0.05, "medical": 0.15, "education": 0.15, "mixed_use": 0.18},
	"WATERPROOFING":      {"office": 0.08, "retail": 0.08, "warehouse": 0.05, "medical": 0.10, "education": 0.08, "mixed_use": 0.08},

	// Interiors
	"FRAMING_DRYWALL": {"office": 0.30, "retail": 0.25, "warehouse": 0.10, "medical": 0.40, "education": 0.35, "mixed_use": 0.32},
	"DOORS_HARDWARE":  {"office": 0.08, "retail": 0.06, "warehouse": 0.03, "medical": 0.10, "education": 0.08, "mixed_use": 0.08},
	"CEILING":         {"office": 0.10, "retail": 0.10, "warehouse": 0.03, "medical": 0.12, "education": 0.10, "mixed_use": 0.10},
	"FLOORING":        {"office": 0.10, "retail": 0.12, "warehouse": 0.05, "medical": 0.15, "education": 0.12, "mixed_use": 0.12},
	"PAINTING":        {"office": 0.08, "retail": 0.08, "warehouse": 0.03, "medical": 0.10, "education": 0.08, "mixed_use": 0.08},
	"SPECIALTIES":     {"office": 0.05, "retail": 0.05, "warehouse": 0.01, "medical": 0.08, "education": 0.06, "mixed_use": 0.05},

	// MEP
	"HVAC_ROUGH":      {"office": 0.25, "retail": 0.20, "warehouse": 0.08, "medical": 0.35, "education": 0.25, "mixed_use": 0.25},
	"HVAC_TRIM":       {"office": 0.10, "retail": 0.08, "warehouse": 0.03, "medical": 0.12, "education": 0.10, "mixed_use": 0.10},
	"PLUMBING_ROUGH":  {"office": 0.15, "retail": 0.10, "warehouse": 0.04, "medical": 0.25, "education": 0.15, "mixed_use": 0.15},
	"PLUMBING_TRIM":   {"office": 0.05, "retail": 0.04, "warehouse": 0.01, "medical": 0.08, "education": 0.05, "mixed_use": 0.05},
	"ELECTRICAL_ROUGH": {"office": 0.20, "retail": 0.15, "warehouse": 0.05, "medical": 0.25, "education": 0.20, "mixed_use": 0.20},
	"ELECTRICAL_TRIM":  {"office": 0.08, "retail": 0.06, "warehouse": 0.02, "medical": 0.10, "education": 0.08, "mixed_use": 0.08},
	"FIRE_PROTECTION":  {"office": 0.08, "retail": 0.06, "warehouse": 0.04, "medical": 0.10, "education": 0.08, "mixed_use": 0.08},
	"FIRE_ALARM":       {"office": 0.05, "retail": 0.04, "warehouse": 0.02, "medical": 0.08, "education": 0.05, "mixed_use": 0.05},
	"LOW_VOLTAGE":      {"office": 0.08, "retail": 0.05, "warehouse": 0.02, "medical": 0.10, "education": 0.08, "mixed_use": 0.08},
}

// fixedDurations holds working days for work that does not scale with
// area.
var fixedDurations = map[string]int{
	"SITE_MOBILIZATION": 10,
	"PERMIT":            30,
	"SHOP_DRAWINGS":     20,
	"MATERIAL_LEAD":     45,
	"ELEVATOR":          90,
	"GENERATOR":         15,
	"SWITCHGEAR":        10,
	"AHU_STARTUP":       5,
	"TAB":               15,
	"COMMISSIONING":     10,
	"PUNCH_LIST":        15,
	"FINAL_INSPECTION":  5,
	"CO_PROCESS":        10,
}

// renoFixed holds renovation-specific fixed durations. Demo work that
// scales with area lives in renoRates instead.
var renoFixed = map[string]int{
	"TEMP_BARRIERS":     5,
	"TENANT_PROTECTION": 3,
	"HAZMAT_ABATEMENT":  15,
	"DEMO_REMOVAL":      5,
	"STRUCTURAL_MODS":   10,
	"CONCRETE_REPAIRS":  8,
}

// renoRates holds per-1000-SF rates for demolition work.
var renoRates = map[string]float64{
	"SELECTIVE_DEMO": 0.12,
	"MEP_DEMO":       0.08,
}

// rateDuration converts a production rate to working days: fixed
// durations pass through, per-SF rates scale with gross area and
// floor at two days. Unknown building types price at office rates.
func rateDuration(rateCode, buildingType string, squareFeet int) int {
	if d, ok := fixedDurations[rateCode]; ok {
		return d
	}
	rates := productionRates[rateCode]
	rate, ok := rates[buildingType]
	if !ok {
		if rate, ok = rates["office"]; !ok {
			rate = 0.15
		}
	}
	return scaledDays(rate, squareFeet)
}

func scaledDays(ratePerKSF float64, squareFeet int) int {
	d := int(math.Round(ratePerKSF * float64(squareFeet) / 1000))
	if d < 2 {
		d = 2
	}
	return d
}
