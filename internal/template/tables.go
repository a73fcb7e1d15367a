package template

import "github.com/Haston00/DABO/internal/activity"

// row is one template entry: a WBS division, an activity, its
// dependency logic, and whether it is a milestone.
type row struct {
	wbs       string
	id        string
	name      string
	preds     []activity.Predecessor
	milestone bool
}

const (
	fs = activity.FinishToStart
	ss = activity.StartToStart
)

func dep(id string, rel activity.Relation, lag int) activity.Predecessor {
	return activity.Predecessor{ActivityID: id, Relation: rel, Lag: lag}
}

func deps(ds ...activity.Predecessor) []activity.Predecessor { return ds }

// newConstruction is the full ground-up commercial build:
// foundations through certificate of occupancy.
var newConstruction = []row{
	// Preconstruction
	{"01", "A0010", "Notice to Proceed", nil, true},
	{"01", "A0020", "Permits & Approvals", deps(dep("A0010", fs, 0)), true},
	{"01", "A0030", "Shop Drawing Submittals", deps(dep("A0010", fs, 0)), false},
	{"01", "A0040", "Material Procurement", deps(dep("A0030", fs, 5)), false},

	// Sitework
	{"02", "A0100", "Mobilization", deps(dep("A0020", fs, 0)), false},
	{"02", "A0110", "Earthwork & Grading", deps(dep("A0100", fs, 0)), false},
	{"02", "A0120", "Underground Utilities", deps(dep("A0110", fs, 0)), false},

	// Foundations
	{"03", "A0200", "Foundations", deps(dep("A0120", fs, 0)), false},
	{"03", "A0210", "Slab on Grade", deps(dep("A0200", fs, 0)), false},

	// Structure
	{"05", "A0300", "Structural Steel Erection", deps(dep("A0200", fs, 0), dep("A0040", fs, 0)), false},
	{"05", "A0310", "Metal Deck & Shear Studs", deps(dep("A0300", ss, 5)), false},
	{"03", "A0320", "Elevated Concrete Decks", deps(dep("A0310", fs, 0)), false},

	// Envelope
	{"07", "A0400", "Roofing", deps(dep("A0310", fs, 5)), false},
	{"07", "A0410", "Exterior Wall System", deps(dep("A0300", ss, 10)), false},
	{"08", "A0420", "Windows & Storefront", deps(dep("A0410", ss, 10)), false},
	{"07", "A0430", "Waterproofing & Sealants", deps(dep("A0410", ss, 15)), false},

	// MEP rough-in
	{"15", "A0500", "HVAC Rough-In", deps(dep("A0320", fs, 0)), false},
	{"15", "A0510", "Plumbing Rough-In", deps(dep("A0210", fs, 0)), false},
	{"16", "A0520", "Electrical Rough-In", deps(dep("A0320", fs, 0)), false},
	{"15", "A0530", "Fire Protection", deps(dep("A0320", fs, 0)), false},
	{"16", "A0540", "Fire Alarm Rough-In", deps(dep("A0520", ss, 5)), false},
	{"16", "A0550", "Low Voltage Rough-In", deps(dep("A0520", ss, 5)), false},

	// Interior finishes
	{"09", "A0600", "Metal Framing & Drywall", deps(dep("A0500", ss, 10), dep("A0520", ss, 10)), false},
	{"08", "A0610", "Doors & Hardware", deps(dep("A0600", ss, 15)), false},
	{"09", "A0620", "Ceiling Grid & Tile", deps(dep("A0600", fs, 0), dep("A0500", fs, -5)), false},
	{"09", "A0630", "Flooring", deps(dep("A0600", fs, 0)), false},
	{"09", "A0640", "Painting", deps(dep("A0600", fs, 0)), false},
	{"10", "A0650", "Specialties & Accessories", deps(dep("A0640", fs, 0)), false},

	// MEP trim
	{"15", "A0700", "HVAC Trim & Startup", deps(dep("A0620", fs, 0)), false},
	{"15", "A0710", "Plumbing Trim & Fixtures", deps(dep("A0630", fs, 0)), false},
	{"16", "A0720", "Electrical Trim & Devices", deps(dep("A0640", fs, 0)), false},
	{"16", "A0730", "Fire Alarm Trim & Test", deps(dep("A0620", fs, 0)), false},
	{"16", "A0740", "Low Voltage Trim & Test", deps(dep("A0620", fs, 0)), false},

	// Commissioning and closeout
	{"01", "A0800", "Test & Balance", deps(dep("A0700", fs, 0)), false},
	{"01", "A0810", "Commissioning", deps(dep("A0800", fs, 0)), false},
	{"01", "A0820", "Punch List", deps(dep("A0810", fs, 0), dep("A0710", fs, 0), dep("A0720", fs, 0)), false},
	{"01", "A0830", "Final Inspections", deps(dep("A0820", fs, 0)), true},
	{"01", "A0840", "Certificate of Occupancy", deps(dep("A0830", fs, 0)), true},
	{"01", "A0850", "Substantial Completion", deps(dep("A0840", fs, 0)), true},
}

// renovation is the gut renovation of an existing building: no
// foundations, no steel. Demo and abatement lead into structural
// modifications, MEP, finishes, and closeout.
var renovation = []row{
	// Preconstruction
	{"01", "R0010", "Notice to Proceed", nil, true},
	{"01", "R0020", "Permits & Approvals", deps(dep("R0010", fs, 0)), true},
	{"01", "R0030", "Shop Drawing Submittals", deps(dep("R0010", fs, 0)), false},
	{"01", "R0040", "Material Procurement", deps(dep("R0030", fs, 5)), false},
	{"01", "R0050", "Existing Conditions Survey", deps(dep("R0010", fs, 0)), false},

	// Mobilization and protection
	{"02", "R0100", "Mobilization", deps(dep("R0020", fs, 0)), false},
	{"02", "R0110", "Temp Barriers & Dust Control", deps(dep("R0100", fs, 0)), false},
	{"02", "R0120", "Tenant Protection / Phasing", deps(dep("R0100", fs, 0)), false},

	// Abatement and demolition
	{"02", "R0200", "Hazmat Abatement", deps(dep("R0110", fs, 0)), false},
	{"02", "R0210", "Selective Interior Demo", deps(dep("R0200", fs, 0)), false},
	{"02", "R0220", "MEP Demo & Cap-Off", deps(dep("R0200", fs, 0)), false},
	{"02", "R0230", "Demo Debris Removal", deps(dep("R0210", ss, 3)), false},

	// Structural modifications
	{"05", "R0300", "Structural Modifications", deps(dep("R0210", fs, 0), dep("R0050", fs, 0)), false},
	{"03", "R0310", "Concrete Repairs & Patching", deps(dep("R0300", fs, 0)), false},

	// Envelope repairs
	{"07", "R0400", "Roof Repairs / Replacement", deps(dep("R0210", fs, 0)), false},
	{"07", "R0410", "Exterior Wall Repairs", deps(dep("R0210", fs, 0)), false},
	{"08", "R0420", "Window Replacement", deps(dep("R0410", ss, 5)), false},
	{"07", "R0430", "Waterproofing Repairs", deps(dep("R0410", ss, 10)), false},

	// MEP rough-in
	{"15", "R0500", "HVAC Rough-In", deps(dep("R0310", fs, 0), dep("R0220", fs, 0)), false},
	{"15", "R0510", "Plumbing Rough-In", deps(dep("R0220", fs, 0)), false},
	{"16", "R0520", "Electrical Rough-In", deps(dep("R0310", fs, 0), dep("R0220", fs, 0)), false},
	{"15", "R0530", "Fire Protection", deps(dep("R0310", fs, 0)), false},
	{"16", "R0540", "Fire Alarm Rough-In", deps(dep("R0520", ss, 5)), false},
	{"16", "R0550", "Low Voltage Rough-In", deps(dep("R0520", ss, 5)), false},

	// Interior finishes
	{"09", "R0600", "Metal Framing & Drywall", deps(dep("R0500", ss, 10), dep("R0520", ss, 10)), false},
	{"08", "R0610", "Doors & Hardware", deps(dep("R0600", ss, 15)), false},
	{"09", "R0620", "Ceiling Grid & Tile", deps(dep("R0600", fs, 0)), false},
	{"09", "R0630", "Flooring", deps(dep("R0600", fs, 0)), false},
	{"09", "R0640", "Painting", deps(dep("R0600", fs, 0)), false},
	{"10", "R0650", "Specialties & Accessories", deps(dep("R0640", fs, 0)), false},

	// MEP trim
	{"15", "R0700", "HVAC Trim & Startup", deps(dep("R0620", fs, 0)), false},
	{"15", "R0710", "Plumbing Trim & Fixtures", deps(dep("R0630", fs, 0)), false},
	{"16", "R0720", "Electrical Trim & Devices", deps(dep("R0640", fs, 0)), false},
	{"16", "R0730", "Fire Alarm Trim & Test", deps(dep("R0620", fs, 0)), false},
	{"16", "R0740", "Low Voltage Trim & Test", deps(dep("R0620", fs, 0)), false},

	// Closeout
	{"01", "R0800", "Test & Balance", deps(dep("R0700", fs, 0)), false},
	{"01", "R0810", "Commissioning", deps(dep("R0800", fs, 0)), false},
	{"01", "R0820", "Punch List", deps(dep("R0810", fs, 0), dep("R0710", fs, 0), dep("R0720", fs, 0)), false},
	{"01", "R0830", "Final Inspections", deps(dep("R0820", fs, 0)), true},
	{"01", "R0840", "Certificate of Occupancy", deps(dep("R0830", fs, 0)), true},
	{"01", "R0850", "Substantial Completion", deps(dep("R0840", fs, 0)), true},
}

// tenantImprovement is the interior fit-out within an existing shell:
// no exterior, no structure. Demo through punch and move-in.
var tenantImprovement = []row{
	// Preconstruction
	{"01", "T0010", "Notice to Proceed", nil, true},
	{"01", "T0020", "Permits & Approvals", deps(dep("T0010", fs, 0)), true},
	{"01", "T0030", "Shop Drawing Submittals", deps(dep("T0010", fs, 0)), false},
	{"01", "T0040", "Material Procurement", deps(dep("T0030", fs, 5)), false},

	// Mobilization and demo
	{"02", "T0100", "Mobilization & Protection", deps(dep("T0020", fs, 0)), false},
	{"02", "T0110", "Selective Demo", deps(dep("T0100", fs, 0)), false},
	{"02", "T0120", "Demo Debris Removal", deps(dep("T0110", ss, 2)), false},

	// MEP rough-in
	{"15", "T0200", "HVAC Rough-In", deps(dep("T0110", fs, 0)), false},
	{"15", "T0210", "Plumbing Rough-In", deps(dep("T0110", fs, 0)), false},
	{"16", "T0220", "Electrical Rough-In", deps(dep("T0110", fs, 0)), false},
	{"15", "T0230", "Fire Protection Mods", deps(dep("T0110", fs, 0)), false},
	{"16", "T0240", "Fire Alarm Rough-In", deps(dep("T0220", ss, 3)), false},
	{"16", "T0250", "Low Voltage Rough-In", deps(dep("T0220", ss, 3)), false},

	// Interior finishes
	{"09", "T0300", "Metal Framing & Drywall", deps(dep("T0200", ss, 5), dep("T0220", ss, 5)), false},
	{"08", "T0310", "Doors & Hardware", deps(dep("T0300", ss, 10)), false},
	{"09", "T0320", "Ceiling Grid & Tile", deps(dep("T0300", fs, 0)), false},
	{"09", "T0330", "Flooring", deps(dep("T0300", fs, 0)), false},
	{"09", "T0340", "Painting", deps(dep("T0300", fs, 0)), false},
	{"10", "T0350", "Millwork & Casework", deps(dep("T0340", fs, 0)), false},
	{"10", "T0360", "Specialties & Accessories", deps(dep("T0340", fs, 0)), false},

	// MEP trim
	{"15", "T0400", "HVAC Trim & Startup", deps(dep("T0320", fs, 0)), false},
	{"15", "T0410", "Plumbing Trim & Fixtures", deps(dep("T0330", fs, 0)), false},
	{"16", "T0420", "Electrical Trim & Devices", deps(dep("T0340", fs, 0)), false},
	{"16", "T0430", "Fire Alarm Trim & Test", deps(dep("T0320", fs, 0)), false},
	{"16", "T0440", "Low Voltage Trim & Test", deps(dep("T0320", fs, 0)), false},

	// Closeout
	{"01", "T0500", "Test & Balance", deps(dep("T0400", fs, 0)), false},
	{"01", "T0510", "Punch List", deps(dep("T0500", fs, 0), dep("T0410", fs, 0), dep("T0420", fs, 0)), false},
	{"01", "T0520", "Final Inspection", deps(dep("T0510", fs, 0)), true},
	{"01", "T0530", "Tenant Move-In Ready", deps(dep("T0520", fs, 0)), true},
}

// rateMap resolves template activity codes to production rate codes,
// shared across the three templates.
var rateMap = map[string]string{
	// New construction
	"A0100": "SITE_MOBILIZATION", "A0110": "EARTHWORK", "A0120": "UNDERGROUND_UTIL",
	"A0200": "FOUNDATIONS", "A0210": "SLAB_ON_GRADE",
	"A0300": "STRUCTURAL_STEEL", "A0310": "METAL_DECK", "A0320": "CONCRETE_STRUCTURE",
	"A0400": "ROOFING", "A0410": "EXTERIOR_WALL", "A0420": "WINDOWS_STOREFRONT", "A0430": "WATERPROOFING",
	"A0500": "HVAC_ROUGH", "A0510": "PLUMBING_ROUGH", "A0520": "ELECTRICAL_ROUGH",
	"A0530": "FIRE_PROTECTION", "A0540": "FIRE_ALARM", "A0550": "LOW_VOLTAGE",
	"A0600": "FRAMING_DRYWALL", "A0610": "DOORS_HARDWARE", "A0620": "CEILING",
	"A0630": "FLOORING", "A0640": "PAINTING", "A0650": "SPECIALTIES",
	"A0700": "HVAC_TRIM", "A0710": "PLUMBING_TRIM", "A0720": "ELECTRICAL_TRIM",
	"A0730": "FIRE_ALARM", "A0740": "LOW_VOLTAGE",
	"A0800": "TAB", "A0810": "COMMISSIONING", "A0820": "PUNCH_LIST",
	"A0830": "FINAL_INSPECTION", "A0840": "CO_PROCESS",

	// Renovation
	"R0100": "SITE_MOBILIZATION",
	"R0110": "TEMP_BARRIERS", "R0120": "TENANT_PROTECTION",
	"R0200": "HAZMAT_ABATEMENT", "R0210": "SELECTIVE_DEMO", "R0220": "MEP_DEMO", "R0230": "DEMO_REMOVAL",
	"R0300": "STRUCTURAL_MODS", "R0310": "CONCRETE_REPAIRS",
	"R0400": "ROOFING", "R0410": "EXTERIOR_WALL", "R0420": "WINDOWS_STOREFRONT", "R0430": "WATERPROOFING",
	"R0500": "HVAC_ROUGH", "R0510": "PLUMBING_ROUGH", "R0520": "ELECTRICAL_ROUGH",
	"R0530": "FIRE_PROTECTION", "R0540": "FIRE_ALARM", "R0550": "LOW_VOLTAGE",
	"R0600": "FRAMING_DRYWALL", "R0610": "DOORS_HARDWARE", "R0620": "CEILING",
	"R0630": "FLOORING", "R0640": "PAINTING", "R0650": "SPECIALTIES",
	"R0700": "HVAC_TRIM", "R0710": "PLUMBING_TRIM", "R0720": "ELECTRICAL_TRIM",
	"R0730": "FIRE_ALARM", "R0740": "LOW_VOLTAGE",
	"R0800": "TAB", "R0810": "COMMISSIONING", "R0820": "PUNCH_LIST",
	"R0830": "FINAL_INSPECTION", "R0840": "CO_PROCESS",

	// Tenant improvement
	"T0100": "SITE_MOBILIZATION",
	"T0110": "SELECTIVE_DEMO", "T0120": "DEMO_REMOVAL",
	"T0200": "HVAC_ROUGH", "T0210": "PLUMBING_ROUGH", "T0220": "ELECTRICAL_ROUGH",
	"T0230": "FIRE_PROTECTION", "T0240": "FIRE_ALARM", "T0250": "LOW_VOLTAGE",
	"T0300": "FRAMING_DRYWALL", "T0310": "DOORS_HARDWARE", "T0320": "CEILING",
	"T0330": "FLOORING", "T0340": "PAINTING", "T0350": "SPECIALTIES", "T0360": "SPECIALTIES",
	"T0400": "HVAC_TRIM", "T0410": "PLUMBING_TRIM", "T0420": "ELECTRICAL_TRIM",
	"T0430": "FIRE_ALARM", "T0440": "LOW_VOLTAGE",
	"T0500": "TAB", "T0510": "PUNCH_LIST", "T0520": "FINAL_INSPECTION",
}

// milestones marks the zero-or-fixed-duration gate activities.
var milestones = map[string]bool{
	"A0010": true, "A0020": true, "A0830": true, "A0840": true, "A0850": true,
	"R0010": true, "R0020": true, "R0830": true, "R0840": true, "R0850": true,
	"T0010": true, "T0020": true, "T0520": true, "T0530": true,
}

// storyScale marks structure and MEP work whose duration grows with
// building height.
var storyScale = map[string]bool{
	"A0300": true, "A0310": true, "A0320": true, "A0500": true, "A0520": true, "A0600": true,
	"R0500": true, "R0520": true, "R0600": true,
	"T0200": true, "T0220": true, "T0300": true,
}

// renoPenalty marks MEP and finish work that runs slower inside an
// occupied or existing building.
var renoPenalty = map[string]bool{
	"R0500": true, "R0510": true, "R0520": true, "R0530": true, "R0540": true, "R0550": true,
	"R0600": true, "R0610": true, "R0620": true, "R0630": true, "R0640": true,
	"R0700": true, "R0710": true, "R0720": true, "R0730": true, "R0740": true,
}
