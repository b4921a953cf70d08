package fleet

import "strings"

// ServiceType is one of the fixed maintenance categories the interval engine
// tracks.
type ServiceType string

const (
	ServiceOilChange         ServiceType = "Oil Change"
	ServiceTireRotation      ServiceType = "Tire Rotation"
	ServiceFluidCheck        ServiceType = "Fluid Check"
	ServiceBrakeInspection   ServiceType = "Brake Inspection"
	ServiceFilterReplacement ServiceType = "Filter Replacement"
	ServiceMajorInspection   ServiceType = "Major Inspection"
)

// ServiceInterval pairs a service type with its mileage interval.
type ServiceInterval struct {
	Type  ServiceType
	Miles int64
}

// DefaultWarningThreshold is the mileage buffer before an interval is
// reached below which a service flips from "ok" to "warning".
const DefaultWarningThreshold int64 = 250

// DefaultCatalog returns the tracked service types in their canonical order.
// The engine emits one status per entry, always in this order.
func DefaultCatalog() []ServiceInterval {
	return []ServiceInterval{
		{ServiceOilChange, 5000},
		{ServiceTireRotation, 5000},
		{ServiceFluidCheck, 5000},
		{ServiceBrakeInspection, 5000},
		{ServiceFilterReplacement, 20000},
		{ServiceMajorInspection, 30000},
	}
}

// classifyRule maps a substring of a free-text service label to a catalog
// type. Rules are evaluated in order; the first hit wins.
type classifyRule struct {
	substr string
	svc    ServiceType
}

var classifyRules = []classifyRule{
	{"oil", ServiceOilChange},
	{"tire", ServiceTireRotation},
	{"fluid", ServiceFluidCheck},
	{"brake", ServiceBrakeInspection},
	{"filter", ServiceFilterReplacement},
	{"major", ServiceMajorInspection},
	{"tune", ServiceMajorInspection},
}

// ClassifyServiceType normalizes a free-text maintenance label ("Full
// Synthetic Oil Change", "brake pads") to a catalog service type. Labels
// matching no rule are invisible to the interval engine but remain plain
// history elsewhere.
func ClassifyServiceType(label string) (ServiceType, bool) {
	lower := strings.ToLower(label)
	for _, r := range classifyRules {
		if strings.Contains(lower, r.substr) {
			return r.svc, true
		}
	}
	return "", false
}
