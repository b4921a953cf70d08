package fleet

import "fleetkeeper/internal/models"

// Status is the three-level service classification.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusOverdue Status = "overdue"
)

// ServiceStatus is the per-service-type result of the interval engine.
type ServiceStatus struct {
	Service       ServiceType `json:"service"`
	MilesSince    int64       `json:"miles_since"`
	MilesUntilDue int64       `json:"miles_until_due"`
	Status        Status      `json:"status"`
}

// ComputeServiceStatuses evaluates every catalog service type for one
// vehicle. current/known come from ResolveOdometer. When the current
// odometer is unknown the engine cannot assess risk, so every type reports
// "warning" with milesSince 0 rather than claiming "ok". A service type
// never performed counts as performed at mile 0, maximizing miles-since.
// The result always holds one entry per catalog type, in catalog order.
func ComputeServiceStatuses(vehicleID string, current int64, known bool, maint []models.MaintenanceRecord, catalog []ServiceInterval, warningThreshold int64) []ServiceStatus {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	if warningThreshold <= 0 {
		warningThreshold = DefaultWarningThreshold
	}

	statuses := make([]ServiceStatus, 0, len(catalog))
	if !known {
		for _, entry := range catalog {
			statuses = append(statuses, ServiceStatus{
				Service:       entry.Type,
				MilesSince:    0,
				MilesUntilDue: entry.Miles,
				Status:        StatusWarning,
			})
		}
		return statuses
	}

	current = clampMiles(current)
	lastServiced := lastServiceOdometers(vehicleID, maint)

	for _, entry := range catalog {
		milesSince := current - lastServiced[entry.Type]
		if milesSince < 0 {
			milesSince = 0
		}
		milesUntilDue := entry.Miles - milesSince
		if milesUntilDue < 0 {
			milesUntilDue = 0
		}

		status := StatusOK
		switch {
		case milesSince >= entry.Miles:
			status = StatusOverdue
		case milesUntilDue <= warningThreshold:
			status = StatusWarning
		}

		statuses = append(statuses, ServiceStatus{
			Service:       entry.Type,
			MilesSince:    milesSince,
			MilesUntilDue: milesUntilDue,
			Status:        status,
		})
	}
	return statuses
}

// VehicleServiceStatuses resolves the vehicle's current odometer and runs
// the interval engine over it in one step.
func VehicleServiceStatuses(vehicle models.Vehicle, logs []models.OdometerLog, maint []models.MaintenanceRecord, checks []models.WeeklyCheck, catalog []ServiceInterval, warningThreshold int64) []ServiceStatus {
	current, known := ResolveOdometer(vehicle, logs, maint, checks)
	return ComputeServiceStatuses(vehicle.ID, current, known, maint, catalog, warningThreshold)
}

// lastServiceOdometers finds, per catalog type, the maximum odometer value
// among the vehicle's maintenance records normalizing to that type.
func lastServiceOdometers(vehicleID string, maint []models.MaintenanceRecord) map[ServiceType]int64 {
	last := make(map[ServiceType]int64)
	for _, mr := range maint {
		if mr.VehicleID != vehicleID || mr.Odometer == nil {
			continue
		}
		svc, ok := ClassifyServiceType(mr.ServiceType)
		if !ok {
			continue
		}
		if reading := clampMiles(*mr.Odometer); reading > last[svc] {
			last[svc] = reading
		}
	}
	return last
}
