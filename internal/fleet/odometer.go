package fleet

import (
	"time"

	"fleetkeeper/internal/models"
)

// Reading source ranks for same-date tie-breaks. The driver-attested weekly
// check wins over a bare odometer log, which wins over a maintenance record.
const (
	sourceWeeklyCheck = iota
	sourceOdometerLog
	sourceMaintenance
)

type candidateReading struct {
	miles  int64
	date   time.Time
	source int
}

// ResolveOdometer returns the best known current mileage for a vehicle from
// the three dated sources, ranked by recency with the source order above
// breaking exact-date ties. The vehicle's stored initial odometer is a
// fallback of last resort, used only when no dated reading exists anywhere.
// known is false when the vehicle has no reading of any kind.
func ResolveOdometer(vehicle models.Vehicle, logs []models.OdometerLog, maint []models.MaintenanceRecord, checks []models.WeeklyCheck) (miles int64, known bool) {
	var best *candidateReading

	consider := func(c candidateReading) {
		if best == nil {
			best = &c
			return
		}
		if c.date.After(best.date) || (c.date.Equal(best.date) && c.source < best.source) {
			best = &c
		}
	}

	for _, wc := range checks {
		if wc.VehicleID != vehicle.ID {
			continue
		}
		consider(candidateReading{clampMiles(wc.Odometer), wc.Date, sourceWeeklyCheck})
	}
	for _, ol := range logs {
		if ol.VehicleID != vehicle.ID {
			continue
		}
		consider(candidateReading{clampMiles(ol.Reading), ol.Date, sourceOdometerLog})
	}
	for _, mr := range maint {
		if mr.VehicleID != vehicle.ID || mr.Odometer == nil {
			continue
		}
		consider(candidateReading{clampMiles(*mr.Odometer), mr.Date, sourceMaintenance})
	}

	if best != nil {
		return best.miles, true
	}
	if vehicle.InitialOdometer != nil {
		return clampMiles(*vehicle.InitialOdometer), true
	}
	return 0, false
}

func clampMiles(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
