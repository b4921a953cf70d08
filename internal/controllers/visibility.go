package controllers

import (
	"context"
	"time"

	"fleetkeeper/internal/store"
)

// permittedVehicleIDs returns the vehicle ids the caller may read records
// for. Admins are unrestricted; drivers are limited to vehicles covered by
// an active assignment at the given instant.
func permittedVehicleIDs(ctx context.Context, st store.FleetStore, userID uint, role string, now time.Time) (allowed map[string]bool, unrestricted bool, err error) {
	if role != "driver" {
		return nil, true, nil
	}

	assignments, err := st.ListAssignments(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	allowed = make(map[string]bool)
	for _, a := range assignments {
		if a.ActiveAt(now) {
			allowed[a.VehicleID] = true
		}
	}
	return allowed, false, nil
}

// scopeRecords drops records whose vehicle the caller may not see. The
// result is never nil so list responses stay a JSON array.
func scopeRecords[T any](records []T, allowed map[string]bool, unrestricted bool, vehicleID func(T) string) []T {
	if unrestricted {
		return records
	}
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if allowed[vehicleID(r)] {
			kept = append(kept, r)
		}
	}
	return kept
}
