package fleet

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fleetkeeper/internal/models"
)

// Priority levels for dashboard notifications.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// NotificationType distinguishes the two alert families.
type NotificationType string

const (
	NotificationMaintenance NotificationType = "maintenance"
	NotificationWeeklyCheck NotificationType = "weekly-check"
)

// weeklyCheckCadenceDays is the expected check-in cadence; a vehicle is
// flagged once its latest check is staleCheckDays old or older.
const (
	weeklyCheckCadenceDays = 7
	staleCheckDays         = 8
)

// Notification is a single actionable dashboard alert. ID is stable for a
// given {type, vehicle} pair so callers can filter previously dismissed
// alerts across rebuilds.
type Notification struct {
	ID           string           `json:"id"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	VehicleLabel string           `json:"vehicle_label"`
	Priority     Priority         `json:"priority"`
	View         string           `json:"view"`
}

// NotificationInput carries everything BuildNotifications needs. Now is
// injected so staleness checks are deterministic under test.
type NotificationInput struct {
	Vehicles         []models.Vehicle
	Maintenance      []models.MaintenanceRecord
	OdometerLogs     []models.OdometerLog
	WeeklyChecks     []models.WeeklyCheck
	Assignments      []models.Assignment
	Role             string
	DriverID         uint
	Catalog          []ServiceInterval
	WarningThreshold int64
	Dismissed        map[string]bool
	Now              time.Time
}

// BuildNotifications folds per-vehicle service statuses and weekly-check
// recency into a flat, prioritized, deduplicated alert list scoped to the
// caller's visibility. Admins see every vehicle; drivers only vehicles from
// their active assignments. At most one maintenance alert is emitted per
// vehicle: an overdue alert suppresses the due-soon alert entirely.
func BuildNotifications(in NotificationInput) []Notification {
	var alerts []Notification

	for _, vehicle := range visibleVehicles(in) {
		if n, ok := weeklyCheckAlert(vehicle, in.WeeklyChecks, in.Now); ok {
			alerts = append(alerts, n)
		}
		if n, ok := maintenanceAlert(vehicle, in); ok {
			alerts = append(alerts, n)
		}
	}

	if len(in.Dismissed) > 0 {
		kept := alerts[:0]
		for _, n := range alerts {
			if !in.Dismissed[n.ID] {
				kept = append(kept, n)
			}
		}
		alerts = kept
	}

	// Severity first; within equal severity weekly-check alerts precede
	// maintenance alerts; the stable sort preserves input vehicle order
	// beyond that.
	sort.SliceStable(alerts, func(i, j int) bool {
		if pr := priorityRank(alerts[i].Priority) - priorityRank(alerts[j].Priority); pr != 0 {
			return pr < 0
		}
		return typeRank(alerts[i].Type) < typeRank(alerts[j].Type)
	})
	return alerts
}

func visibleVehicles(in NotificationInput) []models.Vehicle {
	if in.Role != "driver" {
		return in.Vehicles
	}
	assigned := make(map[string]bool)
	for _, a := range in.Assignments {
		if a.DriverID == in.DriverID && a.ActiveAt(in.Now) {
			assigned[a.VehicleID] = true
		}
	}
	var visible []models.Vehicle
	for _, v := range in.Vehicles {
		if assigned[v.ID] {
			visible = append(visible, v)
		}
	}
	return visible
}

func weeklyCheckAlert(vehicle models.Vehicle, checks []models.WeeklyCheck, now time.Time) (Notification, bool) {
	var latest *models.WeeklyCheck
	for i := range checks {
		if checks[i].VehicleID != vehicle.ID {
			continue
		}
		if latest == nil || checks[i].Date.After(latest.Date) {
			latest = &checks[i]
		}
	}

	var description string
	if latest == nil {
		description = fmt.Sprintf("%s has never checked in", vehicle.Label)
	} else {
		daysSince := int(now.Sub(latest.Date).Hours() / 24)
		if daysSince < staleCheckDays {
			return Notification{}, false
		}
		description = fmt.Sprintf("%s is %d days overdue for its weekly check", vehicle.Label, daysSince-weeklyCheckCadenceDays)
	}

	return Notification{
		ID:           alertID(NotificationWeeklyCheck, vehicle.ID),
		Type:         NotificationWeeklyCheck,
		Title:        "Weekly check overdue",
		Description:  description,
		VehicleLabel: vehicle.Label,
		Priority:     PriorityHigh,
		View:         "weekly-checks",
	}, true
}

func maintenanceAlert(vehicle models.Vehicle, in NotificationInput) (Notification, bool) {
	statuses := VehicleServiceStatuses(vehicle, in.OdometerLogs, in.Maintenance, in.WeeklyChecks, in.Catalog, in.WarningThreshold)

	var overdue, warning []string
	for _, st := range statuses {
		switch st.Status {
		case StatusOverdue:
			overdue = append(overdue, string(st.Service))
		case StatusWarning:
			warning = append(warning, string(st.Service))
		}
	}

	n := Notification{
		ID:           alertID(NotificationMaintenance, vehicle.ID),
		Type:         NotificationMaintenance,
		VehicleLabel: vehicle.Label,
		View:         "maintenance",
	}
	switch {
	case len(overdue) > 0:
		n.Title = "Maintenance overdue"
		n.Description = fmt.Sprintf("%s is overdue for: %s", vehicle.Label, strings.Join(overdue, ", "))
		n.Priority = PriorityHigh
	case len(warning) > 0:
		n.Title = "Maintenance due soon"
		n.Description = fmt.Sprintf("%s is due soon for: %s", vehicle.Label, strings.Join(warning, ", "))
		n.Priority = PriorityMedium
	default:
		return Notification{}, false
	}
	return n, true
}

func alertID(kind NotificationType, vehicleID string) string {
	return fmt.Sprintf("%s:%s", kind, vehicleID)
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func typeRank(t NotificationType) int {
	if t == NotificationWeeklyCheck {
		return 0
	}
	return 1
}
