package fleet

import (
	"strings"
	"testing"
	"time"

	"fleetkeeper/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func baseInput() NotificationInput {
	return NotificationInput{
		Role: "admin",
		Now:  testNow,
	}
}

// freshCheck keeps a vehicle's weekly-check alert quiet so maintenance
// behavior can be tested in isolation.
func freshCheck(vehicleID string, odometer int64) models.WeeklyCheck {
	return models.WeeklyCheck{
		VehicleID: vehicleID,
		Date:      testNow.AddDate(0, 0, -1),
		Odometer:  odometer,
	}
}

func TestOverdueSuppressesWarning(t *testing.T) {
	in := baseInput()
	in.Vehicles = []models.Vehicle{{ID: "VEH-1", Label: "Van 1"}}
	in.WeeklyChecks = []models.WeeklyCheck{freshCheck("VEH-1", 15100)}
	in.Maintenance = []models.MaintenanceRecord{
		// Oil overdue (15100-10000 >= 5000), tires in warning (15100-10300).
		{VehicleID: "VEH-1", Date: day(1), Odometer: i64(10000), ServiceType: "Oil Change"},
		{VehicleID: "VEH-1", Date: day(2), Odometer: i64(10300), ServiceType: "Tire Rotation"},
		{VehicleID: "VEH-1", Date: day(3), Odometer: i64(14000), ServiceType: "fluid check"},
		{VehicleID: "VEH-1", Date: day(3), Odometer: i64(14000), ServiceType: "brake inspection"},
	}

	alerts := BuildNotifications(in)
	if len(alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d: %+v", len(alerts), alerts)
	}
	n := alerts[0]
	if n.Type != NotificationMaintenance || n.Priority != PriorityHigh {
		t.Fatalf("got %s/%s, want maintenance/high", n.Type, n.Priority)
	}
	if !strings.Contains(n.Description, "Oil Change") {
		t.Errorf("description should name the overdue service: %q", n.Description)
	}
	if strings.Contains(n.Description, "Tire Rotation") {
		t.Errorf("warning-level service must not appear in overdue alert: %q", n.Description)
	}
}

func TestDueSoonAlertIsMedium(t *testing.T) {
	in := baseInput()
	in.Vehicles = []models.Vehicle{{ID: "VEH-1", Label: "Van 1"}}
	in.WeeklyChecks = []models.WeeklyCheck{freshCheck("VEH-1", 14800)}
	in.Maintenance = []models.MaintenanceRecord{
		{VehicleID: "VEH-1", Date: day(1), Odometer: i64(10000), ServiceType: "oil change"},
		{VehicleID: "VEH-1", Date: day(1), Odometer: i64(14000), ServiceType: "tire rotation"},
		{VehicleID: "VEH-1", Date: day(1), Odometer: i64(14000), ServiceType: "fluid check"},
		{VehicleID: "VEH-1", Date: day(1), Odometer: i64(14000), ServiceType: "brake inspection"},
	}

	alerts := BuildNotifications(in)
	if len(alerts) != 1 {
		t.Fatalf("expected one alert, got %d: %+v", len(alerts), alerts)
	}
	if alerts[0].Priority != PriorityMedium || alerts[0].Title != "Maintenance due soon" {
		t.Fatalf("got %s/%q, want medium due-soon alert", alerts[0].Priority, alerts[0].Title)
	}
}

func TestWeeklyCheckStalenessBoundary(t *testing.T) {
	cases := []struct {
		daysAgo int
		flagged bool
	}{
		{7, false},
		{8, true},
		{30, true},
	}
	for _, tc := range cases {
		in := baseInput()
		in.Vehicles = []models.Vehicle{{ID: "VEH-1", Label: "Van 1"}}
		in.WeeklyChecks = []models.WeeklyCheck{{
			VehicleID: "VEH-1",
			Date:      testNow.AddDate(0, 0, -tc.daysAgo),
			Odometer:  1000,
		}}
		alerts := BuildNotifications(in)

		var found *Notification
		for i := range alerts {
			if alerts[i].Type == NotificationWeeklyCheck {
				found = &alerts[i]
			}
		}
		if tc.flagged && found == nil {
			t.Errorf("check %d days old: expected staleness alert", tc.daysAgo)
		}
		if !tc.flagged && found != nil {
			t.Errorf("check %d days old: unexpected alert %+v", tc.daysAgo, *found)
		}
		if tc.flagged && found != nil && found.Priority != PriorityHigh {
			t.Errorf("staleness alert priority = %s, want high", found.Priority)
		}
	}
}

func TestNeverCheckedIn(t *testing.T) {
	in := baseInput()
	in.Vehicles = []models.Vehicle{{ID: "VEH-1", Label: "Van 1"}}
	alerts := BuildNotifications(in)

	var weekly *Notification
	for i := range alerts {
		if alerts[i].Type == NotificationWeeklyCheck {
			weekly = &alerts[i]
		}
	}
	if weekly == nil {
		t.Fatal("expected never-checked-in alert")
	}
	if !strings.Contains(weekly.Description, "never checked in") {
		t.Errorf("description = %q, want never-checked-in wording", weekly.Description)
	}
}

func TestOrderingWeeklyBeforeMaintenanceWithinPriority(t *testing.T) {
	in := baseInput()
	in.Vehicles = []models.Vehicle{
		{ID: "VEH-1", Label: "Van 1"},
		{ID: "VEH-2", Label: "Van 2"},
	}
	// VEH-1: overdue maintenance (high) + fresh check.
	// VEH-2: stale weekly check (high) only.
	in.WeeklyChecks = []models.WeeklyCheck{
		freshCheck("VEH-1", 20000),
		{VehicleID: "VEH-2", Date: testNow.AddDate(0, 0, -20), Odometer: 500},
	}
	in.Maintenance = []models.MaintenanceRecord{
		{VehicleID: "VEH-1", Date: day(1), Odometer: i64(1000), ServiceType: "oil change"},
	}

	alerts := BuildNotifications(in)
	if len(alerts) < 2 {
		t.Fatalf("expected at least 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Type != NotificationWeeklyCheck {
		t.Errorf("first alert = %s, want weekly-check before maintenance at equal priority", alerts[0].Type)
	}
	if alerts[1].Type != NotificationMaintenance || alerts[1].Priority != PriorityHigh {
		t.Errorf("second alert = %s/%s, want high maintenance", alerts[1].Type, alerts[1].Priority)
	}
}

func TestDismissalFiltersByStableID(t *testing.T) {
	in := baseInput()
	in.Vehicles = []models.Vehicle{{ID: "VEH-1", Label: "Van 1"}}

	alerts := BuildNotifications(in)
	if len(alerts) == 0 {
		t.Fatal("expected a never-checked-in alert to dismiss")
	}
	in.Dismissed = map[string]bool{alerts[0].ID: true}
	if remaining := BuildNotifications(in); len(remaining) != len(alerts)-1 {
		t.Fatalf("dismissal did not filter: %d -> %d", len(alerts), len(remaining))
	}
}

func TestDriverVisibilityScoping(t *testing.T) {
	end := testNow.AddDate(0, 0, -10)
	in := baseInput()
	in.Role = "driver"
	in.DriverID = 7
	in.Vehicles = []models.Vehicle{
		{ID: "VEH-1", Label: "Mine"},
		{ID: "VEH-2", Label: "Someone else's"},
		{ID: "VEH-3", Label: "Former"},
	}
	in.Assignments = []models.Assignment{
		{VehicleID: "VEH-1", DriverID: 7, StartDate: testNow.AddDate(0, -1, 0)},
		{VehicleID: "VEH-2", DriverID: 9, StartDate: testNow.AddDate(0, -1, 0)},
		{VehicleID: "VEH-3", DriverID: 7, StartDate: testNow.AddDate(0, -2, 0), EndDate: &end},
	}

	alerts := BuildNotifications(in)
	for _, n := range alerts {
		if n.VehicleLabel != "Mine" {
			t.Errorf("driver saw alert for %q outside active assignments", n.VehicleLabel)
		}
	}
	if len(alerts) == 0 {
		t.Fatal("expected alerts for the assigned vehicle")
	}
}
