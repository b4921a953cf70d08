package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

// fakeFleetStore backs controller tests with in-memory slices.
type fakeFleetStore struct {
	vehicles    []models.Vehicle
	maintenance []models.MaintenanceRecord
	odometer    []models.OdometerLog
	checks      []models.WeeklyCheck
	assignments []models.Assignment
	receipts    []models.Receipt
	cleanliness []models.CleanlinessLog
}

func (f *fakeFleetStore) CreateVehicle(_ context.Context, v *models.Vehicle) error {
	f.vehicles = append(f.vehicles, *v)
	return nil
}

func (f *fakeFleetStore) GetVehicle(_ context.Context, id string) (models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, store.ErrNotFound
}

func (f *fakeFleetStore) ListVehicles(_ context.Context) ([]models.Vehicle, error) {
	return f.vehicles, nil
}

func (f *fakeFleetStore) UpdateVehicle(_ context.Context, v *models.Vehicle) error {
	for i := range f.vehicles {
		if f.vehicles[i].ID == v.ID {
			f.vehicles[i] = *v
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeFleetStore) DeleteVehicle(_ context.Context, id string) error {
	for i := range f.vehicles {
		if f.vehicles[i].ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeFleetStore) CreateMaintenance(_ context.Context, m *models.MaintenanceRecord) error {
	f.maintenance = append(f.maintenance, *m)
	return nil
}

func (f *fakeFleetStore) ListMaintenance(_ context.Context, vehicleID string) ([]models.MaintenanceRecord, error) {
	if vehicleID == "" {
		return f.maintenance, nil
	}
	var out []models.MaintenanceRecord
	for _, m := range f.maintenance {
		if m.VehicleID == vehicleID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeFleetStore) DeleteMaintenance(_ context.Context, id string) error {
	for i := range f.maintenance {
		if f.maintenance[i].ID == id {
			f.maintenance = append(f.maintenance[:i], f.maintenance[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeFleetStore) CreateOdometerLog(_ context.Context, l *models.OdometerLog) error {
	f.odometer = append(f.odometer, *l)
	return nil
}

func (f *fakeFleetStore) ListOdometerLogs(_ context.Context, vehicleID string) ([]models.OdometerLog, error) {
	if vehicleID == "" {
		return f.odometer, nil
	}
	var out []models.OdometerLog
	for _, l := range f.odometer {
		if l.VehicleID == vehicleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeFleetStore) CreateWeeklyCheck(_ context.Context, w *models.WeeklyCheck) error {
	f.checks = append(f.checks, *w)
	return nil
}

func (f *fakeFleetStore) ListWeeklyChecks(_ context.Context, vehicleID string) ([]models.WeeklyCheck, error) {
	if vehicleID == "" {
		return f.checks, nil
	}
	var out []models.WeeklyCheck
	for _, w := range f.checks {
		if w.VehicleID == vehicleID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeFleetStore) CreateAssignment(_ context.Context, a *models.Assignment) error {
	f.assignments = append(f.assignments, *a)
	return nil
}

func (f *fakeFleetStore) ListAssignments(_ context.Context, driverID uint) ([]models.Assignment, error) {
	if driverID == 0 {
		return f.assignments, nil
	}
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.DriverID == driverID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeFleetStore) EndAssignment(_ context.Context, id string, end time.Time) error {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			f.assignments[i].EndDate = &end
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeFleetStore) CreateReceipt(_ context.Context, r *models.Receipt) error {
	f.receipts = append(f.receipts, *r)
	return nil
}

func (f *fakeFleetStore) ListReceipts(_ context.Context, vehicleID string) ([]models.Receipt, error) {
	if vehicleID == "" {
		return f.receipts, nil
	}
	var out []models.Receipt
	for _, r := range f.receipts {
		if r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFleetStore) CreateCleanlinessLog(_ context.Context, l *models.CleanlinessLog) error {
	f.cleanliness = append(f.cleanliness, *l)
	return nil
}

func (f *fakeFleetStore) ListCleanlinessLogs(_ context.Context, vehicleID string) ([]models.CleanlinessLog, error) {
	if vehicleID == "" {
		return f.cleanliness, nil
	}
	var out []models.CleanlinessLog
	for _, l := range f.cleanliness {
		if l.VehicleID == vehicleID {
			out = append(out, l)
		}
	}
	return out, nil
}

var _ store.FleetStore = (*fakeFleetStore)(nil)

// scopedStore seeds two vehicles: driver 7 holds an active assignment on
// VEH-assigned, driver 9 held VEH-other until last month.
func scopedStore() *fakeFleetStore {
	now := time.Now()
	ended := now.AddDate(0, -1, 0)
	return &fakeFleetStore{
		vehicles: []models.Vehicle{
			{ID: "VEH-assigned", Label: "Van 1"},
			{ID: "VEH-other", Label: "Van 2"},
		},
		assignments: []models.Assignment{
			{ID: "ASG-1", VehicleID: "VEH-assigned", DriverID: 7, StartDate: now.AddDate(0, -2, 0)},
			{ID: "ASG-2", VehicleID: "VEH-other", DriverID: 9, StartDate: now.AddDate(0, -2, 0), EndDate: &ended},
		},
		maintenance: []models.MaintenanceRecord{
			{ID: "MNT-1", VehicleID: "VEH-assigned", ServiceType: "Oil Change", Date: now},
			{ID: "MNT-2", VehicleID: "VEH-other", ServiceType: "Tire Rotation", Date: now},
		},
		odometer: []models.OdometerLog{
			{ID: "ODO-1", VehicleID: "VEH-assigned", DriverID: 7, Reading: 12000, Date: now},
			{ID: "ODO-2", VehicleID: "VEH-other", DriverID: 9, Reading: 8000, Date: now},
		},
		checks: []models.WeeklyCheck{
			{ID: "WCK-1", VehicleID: "VEH-assigned", DriverID: 7, Odometer: 12100, Date: now},
			{ID: "WCK-2", VehicleID: "VEH-other", DriverID: 9, Odometer: 8100, Date: now},
		},
		receipts: []models.Receipt{
			{ID: "RCT-1", VehicleID: "VEH-assigned", DriverID: 7, Amount: 40, Date: now},
			{ID: "RCT-2", VehicleID: "VEH-other", DriverID: 9, Amount: 55, Date: now},
		},
		cleanliness: []models.CleanlinessLog{
			{ID: "CLN-1", VehicleID: "VEH-assigned", DriverID: 7, Rating: 4, Date: now},
			{ID: "CLN-2", VehicleID: "VEH-other", DriverID: 9, Rating: 3, Date: now},
		},
	}
}

func listRequest(t *testing.T, userID uint, role, query string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/list"+query, nil)
	c.Set("user_id", float64(userID))
	c.Set("role", role)
	handler(c)
	return w
}

// listedIDs decodes the {"data": [...]} envelope into record ids.
func listedIDs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	ids := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		ids = append(ids, d.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestListEndpointsScopeDriversToActiveAssignments(t *testing.T) {
	st := scopedStore()
	handlers := []struct {
		name   string
		handle gin.HandlerFunc
		own    string
	}{
		{"maintenance", (&MaintenanceController{Store: st}).ListMaintenance, "MNT-1"},
		{"odometer", (&OdometerController{Store: st}).ListOdometerLogs, "ODO-1"},
		{"weekly checks", (&WeeklyCheckController{Store: st}).ListWeeklyChecks, "WCK-1"},
		{"receipts", (&ReceiptController{Store: st}).ListReceipts, "RCT-1"},
		{"cleanliness", (&CleanlinessController{Store: st}).ListCleanlinessLogs, "CLN-1"},
	}

	for _, tc := range handlers {
		t.Run(tc.name, func(t *testing.T) {
			got := listedIDs(t, listRequest(t, 7, "driver", "", tc.handle))
			assertIDs(t, got, []string{tc.own})
		})
	}
}

func TestListEndpointsIgnoreVehicleFilterOutsideAssignment(t *testing.T) {
	st := scopedStore()
	mc := &MaintenanceController{Store: st}

	got := listedIDs(t, listRequest(t, 7, "driver", "?vehicle_id=VEH-other", mc.ListMaintenance))
	if len(got) != 0 {
		t.Fatalf("driver read records for an unassigned vehicle: %v", got)
	}
}

func TestListEndpointsExcludeEndedAssignments(t *testing.T) {
	st := scopedStore()
	oc := &OdometerController{Store: st}

	got := listedIDs(t, listRequest(t, 9, "driver", "", oc.ListOdometerLogs))
	if len(got) != 0 {
		t.Fatalf("driver with only an ended assignment saw logs: %v", got)
	}
}

func TestListEndpointsUnrestrictedForAdmin(t *testing.T) {
	st := scopedStore()
	mc := &MaintenanceController{Store: st}

	got := listedIDs(t, listRequest(t, 1, "admin", "", mc.ListMaintenance))
	assertIDs(t, got, []string{"MNT-1", "MNT-2"})
}
