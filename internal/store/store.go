package store

import (
	"context"
	"errors"
	"time"

	"fleetkeeper/internal/models"
)

// ErrNotFound is returned by any lookup that matches no record, regardless
// of backend.
var ErrNotFound = errors.New("record not found")

// FleetStore is the persistence boundary for the fleet collections. Two
// implementations exist: a Postgres/GORM relational schema and a MongoDB
// document store. User accounts are not part of this interface; they always
// live in Postgres next to the auth tables.
type FleetStore interface {
	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	GetVehicle(ctx context.Context, id string) (models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *models.Vehicle) error
	// DeleteVehicle removes the vehicle only; history records keep their
	// vehicle_id reference and stay queryable.
	DeleteVehicle(ctx context.Context, id string) error

	CreateMaintenance(ctx context.Context, m *models.MaintenanceRecord) error
	ListMaintenance(ctx context.Context, vehicleID string) ([]models.MaintenanceRecord, error)
	DeleteMaintenance(ctx context.Context, id string) error

	CreateOdometerLog(ctx context.Context, l *models.OdometerLog) error
	ListOdometerLogs(ctx context.Context, vehicleID string) ([]models.OdometerLog, error)

	CreateWeeklyCheck(ctx context.Context, w *models.WeeklyCheck) error
	ListWeeklyChecks(ctx context.Context, vehicleID string) ([]models.WeeklyCheck, error)

	CreateAssignment(ctx context.Context, a *models.Assignment) error
	ListAssignments(ctx context.Context, driverID uint) ([]models.Assignment, error)
	EndAssignment(ctx context.Context, id string, end time.Time) error

	CreateReceipt(ctx context.Context, r *models.Receipt) error
	ListReceipts(ctx context.Context, vehicleID string) ([]models.Receipt, error)

	CreateCleanlinessLog(ctx context.Context, c *models.CleanlinessLog) error
	ListCleanlinessLogs(ctx context.Context, vehicleID string) ([]models.CleanlinessLog, error)
}
