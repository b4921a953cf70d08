package gormstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

// Store implements store.FleetStore on a Postgres schema via GORM.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *Store) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	var v models.Vehicle
	err := s.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return v, translate(err)
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.WithContext(ctx).Order("created_at").Find(&vehicles).Error
	return vehicles, err
}

func (s *Store) UpdateVehicle(ctx context.Context, v *models.Vehicle) error {
	return s.db.WithContext(ctx).Save(v).Error
}

func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateMaintenance(ctx context.Context, m *models.MaintenanceRecord) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *Store) ListMaintenance(ctx context.Context, vehicleID string) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	q := s.db.WithContext(ctx).Order("date DESC")
	if vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	err := q.Find(&records).Error
	return records, err
}

func (s *Store) DeleteMaintenance(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.MaintenanceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateOdometerLog(ctx context.Context, l *models.OdometerLog) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *Store) ListOdometerLogs(ctx context.Context, vehicleID string) ([]models.OdometerLog, error) {
	var logs []models.OdometerLog
	q := s.db.WithContext(ctx).Order("date DESC")
	if vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	err := q.Find(&logs).Error
	return logs, err
}

func (s *Store) CreateWeeklyCheck(ctx context.Context, w *models.WeeklyCheck) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *Store) ListWeeklyChecks(ctx context.Context, vehicleID string) ([]models.WeeklyCheck, error) {
	var checks []models.WeeklyCheck
	q := s.db.WithContext(ctx).Order("date DESC")
	if vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	err := q.Find(&checks).Error
	return checks, err
}

func (s *Store) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *Store) ListAssignments(ctx context.Context, driverID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	q := s.db.WithContext(ctx).Order("start_date DESC")
	if driverID != 0 {
		q = q.Where("driver_id = ?", driverID)
	}
	err := q.Find(&assignments).Error
	return assignments, err
}

func (s *Store) EndAssignment(ctx context.Context, id string, end time.Time) error {
	res := s.db.WithContext(ctx).Model(&models.Assignment{}).Where("id = ?", id).Update("end_date", end)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateReceipt(ctx context.Context, r *models.Receipt) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *Store) ListReceipts(ctx context.Context, vehicleID string) ([]models.Receipt, error) {
	var receipts []models.Receipt
	q := s.db.WithContext(ctx).Order("date DESC")
	if vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	err := q.Find(&receipts).Error
	return receipts, err
}

func (s *Store) CreateCleanlinessLog(ctx context.Context, c *models.CleanlinessLog) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) ListCleanlinessLogs(ctx context.Context, vehicleID string) ([]models.CleanlinessLog, error) {
	var logs []models.CleanlinessLog
	q := s.db.WithContext(ctx).Order("date DESC")
	if vehicleID != "" {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	err := q.Find(&logs).Error
	return logs, err
}
