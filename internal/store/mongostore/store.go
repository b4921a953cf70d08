package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fleetkeeper/internal/models"
	"fleetkeeper/internal/store"
)

const (
	colVehicles     = "vehicles"
	colMaintenance  = "maintenance_records"
	colOdometerLogs = "odometer_logs"
	colWeeklyChecks = "weekly_checks"
	colAssignments  = "assignments"
	colReceipts     = "receipts"
	colCleanliness  = "cleanliness_logs"
)

// Store implements store.FleetStore on a MongoDB database.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func byVehicle(vehicleID string) bson.M {
	if vehicleID == "" {
		return bson.M{}
	}
	return bson.M{"vehicleID": vehicleID}
}

func dateDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
}

func listAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	_, err := s.db.Collection(colVehicles).InsertOne(ctx, v)
	return err
}

func (s *Store) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	var v models.Vehicle
	err := s.db.Collection(colVehicles).FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	return v, translate(err)
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return listAll[models.Vehicle](ctx, s.db.Collection(colVehicles), bson.M{}, opts)
}

func (s *Store) UpdateVehicle(ctx context.Context, v *models.Vehicle) error {
	res, err := s.db.Collection(colVehicles).ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	res, err := s.db.Collection(colVehicles).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateMaintenance(ctx context.Context, m *models.MaintenanceRecord) error {
	_, err := s.db.Collection(colMaintenance).InsertOne(ctx, m)
	return err
}

func (s *Store) ListMaintenance(ctx context.Context, vehicleID string) ([]models.MaintenanceRecord, error) {
	return listAll[models.MaintenanceRecord](ctx, s.db.Collection(colMaintenance), byVehicle(vehicleID), dateDesc())
}

func (s *Store) DeleteMaintenance(ctx context.Context, id string) error {
	res, err := s.db.Collection(colMaintenance).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateOdometerLog(ctx context.Context, l *models.OdometerLog) error {
	_, err := s.db.Collection(colOdometerLogs).InsertOne(ctx, l)
	return err
}

func (s *Store) ListOdometerLogs(ctx context.Context, vehicleID string) ([]models.OdometerLog, error) {
	return listAll[models.OdometerLog](ctx, s.db.Collection(colOdometerLogs), byVehicle(vehicleID), dateDesc())
}

func (s *Store) CreateWeeklyCheck(ctx context.Context, w *models.WeeklyCheck) error {
	_, err := s.db.Collection(colWeeklyChecks).InsertOne(ctx, w)
	return err
}

func (s *Store) ListWeeklyChecks(ctx context.Context, vehicleID string) ([]models.WeeklyCheck, error) {
	return listAll[models.WeeklyCheck](ctx, s.db.Collection(colWeeklyChecks), byVehicle(vehicleID), dateDesc())
}

func (s *Store) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	_, err := s.db.Collection(colAssignments).InsertOne(ctx, a)
	return err
}

func (s *Store) ListAssignments(ctx context.Context, driverID uint) ([]models.Assignment, error) {
	filter := bson.M{}
	if driverID != 0 {
		filter["driverID"] = driverID
	}
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	return listAll[models.Assignment](ctx, s.db.Collection(colAssignments), filter, opts)
}

func (s *Store) EndAssignment(ctx context.Context, id string, end time.Time) error {
	res, err := s.db.Collection(colAssignments).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"endDate": end}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateReceipt(ctx context.Context, r *models.Receipt) error {
	_, err := s.db.Collection(colReceipts).InsertOne(ctx, r)
	return err
}

func (s *Store) ListReceipts(ctx context.Context, vehicleID string) ([]models.Receipt, error) {
	return listAll[models.Receipt](ctx, s.db.Collection(colReceipts), byVehicle(vehicleID), dateDesc())
}

func (s *Store) CreateCleanlinessLog(ctx context.Context, c *models.CleanlinessLog) error {
	_, err := s.db.Collection(colCleanliness).InsertOne(ctx, c)
	return err
}

func (s *Store) ListCleanlinessLogs(ctx context.Context, vehicleID string) ([]models.CleanlinessLog, error) {
	return listAll[models.CleanlinessLog](ctx, s.db.Collection(colCleanliness), byVehicle(vehicleID), dateDesc())
}
