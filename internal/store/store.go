package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

const (
	usersCollection        = "users"
	patientsCollection     = "patients"
	doctorsCollection      = "doctors"
	departmentsCollection  = "departments"
	appointmentsCollection = "appointments"
)

// Store is the entity store: one handle per collection, sharing the
// long-lived database connection it was built from.
type Store struct {
	db *mongo.Database

	Users        *UserRepository
	Patients     *PatientRepository
	Doctors      *DoctorRepository
	Departments  *DepartmentRepository
	Appointments *AppointmentRepository
}

func New(db *mongo.Database) *Store {
	return &Store{
		db:           db,
		Users:        &UserRepository{NewCollection[models.User](db, usersCollection)},
		Patients:     &PatientRepository{NewCollection[models.Patient](db, patientsCollection)},
		Doctors:      &DoctorRepository{NewCollection[models.Doctor](db, doctorsCollection)},
		Departments:  &DepartmentRepository{NewCollection[models.Department](db, departmentsCollection)},
		Appointments: &AppointmentRepository{NewCollection[models.Appointment](db, appointmentsCollection)},
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the unique constraints and lookup indexes. It is
// idempotent and safe to run on every start.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for name, indexes := range indexPlan() {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// caseInsensitive compares strings ignoring case but not diacritics.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

func indexPlan() map[string][]mongo.IndexModel {
	unique := options.Index().SetUnique(true)
	return map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		patientsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
		doctorsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "department", Value: 1}}},
		},
		departmentsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetCollation(caseInsensitive)},
		},
		appointmentsCollection: {
			{Keys: bson.D{{Key: "patient", Value: 1}}},
			{Keys: bson.D{{Key: "doctor", Value: 1}}},
			{Keys: bson.D{{Key: "department", Value: 1}}},
			{Keys: bson.D{{Key: "appointmentDate", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
}
