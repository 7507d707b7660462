package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

// The repository interfaces below are satisfied by the store package and by
// in-memory fakes in tests.

type UserRepository interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error)
}

type PatientRepository interface {
	List(ctx context.Context) ([]models.Patient, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	GetMany(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	Search(ctx context.Context, text string) ([]models.Patient, error)
	Create(ctx context.Context, p *models.Patient) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.PatientPatch) (*models.Patient, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountAll(ctx context.Context) (int64, error)
}

type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.Doctor, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	GetMany(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	Search(ctx context.Context, text string) ([]models.Doctor, error)
	Create(ctx context.Context, d *models.Doctor) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.DoctorPatch) (*models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountAll(ctx context.Context) (int64, error)
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
	GetMany(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Department, error)
	FindByName(ctx context.Context, name string) (*models.Department, error)
	Create(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.DepartmentPatch) (*models.Department, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountAll(ctx context.Context) (int64, error)
}

type AppointmentRepository interface {
	List(ctx context.Context, f models.AppointmentFilter) ([]models.Appointment, error)
	Recent(ctx context.Context, n int) ([]models.Appointment, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Create(ctx context.Context, a *models.Appointment) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.AppointmentPatch) (*models.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error)
}

// Repositories bundles one repository per entity.
type Repositories struct {
	Users        UserRepository
	Patients     PatientRepository
	Doctors      DoctorRepository
	Departments  DepartmentRepository
	Appointments AppointmentRepository
}
