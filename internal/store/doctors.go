package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

type DoctorRepository struct {
	*Collection[models.Doctor]
}

func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	return r.FindAll(ctx, nil)
}

func (r *DoctorRepository) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.Doctor, error) {
	return r.FindAll(ctx, bson.M{"department": departmentID})
}

func (r *DoctorRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	return r.FindByID(ctx, id)
}

func (r *DoctorRepository) GetMany(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Doctor, error) {
	return r.FindByIDs(ctx, ids)
}

func (r *DoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

// Search matches text case-insensitively inside first name, last name or
// specialization.
func (r *DoctorRepository) Search(ctx context.Context, text string) ([]models.Doctor, error) {
	return r.FindAll(ctx, anyFieldContains(text, "firstName", "lastName", "specialization"))
}

func (r *DoctorRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.DoctorPatch) (*models.Doctor, error) {
	return r.UpdateByID(ctx, id, patch)
}

func (r *DoctorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.DeleteByID(ctx, id)
}

func (r *DoctorRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, nil)
}
