package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

type DepartmentRepository struct {
	*Collection[models.Department]
}

func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	return r.FindAll(ctx, nil)
}

func (r *DepartmentRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	return r.FindByID(ctx, id)
}

func (r *DepartmentRepository) GetMany(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Department, error) {
	return r.FindByIDs(ctx, ids)
}

// FindByName matches the whole name, ignoring case. "cardiology" finds
// "Cardiology"; "Cardio" finds nothing.
func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*models.Department, error) {
	return r.FindOne(ctx, bson.M{"name": primitive.Regex{Pattern: utils.ExactPattern(name), Options: "i"}})
}

func (r *DepartmentRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.DepartmentPatch) (*models.Department, error) {
	return r.UpdateByID(ctx, id, patch)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.DeleteByID(ctx, id)
}

func (r *DepartmentRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, nil)
}
