package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

type PatientRepository struct {
	*Collection[models.Patient]
}

func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	return r.FindAll(ctx, nil)
}

func (r *PatientRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	return r.FindByID(ctx, id)
}

func (r *PatientRepository) GetMany(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Patient, error) {
	return r.FindByIDs(ctx, ids)
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

// Search matches text case-insensitively inside first name, last name or
// email.
func (r *PatientRepository) Search(ctx context.Context, text string) ([]models.Patient, error) {
	return r.FindAll(ctx, anyFieldContains(text, "firstName", "lastName", "email"))
}

func (r *PatientRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.PatientPatch) (*models.Patient, error) {
	return r.UpdateByID(ctx, id, patch)
}

func (r *PatientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.DeleteByID(ctx, id)
}

func (r *PatientRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, nil)
}

func anyFieldContains(text string, fields ...string) bson.M {
	pattern := primitive.Regex{Pattern: utils.ContainsPattern(text), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	return bson.M{"$or": or}
}
