package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

type AppointmentRepository struct {
	*Collection[models.Appointment]
}

// List returns the appointments matching f, earliest appointment first.
func (r *AppointmentRepository) List(ctx context.Context, f models.AppointmentFilter) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}})
	return r.FindAll(ctx, appointmentQuery(f), opts)
}

// Recent returns the n most recently created appointments, newest first.
func (r *AppointmentRepository) Recent(ctx context.Context, n int) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(n))
	return r.FindAll(ctx, nil, opts)
}

func (r *AppointmentRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	return r.FindByID(ctx, id)
}

func (r *AppointmentRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.AppointmentPatch) (*models.Appointment, error) {
	return r.UpdateByID(ctx, id, patch)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.DeleteByID(ctx, id)
}

func (r *AppointmentRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, nil)
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	return r.Count(ctx, bson.M{"status": status})
}

func appointmentQuery(f models.AppointmentFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Patient != nil {
		filter["patient"] = *f.Patient
	}
	if f.Doctor != nil {
		filter["doctor"] = *f.Doctor
	}
	if f.From != nil || f.To != nil {
		date := bson.M{}
		if f.From != nil {
			date["$gte"] = *f.From
		}
		if f.To != nil {
			date["$lte"] = *f.To
		}
		filter["appointmentDate"] = date
	}
	return filter
}
