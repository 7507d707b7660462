package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

// resolver loads every referenced document of one kind in a single query,
// then hands out Found or Unresolved refs.
type resolver[T any] struct {
	docs map[primitive.ObjectID]T
}

func newResolver[T any](ctx context.Context, get func(context.Context, []primitive.ObjectID) (map[primitive.ObjectID]T, error), refs []*primitive.ObjectID) (*resolver[T], error) {
	seen := make(map[primitive.ObjectID]bool, len(refs))
	ids := make([]primitive.ObjectID, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.IsZero() || seen[*ref] {
			continue
		}
		seen[*ref] = true
		ids = append(ids, *ref)
	}
	docs, err := get(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &resolver[T]{docs: docs}, nil
}

func (r *resolver[T]) ref(id *primitive.ObjectID) models.Ref[T] {
	if id == nil {
		return models.Unresolved[T](primitive.NilObjectID)
	}
	if doc, ok := r.docs[*id]; ok {
		return models.Found(*id, doc)
	}
	return models.Unresolved[T](*id)
}

func expandAppointments(ctx context.Context, repos Repositories, apts []models.Appointment) ([]models.AppointmentDetail, error) {
	patientIDs := make([]*primitive.ObjectID, len(apts))
	doctorIDs := make([]*primitive.ObjectID, len(apts))
	departmentIDs := make([]*primitive.ObjectID, len(apts))
	for i := range apts {
		patientIDs[i] = &apts[i].Patient
		doctorIDs[i] = apts[i].Doctor
		departmentIDs[i] = apts[i].Department
	}

	patients, err := newResolver(ctx, repos.Patients.GetMany, patientIDs)
	if err != nil {
		return nil, translate("patient", "expand appointment patients", err)
	}
	doctors, err := newResolver(ctx, repos.Doctors.GetMany, doctorIDs)
	if err != nil {
		return nil, translate("doctor", "expand appointment doctors", err)
	}
	departments, err := newResolver(ctx, repos.Departments.GetMany, departmentIDs)
	if err != nil {
		return nil, translate("department", "expand appointment departments", err)
	}

	out := make([]models.AppointmentDetail, len(apts))
	for i, a := range apts {
		out[i] = models.AppointmentDetail{
			Appointment: a,
			Patient:     patients.ref(&a.Patient),
			Doctor:      doctors.ref(a.Doctor),
			Department:  departments.ref(a.Department),
		}
	}
	return out, nil
}

func expandDoctors(ctx context.Context, repos Repositories, docs []models.Doctor) ([]models.DoctorDetail, error) {
	refs := make([]*primitive.ObjectID, len(docs))
	for i := range docs {
		refs[i] = docs[i].Department
	}
	departments, err := newResolver(ctx, repos.Departments.GetMany, refs)
	if err != nil {
		return nil, translate("department", "expand doctor departments", err)
	}

	out := make([]models.DoctorDetail, len(docs))
	for i, d := range docs {
		out[i] = models.DoctorDetail{Doctor: d, Department: departments.ref(d.Department)}
	}
	return out, nil
}

func expandDepartments(ctx context.Context, repos Repositories, depts []models.Department) ([]models.DepartmentDetail, error) {
	refs := make([]*primitive.ObjectID, len(depts))
	for i := range depts {
		refs[i] = depts[i].Doctor
	}
	doctors, err := newResolver(ctx, repos.Doctors.GetMany, refs)
	if err != nil {
		return nil, translate("doctor", "expand department doctors", err)
	}

	out := make([]models.DepartmentDetail, len(depts))
	for i, d := range depts {
		out[i] = models.DepartmentDetail{Department: d, Doctor: doctors.ref(d.Doctor)}
	}
	return out, nil
}
