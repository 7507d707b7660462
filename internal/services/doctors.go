package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

type DoctorService struct {
	repos Repositories
}

func NewDoctorService(repos Repositories) *DoctorService {
	return &DoctorService{repos: repos}
}

func (s *DoctorService) List(ctx context.Context) ([]models.DoctorDetail, error) {
	docs, err := s.repos.Doctors.List(ctx)
	if err != nil {
		return nil, translate("doctor", "list doctors", err)
	}
	return expandDoctors(ctx, s.repos, docs)
}

func (s *DoctorService) Get(ctx context.Context, id primitive.ObjectID) (*models.DoctorDetail, error) {
	d, err := s.repos.Doctors.Get(ctx, id)
	if err != nil {
		return nil, translate("doctor", "get doctor", err)
	}
	out, err := expandDoctors(ctx, s.repos, []models.Doctor{*d})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *DoctorService) ByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.DoctorDetail, error) {
	docs, err := s.repos.Doctors.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, translate("doctor", "list doctors by department", err)
	}
	return expandDoctors(ctx, s.repos, docs)
}

func (s *DoctorService) Create(ctx context.Context, d *models.Doctor) error {
	d.Email = utils.NormalizeEmail(d.Email)
	d.ApplyDefaults()
	if err := check(d); err != nil {
		return err
	}
	return translate("doctor", "create doctor", s.repos.Doctors.Create(ctx, d))
}

func (s *DoctorService) Update(ctx context.Context, id primitive.ObjectID, patch models.DoctorPatch) (*models.Doctor, error) {
	if patch.Email != nil {
		email := utils.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := check(patch); err != nil {
		return nil, err
	}
	d, err := s.repos.Doctors.Update(ctx, id, patch)
	return d, translate("doctor", "update doctor", err)
}

func (s *DoctorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return translate("doctor", "delete doctor", s.repos.Doctors.Delete(ctx, id))
}

// Search returns no results for a blank query rather than every doctor.
func (s *DoctorService) Search(ctx context.Context, query string) ([]models.DoctorDetail, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.DoctorDetail{}, nil
	}
	docs, err := s.repos.Doctors.Search(ctx, query)
	if err != nil {
		return nil, translate("doctor", "search doctors", err)
	}
	return expandDoctors(ctx, s.repos, docs)
}
