package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

type PatientService struct {
	repos Repositories
}

func NewPatientService(repos Repositories) *PatientService {
	return &PatientService{repos: repos}
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.repos.Patients.List(ctx)
	return patients, translate("patient", "list patients", err)
}

func (s *PatientService) Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	p, err := s.repos.Patients.Get(ctx, id)
	return p, translate("patient", "get patient", err)
}

func (s *PatientService) Create(ctx context.Context, p *models.Patient) error {
	p.Email = utils.NormalizeEmail(p.Email)
	p.ApplyDefaults()
	if err := check(p); err != nil {
		return err
	}
	return translate("patient", "create patient", s.repos.Patients.Create(ctx, p))
}

func (s *PatientService) Update(ctx context.Context, id primitive.ObjectID, patch models.PatientPatch) (*models.Patient, error) {
	if patch.Email != nil {
		email := utils.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := check(patch); err != nil {
		return nil, err
	}
	p, err := s.repos.Patients.Update(ctx, id, patch)
	return p, translate("patient", "update patient", err)
}

func (s *PatientService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return translate("patient", "delete patient", s.repos.Patients.Delete(ctx, id))
}

// Search returns no results for a blank query rather than every patient.
func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Patient{}, nil
	}
	patients, err := s.repos.Patients.Search(ctx, query)
	return patients, translate("patient", "search patients", err)
}
