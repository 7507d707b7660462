package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

type DepartmentService struct {
	repos Repositories
}

func NewDepartmentService(repos Repositories) *DepartmentService {
	return &DepartmentService{repos: repos}
}

func (s *DepartmentService) List(ctx context.Context) ([]models.DepartmentDetail, error) {
	depts, err := s.repos.Departments.List(ctx)
	if err != nil {
		return nil, translate("department", "list departments", err)
	}
	return expandDepartments(ctx, s.repos, depts)
}

func (s *DepartmentService) Get(ctx context.Context, id primitive.ObjectID) (*models.DepartmentDetail, error) {
	d, err := s.repos.Departments.Get(ctx, id)
	if err != nil {
		return nil, translate("department", "get department", err)
	}
	out, err := expandDepartments(ctx, s.repos, []models.Department{*d})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *DepartmentService) Create(ctx context.Context, d *models.Department) error {
	d.Name = strings.TrimSpace(d.Name)
	d.ApplyDefaults()
	if err := check(d); err != nil {
		return err
	}
	return translate("department", "create department", s.repos.Departments.Create(ctx, d))
}

func (s *DepartmentService) Update(ctx context.Context, id primitive.ObjectID, patch models.DepartmentPatch) (*models.Department, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if err := check(patch); err != nil {
		return nil, err
	}
	d, err := s.repos.Departments.Update(ctx, id, patch)
	return d, translate("department", "update department", err)
}

func (s *DepartmentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return translate("department", "delete department", s.repos.Departments.Delete(ctx, id))
}

// Resolve maps a department name to its id using a case-insensitive exact
// match. A blank or unknown name yields a nil id, not an error.
func (s *DepartmentService) Resolve(ctx context.Context, name string) (*primitive.ObjectID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	d, err := s.repos.Departments.FindByName(ctx, name)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("department", "resolve department", err)
	}
	return &d.ID, nil
}
