package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

const (
	placeholderLastName = "Patient"
	placeholderPhone    = "Not updated"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the public view of a user account.
type Profile struct {
	ID        primitive.ObjectID  `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Role      models.Role         `json:"role"`
	PatientID *primitive.ObjectID `json:"patientId,omitempty"`
}

type Session struct {
	User  Profile `json:"user"`
	Token string  `json:"token"`
}

type AuthService struct {
	repos  Repositories
	tokens *utils.TokenManager
}

func NewAuthService(repos Repositories, tokens *utils.TokenManager) *AuthService {
	return &AuthService{repos: repos, tokens: tokens}
}

// Login checks the credentials and issues a session token. A missing account
// and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("Email and password required")
	}

	u, err := s.repos.Users.FindByEmail(ctx, email)
	if isNotFound(err) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, translate("user", "find user", err)
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		return nil, errInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID.Hex(), string(u.Role))
	if err != nil {
		return nil, &StoreError{Op: "issue token", Err: err}
	}
	return &Session{User: profileOf(u), Token: token}, nil
}

// Register creates a patient account and its linked Patient profile. The
// user is written first and linked afterwards; if the second write fails the
// user is left without a profile. A Patient already on file with the same
// email and no account, for example from an earlier booking, is adopted
// instead of duplicated. A Patient with that email linked to another account
// rejects the registration before anything is written.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	name := strings.TrimSpace(req.Name)
	email := utils.NormalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, invalid("All fields are required")
	}

	_, err := s.repos.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil, invalid("User already exists")
	}
	if !isNotFound(err) {
		return nil, translate("user", "find user", err)
	}

	existing, err := s.repos.Patients.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.User != nil:
		return nil, invalid("patient already exists")
	case err != nil && !isNotFound(err):
		return nil, translate("patient", "find patient", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, &StoreError{Op: "hash password", Err: err}
	}
	u := &models.User{Name: name, Email: email, Password: hash, Role: models.RolePatient}
	if err := check(u); err != nil {
		return nil, err
	}
	if err := s.repos.Users.Create(ctx, u); err != nil {
		return nil, translate("user", "create user", err)
	}

	patient, err := s.linkPatient(ctx, u, existing)
	if err != nil {
		return nil, err
	}

	linked, err := s.repos.Users.Update(ctx, u.ID, models.UserPatch{PatientProfile: &patient.ID})
	if err != nil {
		return nil, translate("user", "link patient profile", err)
	}
	p := profileOf(linked)
	return &p, nil
}

// linkPatient adopts existing when it is set and otherwise creates a new
// Patient for u.
func (s *AuthService) linkPatient(ctx context.Context, u *models.User, existing *models.Patient) (*models.Patient, error) {
	if existing != nil {
		p, err := s.repos.Patients.Update(ctx, existing.ID, models.PatientPatch{User: &u.ID})
		return p, translate("patient", "link patient", err)
	}

	first, last := utils.SplitName(u.Name, placeholderLastName)
	p := &models.Patient{
		FirstName: first,
		LastName:  last,
		Email:     u.Email,
		Phone:     placeholderPhone,
		User:      &u.ID,
	}
	p.ApplyDefaults()
	if err := s.repos.Patients.Create(ctx, p); err != nil {
		return nil, translate("patient", "create patient", err)
	}
	return p, nil
}

func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	u, err := s.repos.Users.Get(ctx, userID)
	if err != nil {
		return nil, translate("user", "get user", err)
	}
	p := profileOf(u)
	return &p, nil
}

// EnsureUser creates an account with the given role unless the email is
// already registered. It reports whether a user was created.
func (s *AuthService) EnsureUser(ctx context.Context, name, email, password string, role models.Role) (bool, error) {
	email = utils.NormalizeEmail(email)
	_, err := s.repos.Users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !isNotFound(err) {
		return false, translate("user", "find user", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, &StoreError{Op: "hash password", Err: err}
	}
	u := &models.User{Name: name, Email: email, Password: hash, Role: role}
	u.ApplyDefaults()
	if err := check(u); err != nil {
		return false, err
	}
	if err := s.repos.Users.Create(ctx, u); err != nil {
		return false, translate("user", "create user", err)
	}
	return true, nil
}

func profileOf(u *models.User) Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		PatientID: u.PatientProfile,
	}
}
