package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type Patient struct {
	Base             `bson:",inline"`
	FirstName        string              `bson:"firstName" json:"firstName" validate:"required"`
	LastName         string              `bson:"lastName" json:"lastName" validate:"required"`
	Email            string              `bson:"email" json:"email" validate:"required"`
	Phone            string              `bson:"phone" json:"phone" validate:"required"`
	User             *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	DateOfBirth      *time.Time          `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender           string              `bson:"gender,omitempty" json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup       string              `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Address          string              `bson:"address,omitempty" json:"address,omitempty"`
	EmergencyContact string              `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	Insurance        string              `bson:"insurance,omitempty" json:"insurance,omitempty"`
	MedicalHistory   []string            `bson:"medicalHistory" json:"medicalHistory"`
	Avatar           string              `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Status           string              `bson:"status" json:"status"`
	LastVisit        *time.Time          `bson:"lastVisit,omitempty" json:"lastVisit,omitempty"`
}

func (p *Patient) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.MedicalHistory == nil {
		p.MedicalHistory = []string{}
	}
}

func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientPatch holds the fields of a partial update. Nil fields are left
// untouched.
type PatientPatch struct {
	FirstName        *string             `bson:"firstName,omitempty" json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName         *string             `bson:"lastName,omitempty" json:"lastName,omitempty" validate:"omitempty,min=1"`
	Email            *string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,min=1"`
	Phone            *string             `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,min=1"`
	User             *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	DateOfBirth      *time.Time          `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender           *string             `bson:"gender,omitempty" json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup       *string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Address          *string             `bson:"address,omitempty" json:"address,omitempty"`
	EmergencyContact *string             `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	Insurance        *string             `bson:"insurance,omitempty" json:"insurance,omitempty"`
	MedicalHistory   *[]string           `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	Avatar           *string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Status           *string             `bson:"status,omitempty" json:"status,omitempty"`
	LastVisit        *time.Time          `bson:"lastVisit,omitempty" json:"lastVisit,omitempty"`
}
