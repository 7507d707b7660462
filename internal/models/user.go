package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

type User struct {
	Base           `bson:",inline"`
	Email          string              `bson:"email" json:"email" validate:"required"`
	Password       string              `bson:"password" json:"-" validate:"required"` // bcrypt hash, never serialized
	Role           Role                `bson:"role" json:"role" validate:"omitempty,oneof=admin doctor patient"`
	Name           string              `bson:"name" json:"name" validate:"required"`
	PatientProfile *primitive.ObjectID `bson:"patientProfile,omitempty" json:"patientProfile,omitempty"`
}

func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleAdmin
	}
}

type UserPatch struct {
	Name           *string             `bson:"name,omitempty" json:"name,omitempty"`
	PatientProfile *primitive.ObjectID `bson:"patientProfile,omitempty" json:"patientProfile,omitempty"`
}
