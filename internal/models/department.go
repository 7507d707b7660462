package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Department struct {
	Base        `bson:",inline"`
	Name        string              `bson:"name" json:"name" validate:"required"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Doctor      *primitive.ObjectID `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Floor       *int                `bson:"floor,omitempty" json:"floor,omitempty"`
	Phone       string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string              `bson:"email,omitempty" json:"email,omitempty"`
	Status      string              `bson:"status" json:"status"`
}

func (d *Department) ApplyDefaults() {
	if d.Status == "" {
		d.Status = StatusActive
	}
}

type DepartmentPatch struct {
	Name        *string             `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string             `bson:"description,omitempty" json:"description,omitempty"`
	Doctor      *primitive.ObjectID `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Floor       *int                `bson:"floor,omitempty" json:"floor,omitempty"`
	Phone       *string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       *string             `bson:"email,omitempty" json:"email,omitempty"`
	Status      *string             `bson:"status,omitempty" json:"status,omitempty"`
}

// DepartmentDetail is a department with its representative doctor expanded.
type DepartmentDetail struct {
	Department
	Doctor Ref[Doctor] `json:"doctor"`
}
