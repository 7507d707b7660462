package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	Base           `bson:",inline"`
	FirstName      string              `bson:"firstName" json:"firstName" validate:"required"`
	LastName       string              `bson:"lastName" json:"lastName" validate:"required"`
	Email          string              `bson:"email" json:"email" validate:"required"`
	Phone          string              `bson:"phone" json:"phone" validate:"required"`
	Specialization string              `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Department     *primitive.ObjectID `bson:"department,omitempty" json:"department,omitempty"`
	Experience     int                 `bson:"experience,omitempty" json:"experience,omitempty" validate:"gte=0"`
	Qualifications []string            `bson:"qualifications" json:"qualifications"`
	Bio            string              `bson:"bio,omitempty" json:"bio,omitempty"`
	Rating         float64             `bson:"rating" json:"rating"`
	TotalPatients  int                 `bson:"totalPatients" json:"totalPatients"`
	AvailableSlots []string            `bson:"availableSlots" json:"availableSlots"`
	Avatar         string              `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Status         string              `bson:"status" json:"status"`
}

func (d *Doctor) ApplyDefaults() {
	if d.Status == "" {
		d.Status = StatusActive
	}
	if d.Qualifications == nil {
		d.Qualifications = []string{}
	}
	if d.AvailableSlots == nil {
		d.AvailableSlots = []string{}
	}
}

func (d Doctor) DisplayName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}

type DoctorPatch struct {
	FirstName      *string             `bson:"firstName,omitempty" json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName       *string             `bson:"lastName,omitempty" json:"lastName,omitempty" validate:"omitempty,min=1"`
	Email          *string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,min=1"`
	Phone          *string             `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,min=1"`
	Specialization *string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Department     *primitive.ObjectID `bson:"department,omitempty" json:"department,omitempty"`
	Experience     *int                `bson:"experience,omitempty" json:"experience,omitempty" validate:"omitempty,gte=0"`
	Qualifications *[]string           `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Bio            *string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Rating         *float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	TotalPatients  *int                `bson:"totalPatients,omitempty" json:"totalPatients,omitempty"`
	AvailableSlots *[]string           `bson:"availableSlots,omitempty" json:"availableSlots,omitempty"`
	Avatar         *string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Status         *string             `bson:"status,omitempty" json:"status,omitempty"`
}

// DoctorDetail is a doctor with its department expanded.
type DoctorDetail struct {
	Doctor
	Department Ref[Department] `json:"department"`
}
