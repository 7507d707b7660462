package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusNoShow    AppointmentStatus = "No-show"
)

const DefaultDuration = 30

type Appointment struct {
	Base            `bson:",inline"`
	Patient         primitive.ObjectID  `bson:"patient" json:"patient" validate:"required"`
	Doctor          *primitive.ObjectID `bson:"doctor" json:"doctor"`
	Department      *primitive.ObjectID `bson:"department" json:"department"`
	AppointmentDate time.Time           `bson:"appointmentDate" json:"appointmentDate" validate:"required"`
	Time            string              `bson:"time" json:"time"`
	Reason          string              `bson:"reason" json:"reason"`
	Status          AppointmentStatus   `bson:"status" json:"status" validate:"oneof=Scheduled Completed Cancelled No-show"`
	Notes           string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Duration        int                 `bson:"duration" json:"duration" validate:"gte=0"`
}

func (a *Appointment) ApplyDefaults() {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.Duration == 0 {
		a.Duration = DefaultDuration
	}
}

type AppointmentPatch struct {
	Patient         *primitive.ObjectID `bson:"patient,omitempty" json:"patient,omitempty"`
	Doctor          *primitive.ObjectID `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Department      *primitive.ObjectID `bson:"department,omitempty" json:"department,omitempty"`
	AppointmentDate *time.Time          `bson:"appointmentDate,omitempty" json:"appointmentDate,omitempty"`
	Time            *string             `bson:"time,omitempty" json:"time,omitempty"`
	Reason          *string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Status          *AppointmentStatus  `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=Scheduled Completed Cancelled No-show"`
	Notes           *string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Duration        *int                `bson:"duration,omitempty" json:"duration,omitempty" validate:"omitempty,gte=0"`
}

// AppointmentFilter narrows an appointment listing. Zero fields match
// everything.
type AppointmentFilter struct {
	Status  AppointmentStatus
	From    *time.Time
	To      *time.Time
	Patient *primitive.ObjectID
	Doctor  *primitive.ObjectID
}

// AppointmentDetail is an appointment with its references expanded.
type AppointmentDetail struct {
	Appointment
	Patient    Ref[Patient]    `json:"patient"`
	Doctor     Ref[Doctor]     `json:"doctor"`
	Department Ref[Department] `json:"department"`
}

type AppointmentStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Scheduled int64 `json:"scheduled"`
	Cancelled int64 `json:"cancelled"`
}
