package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base carries the fields every stored document has. Embed it with
// `bson:",inline"` so the fields stay at the top level of the document.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (b Base) GetID() primitive.ObjectID {
	return b.ID
}

// Stamp assigns an id if the document has none and records the write time.
func (b *Base) Stamp(now time.Time) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// StatusActive is the default for the free-text status fields of patients,
// doctors and departments.
const StatusActive = "Active"
