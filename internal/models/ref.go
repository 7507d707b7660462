package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ref is an expanded reference field. It is either Found, holding the
// referenced document, or Unresolved, when the field was empty or the
// target no longer exists. Unresolved references serialize as null.
type Ref[T any] struct {
	id  primitive.ObjectID
	doc *T
}

func Found[T any](id primitive.ObjectID, doc T) Ref[T] {
	return Ref[T]{id: id, doc: &doc}
}

func Unresolved[T any](id primitive.ObjectID) Ref[T] {
	return Ref[T]{id: id}
}

// ID returns the stored identifier, which may be set even when the
// reference is unresolved.
func (r Ref[T]) ID() primitive.ObjectID {
	return r.id
}

func (r Ref[T]) Resolved() (T, bool) {
	if r.doc == nil {
		var zero T
		return zero, false
	}
	return *r.doc, true
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.doc == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.doc)
}
