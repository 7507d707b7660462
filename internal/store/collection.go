package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Document is satisfied by every model embedding models.Base.
type Document interface {
	GetID() primitive.ObjectID
}

type stamper interface {
	Stamp(now time.Time)
}

// Collection is a typed view of one MongoDB collection. Every operation is a
// single-document or single-query call; nothing here spans multiple writes.
type Collection[T Document] struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewCollection[T Document](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name), now: time.Now}
}

func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

func (c *Collection[T]) FindAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
	}
	return docs, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", c.Name(), err)
	}
	return &doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

// FindByIDs loads every listed document in one query and indexes the result
// by id. Ids with no document are simply absent from the map.
func (c *Collection[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]T, error) {
	found := make(map[primitive.ObjectID]T, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	docs, err := c.FindAll(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		found[d.GetID()] = d
	}
	return found, nil
}

// Create stamps and inserts doc. The assigned id is written back into doc.
func (c *Collection[T]) Create(ctx context.Context, doc *T) error {
	if s, ok := any(doc).(stamper); ok {
		s.Stamp(c.now())
	}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert %s: %w", c.Name(), ErrDuplicate)
		}
		return fmt.Errorf("insert %s: %w", c.Name(), err)
	}
	return nil
}

// UpdateByID $sets the non-empty fields of patch and returns the updated
// document. patch is typically a *Patch struct whose nil fields are dropped
// by their omitempty tags.
func (c *Collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, patch any) (*T, error) {
	set, err := setDocument(patch)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", c.Name(), err)
	}
	set["updatedAt"] = c.now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	err = c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, fmt.Errorf("update %s: %w", c.Name(), ErrDuplicate)
	case err != nil:
		return nil, fmt.Errorf("update %s: %w", c.Name(), err)
	}
	return &doc, nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.Name(), err)
	}
	return n, nil
}

func setDocument(patch any) (bson.M, error) {
	set := bson.M{}
	if patch == nil {
		return set, nil
	}
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}
