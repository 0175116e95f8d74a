package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/userhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no user exists with the requested ID.
	ErrNotFound = errors.New("user not found")
	// ErrNoChange is returned when an update matched but modified nothing.
	// The HTTP layer treats this the same as a failed update.
	ErrNoChange = errors.New("update modified no documents")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user with a freshly generated ObjectID.
// Any identifier a caller may have supplied is never consulted; the ID is
// assigned here and returned on the inserted record.
func (s *Store) Create(ctx context.Context, name, email *string) (models.User, error) {
	u := models.User{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetAll materializes every user in the collection. Ordering is whatever
// the store returns; no sort is applied. Any decode or cursor error aborts
// the whole read.
func (s *Store) GetAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateFields writes the merged name/email back to the record with the
// given ID. Upsert is disabled: an update never creates a record. Returns
// ErrNoChange when the write modified zero documents, which covers both a
// vanished record and a merge that produced no actual change.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, u models.User) error {
	set := bson.M{
		"name":  u.Name,
		"email": u.Email,
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.Update().SetUpsert(false),
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNoChange
	}
	return nil
}

// Delete removes the user with the given ID and reports how many documents
// were removed (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
