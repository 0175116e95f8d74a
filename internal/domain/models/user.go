// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the sole record type userhub manages.
//
// Name and Email are pointer-typed so "absent" and "explicitly empty" stay
// distinguishable: an unset field is omitted from both the stored document
// and the JSON response rather than encoded as null. ID is assigned exactly
// once, server-side, when the record is created; it is never accepted from
// a client.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  *string            `bson:"name,omitempty" json:"name,omitempty"`
	Email *string            `bson:"email,omitempty" json:"email,omitempty"`
}
