// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The client and database handles are shared read-only by every handler;
// the driver's connection pool makes them safe for concurrent use.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
