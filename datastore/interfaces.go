package datastore

import (
	"context"

	dspb "google.golang.org/genproto/googleapis/datastore/v1"
)

// Connection sends entities to the backend. A production implementation
// lives in the clouddatastore subpackage; tests supply fakes.
type Connection interface {
	// SaveEntity stores the given properties under the given key,
	// replacing all previously stored fields for that key. If the key was
	// incomplete and the backend assigned an id, assigned is true and
	// newID carries the assignment.
	SaveEntity(ctx context.Context, datasetID string, key *dspb.Key, props []Property, excludeFromIndexes []string) (assigned bool, newID int64, err error)

	// Transaction returns the transaction the connection currently
	// participates in, or nil outside a transaction.
	Transaction() Transaction
}

// Transaction collects entities whose ids the backend assigns at commit
// time, so it can complete their keys afterwards.
type Transaction interface {
	AddAutoIDEntity(e *Entity)
}

// Property is a single named field of an Entity as handed to a Connection.
type Property struct {
	Name    string
	Value   interface{}
	NoIndex bool
}
