// Package clouddatastore implements datastore.Connection on top of the
// official cloud.google.com/go/datastore SDK.
package clouddatastore

import (
	"context"

	"cloud.google.com/go/compute/metadata"
	clouds "cloud.google.com/go/datastore"
	"go.hakobune.dev/gcloud"
	w "go.hakobune.dev/gcloud/datastore"
	"go.hakobune.dev/gcloud/internal"
	"google.golang.org/api/option"
	dspb "google.golang.org/genproto/googleapis/datastore/v1"
)

var _ w.Connection = (*Conn)(nil)

var projectID *string

func newClientSettings(opts ...gcloud.ClientOption) *internal.ClientSettings {
	if projectID == nil {
		pID, err := metadata.ProjectID()
		if err != nil {
			// don't check again even if it was failed...
			pID = internal.GetProjectID()
		}
		projectID = &pID
	}
	settings := &internal.ClientSettings{
		ProjectID: *projectID,
	}
	for _, opt := range opts {
		opt.Apply(settings)
	}
	return settings
}

// FromContext builds a Conn backed by a freshly constructed SDK client.
func FromContext(ctx context.Context, opts ...gcloud.ClientOption) (*Conn, error) {
	settings := newClientSettings(opts...)
	origOpts := make([]option.ClientOption, 0, len(opts))
	if len(settings.Scopes) != 0 {
		origOpts = append(origOpts, option.WithScopes(settings.Scopes...))
	}
	if settings.TokenSource != nil {
		origOpts = append(origOpts, option.WithTokenSource(settings.TokenSource))
	}
	if settings.CredentialsFile != "" {
		origOpts = append(origOpts, option.WithCredentialsFile(settings.CredentialsFile))
	}
	if settings.HTTPClient != nil {
		origOpts = append(origOpts, option.WithHTTPClient(settings.HTTPClient))
	}
	if settings.GRPCConn != nil {
		origOpts = append(origOpts, option.WithGRPCConn(settings.GRPCConn))
	}

	client, err := clouds.NewClient(ctx, settings.ProjectID, origOpts...)
	if err != nil {
		return nil, err
	}

	return &Conn{client: client}, nil
}

// Conn is a datastore.Connection over the official SDK.
type Conn struct {
	client *clouds.Client
	tx     w.Transaction
}

// WithTransaction returns a derived Conn reporting tx as the transaction it
// participates in. The receiver is unchanged.
func (c *Conn) WithTransaction(tx w.Transaction) *Conn {
	return &Conn{client: c.client, tx: tx}
}

func (c *Conn) Transaction() w.Transaction {
	return c.tx
}

// SaveEntity stores the properties under the given key with a single Put.
// The backend replaces all previously stored fields for the key.
func (c *Conn) SaveEntity(ctx context.Context, datasetID string, key *dspb.Key, props []w.Property, excludeFromIndexes []string) (assigned bool, newID int64, err error) {
	origKey := toOriginalKey(key)
	incomplete := origKey.Incomplete()

	pl := toOriginalPropertyList(props, excludeFromIndexes)
	resultKey, err := c.client.Put(ctx, origKey, &pl)
	if err != nil {
		return false, 0, err
	}

	if incomplete {
		return true, resultKey.ID, nil
	}
	return false, 0, nil
}

func (c *Conn) Close() error {
	return c.client.Close()
}
