package datastore

import (
	"errors"
	"fmt"
	"strings"

	dspb "google.golang.org/genproto/googleapis/datastore/v1"
)

// Key is the identifier of an Entity. Keys are immutable; Completed returns
// a new key instead of modifying the receiver.
type Key interface {
	DatasetID() string
	Kind() string
	ID() int64
	Name() string
	ParentKey() Key

	// Incomplete reports whether the key has neither an id nor a name,
	// leaving id assignment to the backend.
	Incomplete() bool

	// Completed returns a copy of the key carrying the given
	// backend-assigned id. It fails if the key already has an id or name.
	Completed(id int64) (Key, error)

	// Path returns the ancestor chain in /Kind,id form.
	Path() string
	ToProto() *dspb.Key

	String() string
}

var _ Key = (*keyImpl)(nil)

type keyImpl struct {
	datasetID string
	kind      string
	id        int64
	name      string
	parent    *keyImpl
}

// IDKey creates a key with a numeric id.
func IDKey(datasetID, kind string, id int64, parent Key) Key {
	return &keyImpl{
		datasetID: datasetID,
		kind:      kind,
		id:        id,
		parent:    toKeyImpl(parent),
	}
}

// NameKey creates a key with a string name.
func NameKey(datasetID, kind, name string, parent Key) Key {
	return &keyImpl{
		datasetID: datasetID,
		kind:      kind,
		name:      name,
		parent:    toKeyImpl(parent),
	}
}

// IncompleteKey creates a key without an id. The backend assigns one on
// first save.
func IncompleteKey(datasetID, kind string, parent Key) Key {
	return &keyImpl{
		datasetID: datasetID,
		kind:      kind,
		parent:    toKeyImpl(parent),
	}
}

func toKeyImpl(key Key) *keyImpl {
	if key == nil {
		return nil
	}
	if impl, ok := key.(*keyImpl); ok {
		return impl
	}

	return &keyImpl{
		datasetID: key.DatasetID(),
		kind:      key.Kind(),
		id:        key.ID(),
		name:      key.Name(),
		parent:    toKeyImpl(key.ParentKey()),
	}
}

func (k *keyImpl) DatasetID() string {
	return k.datasetID
}

func (k *keyImpl) Kind() string {
	if k == nil {
		panic("k is nil")
	}
	return k.kind
}

func (k *keyImpl) ID() int64 {
	return k.id
}

func (k *keyImpl) Name() string {
	return k.name
}

func (k *keyImpl) ParentKey() Key {
	if k.parent == nil {
		return nil
	}
	return k.parent
}

func (k *keyImpl) Incomplete() bool {
	return k.id == 0 && k.name == ""
}

func (k *keyImpl) Completed(id int64) (Key, error) {
	if !k.Incomplete() {
		return nil, errors.New("datastore: key is already complete")
	}

	newKey := *k
	newKey.id = id
	return &newKey, nil
}

func (k *keyImpl) Path() string {
	var b strings.Builder
	k.writePath(&b)
	return b.String()
}

func (k *keyImpl) writePath(b *strings.Builder) {
	if k.parent != nil {
		k.parent.writePath(b)
	}
	b.WriteByte('/')
	b.WriteString(k.kind)
	b.WriteByte(',')
	if k.name != "" {
		b.WriteString(k.name)
	} else {
		fmt.Fprintf(b, "%d", k.id)
	}
}

func (k *keyImpl) ToProto() *dspb.Key {
	keyPb := &dspb.Key{
		PartitionId: &dspb.PartitionId{
			ProjectId: k.datasetID,
		},
	}
	for cur := k; cur != nil; cur = cur.parent {
		elem := &dspb.Key_PathElement{
			Kind: cur.kind,
		}
		switch {
		case cur.name != "":
			elem.IdType = &dspb.Key_PathElement_Name{Name: cur.name}
		case cur.id != 0:
			elem.IdType = &dspb.Key_PathElement_Id{Id: cur.id}
		}
		keyPb.Path = append([]*dspb.Key_PathElement{elem}, keyPb.Path...)
	}

	return keyPb
}

func (k *keyImpl) String() string {
	return k.Path()
}
