package datastore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoKey is returned by Entity methods which require a key.
var ErrNoKey = errors.New("datastore: entity has no key")

// ErrNoConnection is returned by Entity.Save when no Connection is supplied.
var ErrNoConnection = errors.New("datastore: no connection")

// Entity is a single Datastore record: an insertion-ordered mapping from
// field name to value, an optional Key, and the set of field names excluded
// from indexing.
//
// All mapping operations are valid without a key; only Save requires one.
// Entities are not safe for concurrent use.
type Entity struct {
	key     Key
	names   []string
	values  map[string]interface{}
	noIndex map[string]bool
}

// NewEntity creates an empty entity. key may be nil; it is required only
// for Save. excludeFromIndexes names the fields whose values are not to be
// indexed for this entity.
func NewEntity(key Key, excludeFromIndexes ...string) *Entity {
	noIndex := make(map[string]bool, len(excludeFromIndexes))
	for _, name := range excludeFromIndexes {
		noIndex[name] = true
	}

	return &Entity{
		key:     key,
		values:  make(map[string]interface{}),
		noIndex: noIndex,
	}
}

func (e *Entity) Key() Key {
	return e.key
}

func (e *Entity) SetKey(key Key) {
	e.key = key
}

// Kind returns the kind of the entity's key, or "" if the entity has no
// key. The kind lives entirely on the key; the entity stores only fields.
func (e *Entity) Kind() string {
	if e.key == nil {
		return ""
	}
	return e.key.Kind()
}

// ExcludeFromIndexes returns a sorted snapshot of the field names excluded
// from indexing. Mutating the returned slice does not affect the entity.
func (e *Entity) ExcludeFromIndexes() []string {
	names := make([]string, 0, len(e.noIndex))
	for name := range e.noIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Entity) Get(name string) (interface{}, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Set stores a field value. Overwriting an existing field keeps its
// original position in the iteration order.
func (e *Entity) Set(name string, value interface{}) {
	if _, ok := e.values[name]; !ok {
		e.names = append(e.names, name)
	}
	e.values[name] = value
}

func (e *Entity) Delete(name string) {
	if _, ok := e.values[name]; !ok {
		return
	}
	delete(e.values, name)
	for idx, n := range e.names {
		if n == name {
			e.names = append(e.names[:idx], e.names[idx+1:]...)
			break
		}
	}
}

// Names returns the field names in insertion order. Mutating the returned
// slice does not affect the entity.
func (e *Entity) Names() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}

func (e *Entity) Len() int {
	return len(e.values)
}

// Properties returns the fields in insertion order, with NoIndex set for
// fields named in the entity's exclusion set.
func (e *Entity) Properties() []Property {
	props := make([]Property, 0, len(e.names))
	for _, name := range e.names {
		props = append(props, Property{
			Name:    name,
			Value:   e.values[name],
			NoIndex: e.noIndex[name],
		})
	}
	return props
}

// Save stores the entity through conn. The full current field mapping is
// sent; already-stored fields not present on this entity are removed from
// the backend.
//
// Save requires a key and fails with ErrNoKey before any remote call
// otherwise. If conn participates in a transaction and the key is
// incomplete, the entity is registered with that transaction so the
// assigned id can be filled in at commit. If the backend assigns an id
// synchronously, the entity's key is replaced with the completed key; that
// is the only mutation Save performs.
func (e *Entity) Save(ctx context.Context, conn Connection) error {
	if e.key == nil {
		return ErrNoKey
	}
	if conn == nil {
		return ErrNoConnection
	}

	key := e.key
	assigned, newID, err := conn.SaveEntity(ctx, key.DatasetID(), key.ToProto(), e.Properties(), e.ExcludeFromIndexes())
	if err != nil {
		return err
	}

	// If we are in a transaction and the current entity needs an
	// automatically assigned id, tell the transaction where to put it.
	if tx := conn.Transaction(); tx != nil && key.Incomplete() {
		tx.AddAutoIDEntity(e)
	}

	if assigned {
		completed, err := key.Completed(newID)
		if err != nil {
			return err
		}
		e.key = completed
	}

	return nil
}

func (e *Entity) String() string {
	var b strings.Builder
	b.WriteString("<Entity")
	if e.key != nil {
		b.WriteString(e.key.Path())
	}
	b.WriteString(" {")
	for idx, name := range e.names {
		if idx != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %v", name, e.values[name])
	}
	b.WriteString("}>")
	return b.String()
}
