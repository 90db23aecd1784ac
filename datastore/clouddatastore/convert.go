package clouddatastore

import (
	clouds "cloud.google.com/go/datastore"
	w "go.hakobune.dev/gcloud/datastore"
	dspb "google.golang.org/genproto/googleapis/datastore/v1"
)

func toOriginalKey(key *dspb.Key) *clouds.Key {
	if key == nil {
		return nil
	}

	var origKey *clouds.Key
	for _, elem := range key.GetPath() {
		origKey = &clouds.Key{
			Kind:   elem.GetKind(),
			ID:     elem.GetId(),
			Name:   elem.GetName(),
			Parent: origKey,
		}
	}

	return origKey
}

func toOriginalPropertyList(props []w.Property, excludeFromIndexes []string) clouds.PropertyList {
	noIndex := make(map[string]bool, len(excludeFromIndexes))
	for _, name := range excludeFromIndexes {
		noIndex[name] = true
	}

	pl := make(clouds.PropertyList, 0, len(props))
	for _, p := range props {
		pl = append(pl, clouds.Property{
			Name:    p.Name,
			Value:   p.Value,
			NoIndex: p.NoIndex || noIndex[p.Name],
		})
	}

	return pl
}
