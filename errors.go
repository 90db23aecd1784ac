package gcloud

import "fmt"

// NotFoundError is returned when a remote call reports that the named
// resource does not exist. Path is the full resource path, e.g.
// "projects/proj/sinks/sink-name".
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gcloud: %s not found", e.Path)
}

// ConflictError is returned when a create call reports that the named
// resource already exists.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("gcloud: %s already exists", e.Path)
}
