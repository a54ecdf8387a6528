// Package proteus implements the three-pass Proteus document loader: a
// compositional pass building domain objects and ownership edges, a
// reference pass resolving id references once every object exists, and a
// control pass reconciling redundantly encoded relationships.
package proteus

import (
	"fmt"

	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/model"
)

// ObjectRegistry maps source ids to constructed domain objects. An id is
// registered at most once, during the compositional pass; later passes
// only read. A lookup miss is a valid outcome, not an error.
type ObjectRegistry struct {
	objects map[string]model.Object
}

// NewObjectRegistry returns an empty registry.
func NewObjectRegistry() *ObjectRegistry {
	return &ObjectRegistry{objects: make(map[string]model.Object)}
}

// Register stores obj under id. Empty and already-registered ids are
// rejected.
func (r *ObjectRegistry) Register(id string, obj model.Object) error {
	if id == "" {
		return fmt.Errorf("register object: empty id")
	}
	if _, ok := r.objects[id]; ok {
		return fmt.Errorf("register object: id %q already registered", id)
	}
	r.objects[id] = obj
	return nil
}

// Lookup returns the object registered under id, if any.
func (r *ObjectRegistry) Lookup(id string) (model.Object, bool) {
	obj, ok := r.objects[id]
	return obj, ok
}

// Len returns the number of registered objects.
func (r *ObjectRegistry) Len() int { return len(r.objects) }

// Recorder accumulates diagnostics in the order they were registered.
type Recorder struct {
	diagnostics derrors.DiagnosticList
}

// Record appends a diagnostic.
func (r *Recorder) Record(d derrors.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns the recorded diagnostics in order.
func (r *Recorder) Diagnostics() derrors.DiagnosticList {
	return r.diagnostics
}
