package proteus

import (
	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/internal/xmldoc"
)

// Options adjusts loader behavior.
type Options struct {
	// StrictMetadata escalates fixed-value metadata mismatches from
	// WARNING to ERROR.
	StrictMetadata bool
}

// Context is the immutable per-node load state: the ancestor element
// tags, the ancestor ids for diagnostic attribution, and shared handles
// to the registries. Descend copies, so a node never observes its
// children's mutations.
type Context struct {
	tags    []string
	ids     []string
	objects *ObjectRegistry
	rec     *Recorder
	opts    Options
}

// NewContext builds the root context for a document whose root element
// carries the given tag.
func NewContext(rootTag string, objects *ObjectRegistry, rec *Recorder, opts Options) Context {
	return Context{
		tags:    []string{rootTag},
		ids:     []string{""},
		objects: objects,
		rec:     rec,
		opts:    opts,
	}
}

// Descend returns a copy of the context extended with the element's tag
// and id. Elements without an ID attribute push an empty id so the
// stacks stay aligned.
func (c Context) Descend(el *xmldoc.Element) Context {
	tags := make([]string, len(c.tags)+1)
	copy(tags, c.tags)
	tags[len(c.tags)] = el.Tag

	ids := make([]string, len(c.ids)+1)
	copy(ids, c.ids)
	ids[len(c.ids)] = el.AttrValue("ID")

	c.tags = tags
	c.ids = ids
	return c
}

// CurrentTag returns the tag of the element the context points at.
func (c Context) CurrentTag() string {
	return c.tags[len(c.tags)-1]
}

// ParentTag returns the tag of the enclosing element, or "" at the root.
func (c Context) ParentTag() string {
	if len(c.tags) < 2 {
		return ""
	}
	return c.tags[len(c.tags)-2]
}

// LastID walks the id stack backwards and returns the nearest non-empty
// id, or "" when no ancestor carried one.
func (c Context) LastID() string {
	for i := len(c.ids) - 1; i >= 0; i-- {
		if c.ids[i] != "" {
			return c.ids[i]
		}
	}
	return ""
}

func (c Context) record(sev derrors.Severity, msg string, cause error) {
	c.rec.Record(derrors.Diagnostic{
		Message:  msg,
		Severity: sev,
		ID:       c.LastID(),
		Err:      cause,
	})
}

// Info records an INFO diagnostic attributed to the nearest enclosing id.
func (c Context) Info(msg string) { c.record(derrors.Info, msg, nil) }

// Warn records a WARNING diagnostic.
func (c Context) Warn(msg string) { c.record(derrors.Warning, msg, nil) }

// Error records an ERROR diagnostic.
func (c Context) Error(msg string) { c.record(derrors.Error, msg, nil) }

// Critical records a CRITICAL diagnostic.
func (c Context) Critical(msg string) { c.record(derrors.Critical, msg, nil) }
