package proteus

import (
	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// Node is one unit of loading work mirroring an XML element. The three
// phases run in order across the whole tree: Compositional builds the
// domain object, Reference resolves id references, Control repairs
// redundantly encoded relationships. Reference and Control before
// Compositional is a programmer error and yields an InternalError.
type Node interface {
	Compositional() (model.Object, error)
	Reference() error
	Control() error
	Object() model.Object
}

// node is the shared phase bookkeeping embedded by every concrete node.
// The error boundary lives here: any non-internal failure in a phase
// becomes an ERROR diagnostic and the phase yields nothing, so siblings
// keep loading. Internal errors propagate unchanged.
type node struct {
	ctx      Context
	elem     *xmldoc.Element
	name     string
	children []Node
	obj      model.Object
	ran      bool
}

func newNode(ctx Context, el *xmldoc.Element) node {
	return node{ctx: ctx, elem: el, name: el.Tag}
}

// Object returns the domain object produced by the compositional pass,
// or nil when the node produced nothing.
func (n *node) Object() model.Object { return n.obj }

// requireID returns the element's id, recording the skip ERROR when it
// is absent.
func (n *node) requireID() (string, bool) {
	id := n.elem.AttrValue("ID")
	if id == "" {
		n.ctx.Error(msgIDNotFound(n.name))
		return "", false
	}
	return id, true
}

// register stores obj in the object registry, recording an ERROR and
// reporting false when the id is already taken.
func (n *node) register(id string, obj model.Object) bool {
	if err := n.ctx.objects.Register(id, obj); err != nil {
		n.ctx.Error(msgDuplicateID(id, n.name))
		return false
	}
	return true
}

func (n *node) addChild(c Node) { n.children = append(n.children, c) }

// compose runs the compositional phase once behind the error boundary.
func (n *node) compose(build func() (model.Object, error)) (model.Object, error) {
	if n.ran {
		return nil, derrors.Internalf("compositional pass ran twice for element '%s'", n.name)
	}
	n.ran = true

	obj, err := build()
	if err != nil {
		if derrors.IsInternal(err) {
			return nil, err
		}
		n.ctx.record(derrors.Error, msgPhaseError("compositional", n.name, err), err)
		return nil, nil
	}
	n.obj = obj
	return obj, nil
}

// Reference recurses into the children. Concrete nodes with node-local
// resolution work override this and call referencePhase instead.
func (n *node) Reference() error { return n.referencePhase(nil) }

// Control recurses into the children.
func (n *node) Control() error { return n.controlPhase(nil) }

func (n *node) referencePhase(local func() error) error {
	return n.runPhase("reference", local)
}

func (n *node) controlPhase(local func() error) error {
	return n.runPhase("control", local)
}

func (n *node) runPhase(pass string, local func() error) error {
	if !n.ran {
		return derrors.Internalf("%s pass before compositional for element '%s'", pass, n.name)
	}
	if n.obj == nil {
		n.ctx.record(derrors.Info, msgPassSkipped(pass, n.name), nil)
		return nil
	}

	for _, c := range n.children {
		var err error
		if pass == "reference" {
			err = c.Reference()
		} else {
			err = c.Control()
		}
		if err != nil {
			return err
		}
	}

	if local == nil {
		return nil
	}
	if err := local(); err != nil {
		if derrors.IsInternal(err) {
			return err
		}
		n.ctx.record(derrors.Error, msgPhaseError(pass, n.name, err), err)
	}
	return nil
}
