package proteus

import (
	"fmt"
	"io"

	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// Result is a finished load: the model (nil when the document could not
// produce one) and every diagnostic in registration order.
type Result struct {
	Model       *model.DexpiModel
	Diagnostics derrors.DiagnosticList
}

// Load reads a Proteus document and drives the three passes over it.
// Malformed XML and an unrecognized root element fail outright; internal
// errors from any phase propagate unchanged; everything else lands in
// the diagnostics.
func Load(r io.Reader, opts Options) (*Result, error) {
	root, err := xmldoc.Parse(r)
	if err != nil {
		return nil, err
	}
	if root.Tag != "PlantModel" {
		return nil, fmt.Errorf("load plant model: unexpected root element %q", root.Tag)
	}

	objects := NewObjectRegistry()
	rec := &Recorder{}
	ctx := NewContext(root.Tag, objects, rec, opts)

	n := newPlantModelNode(ctx, root)
	if _, err := n.Compositional(); err != nil {
		return nil, err
	}
	if err := n.Reference(); err != nil {
		return nil, err
	}
	if err := n.Control(); err != nil {
		return nil, err
	}

	plant, _ := n.Object().(*model.DexpiModel)
	return &Result{Model: plant, Diagnostics: rec.Diagnostics()}, nil
}
