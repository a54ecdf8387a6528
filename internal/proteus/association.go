package proteus

import (
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// Relation types recognized in Proteus association elements.
const (
	relIsLocatedIn            = "is located in"
	relIsTheLocationOf        = "is the location of"
	relRefersTo               = "refers to"
	relIsReferencedBy         = "is referenced by"
	relFulfills               = "fulfills"
	relIsFulfilledBy          = "is fulfilled by"
	relIsLogicalStartOf       = "is logical start of"
	relIsLogicalEndOf         = "is logical end of"
	relHasLogicalStart        = "has logical start"
	relHasLogicalEnd          = "has logical end"
	relIsACollectionIncluding = "is a collection including"
	relIsAPartOf              = "is a part of"
)

// association is a declared relationship directive: the enclosing
// element is the implicit source, TargetID names the other end. It is
// consumed by the reference and control passes and then discarded.
type association struct {
	TargetID string
	Relation string

	target   model.Object
	deferred bool
}

// parseAssociations extracts the Association children of an element in
// document order. No resolution happens here.
func parseAssociations(el *xmldoc.Element) []*association {
	var out []*association
	for _, c := range el.ChildrenByTag("Association") {
		out = append(out, &association{
			TargetID: c.AttrValue("ItemID"),
			Relation: c.AttrValue("Type"),
		})
	}
	return out
}

// assocAction is a dispatch outcome for one recognized association.
type assocAction int

const (
	// assocUnknown marks a relation type the node does not support.
	assocUnknown assocAction = iota
	// assocResolved marks a relation consumed in the reference pass.
	assocResolved
	// assocDeferred marks a relation re-examined in the control pass,
	// because the source encodes the same fact structurally as well.
	assocDeferred
	// assocUnsupported marks a relation deliberately left unresolved.
	assocUnsupported
)

// resolveAssociations validates each association against the registry
// and dispatches the recognized relation types. Invalid associations are
// dropped with one ERROR and never reach the control pass.
func (n *node) resolveAssociations(assocs []*association, dispatch func(relation string, target model.Object) assocAction) error {
	for _, a := range assocs {
		if a.TargetID == "" || a.Relation == "" {
			n.ctx.Error(msgAssociationInvalid(n.name))
			continue
		}
		target, ok := n.ctx.objects.Lookup(a.TargetID)
		if !ok {
			n.ctx.Error(msgAssociationInvalid(n.name))
			continue
		}

		switch dispatch(a.Relation, target) {
		case assocResolved:
		case assocDeferred:
			a.target = target
			a.deferred = true
		case assocUnsupported:
			n.ctx.Warn(msgAssociationUnsupported(a.Relation, n.name))
		default:
			n.ctx.Warn(msgAssociationTypeUnknown(a.Relation, n.name))
		}
	}
	return nil
}

// repairAssociations reconciles the deferred associations of owner. An
// association already reflected as an edge in either direction is left
// alone, so repair is idempotent. Otherwise the first empty compatible
// slot wins, scanning the owner first and the target second, in slot
// declaration order.
func (n *node) repairAssociations(owner model.Object, assocs []*association) error {
	for _, a := range assocs {
		if !a.deferred {
			continue
		}
		if isAssociatedWith(owner, a.target) || isAssociatedWith(a.target, owner) {
			continue
		}
		if field, ok := addByInferringType(owner, a.target); ok {
			n.ctx.Info(msgAssociationAdded(field, false))
			continue
		}
		if field, ok := addByInferringType(a.target, owner); ok {
			n.ctx.Info(msgAssociationAdded(field, true))
			continue
		}
		n.ctx.Error(msgAssociationNotAdded(owner.ObjectID(), a.TargetID))
	}
	return nil
}

// addByInferringType assigns target to the first empty singular slot or
// appendable collection slot of owner that accepts its type, in slot
// declaration order. It returns the slot name on success.
func addByInferringType(owner, target model.Object) (string, bool) {
	slotted, ok := owner.(model.Slotted)
	if !ok {
		return "", false
	}
	for _, s := range slotted.Slots() {
		switch {
		case s.Set != nil:
			if s.Get() != nil {
				continue
			}
			if s.Set(target) {
				return s.Name, true
			}
		case s.Append != nil:
			if s.Append(target) {
				return s.Name, true
			}
		}
	}
	return "", false
}

// isAssociatedWith reports whether target already appears in any of
// owner's relationship slots.
func isAssociatedWith(owner, target model.Object) bool {
	slotted, ok := owner.(model.Slotted)
	if !ok {
		return false
	}
	for _, s := range slotted.Slots() {
		if s.Get != nil && s.Get() == target {
			return true
		}
		if s.List != nil {
			for _, o := range s.List() {
				if o == target {
					return true
				}
			}
		}
	}
	return false
}
