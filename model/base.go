// Package model defines the plant-model object graph produced by a load:
// the domain types, their class enumerations, the decodable attribute
// schemas, and the slot tables used for association repair. Composition
// edges are owned pointers and slices; reference edges are plain pointers
// and may form cycles. The whole graph is released together, so cycles
// carry no ownership hazard.
package model

import "reflect"

// Object is implemented by every domain object that carries an identity.
type Object interface {
	ObjectID() string
}

// Base carries the source id and the decoded generic attributes shared by
// every domain object.
type Base struct {
	ID         string
	Attributes map[string]Value
}

// ObjectID returns the source id of the object.
func (b *Base) ObjectID() string { return b.ID }

// SetAttribute stores a decoded generic attribute under its field name.
func (b *Base) SetAttribute(name string, v Value) {
	if b.Attributes == nil {
		b.Attributes = make(map[string]Value)
	}
	b.Attributes[name] = v
}

// Attribute returns the decoded attribute stored under name, if any.
func (b *Base) Attribute(name string) (Value, bool) {
	v, ok := b.Attributes[name]
	return v, ok
}

// Slot describes one relationship field of a domain object. Singular
// fields provide Get and Set; collection fields provide List and Append.
// Set and Append reject objects of an incompatible type by returning
// false. Slot order follows field declaration order, which is the order
// the repair algorithm scans.
type Slot struct {
	Name   string
	Get    func() Object
	Set    func(Object) bool
	List   func() []Object
	Append func(Object) bool
}

// Slotted is implemented by domain objects that expose relationship
// slots for duck-typed association repair.
type Slotted interface {
	Object
	Slots() []Slot
}

// IsNilObject reports whether o is nil or a typed nil pointer.
func IsNilObject(o Object) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Singular builds a slot over a typed pointer field.
func Singular[T Object](name string, field *T) Slot {
	return Slot{
		Name: name,
		Get: func() Object {
			if IsNilObject(Object(*field)) {
				return nil
			}
			return *field
		},
		Set: func(o Object) bool {
			t, ok := o.(T)
			if !ok {
				return false
			}
			*field = t
			return true
		},
	}
}

// Collection builds a slot over a typed slice field.
func Collection[T Object](name string, field *[]T) Slot {
	return Slot{
		Name: name,
		List: func() []Object {
			out := make([]Object, 0, len(*field))
			for _, v := range *field {
				out = append(out, v)
			}
			return out
		},
		Append: func(o Object) bool {
			t, ok := o.(T)
			if !ok {
				return false
			}
			*field = append(*field, t)
			return true
		},
	}
}
