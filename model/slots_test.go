package model

import "testing"

func TestSingularSlot(t *testing.T) {
	t.Parallel()

	nz := &Nozzle{Base: Base{ID: "N1"}}
	slots := nz.Slots()

	var located Slot
	for _, s := range slots {
		if s.Name == "locatedIn" {
			located = s
		}
	}
	if located.Get == nil {
		t.Fatalf("locatedIn slot not found")
	}

	if got := located.Get(); got != nil {
		t.Fatalf("Get() = %v, want nil for unset field", got)
	}

	eq := &Equipment{Base: Base{ID: "E1"}}
	if !located.Set(eq) {
		t.Fatalf("Set(equipment) = false, want true")
	}
	if got := located.Get(); got != eq {
		t.Fatalf("Get() = %v, want the assigned equipment", got)
	}
	if nz.LocatedIn != Object(eq) {
		t.Fatalf("LocatedIn = %v, want %v", nz.LocatedIn, eq)
	}
}

func TestSingularSlotRejectsIncompatibleType(t *testing.T) {
	t.Parallel()

	ref := &PipeOffPageConnectorReference{Base: Base{ID: "R1"}}
	slot := ref.Slots()[0]

	if slot.Set(&Equipment{Base: Base{ID: "E1"}}) {
		t.Fatalf("Set(equipment) = true, want false for *PipeOffPageConnector field")
	}
	oc := &PipeOffPageConnector{Base: Base{ID: "C1"}}
	if !slot.Set(oc) {
		t.Fatalf("Set(connector) = false, want true")
	}
	if ref.RefersTo != oc {
		t.Fatalf("RefersTo = %v, want %v", ref.RefersTo, oc)
	}
}

func TestCollectionSlot(t *testing.T) {
	t.Parallel()

	eq := &Equipment{Base: Base{ID: "E1"}}
	slots := eq.Slots()
	nozzles := slots[0]
	if nozzles.Name != "nozzles" {
		t.Fatalf("first slot = %q, want nozzles", nozzles.Name)
	}

	if nozzles.Append(&Equipment{Base: Base{ID: "E2"}}) {
		t.Fatalf("Append(equipment) = true, want false for nozzle collection")
	}

	nz := &Nozzle{Base: Base{ID: "N1"}}
	if !nozzles.Append(nz) {
		t.Fatalf("Append(nozzle) = false, want true")
	}
	if len(eq.Nozzles) != 1 || eq.Nozzles[0] != nz {
		t.Fatalf("Nozzles = %v, want [%v]", eq.Nozzles, nz)
	}

	list := nozzles.List()
	if len(list) != 1 || list[0] != Object(nz) {
		t.Fatalf("List() = %v, want the appended nozzle", list)
	}
}

func TestSlotsDeclarationOrder(t *testing.T) {
	t.Parallel()

	eq := &Equipment{}
	want := []string{"nozzles", "equipment", "locatedIn", "locationOf"}
	slots := eq.Slots()
	if len(slots) != len(want) {
		t.Fatalf("Slots() returned %d slots, want %d", len(slots), len(want))
	}
	for i, s := range slots {
		if s.Name != want[i] {
			t.Fatalf("Slots()[%d] = %q, want %q", i, s.Name, want[i])
		}
	}
}

func TestIsNilObject(t *testing.T) {
	t.Parallel()

	var typedNil *Equipment
	tests := []struct {
		name string
		obj  Object
		want bool
	}{
		{name: "nil interface", obj: nil, want: true},
		{name: "typed nil", obj: typedNil, want: true},
		{name: "non-nil", obj: &Equipment{}, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNilObject(tt.obj); got != tt.want {
				t.Fatalf("IsNilObject() = %v, want %v", got, tt.want)
			}
		})
	}
}
