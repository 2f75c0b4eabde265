package playbook

import (
	"errors"
	"testing"
)

func TestListKeepsRegistrationOrder(t *testing.T) {
	expected := []ID{RunLeft, RunRight, PassShort, PassLong, DefenseBlitz, DefenseZone}

	got := List()
	if len(got) != len(expected) {
		t.Fatalf("List() returned %d plays, expected %d", len(got), len(expected))
	}
	for i, id := range expected {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, got[i].ID, id)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id   ID
		name string
		side Side
	}{
		{RunLeft, "Run Left", Offense},
		{PassLong, "Pass - Long", Offense},
		{DefenseZone, "Zone Coverage", Defense},
	}

	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			p, err := Lookup(tc.id)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tc.id, err)
			}
			if p.Name != tc.name || p.Side != tc.side {
				t.Errorf("Lookup(%q) = %+v, expected %q on %v", tc.id, p, tc.name, tc.side)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("hail_mary")
	if !errors.Is(err, ErrUnknownPlay) {
		t.Errorf("Lookup of unknown play should wrap ErrUnknownPlay, got %v", err)
	}
	if Exists("hail_mary") {
		t.Error("Exists should be false for unknown play")
	}
	if !Exists(PassShort) {
		t.Error("Exists should be true for registered play")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate play should panic")
		}
	}()
	Register(Play{ID: RunLeft, Name: "Again"})
}

func TestListReturnsCopy(t *testing.T) {
	got := List()
	got[0].Name = "changed"

	p, _ := Lookup(got[0].ID)
	if p.Name == "changed" {
		t.Error("List() must not expose catalog storage")
	}
}
