package service

import "testing"

func TestBuildChoices(t *testing.T) {
	choices := buildChoices([]string{"Dr. Omar", "Dr. Lina", "On Call"})

	want := []DoctorChoice{
		{ID: "dr-omar", Label: "Dr. Omar"},
		{ID: "dr-lina", Label: "Dr. Lina"},
		{ID: "on-call", Label: "On Call"},
	}
	if len(choices) != len(want) {
		t.Fatalf("got %d choices, want %d", len(choices), len(want))
	}
	for i, choice := range choices {
		if choice != want[i] {
			t.Errorf("choice %d = %+v, want %+v", i, choice, want[i])
		}
	}
}

func TestBuildChoicesDefaultsToOnCall(t *testing.T) {
	choices := buildChoices(nil)
	if len(choices) != 1 {
		t.Fatalf("got %d choices, want 1", len(choices))
	}
	if choices[0].ID != "on-call" || choices[0].Label != "On Call" {
		t.Errorf("default choice = %+v", choices[0])
	}
}

func TestRegistryLookups(t *testing.T) {
	reg := &doctorRegistry{choices: buildChoices([]string{"Dr. Omar", "On Call"})}

	if !reg.IsKnown("dr-omar") {
		t.Errorf("dr-omar should be a known provider")
	}
	if reg.IsKnown("dr-ghost") {
		t.Errorf("dr-ghost should not be a known provider")
	}
	if got := reg.LabelFor("on-call"); got != "On Call" {
		t.Errorf("LabelFor(on-call) = %q", got)
	}
	if got := reg.LabelFor("dr-ghost"); got != "dr-ghost" {
		t.Errorf("LabelFor should fall back to the id, got %q", got)
	}

	// Choices must return a copy the caller cannot use to mutate the registry.
	choices := reg.Choices()
	choices[0].Label = "mutated"
	if reg.LabelFor("dr-omar") == "mutated" {
		t.Errorf("Choices leaked internal state")
	}
}
