package task

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}

	invalid := []Status{"", "done", "Complete", "INCOMPLETE"}
	for _, status := range invalid {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestStatusCheckbox(t *testing.T) {
	if got := StatusIncomplete.Checkbox(); got != "[ ]" {
		t.Errorf("incomplete checkbox: got %q, want %q", got, "[ ]")
	}
	if got := StatusComplete.Checkbox(); got != "[*]" {
		t.Errorf("complete checkbox: got %q, want %q", got, "[*]")
	}
}

func TestHasDescription(t *testing.T) {
	if (Task{}).HasDescription() {
		t.Error("empty task should have no description")
	}
	if !(Task{Description: "context"}).HasDescription() {
		t.Error("expected description to be reported")
	}
}
