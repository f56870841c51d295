package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idlewild/taskline/internal/ui"
	"github.com/idlewild/taskline/task"
)

func buildTestModel(t *testing.T, titles ...string) (model, *task.Store) {
	t.Helper()

	store := task.NewStore()
	for _, title := range titles {
		if _, err := store.Add(title, ""); err != nil {
			t.Fatalf("Add(%q) failed: %v", title, err)
		}
	}

	m := newModel(store, ui.NewStyles(ui.ColorNever))
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return resized.(model), store
}

func keyPress(m model, key string) model {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	}
	next, _ := m.Update(msg)
	return next.(model)
}

func typeText(m model, text string) model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func TestViewListsTasks(t *testing.T) {
	m, _ := buildTestModel(t, "Buy milk", "Buy eggs")

	view := m.View()
	for _, want := range []string{"Buy milk", "Buy eggs", "[ ]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestToggleComplete(t *testing.T) {
	m, store := buildTestModel(t, "Buy milk")

	m = keyPress(m, " ")

	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != task.StatusComplete {
		t.Errorf("status after toggle: %q", got.Status)
	}

	m = keyPress(m, " ")
	got, err = store.Get(1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != task.StatusIncomplete {
		t.Errorf("status after second toggle: %q", got.Status)
	}
}

func TestDeleteSelected(t *testing.T) {
	m, store := buildTestModel(t, "Buy milk", "Buy eggs")

	keyPress(m, "d")

	if store.Len() != 1 {
		t.Fatalf("store has %d tasks, want 1", store.Len())
	}
	if _, err := store.Get(1); !task.IsNotFound(err) {
		t.Errorf("expected task 1 deleted, got err %v", err)
	}
}

func TestInlineAdd(t *testing.T) {
	m, store := buildTestModel(t)

	m = keyPress(m, "a")
	if !m.adding {
		t.Fatal("a should enter add mode")
	}
	m = typeText(m, "Buy bread")
	m = keyPress(m, "enter")

	if m.adding {
		t.Error("enter should leave add mode")
	}
	got, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Buy bread" {
		t.Errorf("title: got %q", got.Title)
	}
}

func TestInlineAddRejectsEmptyTitle(t *testing.T) {
	m, store := buildTestModel(t)

	m = keyPress(m, "a")
	m = keyPress(m, "enter")

	if !m.adding {
		t.Error("add mode should stay open on validation failure")
	}
	if m.addErr != "Title cannot be empty" {
		t.Errorf("addErr: got %q", m.addErr)
	}
	if store.Len() != 0 {
		t.Error("store mutated by rejected add")
	}
	if !strings.Contains(m.View(), "Title cannot be empty") {
		t.Error("view does not surface the validation error")
	}
}

func TestInlineAddCancel(t *testing.T) {
	m, store := buildTestModel(t)

	m = keyPress(m, "a")
	m = typeText(m, "Buy bread")
	m = keyPress(m, "esc")

	if m.adding {
		t.Error("esc should leave add mode")
	}
	if store.Len() != 0 {
		t.Error("cancelled add reached the store")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := buildTestModel(t, "Buy milk")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected quit message, got %T", msg)
	}
}
