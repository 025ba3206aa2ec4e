package vault

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/note"
)

func TestSave(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	n := &note.Note{
		Filename: "Test_Property_123.md",
		Content:  "---\nstatus: interested\n---\n# Test Property\n",
		Province: "Western Cape",
		City:     "Cape Town",
		Suburb:   "Zonnebloem",
	}

	path, err := store.Save(n)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	expected := filepath.Join(root, "Western Cape", "Cape Town", "Zonnebloem", "Test_Property_123.md")
	if path != expected {
		t.Errorf("Save() path = %q, expected %q", path, expected)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("saved note unreadable: %v", err)
	}
	if string(data) != n.Content {
		t.Error("saved content does not match note content")
	}
}

func TestSaveWithSubfolder(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "Properties", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	n := &note.Note{
		Filename: "P.md",
		Content:  "x",
		Province: "Gauteng",
		City:     "Johannesburg",
		Suburb:   "Sandton",
	}

	path, err := store.Save(n)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.Contains(path, filepath.Join("Properties", "Gauteng")) {
		t.Errorf("path %q missing subfolder hierarchy", path)
	}
}

func TestSaveMissingLocationSegments(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	n := &note.Note{
		Filename: "P.md",
		Content:  "x",
	}

	path, err := store.Save(n)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	expected := filepath.Join(root, "Unsorted", "Unsorted", "Unsorted", "P.md")
	if path != expected {
		t.Errorf("Save() path = %q, expected %q", path, expected)
	}
}

func TestSaveSanitizesSegments(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	n := &note.Note{
		Filename: "P.md",
		Content:  "x",
		Province: "Western/Cape",
		City:     "..",
		Suburb:   "Sea Point",
	}

	path, err := store.Save(n)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	expected := filepath.Join(root, "Western-Cape", "Unsorted", "Sea Point", "P.md")
	if path != expected {
		t.Errorf("Save() path = %q, expected %q", path, expected)
	}
}

func TestNewStoreRequiresDirectory(t *testing.T) {
	if _, err := NewStore("", "", nil); err == nil {
		t.Error("expected an error for an empty vault directory")
	}
}

func TestSaveNilNote(t *testing.T) {
	store, err := NewStore(t.TempDir(), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(nil); err == nil {
		t.Error("expected an error for a nil note")
	}
}
