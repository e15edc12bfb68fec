package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")

	value := []string{"john.doe@enron.com", "jane.smith@enron.com"}
	if err := WriteJSON(path, value); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	var decoded []string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Fixture is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, value) {
		t.Errorf("Round trip mismatch: got %v, want %v", decoded, value)
	}

	// Re-serializing the decoded value must reproduce the file byte for byte
	again, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("Failed to re-marshal: %v", err)
	}
	if string(again) != string(data) {
		t.Errorf("Re-serialization differs: %s vs %s", again, data)
	}
}

func TestWriteJSONUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "fixture.json")

	if err := WriteJSON(path, []string{}); err == nil {
		t.Fatal("Expected an error for an unwritable output path")
	}
}
