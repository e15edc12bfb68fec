// Package fixture writes JSON fixture files shared by both converters.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON serializes v as compact JSON and writes it to path. Serialization
// happens once, after a conversion has fully succeeded, so a failed run never
// leaves a partial fixture behind.
func WriteJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}
