// Package employees converts the newline-delimited employee list into a JSON
// array of synthesized corpus addresses.
package employees

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"enron-fixtures/internal/fixture"
	"enron-fixtures/internal/logging"

	"github.com/google/uuid"
)

type Converter struct {
	Domain string
}

// NewConverter creates a Converter synthesizing addresses at the given domain
func NewConverter(domain string) *Converter {
	return &Converter{Domain: domain}
}

// OutputPath returns the fixture path for an input path: same location, with
// the extension swapped for .json
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
}

// Convert reads the employee list at inputPath and writes the address-array
// fixture next to it. Returns the path of the written fixture.
func (c *Converter) Convert(inputPath string) (string, error) {
	locallog := logging.Log.WithField("run_id", uuid.New().String())

	file, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("open employee list: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	addresses := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		addresses = append(addresses, c.addressFor(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read employee list: %w", err)
	}

	outputPath := OutputPath(inputPath)
	if err := fixture.WriteJSON(outputPath, addresses); err != nil {
		return "", err
	}

	locallog.Infof("Converted %d employees to %s", len(addresses), outputPath)
	return outputPath, nil
}

// addressFor synthesizes an address from one input line: the text before the
// first tab, whitespace-trimmed, at the configured domain. Every line produces
// an entry, so a blank line yields a bare "@<domain>" string; fixtures built
// from this output depend on entries staying aligned with input line numbers.
func (c *Converter) addressFor(line string) string {
	name, _, _ := strings.Cut(line, "\t")
	return strings.TrimSpace(name) + "@" + c.Domain
}
