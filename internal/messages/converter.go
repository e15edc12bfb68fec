// Package messages converts the mongo header-CSV export into a JSON array of
// normalized message events sorted by time.
package messages

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"enron-fixtures/internal/fixture"
	"enron-fixtures/internal/logging"
	"enron-fixtures/internal/models"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

func init() {
	// An export missing one of the required header columns is a format error,
	// not a file of zero-valued rows.
	gocsv.FailIfUnmatchedStructTags = true
}

// messageRow maps the required header columns of the mongo export; any other
// columns in the dump are ignored.
type messageRow struct {
	To   string `csv:"headers.To"`
	Bcc  string `csv:"headers.Bcc"`
	Cc   string `csv:"headers.Cc"`
	From string `csv:"headers.From"`
	Date string `csv:"headers.Date"`
}

type Converter struct {
	OutputName string
}

// NewConverter creates a Converter writing its fixture under the given file name
func NewConverter(outputName string) *Converter {
	return &Converter{OutputName: outputName}
}

// OutputPath returns the fixture path for an input path: the configured output
// name, sibling to the input file
func (c *Converter) OutputPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), c.OutputName)
}

// Convert reads the message export at inputPath and writes the event-array
// fixture, sorted ascending by time, next to it. Any malformed row aborts the
// run before the fixture file exists.
func (c *Converter) Convert(inputPath string) (string, error) {
	locallog := logging.Log.WithField("run_id", uuid.New().String())

	file, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("open message export: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var rows []*messageRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return "", fmt.Errorf("decode message export: %w", err)
	}

	events := make([]models.MessageEvent, 0, len(rows))
	for i, row := range rows {
		event, err := eventFromRow(row)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i+1, err)
		}
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	outputPath := c.OutputPath(inputPath)
	if err := fixture.WriteJSON(outputPath, events); err != nil {
		return "", err
	}

	locallog.Infof("Converted %d message events to %s", len(events), outputPath)
	return outputPath, nil
}

// eventFromRow normalizes one export row. The sender is taken verbatim; the
// date goes through a permissive parser since the corpus mixes RFC-style and
// bare timestamp formats, with zone-less values read as UTC.
func eventFromRow(row *messageRow) (models.MessageEvent, error) {
	date, err := dateparse.ParseAny(row.Date)
	if err != nil {
		return models.MessageEvent{}, fmt.Errorf("parse date %q: %w", row.Date, err)
	}

	return models.MessageEvent{
		To:   recipients(row.To, row.Bcc, row.Cc),
		From: row.From,
		Time: date.Unix(),
	}, nil
}

// recipients merges the comma-separated To/Bcc/Cc header fields into a single
// address set: trimmed, deduplicated across fields, empty entries dropped.
// Sorted so the fixture stays byte-stable between runs.
func recipients(fields ...string) []string {
	all := []string{}
	for _, field := range fields {
		for _, addr := range strings.Split(field, ",") {
			all = append(all, strings.TrimSpace(addr))
		}
	}

	merged := lo.Filter(lo.Uniq(all), func(addr string, _ int) bool {
		return addr != ""
	})
	sort.Strings(merged)
	return merged
}
