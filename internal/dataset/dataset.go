// Package dataset handles reading and hashing key/value record files
// for batch scoring.
package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one row of key/value data. Values are strings for CSV
// input and the usual decoded types for JSON input.
type Record map[string]any

// Dataset holds the loaded records with file metadata.
type Dataset struct {
	FilePath string
	Hash     string
	Records  []Record
}

// Load reads a record file, computes its SHA-256 hash, and decodes it
// by extension: .csv (header row), .json (array of objects), .ndjson
// or .jsonl (one object per line, blank lines skipped).
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}
	h := sha256.Sum256(data)
	ds := &Dataset{FilePath: path, Hash: fmt.Sprintf("sha256:%x", h)}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		ds.Records, err = decodeCSV(data)
	case ".json":
		ds.Records, err = decodeJSONArray(data)
	case ".ndjson", ".jsonl":
		ds.Records, err = decodeJSONLines(data)
	default:
		return nil, fmt.Errorf("dataset.Load: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %s: %w", path, err)
	}
	return ds, nil
}

func decodeCSV(data []byte) ([]Record, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, key := range header {
			rec[key] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeJSONArray(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeJSONLines(data []byte) ([]Record, error) {
	var records []Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
