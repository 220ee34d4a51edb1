// internal/csvfile/reader.go
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadWebsites reads site URLs from the "url" column of a CSV file. When no
// header row names a url column, the first column is used as-is.
func ReadWebsites(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	urlCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "url") {
			urlCol = i
			break
		}
	}

	var websites []string
	if urlCol == -1 {
		// Headerless file: the header row is data from column 0.
		urlCol = 0
		if url := strings.TrimSpace(header[0]); url != "" {
			websites = append(websites, url)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if urlCol >= len(row) {
			continue
		}
		if url := strings.TrimSpace(row[urlCol]); url != "" {
			websites = append(websites, url)
		}
	}

	return websites, nil
}
