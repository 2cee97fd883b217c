package gateway

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"revenue-metrics/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVExportRepository implements the ExportRepository interface for delimited
// exports stored on the local filesystem or in Google Cloud Storage.
type CSVExportRepository struct {
	fetchObject func(ctx context.Context, bucket, object string) ([]byte, error)
}

// NewCSVExportRepository creates a new repository instance.
func NewCSVExportRepository() *CSVExportRepository {
	return &CSVExportRepository{fetchObject: DownloadObject}
}

// GetExport reads the whole export at source and parses it. Sources of the
// form gs://bucket/object are fetched from Cloud Storage, anything else is
// treated as a local path.
func (r *CSVExportRepository) GetExport(ctx context.Context, source string) (*domain.RawExport, error) {
	data, err := r.readSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrReadExport, source, err)
	}

	export, err := ParseExport(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse export %s: %w", source, err)
	}
	export.Source = source
	return export, nil
}

func (r *CSVExportRepository) readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, gcsScheme) {
		bucket, object, err := ParseGCSURI(source)
		if err != nil {
			return nil, err
		}
		return r.fetchObject(ctx, bucket, object)
	}
	return os.ReadFile(source)
}

// ParseExport parses delimited text with a header row. Rows the CSV reader
// rejects are recorded in Malformed and parsing continues with the next one.
func ParseExport(data []byte) (*domain.RawExport, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, domain.ErrEmptyExport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	export := &domain.RawExport{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				export.Malformed = append(export.Malformed, parseErr.StartLine)
				continue
			}
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		if isBlank(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		export.Rows = append(export.Rows, domain.RawRow{Line: line, Values: record})
	}
	return export, nil
}

// detectDelimiter picks the most frequent of comma, semicolon and tab on the
// header line. Comma wins ties.
func detectDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}

	best, bestCount := ',', bytes.Count(header, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(header, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
