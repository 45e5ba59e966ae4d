package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// LoadSource reads the seed file at location, either a local path or an
// s3://bucket/key URL. storage may be nil when only local paths are used.
// A missing source wraps domain.ErrSourceNotFound.
func LoadSource(ctx context.Context, location string, storage port.ObjectStorage) ([]Record, error) {
	var (
		data []byte
		err  error
	)
	if bucket, key, ok := parseS3URL(location); ok {
		if storage == nil {
			return nil, fmt.Errorf("reading %s: object storage not configured", location)
		}
		data, err = storage.Download(ctx, bucket, key)
		if err != nil {
			return nil, err
		}
	} else {
		data, err = os.ReadFile(location)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", location, domain.ErrSourceNotFound)
			}
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
	}
	return DecodeRecords(data)
}

// DecodeRecords parses a JSON array of records. Numbers are kept as
// json.Number so large ids and amounts survive unchanged. Array elements that
// are not objects decode as nil records and fail individually at ingest.
func DecodeRecords(data []byte) ([]Record, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decoding seed array: %w", err)
	}

	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			records = append(records, nil)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseS3URL(location string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(location, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
