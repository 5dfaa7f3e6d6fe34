package store

import (
	"fmt"

	"github.com/roach88/gravsearch/internal/queryir"
)

// marshalRecord encodes a search for the record column.
func marshalRecord(q queryir.Query) (string, error) {
	data, err := queryir.MarshalQuery(q)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(data), nil
}

// unmarshalRecord decodes the record column back into a search.
func unmarshalRecord(record string) (queryir.Query, error) {
	q, err := queryir.UnmarshalQuery([]byte(record))
	if err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return q, nil
}
