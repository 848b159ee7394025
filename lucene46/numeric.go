package lucene46

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/lexigraph/segcodec/internal/codecutil"
	"github.com/lexigraph/segcodec/store"
)

// Norms and numeric doc values share the same shape: per field, one
// int64 per document. They differ only in file extension and format
// name, so both are thin wrappers over numericColumns.
//
// Layout: field count, then per field the name, value count, and
// varint-encoded values.

type numericColumns struct {
	formatName string
	version    int32
	ext        string
}

func (n *numericColumns) write(ctx context.Context, dir store.Directory, segment string, values map[string][]int64) error {
	fields := make([]string, 0, len(values))
	for field := range values {
		fields = append(fields, field)
	}
	// Deterministic field order so identical input produces identical bytes.
	sort.Strings(fields)

	var buf bytes.Buffer
	writeUvarint(&buf, uint64(len(fields)))
	for _, field := range fields {
		writeString(&buf, field)
		vals := values[field]
		writeUvarint(&buf, uint64(len(vals)))
		for _, v := range vals {
			writeInt64(&buf, v)
		}
	}

	data := codecutil.Seal(n.formatName, n.version, buf.Bytes())
	if err := dir.WriteFile(ctx, segment+n.ext, data); err != nil {
		return fmt.Errorf("writing %s: %w", n.formatName, err)
	}
	return nil
}

func (n *numericColumns) read(ctx context.Context, dir store.Directory, segment string) (map[string][]int64, error) {
	data, err := dir.ReadFile(ctx, segment+n.ext)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", n.formatName, err)
	}

	payload, _, err := codecutil.Open(data, n.formatName, n.version, n.version)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	r := bytes.NewReader(payload)
	fieldCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", n.formatName, err)
	}

	values := make(map[string][]int64, fieldCount)
	for i := uint64(0); i < fieldCount; i++ {
		field, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", n.formatName, err)
		}
		count, err := readUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", n.formatName, err)
		}
		vals := make([]int64, count)
		for j := range vals {
			if vals[j], err = readInt64(r); err != nil {
				return nil, fmt.Errorf("decoding %s: %w", n.formatName, err)
			}
		}
		values[field] = vals
	}
	return values, nil
}
