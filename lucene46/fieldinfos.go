package lucene46

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexigraph/segcodec/format"
	"github.com/lexigraph/segcodec/internal/codecutil"
	"github.com/lexigraph/segcodec/store"
)

const (
	fieldInfosFormatName = "Lucene46FieldInfos"
	fieldInfosVersion    = 0
)

// Compile-time check that fieldInfosFormat implements format.FieldInfosFormat.
var _ format.FieldInfosFormat = (*fieldInfosFormat)(nil)

// fieldInfosFormat stores the field table as a JSON payload.
type fieldInfosFormat struct{}

// WriteFieldInfos persists the field table of a segment.
func (f *fieldInfosFormat) WriteFieldInfos(ctx context.Context, dir store.Directory, segment string, infos format.FieldInfos) error {
	seen := make(map[string]bool, len(infos))
	for _, fi := range infos {
		if seen[fi.Name] {
			return fmt.Errorf("lucene46: duplicate field %q", fi.Name)
		}
		seen[fi.Name] = true
	}

	payload, err := json.Marshal(infos)
	if err != nil {
		return fmt.Errorf("encoding field infos: %w", err)
	}

	data := codecutil.Seal(fieldInfosFormatName, fieldInfosVersion, payload)
	if err := dir.WriteFile(ctx, segment+extFieldInfos, data); err != nil {
		return fmt.Errorf("writing field infos: %w", err)
	}
	return nil
}

// ReadFieldInfos reads the field table of the named segment.
func (f *fieldInfosFormat) ReadFieldInfos(ctx context.Context, dir store.Directory, segment string) (format.FieldInfos, error) {
	data, err := dir.ReadFile(ctx, segment+extFieldInfos)
	if err != nil {
		return nil, fmt.Errorf("reading field infos: %w", err)
	}

	payload, _, err := codecutil.Open(data, fieldInfosFormatName, fieldInfosVersion, fieldInfosVersion)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	var infos format.FieldInfos
	if err := json.Unmarshal(payload, &infos); err != nil {
		return nil, fmt.Errorf("decoding field infos: %w", err)
	}
	return infos, nil
}
