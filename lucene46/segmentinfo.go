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
	segmentInfoFormatName = "Lucene46SegmentInfo"
	segmentInfoVersion    = 0
)

// Compile-time check that segmentInfoFormat implements format.SegmentInfoFormat.
var _ format.SegmentInfoFormat = (*segmentInfoFormat)(nil)

// segmentInfoFormat stores segment metadata as a JSON payload.
type segmentInfoFormat struct{}

// WriteSegmentInfo persists the segment metadata. The codec name inside
// info is what a reader later resolves to reconstitute this codec, so a
// blank one is refused.
func (f *segmentInfoFormat) WriteSegmentInfo(ctx context.Context, dir store.Directory, info *format.SegmentInfo) error {
	if info.Name == "" {
		return fmt.Errorf("lucene46: segment info has no name")
	}
	if info.Codec == "" {
		return fmt.Errorf("lucene46: segment info for %q has no codec name", info.Name)
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding segment info: %w", err)
	}

	data := codecutil.Seal(segmentInfoFormatName, segmentInfoVersion, payload)
	if err := dir.WriteFile(ctx, info.Name+extSegmentInfo, data); err != nil {
		return fmt.Errorf("writing segment info: %w", err)
	}
	return nil
}

// ReadSegmentInfo reads the metadata of the named segment.
func (f *segmentInfoFormat) ReadSegmentInfo(ctx context.Context, dir store.Directory, segment string) (*format.SegmentInfo, error) {
	data, err := dir.ReadFile(ctx, segment+extSegmentInfo)
	if err != nil {
		return nil, fmt.Errorf("reading segment info: %w", err)
	}

	payload, _, err := codecutil.Open(data, segmentInfoFormatName, segmentInfoVersion, segmentInfoVersion)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	var info format.SegmentInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, fmt.Errorf("decoding segment info: %w", err)
	}
	return &info, nil
}
