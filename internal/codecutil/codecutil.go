// Package codecutil frames segment file payloads with a self-describing
// header and a checksummed footer.
//
// Layout of a sealed file:
//
//	magic (4 bytes, big-endian)
//	format name length (2 bytes) + format name
//	version (4 bytes)
//	payload
//	CRC32-IEEE of everything above (4 bytes)
//
// The format name written into the header is how a persisted file
// identifies the code that produced it; readers check it before touching
// the payload so a foreign or corrupt file fails loudly instead of being
// misinterpreted.
package codecutil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// Magic identifies sealed segment files.
const Magic uint32 = 0x3fd76c17

const (
	headerFixedLen = 4 + 2 + 4 // magic + name length + version, excluding the name itself
	footerLen      = 4
)

var (
	// ErrCorrupted indicates a truncated file, bad magic, or checksum
	// mismatch.
	ErrCorrupted = errors.New("codecutil: file corrupted")

	// ErrWrongFormat indicates the file was written by a different
	// format than the reader expected.
	ErrWrongFormat = errors.New("codecutil: wrong format")

	// ErrVersion indicates a header version outside the supported range.
	ErrVersion = errors.New("codecutil: unsupported version")
)

// Seal frames payload with a header naming the format and a CRC32 footer.
func Seal(formatName string, version int32, payload []byte) []byte {
	out := make([]byte, 0, headerFixedLen+len(formatName)+len(payload)+footerLen)

	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], Magic)
	out = append(out, scratch[:]...)

	binary.BigEndian.PutUint16(scratch[:2], uint16(len(formatName)))
	out = append(out, scratch[:2]...)
	out = append(out, formatName...)

	binary.BigEndian.PutUint32(scratch[:], uint32(version))
	out = append(out, scratch[:]...)

	out = append(out, payload...)

	binary.BigEndian.PutUint32(scratch[:], crc32.ChecksumIEEE(out))
	return append(out, scratch[:]...)
}

// Open verifies the framing of data and returns the payload and header
// version. The header must name formatName and carry a version within
// [minVersion, maxVersion].
func Open(data []byte, formatName string, minVersion, maxVersion int32) ([]byte, int32, error) {
	if len(data) < headerFixedLen+footerLen {
		return nil, 0, fmt.Errorf("%w: %d bytes is too short", ErrCorrupted, len(data))
	}

	// Verify the checksum before trusting any header field.
	body := data[:len(data)-footerLen]
	want := binary.BigEndian.Uint32(data[len(data)-footerLen:])
	if got := crc32.ChecksumIEEE(body); got != want {
		return nil, 0, fmt.Errorf("%w: checksum mismatch (got %08x, want %08x)", ErrCorrupted, got, want)
	}

	if magic := binary.BigEndian.Uint32(body[:4]); magic != Magic {
		return nil, 0, fmt.Errorf("%w: bad magic %08x", ErrCorrupted, magic)
	}

	nameLen := int(binary.BigEndian.Uint16(body[4:6]))
	if len(body) < headerFixedLen+nameLen {
		return nil, 0, fmt.Errorf("%w: truncated header", ErrCorrupted)
	}
	name := string(body[6 : 6+nameLen])
	if name != formatName {
		return nil, 0, fmt.Errorf("%w: file written by %q, reader expects %q", ErrWrongFormat, name, formatName)
	}

	version := int32(binary.BigEndian.Uint32(body[6+nameLen : 6+nameLen+4]))
	if version < minVersion || version > maxVersion {
		return nil, 0, fmt.Errorf("%w: version %d outside [%d, %d]", ErrVersion, version, minVersion, maxVersion)
	}

	return body[headerFixedLen+nameLen:], version, nil
}

// FormatName returns the format name recorded in the header of data
// without verifying the checksum. Used by diagnostics tooling that wants
// to report which format wrote a file even when the reader for it is not
// loaded.
func FormatName(data []byte) (string, error) {
	if len(data) < headerFixedLen {
		return "", fmt.Errorf("%w: %d bytes is too short", ErrCorrupted, len(data))
	}
	if magic := binary.BigEndian.Uint32(data[:4]); magic != Magic {
		return "", fmt.Errorf("%w: bad magic %08x", ErrCorrupted, magic)
	}
	nameLen := int(binary.BigEndian.Uint16(data[4:6]))
	if len(data) < 6+nameLen {
		return "", fmt.Errorf("%w: truncated header", ErrCorrupted)
	}
	return string(data[6 : 6+nameLen]), nil
}
