package segcodec

import (
	"fmt"
	"strings"
)

// codecSuffix is the conventional implementation-identifier suffix
// stripped by DeriveName.
const codecSuffix = "Codec"

// maxNameLen bounds codec names; a name must be strictly shorter.
const maxNameLen = 128

// DeriveName derives a codec's canonical name from its implementation
// identifier: a trailing "Codec" suffix is stripped, anything else is
// kept verbatim. Exactly one suffix is removed, so "FastCodec" derives
// "Fast" but "FastCodecCodec" derives "FastCodec".
//
// The result still has to pass name validation at Codec construction;
// DeriveName itself never fails, but note that the bare identifier
// "Codec" derives the empty string, which validation then rejects.
func DeriveName(ident string) string {
	if strings.HasSuffix(ident, codecSuffix) {
		return ident[:len(ident)-len(codecSuffix)]
	}
	return ident
}

// validateName enforces the name rules: non-empty, ASCII letters and
// digits only, length strictly less than maxNameLen. Anything else is
// rejected outright rather than truncated or escaped, because the name
// is persisted into segments and must round-trip exactly.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if len(name) >= maxNameLen {
		return fmt.Errorf("%w: %q is %d characters, limit is %d", ErrInvalidName, name, len(name), maxNameLen-1)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return fmt.Errorf("%w: %q contains non-alphanumeric character %q at position %d", ErrInvalidName, name, c, i)
	}
	return nil
}

// errorMissingFormat builds the construction error for an incomplete codec.
func errorMissingFormat(name, missing string) error {
	return fmt.Errorf("%w: codec %q has no %s format", ErrMissingFormat, name, missing)
}
