package segcodec

import (
	"errors"
	"reflect"
	"testing"
)

// unlistableRegistry resolves nothing and does not implement Lister.
type unlistableRegistry struct{}

func (unlistableRegistry) Resolve(name string) (*Codec, error) {
	return nil, ErrUnknownCodec
}

func TestNewMapRegistry_DuplicateName(t *testing.T) {
	a := mustCodec(t, "FastCodec")
	b := mustCodec(t, "Fast")

	_, err := NewMapRegistry(a, b)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewMapRegistry() error = %v, want ErrDuplicateName", err)
	}
}

func TestMapRegistry_Resolve(t *testing.T) {
	fast := mustCodec(t, "FastCodec")
	safe := mustCodec(t, "SafeCodec")

	registry, err := NewMapRegistry(fast, safe)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	got, err := registry.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve(Fast) error = %v", err)
	}
	if got != fast {
		t.Error("Resolve(Fast) returned a different codec instance")
	}

	_, err = registry.Resolve("Missing")
	if !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Resolve(Missing) error = %v, want ErrUnknownCodec", err)
	}
}

func TestMapRegistry_ResolveIsIdempotent(t *testing.T) {
	fast := mustCodec(t, "FastCodec")
	registry, err := NewMapRegistry(fast)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	first, err := registry.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := registry.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second {
		t.Error("two resolutions of the same name returned different instances")
	}
}

func TestNames_Listable(t *testing.T) {
	registry, err := NewMapRegistry(
		mustCodec(t, "FastCodec"),
		mustCodec(t, "SafeCodec"),
	)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	names, err := Names(registry)
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if want := []string{"Fast", "Safe"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestNames_Unsupported(t *testing.T) {
	_, err := Names(unlistableRegistry{})
	if !errors.Is(err, ErrListingUnsupported) {
		t.Errorf("Names() error = %v, want ErrListingUnsupported", err)
	}
}

func TestNames_StableAcrossCalls(t *testing.T) {
	registry, err := NewMapRegistry(
		mustCodec(t, "FastCodec"),
		mustCodec(t, "SafeCodec"),
		mustCodec(t, "Lucene46Codec"),
	)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	first, err := Names(registry)
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	second, err := Names(registry)
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Names() not stable: %v then %v", first, second)
	}
}
