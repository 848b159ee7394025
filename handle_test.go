package segcodec

import (
	"errors"
	"sync"
	"testing"
)

// testHandle builds a handle bootstrapped from a registry containing the
// given codecs, using the first codec's name as the bootstrap name.
func testHandle(t *testing.T, codecs ...*Codec) *Handle {
	t.Helper()
	registry, err := NewMapRegistry(codecs...)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}
	h, err := NewHandle(registry, WithBootstrapName(codecs[0].Name()))
	if err != nil {
		t.Fatalf("NewHandle() error = %v", err)
	}
	return h
}

func TestNewHandle_NilRegistry(t *testing.T) {
	_, err := NewHandle(nil)
	if !errors.Is(err, ErrNilRegistry) {
		t.Errorf("NewHandle(nil) error = %v, want ErrNilRegistry", err)
	}
}

func TestNewHandle_BootstrapMissing(t *testing.T) {
	registry, err := NewMapRegistry(mustCodec(t, "FastCodec"))
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	// Default bootstrap name is Lucene46, which this registry lacks.
	_, err = NewHandle(registry)
	if !errors.Is(err, ErrBootstrapMissing) {
		t.Errorf("NewHandle() error = %v, want ErrBootstrapMissing", err)
	}
}

func TestHandle_BootstrapEstablishesDefault(t *testing.T) {
	fast := mustCodec(t, "FastCodec")
	h := testHandle(t, fast)

	if got := h.Default(); got != fast {
		t.Errorf("Default() = %v, want the bootstrap codec", got)
	}

	resolved, err := h.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved != h.Default() {
		t.Error("Default() and Resolve(bootstrap name) returned different instances")
	}
}

func TestHandle_SetDefault(t *testing.T) {
	fast := mustCodec(t, "FastCodec")
	h := testHandle(t, fast)

	// The pinned codec need not be in the registry.
	other := mustCodec(t, "OtherCodec")
	h.SetDefault(other)

	if got := h.Default(); got != other {
		t.Errorf("Default() = %v, want the pinned codec", got)
	}
}

func TestHandle_ReplaceRebootstrapsDefault(t *testing.T) {
	fastA := mustCodec(t, "FastCodec")
	h := testHandle(t, fastA)

	// Pin an explicit default, then replace the registry. The pin is
	// deliberately lost: replacement always re-resolves the bootstrap name.
	h.SetDefault(mustCodec(t, "PinnedCodec"))

	fastB := mustCodec(t, "FastCodec")
	r2, err := NewMapRegistry(fastB)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}
	if err := h.Replace(r2); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if got := h.Default(); got != fastB {
		t.Errorf("Default() after Replace = %v, want the new registry's bootstrap codec", got)
	}
}

func TestHandle_ReplaceFreshness(t *testing.T) {
	fastA := mustCodec(t, "FastCodec")
	safe := mustCodec(t, "SafeCodec")
	h := testHandle(t, fastA, safe)

	// R2 shares the name "Fast" but binds it to a different instance,
	// and drops "Safe" entirely.
	fastB := mustCodec(t, "FastCodec")
	r2, err := NewMapRegistry(fastB)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}
	if err := h.Replace(r2); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	got, err := h.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve(Fast) error = %v", err)
	}
	if got == fastA {
		t.Error("Resolve(Fast) returned a codec from the replaced registry")
	}
	if got != fastB {
		t.Error("Resolve(Fast) did not return the new registry's codec")
	}

	if _, err := h.Resolve("Safe"); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Resolve(Safe) error = %v, want ErrUnknownCodec", err)
	}
}

func TestHandle_ReplaceNil(t *testing.T) {
	h := testHandle(t, mustCodec(t, "FastCodec"))
	if err := h.Replace(nil); !errors.Is(err, ErrNilRegistry) {
		t.Errorf("Replace(nil) error = %v, want ErrNilRegistry", err)
	}
}

func TestHandle_ReplaceMissingBootstrapKeepsOldState(t *testing.T) {
	fast := mustCodec(t, "FastCodec")
	h := testHandle(t, fast)

	r2, err := NewMapRegistry(mustCodec(t, "SafeCodec"))
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	if err := h.Replace(r2); !errors.Is(err, ErrBootstrapMissing) {
		t.Fatalf("Replace() error = %v, want ErrBootstrapMissing", err)
	}

	// The failed replace must leave the previous registry and default
	// untouched.
	if got, err := h.Resolve("Fast"); err != nil || got != fast {
		t.Errorf("Resolve(Fast) = (%v, %v), want the original codec", got, err)
	}
	if got := h.Default(); got != fast {
		t.Errorf("Default() = %v, want the original codec", got)
	}
}

func TestHandle_Names(t *testing.T) {
	h := testHandle(t,
		mustCodec(t, "FastCodec"),
		mustCodec(t, "SafeCodec"),
	)

	names, err := h.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != 2 || names[0] != "Fast" || names[1] != "Safe" {
		t.Errorf("Names() = %v, want [Fast Safe]", names)
	}
}

func TestHandle_ConcurrentReplacePairsRegistryAndDefault(t *testing.T) {
	fastA := mustCodec(t, "FastCodec")
	fastB := mustCodec(t, "FastCodec")
	h := testHandle(t, fastA)

	rA, err := NewMapRegistry(fastA)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}
	rB, err := NewMapRegistry(fastB)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	const iterations = 500

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, r := range []*MapRegistry{rA, rB} {
		wg.Add(1)
		go func(r *MapRegistry) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				if err := h.Replace(r); err != nil {
					errs <- err
					return
				}
			}
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent replace: %v", err)
	}

	// Whichever replacement landed last, the default must be the codec
	// the installed registry resolves for the bootstrap name, never a
	// registry from one call paired with a default from another.
	got, err := h.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if h.Default() != got {
		t.Error("Default() is not the installed registry's bootstrap codec")
	}
}

func TestHandle_ConcurrentResolveDuringReplace(t *testing.T) {
	fastA := mustCodec(t, "FastCodec")
	fastB := mustCodec(t, "FastCodec")
	h := testHandle(t, fastA)

	r2, err := NewMapRegistry(fastB)
	if err != nil {
		t.Fatalf("NewMapRegistry() error = %v", err)
	}

	const goroutines = 16
	const iterations = 1000

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				c, err := h.Resolve("Fast")
				if err != nil {
					errs <- err
					return
				}
				// Every resolution must come from exactly one registry
				// generation, old or new.
				if c != fastA && c != fastB {
					errs <- errors.New("resolved codec from neither registry")
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := h.Replace(r2); err != nil {
			errs <- err
		}
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent resolve/replace: %v", err)
	}

	// After Replace completes, only the new registry is visible.
	c, err := h.Resolve("Fast")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if c != fastB {
		t.Error("Resolve() after Replace returned the old registry's codec")
	}
}
