package segcodec

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lexigraph/segcodec/internal/stats"
)

// DefaultBootstrapName is the well-known name resolved to establish the
// default codec whenever a registry is installed.
const DefaultBootstrapName = "Lucene46"

// registryBox wraps the Registry interface value so it can live in an
// atomic.Pointer.
type registryBox struct {
	registry Registry
}

// Handle owns the process's active registry and default codec. It is
// the injectable replacement for package-global mutable state: code that
// needs name resolution or the current default takes a *Handle.
//
// All methods are safe for concurrent use. Replace installs the new
// registry with a single atomic pointer swap, so concurrent Resolve
// calls observe either the old registry or the new one, never a mix.
type Handle struct {
	registry atomic.Pointer[registryBox]
	def      atomic.Pointer[Codec]

	// replaceMu serializes Replace so the registry store and the default
	// store of one replacement are never interleaved with another's.
	replaceMu sync.Mutex

	bootstrapName string
	logger        *zap.Logger
	stats         stats.Collector
}

// HandleOption configures a Handle.
type HandleOption interface {
	applyHandle(*handleOptions)
}

// handleOptions holds the handle configuration.
type handleOptions struct {
	bootstrapName string
	logger        *zap.Logger
	stats         stats.Collector
}

// handleOptionFunc wraps a function to implement HandleOption.
type handleOptionFunc func(*handleOptions)

// Compile-time check that handleOptionFunc implements HandleOption.
var _ HandleOption = handleOptionFunc(nil)

func (f handleOptionFunc) applyHandle(o *handleOptions) { f(o) }

// WithBootstrapName overrides the name resolved to establish the default
// codec. If not set, DefaultBootstrapName is used.
func WithBootstrapName(name string) HandleOption {
	return handleOptionFunc(func(o *handleOptions) {
		o.bootstrapName = name
	})
}

// WithLogger sets the logger. If not set, logging is disabled.
func WithLogger(logger *zap.Logger) HandleOption {
	return handleOptionFunc(func(o *handleOptions) {
		o.logger = logger
	})
}

// WithStats sets the metrics collector. If not set, metrics are discarded.
func WithStats(collector stats.Collector) HandleOption {
	return handleOptionFunc(func(o *handleOptions) {
		o.stats = collector
	})
}

// NewHandle creates a Handle over the given registry and bootstraps the
// default codec by resolving the bootstrap name against it. The registry
// must exist first; a registry that cannot resolve the bootstrap name is
// unusable and NewHandle fails with ErrBootstrapMissing.
func NewHandle(r Registry, opts ...HandleOption) (*Handle, error) {
	cfg := handleOptions{
		bootstrapName: DefaultBootstrapName,
		logger:        zap.NewNop(),
		stats:         stats.NewNoop(),
	}
	for _, opt := range opts {
		opt.applyHandle(&cfg)
	}

	h := &Handle{
		bootstrapName: cfg.bootstrapName,
		logger:        cfg.logger,
		stats:         cfg.stats,
	}
	if err := h.Replace(r); err != nil {
		return nil, err
	}

	h.logger.Debug("handle bootstrapped",
		zap.String("bootstrapName", h.bootstrapName),
	)
	return h, nil
}

// Resolve returns the codec registered under name in the current
// registry. Returns ErrUnknownCodec if no codec has that name; a caller
// opening a segment must surface that error rather than guess a fallback
// codec, because reading data with the wrong codec misinterprets it.
func (h *Handle) Resolve(name string) (*Codec, error) {
	h.stats.IncCounter(stats.MetricResolves, 1)

	c, err := h.registry.Load().registry.Resolve(name)
	if err != nil {
		h.stats.IncCounter(stats.MetricResolveMisses, 1)
		return nil, err
	}
	return c, nil
}

// Names enumerates the current registry's names. Returns
// ErrListingUnsupported if the registry does not implement Lister.
func (h *Handle) Names() ([]string, error) {
	return Names(h.registry.Load().registry)
}

// Replace atomically installs r as the active registry and re-derives
// the default codec by resolving the bootstrap name against it.
//
// If r cannot resolve the bootstrap name, Replace fails with
// ErrBootstrapMissing and the previous registry and default stay in
// place. On success every subsequent Resolve observes only r.
// Concurrent Replace calls are serialized, so the installed registry
// and default always come from the same call.
//
// Note that a successful Replace overwrites any default previously
// pinned with SetDefault; callers that pinned a codec must re-pin after
// replacing the registry.
func (h *Handle) Replace(r Registry) error {
	if r == nil {
		return ErrNilRegistry
	}

	h.replaceMu.Lock()
	defer h.replaceMu.Unlock()

	def, err := r.Resolve(h.bootstrapName)
	if err != nil {
		return fmt.Errorf("%w: resolving %q: %v", ErrBootstrapMissing, h.bootstrapName, err)
	}

	h.registry.Store(&registryBox{registry: r})
	h.def.Store(def)

	h.stats.IncCounter(stats.MetricReplaces, 1)
	if lister, ok := r.(Lister); ok {
		h.stats.SetGauge(stats.MetricRegisteredSize, int64(len(lister.CodecNames())))
	}
	h.logger.Debug("registry replaced",
		zap.String("default", def.Name()),
	)
	return nil
}

// Default returns the current default codec. Never fails once the handle
// is constructed: bootstrap guarantees a default exists.
func (h *Handle) Default() *Codec {
	h.stats.IncCounter(stats.MetricDefaultReads, 1)
	return h.def.Load()
}

// SetDefault makes c the default codec for subsequent Default calls.
// Any codec is accepted, including one not present in the current
// registry; pinning a default is deliberately decoupled from what the
// registry happens to contain.
func (h *Handle) SetDefault(c *Codec) {
	h.def.Store(c)
	h.stats.IncCounter(stats.MetricDefaultWrites, 1)
	h.logger.Debug("default codec set",
		zap.String("codec", c.Name()),
	)
}

// BootstrapName returns the name this handle resolves to establish
// defaults.
func (h *Handle) BootstrapName() string {
	return h.bootstrapName
}
