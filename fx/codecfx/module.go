// Package codecfx provides an fx module for a codec handle bootstrapped
// with the Lucene46 codec.
package codecfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lexigraph/segcodec"
	"github.com/lexigraph/segcodec/internal/stats"
	"github.com/lexigraph/segcodec/internal/stats/logger"
	"github.com/lexigraph/segcodec/lucene46"
)

// Config holds configuration for the codec handle.
type Config struct {
	// BootstrapName is the codec name resolved to establish the
	// default. Defaults to segcodec.DefaultBootstrapName.
	BootstrapName string

	// ExtraCodecs are registered alongside the Lucene46 codec.
	ExtraCodecs []*segcodec.Codec
}

// Module provides a *segcodec.Handle.
// Requires a *zap.Logger and a Config to be provided.
var Module = fx.Module("segcodec",
	fx.Provide(
		newStatsCollector,
		newRegistry,
		newHandle,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("segcodec.stats"))
}

func newRegistry(cfg Config, collector stats.Collector) (*segcodec.MapRegistry, error) {
	l46, err := lucene46.New(lucene46.WithStats(collector))
	if err != nil {
		return nil, err
	}

	codecs := append([]*segcodec.Codec{l46}, cfg.ExtraCodecs...)
	return segcodec.NewMapRegistry(codecs...)
}

// Params holds dependencies for creating the handle.
type Params struct {
	fx.In

	Config    Config
	Registry  *segcodec.MapRegistry
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided handle.
type Result struct {
	fx.Out

	Handle *segcodec.Handle
}

func newHandle(p Params) (Result, error) {
	opts := []segcodec.HandleOption{
		segcodec.WithLogger(p.Logger.Named("segcodec")),
		segcodec.WithStats(p.Collector),
	}
	if p.Config.BootstrapName != "" {
		opts = append(opts, segcodec.WithBootstrapName(p.Config.BootstrapName))
	}

	handle, err := segcodec.NewHandle(p.Registry, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Handle: handle}, nil
}
