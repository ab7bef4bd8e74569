package slickhash

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

// Config holds the hyperparameters SlickHash is built with. DefaultConfig
// fills in the fixed values the design calls for; the individual fields are
// only meant to be overridden in tests that need a tiny block count or a
// low threshold ceiling to exercise slide/bump paths deterministically.
type Config struct {
	// Capacity is the main table size; must be a positive multiple of
	// BlockSize.
	Capacity uint64

	// BlockSize is the number of cells nominally assigned to each block.
	BlockSize uint64

	// MaxSlickSize caps how large a block's occupied range may grow,
	// regardless of how much gap sliding could otherwise borrow.
	MaxSlickSize uint64

	// MaxOffset caps how far a block's start may drift from its anchor.
	MaxOffset uint64

	// MaxThreshold caps how high a block's threshold may be bumped.
	MaxThreshold uint64

	// Logger receives slide/bump debug events and the population
	// milestone log. Defaults to a no-op logger.
	Logger log.Logger
}

// Option mutates a Config being built by DefaultConfig.
type Option func(*Config)

// WithLogger overrides the logger used for slide/bump/milestone logging.
func WithLogger(logger log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithBlockSize overrides the block size. Production callers should not
// need this; it exists so tests can shrink the geometry to hit edge cases.
func WithBlockSize(blockSize uint64) Option {
	return func(c *Config) {
		c.BlockSize = blockSize
		c.MaxSlickSize = blockSize * 2
		c.MaxOffset = blockSize
		c.MaxThreshold = blockSize
	}
}

// WithMaxThreshold overrides the threshold ceiling independently of block
// size, for tests that want to force bumping quickly.
func WithMaxThreshold(maxThreshold uint64) Option {
	return func(c *Config) {
		c.MaxThreshold = maxThreshold
	}
}

// DefaultConfig returns the standard hyperparameters for the given
// capacity: block size 10, max slick size 20, max offset 10,
// max threshold 10.
func DefaultConfig(capacity uint64, opts ...Option) Config {
	const defaultBlockSize = 10

	cfg := Config{
		Capacity:     capacity,
		BlockSize:    defaultBlockSize,
		MaxSlickSize: defaultBlockSize * 2,
		MaxOffset:    defaultBlockSize,
		MaxThreshold: defaultBlockSize,
		Logger:       log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}
	return cfg
}

// Validate reports whether cfg describes a constructible table, wrapping
// the underlying complaint with context the way the rest of the pack wraps
// configuration errors.
func (cfg Config) Validate() error {
	if cfg.BlockSize == 0 {
		return errors.New("slickhash: block size must be greater than zero")
	}
	if cfg.Capacity == 0 {
		return errors.New("slickhash: capacity must be greater than zero")
	}
	if cfg.Capacity%cfg.BlockSize != 0 {
		return errors.Wrapf(errInvalidCapacity, "capacity %d is not a multiple of block size %d", cfg.Capacity, cfg.BlockSize)
	}
	return nil
}

var errInvalidCapacity = errors.New("slickhash: invalid capacity")
