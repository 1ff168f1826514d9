package compiler

import (
	"context"

	"go.uber.org/zap"
)

const (
	// DefaultGlkAreaSize is the size in bytes of the scratch area Glk calls
	// use for buffers they retain.
	DefaultGlkAreaSize uint32 = 4096
	// DefaultStackSize is the size in bytes of the Glulx stack.
	DefaultStackSize uint32 = 1 << 20
	// DefaultTableGrowthLimit is how many entries past its minimum a table can
	// grow to, absent a lower declared maximum.
	DefaultTableGrowthLimit uint32 = 1024
)

// Config controls compilation, with the default implementation as NewConfig.
type Config struct {
	ctx              context.Context
	logger           *zap.Logger
	glkAreaSize      uint32
	stackSize        uint32
	tableGrowthLimit uint32
	text             bool
}

var defaultConfig = &Config{
	ctx:              context.Background(),
	logger:           zap.NewNop(),
	glkAreaSize:      DefaultGlkAreaSize,
	stackSize:        DefaultStackSize,
	tableGrowthLimit: DefaultTableGrowthLimit,
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return defaultConfig.clone()
}

// clone ensures all fields are copied even if nil.
func (c *Config) clone() *Config {
	ret := *c
	return &ret
}

// WithContext sets the context used while validating the module. Defaults to
// context.Background if nil.
func (c *Config) WithContext(ctx context.Context) *Config {
	if ctx == nil {
		ctx = context.Background()
	}
	ret := c.clone()
	ret.ctx = ctx
	return ret
}

// WithLogger sets the logger phase boundaries are reported to at debug level.
// Defaults to a no-op logger if nil.
func (c *Config) WithLogger(logger *zap.Logger) *Config {
	if logger == nil {
		logger = zap.NewNop()
	}
	ret := c.clone()
	ret.logger = logger
	return ret
}

// WithGlkAreaSize sets the size of the Glk area, which holds the buffers Glk
// keeps a hold of between calls, like those of stream_open_memory.
func (c *Config) WithGlkAreaSize(size uint32) *Config {
	ret := c.clone()
	ret.glkAreaSize = size
	return ret
}

// WithStackSize sets the stack size written to the story file header.
func (c *Config) WithStackSize(size uint32) *Config {
	ret := c.clone()
	ret.stackSize = size
	return ret
}

// WithTableGrowthLimit bounds how far table.grow can extend a table beyond its
// declared minimum. Tables are allocated at their maximum size.
func (c *Config) WithTableGrowthLimit(limit uint32) *Config {
	ret := c.clone()
	ret.tableGrowthLimit = limit
	return ret
}

// WithText makes Compile produce an assembly listing instead of a story file.
func (c *Config) WithText(text bool) *Config {
	ret := c.clone()
	ret.text = text
	return ret
}

// GlkAreaSize returns the configured Glk area size.
func (c *Config) GlkAreaSize() uint32 { return c.glkAreaSize }

// StackSize returns the configured stack size.
func (c *Config) StackSize() uint32 { return c.stackSize }

// TableGrowthLimit returns the configured table growth limit.
func (c *Config) TableGrowthLimit() uint32 { return c.tableGrowthLimit }

// Text returns true if Compile produces a listing.
func (c *Config) Text() bool { return c.text }
