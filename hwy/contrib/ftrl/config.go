package ftrl

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/evilmucedin/SIMDNumber/hwy"
	"gopkg.in/yaml.v3"
)

// SignEpsilon is the deadzone of the sign function: |z| <= SignEpsilon is
// treated as zero when building sign(z)*lambda1.
const SignEpsilon = 1e-8

// Config holds the FTRL hyperparameters. It is immutable once built and may
// be shared by any number of update calls.
type Config struct {
	Alpha   float32 `yaml:"alpha"`   // learning-rate scale, > 0
	Beta    float32 `yaml:"beta"`    // smoothing term, >= 0
	Lambda1 float32 `yaml:"lambda1"` // L1 strength, >= 0
	Lambda2 float32 `yaml:"lambda2"` // L2 strength, >= 0
}

// DefaultConfig returns alpha=0.01, beta=0.01, lambda1=0.02, lambda2=0.03.
func DefaultConfig() Config {
	return Config{
		Alpha:   0.01,
		Beta:    0.01,
		Lambda1: 0.02,
		Lambda2: 0.03,
	}
}

// Validate checks the parameter ranges. NaN and infinite values are rejected.
func (c Config) Validate() error {
	finite := func(x float32) bool {
		return !math32.IsNaN(x) && !math32.IsInf(x, 0)
	}
	switch {
	case !finite(c.Alpha) || c.Alpha <= 0:
		return fmt.Errorf("%w: alpha must be > 0, got %v", ErrInvalidConfig, c.Alpha)
	case !finite(c.Beta) || c.Beta < 0:
		return fmt.Errorf("%w: beta must be >= 0, got %v", ErrInvalidConfig, c.Beta)
	case !finite(c.Lambda1) || c.Lambda1 < 0:
		return fmt.Errorf("%w: lambda1 must be >= 0, got %v", ErrInvalidConfig, c.Lambda1)
	case !finite(c.Lambda2) || c.Lambda2 < 0:
		return fmt.Errorf("%w: lambda2 must be >= 0, got %v", ErrInvalidConfig, c.Lambda2)
	}
	return nil
}

// ParseConfig decodes a YAML document such as
//
//	alpha: 0.01
//	beta: 0.01
//	lambda1: 0.02
//	lambda2: 0.03
//
// Fields left out keep their DefaultConfig values; unknown fields are an
// error. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// VectorConfig is a Config broadcast to all 8 lanes, plus the derived
// constants the branch-free kernel needs. Build it once with
// NewVectorConfig and reuse it for every batch.
type VectorConfig struct {
	Alpha   hwy.Float32x8
	Beta    hwy.Float32x8
	Lambda1 hwy.Float32x8
	Lambda2 hwy.Float32x8

	// NegLambda1 is -Lambda1, the value of sign(z)*lambda1 for negative z.
	NegLambda1 hwy.Float32x8

	epsilon    hwy.Float32x8
	negEpsilon hwy.Float32x8
}

// NewVectorConfig broadcasts c.
func NewVectorConfig(c Config) *VectorConfig {
	return &VectorConfig{
		Alpha:      hwy.Set(c.Alpha),
		Beta:       hwy.Set(c.Beta),
		Lambda1:    hwy.Set(c.Lambda1),
		Lambda2:    hwy.Set(c.Lambda2),
		NegLambda1: hwy.Set(-c.Lambda1),
		epsilon:    hwy.Set(SignEpsilon),
		negEpsilon: hwy.Set(-SignEpsilon),
	}
}
