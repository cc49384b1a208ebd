// Package cycle provides the durations a traffic light stays in one phase.
package cycle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
)

const (
	TypeUniform = "uniform"
	TypeFixed   = "fixed"

	DefaultMin  = 4 * time.Second
	DefaultMax  = 6 * time.Second
	DefaultStep = time.Second
)

var DefaultSet = wire.NewSet(
	NewProvider,
)

var (
	ErrUnknownType     = errors.New("unknown cycle provider type")
	ErrInvalidDuration = errors.New("cycle duration must be positive")
	ErrInvalidRange    = errors.New("cycle min must not exceed max")
	ErrDecodeConfig    = errors.New("failed to decode cycle config")
)

// Provider yields the duration of a phase cycle.
type Provider interface {
	Next() time.Duration
}

// Uniform draws a duration uniformly from [Min, Max] in multiples of Step.
// A zero Step means DefaultStep.
type Uniform struct {
	Min  time.Duration `mapstructure:"min"`
	Max  time.Duration `mapstructure:"max"`
	Step time.Duration `mapstructure:"step"`
}

func NewUniform(lower, upper time.Duration) *Uniform {
	return &Uniform{Min: lower, Max: upper, Step: DefaultStep}
}

func (u *Uniform) Validate() error {
	if u.Min <= 0 || u.Max <= 0 || u.Step < 0 {
		return ErrInvalidDuration
	}
	if u.Min > u.Max {
		return fmt.Errorf("%w: min %s, max %s", ErrInvalidRange, u.Min, u.Max)
	}

	return nil
}

func (u *Uniform) Next() time.Duration {
	step := u.step()
	steps := int64((u.Max - u.Min) / step)
	if steps <= 0 {
		return u.Min
	}

	return u.Min + time.Duration(rand.N(steps+1))*step
}

func (u *Uniform) step() time.Duration {
	if u.Step <= 0 {
		return DefaultStep
	}

	return u.Step
}

type Fixed time.Duration

func (f Fixed) Next() time.Duration {
	return time.Duration(f)
}

type fixedConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

// Config is the raw provider section of the configuration. The "type" key
// selects the provider, the remaining keys are provider specific.
type Config map[string]any

// NewProvider builds a Provider from cfg. An empty config yields the default
// uniform 4s to 6s provider.
func NewProvider(cfg Config) (Provider, error) {
	kind, _ := cfg["type"].(string)
	if kind == "" {
		kind = TypeUniform
	}

	switch kind {
	case TypeUniform:
		u := &Uniform{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
		if err := decode(cfg, u); err != nil {
			return nil, err
		}
		if err := u.Validate(); err != nil {
			return nil, err
		}
		return u, nil
	case TypeFixed:
		var f fixedConfig
		if err := decode(cfg, &f); err != nil {
			return nil, err
		}
		if f.Duration <= 0 {
			return nil, ErrInvalidDuration
		}
		return Fixed(f.Duration), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, kind)
	}
}

func decode(cfg Config, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Join(ErrDecodeConfig, err)
	}

	if err := decoder.Decode(map[string]any(cfg)); err != nil {
		return errors.Join(ErrDecodeConfig, err)
	}

	return nil
}
