package impedance

// Mu0 is the vacuum magnetic permeability in H/m (CODATA 2018).
const Mu0 = 1.25663706212e-6

// DefaultScale converts impedance from Ohm to mV/km/nT.
const DefaultScale = 1e-3 / Mu0

// Config holds the engine settings applied by [Option] values.
type Config struct {
	// Layer is the index of the layer whose top-boundary impedance is
	// reported in the result rows. 0 is the surface.
	Layer int
	// Scale multiplies the reported impedance.
	Scale float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig reports the surface impedance in mV/km/nT.
func DefaultConfig() Config {
	return Config{
		Layer: 0,
		Scale: DefaultScale,
	}
}

// WithLayer selects the layer whose impedance is reported. Range checking
// happens in [Compute], where the stack depth is known.
func WithLayer(layer int) Option {
	return func(cfg *Config) {
		cfg.Layer = layer
	}
}

// WithScale overrides the output scale. [Compute] rejects zero and
// non-finite values.
func WithScale(scale float64) Option {
	return func(cfg *Config) {
		cfg.Scale = scale
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
