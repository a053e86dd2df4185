package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyLayer    = "layer"
	keyFMin     = "fmin"
	keyFMax     = "fmax"
	keyCount    = "count"
	keyOut      = "out"
	keyLogLevel = "log-level"

	defaultFMin     = 1e-4
	defaultFMax     = 1.0
	defaultCount    = 9
	defaultLogLevel = "info"
)

// config holds the resolved CLI settings.
type config struct {
	Layer    int
	FMin     float64
	FMax     float64
	Count    int
	Out      string
	LogLevel string
}

// loadConfig resolves settings with the precedence flag > environment >
// config file > default. Only flags that were set on the command line
// override the lower layers.
func loadConfig(path string, fs *flag.FlagSet) (config, error) {
	v := viper.New()
	v.SetDefault(keyLayer, 0)
	v.SetDefault(keyFMin, defaultFMin)
	v.SetDefault(keyFMax, defaultFMax)
	v.SetDefault(keyCount, defaultCount)
	v.SetDefault(keyOut, "")
	v.SetDefault(keyLogLevel, defaultLogLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("GEOMAG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || f.Name == "list" {
			return
		}
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			flagErr = fmt.Errorf("flag %s has no value getter", f.Name)
			return
		}
		v.Set(f.Name, getter.Get())
	})
	if flagErr != nil {
		return config{}, flagErr
	}

	return config{
		Layer:    v.GetInt(keyLayer),
		FMin:     v.GetFloat64(keyFMin),
		FMax:     v.GetFloat64(keyFMax),
		Count:    v.GetInt(keyCount),
		Out:      v.GetString(keyOut),
		LogLevel: v.GetString(keyLogLevel),
	}, nil
}
