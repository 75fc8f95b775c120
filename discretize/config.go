package discretize

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML configuration surface. Every field is
// optional; absent fields keep their defaults.
//
//	bins: 5            # or [3, 4, 5], or "auto"
//	strategy: uniform  # uniform | quantile | kmeans
//	encode: ordinal    # onehot | onehot-dense | ordinal
//	precision: float64 # native | float32 | float64
type fileConfig struct {
	Bins      any    `yaml:"bins"`
	Strategy  string `yaml:"strategy"`
	Encode    string `yaml:"encode"`
	Precision string `yaml:"precision"`
}

// OptionsFromYAML parses a YAML configuration document into options that
// New accepts. Unknown names are rejected with the same sentinel errors a
// Fit-time validation would raise.
func OptionsFromYAML(b []byte) ([]Option, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("discretize: unmarshal yaml: %w", err)
	}

	var opts []Option

	if cfg.Bins != nil {
		spec, err := binSpecFromYAML(cfg.Bins)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithBins(spec))
	}

	if s := normalize(cfg.Strategy); s != "" {
		strategy, ok := map[string]Strategy{
			"uniform":  Uniform,
			"quantile": Quantile,
			"kmeans":   KMeans,
		}[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
		}
		opts = append(opts, WithStrategy(strategy))
	}

	if s := normalize(cfg.Encode); s != "" {
		encoding, ok := map[string]Encoding{
			"onehot":       OneHotSparse,
			"onehot-dense": OneHotDense,
			"ordinal":      Ordinal,
		}[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, cfg.Encode)
		}
		opts = append(opts, WithEncoding(encoding))
	}

	if s := normalize(cfg.Precision); s != "" {
		precision, ok := map[string]Precision{
			"native":  PrecisionNative,
			"float32": Precision32,
			"float64": Precision64,
		}[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPrecision, cfg.Precision)
		}
		opts = append(opts, WithPrecision(precision))
	}

	return opts, nil
}

// OptionsFromYAMLFile reads and parses a YAML configuration file.
func OptionsFromYAMLFile(path string) ([]Option, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("discretize: read yaml: %w", err)
	}

	return OptionsFromYAML(b)
}

// binSpecFromYAML maps the decoded `bins` value onto a BinSpec: an integer,
// a sequence of integers, or the string "auto".
func binSpecFromYAML(v any) (BinSpec, error) {
	switch b := v.(type) {
	case int:
		return Count(b), nil
	case string:
		if normalize(b) == "auto" {
			return Auto(), nil
		}

		return BinSpec{}, fmt.Errorf("%w: bins %q (want an integer, a sequence, or \"auto\")", ErrBadBinCount, b)
	case []any:
		counts := make([]int, len(b))
		for j, item := range b {
			k, ok := item.(int)
			if !ok {
				return BinSpec{}, fmt.Errorf("%w: bins entry %v is not an integer", ErrBadBinCount, item)
			}
			counts[j] = k
		}

		return PerFeature(counts), nil
	default:
		return BinSpec{}, fmt.Errorf("%w: bins value %v (want an integer, a sequence, or \"auto\")", ErrBadBinCount, v)
	}
}

// normalize lower-cases and trims a configuration token.
func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
