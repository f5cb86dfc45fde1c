package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// RunConfig describes one decision run. It is read from a YAML run file and
// then overridden by command-line flags.
type RunConfig struct {
	Env          string    `mapstructure:"env"`
	Policy       string    `mapstructure:"policy"`
	Prior        []float64 `mapstructure:"prior"`
	Observations []string  `mapstructure:"observations"`
	StopOn       []string  `mapstructure:"stop_on"`
	MaxSteps     int       `mapstructure:"max_steps"`
	LogLevel     string    `mapstructure:"log_level"`
	Strict       bool      `mapstructure:"strict"`
	Tolerance    float64   `mapstructure:"tolerance"`
	Metrics      bool      `mapstructure:"metrics"`
}

// DefaultMaxSteps bounds runs that never reach a stop action.
const DefaultMaxSteps = 100

// LoadRunConfig reads a YAML run file. Relative env and policy paths are
// resolved against the directory of the run file.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("failed to read run config: %w", err)
	}
	cfg, err := ParseRunConfig(data)
	if err != nil {
		return RunConfig{}, err
	}
	dir := filepath.Dir(path)
	cfg.Env = resolve(dir, cfg.Env)
	cfg.Policy = resolve(dir, cfg.Policy)
	return cfg, nil
}

func resolve(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// ParseRunConfig decodes a YAML run file. Lists may also be written as
// strings: prior as "0.65 0.35" and observations as "hearSave, hearDelete".
func ParseRunConfig(data []byte) (RunConfig, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RunConfig{}, fmt.Errorf("failed to parse run config: %w", err)
	}

	var cfg RunConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToFloatSliceHook,
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return RunConfig{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return RunConfig{}, fmt.Errorf("invalid run config: %w", err)
	}

	cfg.Observations = trimAll(cfg.Observations)
	cfg.StopOn = trimAll(cfg.StopOn)
	return cfg, nil
}

// stringToFloatSliceHook splits a string on commas and whitespace into numbers.
func stringToFloatSliceHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]float64(nil)) {
		return data, nil
	}
	return ParseFloats(data.(string))
}

// ParseFloats parses "0.65 0.35" or "0.65,0.35".
func ParseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Check reports missing required settings.
func (c RunConfig) Check() error {
	var missing []string
	if c.Env == "" {
		missing = append(missing, "env")
	}
	if c.Policy == "" {
		missing = append(missing, "policy")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required setting(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
