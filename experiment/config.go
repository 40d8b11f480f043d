package experiment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/prim_kruskal"
	"github.com/katalvlaran/mstwalk/walk"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("experiment: invalid config")

var validate = validator.New()

// Config holds the knobs of one experiment run.
type Config struct {
	// Seed feeds every random walk; 0 means walk.DefaultSeed.
	Seed int64 `yaml:"seed"`

	// Start is the first vertex of every walk and the Prim root.
	Start core.Vertex `yaml:"start" validate:"min=1"`

	// MaxSteps bounds each walk; 0 means unbounded.
	MaxSteps int `yaml:"max_steps" validate:"min=0"`

	// Lookup selects Prim's weight lookup: "adjacency" or "dense".
	Lookup string `yaml:"lookup" validate:"oneof=adjacency dense"`

	// Trace keeps the per-step trace of every walk in the report.
	Trace bool `yaml:"trace"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Seed:     walk.DefaultSeed,
		Start:    1,
		MaxSteps: 0,
		Lookup:   prim_kruskal.LookupAdjacency.String(),
		Trace:    false,
	}
}

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// LoadConfig decodes a YAML document over DefaultConfig and validates it.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// formatValidationError joins every field error into one ErrInvalidConfig.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
