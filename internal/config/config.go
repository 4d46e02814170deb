// Package config loads and validates experiment configuration files.
package config

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/strategy"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ProcessConfig is the YAML form of types.ProcessParams.
type ProcessConfig struct {
	InitialPrice float64                `yaml:"initial_price" json:"initial_price" validate:"gt=0" jsonschema:"title=Initial Price,description=Price at step 0 of every path,exclusiveMinimum=0,required"`
	Drift        float64                `yaml:"drift" json:"drift" jsonschema:"title=Drift,description=Annualized expected return (mu)"`
	Volatility   float64                `yaml:"volatility" json:"volatility" validate:"gte=0" jsonschema:"title=Volatility,description=Annualized volatility (sigma),minimum=0"`
	StepSize     float64                `yaml:"step_size" json:"step_size" validate:"gt=0" jsonschema:"title=Step Size,description=Length of one step in years (1/252 for daily),exclusiveMinimum=0,required"`
	StepCount    int                    `yaml:"step_count" json:"step_count" validate:"gt=0" jsonschema:"title=Step Count,description=Number of steps per path,minimum=1,required"`
	PathCount    int                    `yaml:"path_count" json:"path_count" validate:"gt=0" jsonschema:"title=Path Count,description=Number of simulated paths,minimum=1,required"`
	Seed         optional.Option[int64] `yaml:"seed" json:"seed,omitempty" jsonschema:"title=Seed,description=Random seed. Omit to draw a fresh seed per run"`
}

// UnmarshalYAML implements custom unmarshaling for ProcessConfig
func (c *ProcessConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		InitialPrice float64 `yaml:"initial_price"`
		Drift        float64 `yaml:"drift"`
		Volatility   float64 `yaml:"volatility"`
		StepSize     float64 `yaml:"step_size"`
		StepCount    int     `yaml:"step_count"`
		PathCount    int     `yaml:"path_count"`
		Seed         *int64  `yaml:"seed"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	c.InitialPrice = config.InitialPrice
	c.Drift = config.Drift
	c.Volatility = config.Volatility
	c.StepSize = config.StepSize
	c.StepCount = config.StepCount
	c.PathCount = config.PathCount
	c.Seed = optional.None[int64]()
	if config.Seed != nil {
		c.Seed = optional.Some(*config.Seed)
	}

	return nil
}

// MarshalYAML writes the seed only when it is set.
func (c ProcessConfig) MarshalYAML() (interface{}, error) {
	type Config struct {
		InitialPrice float64 `yaml:"initial_price"`
		Drift        float64 `yaml:"drift"`
		Volatility   float64 `yaml:"volatility"`
		StepSize     float64 `yaml:"step_size"`
		StepCount    int     `yaml:"step_count"`
		PathCount    int     `yaml:"path_count"`
		Seed         *int64  `yaml:"seed,omitempty"`
	}

	config := Config{
		InitialPrice: c.InitialPrice,
		Drift:        c.Drift,
		Volatility:   c.Volatility,
		StepSize:     c.StepSize,
		StepCount:    c.StepCount,
		PathCount:    c.PathCount,
	}
	if c.Seed.IsSome() {
		seed := c.Seed.Unwrap()
		config.Seed = &seed
	}

	return config, nil
}

// Params converts the config to simulator parameters.
func (c ProcessConfig) Params() types.ProcessParams {
	return types.ProcessParams{
		InitialPrice: c.InitialPrice,
		Drift:        c.Drift,
		Volatility:   c.Volatility,
		StepSize:     c.StepSize,
		StepCount:    c.StepCount,
		PathCount:    c.PathCount,
		Seed:         c.Seed,
	}
}

// ExperimentConfig describes one Monte Carlo experiment: the process to
// simulate and the strategies to evaluate on it.
type ExperimentConfig struct {
	Name       string                    `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"title=Name,description=Free-form label for the experiment"`
	Process    ProcessConfig             `yaml:"process" json:"process" jsonschema:"title=Process,description=GBM process parameters,required"`
	Strategies []strategy.StrategyConfig `yaml:"strategies" json:"strategies" validate:"required,min=1,dive" jsonschema:"title=Strategies,description=Strategies evaluated on every path,minItems=1,required"`
	// Workers bounds both simulation and evaluation concurrency. Zero means one per CPU.
	Workers      int     `yaml:"workers,omitempty" json:"workers,omitempty" validate:"gte=0" jsonschema:"title=Workers,description=Concurrent workers. 0 uses one per CPU,minimum=0"`
	RiskFreeRate float64 `yaml:"risk_free_rate,omitempty" json:"risk_free_rate,omitempty" jsonschema:"title=Risk Free Rate,description=Annual risk-free rate used by the Sharpe ratio"`
	DatabasePath string  `yaml:"database_path,omitempty" json:"database_path,omitempty" jsonschema:"title=Database Path,description=DuckDB file receiving one row per strategy"`
	ResultsFile  string  `yaml:"results_file,omitempty" json:"results_file,omitempty" jsonschema:"title=Results File,description=YAML file receiving the full summaries"`
}

// Default returns the built-in experiment: one year of daily steps over 1000
// paths, buy and hold against a 20/50 SMA crossover.
func Default() ExperimentConfig {
	return ExperimentConfig{
		Name: "default",
		Process: ProcessConfig{
			InitialPrice: 100,
			Drift:        0.08,
			Volatility:   0.2,
			StepSize:     1.0 / 252,
			StepCount:    252,
			PathCount:    1000,
			Seed:         optional.Some[int64](42),
		},
		Strategies: []strategy.StrategyConfig{
			{Type: strategy.StrategyTypeBuyAndHold, InitialCash: strategy.DefaultInitialCash},
			{
				Type:           strategy.StrategyTypeSMACrossover,
				ShortWindow:    strategy.DefaultShortWindow,
				LongWindow:     strategy.DefaultLongWindow,
				InitialCapital: strategy.DefaultInitialCapital,
			},
		},
	}
}

// Load reads and validates an experiment file.
func Load(path string) (ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExperimentConfig{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates experiment YAML.
func Parse(data []byte) (ExperimentConfig, error) {
	var config ExperimentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ExperimentConfig{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return ExperimentConfig{}, err
	}

	return config, nil
}

// Validate checks field constraints, then builds the process parameters and
// every strategy so that cross-field errors surface before a run starts.
func (c ExperimentConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := c.Process.Params().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid process", err)
	}

	for i, strategyConfig := range c.Strategies {
		if _, err := strategy.New(strategyConfig); err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid strategy %d", i)
		}
	}

	return nil
}

// Write stores the config as YAML.
func (c ExperimentConfig) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to write config file %s", path)
	}

	return nil
}

// GenerateSchema generates a JSON schema for the ExperimentConfig
func (c *ExperimentConfig) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(optional.Option[int64]{}) {
				return &jsonschema.Schema{
					Type: "integer",
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "montecarlo-experiment-config"
	schema.Description = "Configuration schema for a Monte Carlo strategy experiment"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the ExperimentConfig
func (c *ExperimentConfig) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
