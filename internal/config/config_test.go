package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/strategy"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

const experimentYAML = `
name: daily
process:
  initial_price: 100
  drift: 0.08
  volatility: 0.2
  step_size: 0.003968253968253968
  step_count: 252
  path_count: 500
  seed: 7
strategies:
  - type: buy_and_hold
    initial_cash: 5000
  - type: sma_crossover
    short_window: 10
    long_window: 30
workers: 4
risk_free_rate: 0.02
database_path: results.duckdb
results_file: summary.yaml
`

func (suite *ConfigTestSuite) TestParse() {
	config, err := Parse([]byte(experimentYAML))
	suite.Require().NoError(err)

	suite.Equal("daily", config.Name)
	suite.Equal(100.0, config.Process.InitialPrice)
	suite.Equal(0.08, config.Process.Drift)
	suite.Equal(0.2, config.Process.Volatility)
	suite.Equal(252, config.Process.StepCount)
	suite.Equal(500, config.Process.PathCount)
	suite.True(config.Process.Seed.IsSome())
	suite.Equal(int64(7), config.Process.Seed.Unwrap())

	suite.Require().Len(config.Strategies, 2)
	suite.Equal(strategy.StrategyTypeBuyAndHold, config.Strategies[0].Type)
	suite.Equal(5000.0, config.Strategies[0].InitialCash)
	suite.Equal(strategy.StrategyTypeSMACrossover, config.Strategies[1].Type)
	suite.Equal(10, config.Strategies[1].ShortWindow)
	suite.Equal(30, config.Strategies[1].LongWindow)

	suite.Equal(4, config.Workers)
	suite.Equal(0.02, config.RiskFreeRate)
	suite.Equal("results.duckdb", config.DatabasePath)
	suite.Equal("summary.yaml", config.ResultsFile)
}

func (suite *ConfigTestSuite) TestParamsCarrySeed() {
	config, err := Parse([]byte(experimentYAML))
	suite.Require().NoError(err)

	params := config.Process.Params()
	suite.Equal(config.Process.InitialPrice, params.InitialPrice)
	suite.Equal(config.Process.StepSize, params.StepSize)
	suite.Equal(optional.Some[int64](7), params.Seed)
}

func (suite *ConfigTestSuite) TestMissingSeedIsNone() {
	data := []byte(`
process:
  initial_price: 100
  volatility: 0.2
  step_size: 1
  step_count: 10
  path_count: 10
strategies:
  - type: buy_and_hold
`)

	config, err := Parse(data)
	suite.Require().NoError(err)
	suite.True(config.Process.Seed.IsNone())
}

func (suite *ConfigTestSuite) TestInvalidConfigs() {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed yaml",
			yaml: "process: [",
		},
		{
			name: "no strategies",
			yaml: `
process: {initial_price: 100, step_size: 1, step_count: 10, path_count: 10}
strategies: []
`,
		},
		{
			name: "unknown strategy type",
			yaml: `
process: {initial_price: 100, step_size: 1, step_count: 10, path_count: 10}
strategies: [{type: momentum}]
`,
		},
		{
			name: "non-positive initial price",
			yaml: `
process: {initial_price: 0, step_size: 1, step_count: 10, path_count: 10}
strategies: [{type: buy_and_hold}]
`,
		},
		{
			name: "negative volatility",
			yaml: `
process: {initial_price: 100, volatility: -0.1, step_size: 1, step_count: 10, path_count: 10}
strategies: [{type: buy_and_hold}]
`,
		},
		{
			name: "short window not below long window",
			yaml: `
process: {initial_price: 100, step_size: 1, step_count: 10, path_count: 10}
strategies: [{type: sma_crossover, short_window: 50, long_window: 20}]
`,
		},
		{
			name: "negative workers",
			yaml: `
process: {initial_price: 100, step_size: 1, step_count: 10, path_count: 10}
strategies: [{type: buy_and_hold}]
workers: -1
`,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := Parse([]byte(tt.yaml))
			suite.Error(err)
			suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
		})
	}
}

func (suite *ConfigTestSuite) TestStrategyErrorKeepsCause() {
	_, err := Parse([]byte(`
process: {initial_price: 100, step_size: 1, step_count: 10, path_count: 10}
strategies: [{type: sma_crossover, short_window: 50, long_window: 20}]
`))
	suite.Error(err)
	suite.True(errors.IsInvalidParameter(err))
}

func (suite *ConfigTestSuite) TestDefaultIsValid() {
	config := Default()

	suite.NoError(config.Validate())
	suite.Equal(1000, config.Process.PathCount)
	suite.Equal(252, config.Process.StepCount)
	suite.Equal(int64(42), config.Process.Seed.Unwrap())
	suite.Len(config.Strategies, 2)
}

func (suite *ConfigTestSuite) TestWriteAndLoad() {
	path := filepath.Join(suite.T().TempDir(), "experiment.yaml")

	config := Default()
	config.Workers = 2
	suite.Require().NoError(config.Write(path))

	loaded, err := Load(path)
	suite.Require().NoError(err)
	suite.Equal(config, loaded)
}

func (suite *ConfigTestSuite) TestWriteOmitsMissingSeed() {
	path := filepath.Join(suite.T().TempDir(), "experiment.yaml")

	config := Default()
	config.Process.Seed = optional.None[int64]()
	suite.Require().NoError(config.Write(path))

	data, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.NotContains(string(data), "seed")

	loaded, err := Load(path)
	suite.Require().NoError(err)
	suite.True(loaded.Process.Seed.IsNone())
}

func (suite *ConfigTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestGenerateSchemaJSON() {
	config := ExperimentConfig{}

	schemaJSON, err := config.GenerateSchemaJSON()
	suite.Require().NoError(err)

	var schema map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schemaJSON), &schema))

	suite.Equal("montecarlo-experiment-config", schema["title"])

	properties, ok := schema["properties"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(properties, "process")
	suite.Contains(properties, "strategies")
	suite.Contains(properties, "risk_free_rate")
}
