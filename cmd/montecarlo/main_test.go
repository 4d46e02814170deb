package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/config"
	"github.com/rxtech-lab/argo-montecarlo/internal/strategy"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/stretchr/testify/suite"
)

type MonteCarloCmdTestSuite struct {
	suite.Suite
	tempDir string
}

func TestMonteCarloCmdSuite(t *testing.T) {
	suite.Run(t, new(MonteCarloCmdTestSuite))
}

func (suite *MonteCarloCmdTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *MonteCarloCmdTestSuite) run(args ...string) (string, error) {
	var stdout bytes.Buffer

	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = io.Discard

	err := app.Run(context.Background(), append([]string{"montecarlo"}, args...))

	return stdout.String(), err
}

func (suite *MonteCarloCmdTestSuite) writeExperiment() string {
	experiment := config.ExperimentConfig{
		Name: "cli",
		Process: config.ProcessConfig{
			InitialPrice: 100,
			Drift:        0.08,
			Volatility:   0.2,
			StepSize:     1.0 / 252,
			StepCount:    40,
			PathCount:    30,
			Seed:         optional.Some[int64](9),
		},
		Strategies: []strategy.StrategyConfig{
			{Type: strategy.StrategyTypeBuyAndHold},
			{Type: strategy.StrategyTypeSMACrossover, ShortWindow: 3, LongWindow: 10},
		},
		Workers: 2,
	}

	path := filepath.Join(suite.tempDir, "experiment.yaml")
	suite.Require().NoError(experiment.Write(path))

	return path
}

func (suite *MonteCarloCmdTestSuite) TestRunQueryRoundTrip() {
	configPath := suite.writeExperiment()
	dbPath := filepath.Join(suite.tempDir, "results.duckdb")
	outPath := filepath.Join(suite.tempDir, "summary.yaml")

	out, err := suite.run("run", "--config", configPath, "--db", dbPath, "--out", outPath, "--quiet")
	suite.Require().NoError(err)
	suite.Contains(out, "Monte Carlo summary (30 paths, seed 9)")
	suite.Contains(out, "buy_and_hold")
	suite.Contains(out, "sma_crossover_3_10")

	summaries, err := types.ReadSummaries(outPath)
	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal(30, summaries[0].PathCount)

	_, err = suite.run("run", "--config", configPath, "--db", dbPath, "--quiet", "--seed", "10")
	suite.Require().NoError(err)

	out, err = suite.run("query", "--db", dbPath, "--limit", "3")
	suite.Require().NoError(err)
	suite.Contains(out, "Last 3 runs")
	suite.Contains(out, "Average metrics by strategy")
	suite.Contains(out, "sma_crossover_3_10")
	suite.Contains(out, "buy_and_hold")
}

func (suite *MonteCarloCmdTestSuite) TestRunWithProgress() {
	configPath := suite.writeExperiment()

	out, err := suite.run("run", "--config", configPath, "--paths", "12")
	suite.Require().NoError(err)
	suite.Contains(out, "Monte Carlo summary (12 paths, seed 9)")
}

func (suite *MonteCarloCmdTestSuite) TestRunRejectsInvalidOverride() {
	configPath := suite.writeExperiment()

	_, err := suite.run("run", "--config", configPath, "--paths", "0", "--quiet")
	suite.Error(err)
}

func (suite *MonteCarloCmdTestSuite) TestRunMissingConfig() {
	_, err := suite.run("run", "--config", filepath.Join(suite.tempDir, "missing.yaml"))
	suite.Error(err)
}

func (suite *MonteCarloCmdTestSuite) TestInitDB() {
	dbPath := filepath.Join(suite.tempDir, "fresh.duckdb")

	out, err := suite.run("init-db", "--db", dbPath)
	suite.Require().NoError(err)
	suite.Contains(out, "Database initialized")

	_, err = os.Stat(dbPath)
	suite.NoError(err)
}

func (suite *MonteCarloCmdTestSuite) TestInvalidLogLevel() {
	_, err := suite.run("--log-level", "loud", "init-db", "--db", filepath.Join(suite.tempDir, "x.duckdb"))
	suite.Error(err)
}

func (suite *MonteCarloCmdTestSuite) TestSchema() {
	dir := filepath.Join(suite.tempDir, "config")

	out, err := suite.run("schema", "--out", dir)
	suite.Require().NoError(err)
	suite.Contains(out, "Schema written")
	suite.Contains(out, "Sample experiment written")

	schema, err := os.ReadFile(filepath.Join(dir, schemaFileName))
	suite.Require().NoError(err)
	suite.Contains(string(schema), "montecarlo-experiment-config")

	sample, err := config.Load(filepath.Join(dir, sampleConfigFileName))
	suite.Require().NoError(err)
	suite.Equal(config.Default(), sample)

	out, err = suite.run("schema", "--out", dir)
	suite.Require().NoError(err)
	suite.NotContains(out, "Sample experiment written")
}
