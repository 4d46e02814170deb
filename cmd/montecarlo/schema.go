package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rxtech-lab/argo-montecarlo/internal/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	schemaFileName       = "montecarlo-experiment-config.json"
	sampleConfigFileName = "montecarlo-experiment-config.yaml"
)

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Write the experiment JSON schema and a sample experiment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output directory",
				Value: "./config",
			},
		},
		Action: schemaAction,
	}
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	schemaPath, samplePath, err := writeSchema(cmd.String("out"))
	if err != nil {
		return err
	}

	w := output(cmd)
	fmt.Fprintf(w, "Schema written to %s\n", schemaPath)

	if samplePath != "" {
		fmt.Fprintf(w, "Sample experiment written to %s\n", samplePath)
	}

	return nil
}

// writeSchema writes the schema into dir and, if missing, a sample experiment
// pointing at it. samplePath is empty when the sample already existed.
func writeSchema(dir string) (schemaPath string, samplePath string, err error) {
	experiment := config.Default()

	schemaJSON, err := experiment.GenerateSchemaJSON()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate schema: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create directory: %w", err)
	}

	schemaPath = filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write schema to file: %w", err)
	}

	sampleConfigPath := filepath.Join(dir, sampleConfigFileName)
	if _, err := os.Stat(sampleConfigPath); !os.IsNotExist(err) {
		return schemaPath, "", nil
	}

	yamlBytes, err := yaml.Marshal(experiment)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal sample config to yaml: %w", err)
	}

	// yaml-language-server picks up the schema from this header.
	yamlBytes = append([]byte("# yaml-language-server: $schema="+schemaFileName+"\n"), yamlBytes...)

	if err := os.WriteFile(sampleConfigPath, yamlBytes, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write sample config to file: %w", err)
	}

	return schemaPath, sampleConfigPath, nil
}
