package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/orayew2002/rast-html/config"
	"github.com/orayew2002/rast-html/sample"
)

const defaultMemberCount = 40

// NewSampleCmd creates the sample command.
func NewSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a demo workbook to build reports from",
		Long: `Sample writes a workbook with a random parliament roster (country, chamber,
party, committee, name, district, since). With --config it also writes a
report file grouping the roster by country, chamber and party, described by
committee.

Examples:
  rast-html sample -o roster.xlsx
  rast-html sample -o roster.xlsx --config .rast-html.yaml
  rast-html build`,
		Args: cobra.NoArgs,
		RunE: runSampleCmd,
	}

	cmd.Flags().StringP("output", "o", "sample.xlsx", "Workbook path")
	cmd.Flags().IntP("count", "n", defaultMemberCount, "Number of members")
	cmd.Flags().String("config", "", "Also write a report file for the workbook to this path")

	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	count, _ := cmd.Flags().GetInt("count")
	configPath, _ := cmd.Flags().GetString("config")

	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	logger := loggerFrom(cmd.Context())

	members := sample.GenerateMembers(count)
	if err := sample.WriteToFile(members, output); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Debug("sample written", zap.String("path", output), zap.Int("members", count))
	fmt.Fprintln(cmd.OutOrStdout(), "done:", output)

	if configPath == "" {
		return nil
	}
	if err := writeSampleConfig(configPath, output); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "done:", configPath)
	return nil
}

// sampleReport groups the roster by country, chamber and party and
// describes each table by committee.
func sampleReport(input string) config.Report {
	return config.Report{
		Name:    "roster",
		Input:   input,
		Sheet:   sample.SheetName,
		Levels:  []string{"A", "B", "C", "D"},
		Sort:    []string{"A", "B", "C", "D", "E"},
		Columns: []string{"E", "F", "G"},
		Output:  "roster.html",
		Format:  config.DefaultFormat,
		Title:   "Parliament roster",
	}
}

func writeSampleConfig(path, workbook string) error {
	// Paths in a report file are relative to the file itself.
	input, err := filepath.Rel(filepath.Dir(absPath(path)), absPath(workbook))
	if err != nil {
		input = absPath(workbook)
	}

	data, err := yaml.Marshal(config.File{Reports: []config.Report{sampleReport(input)}})
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
