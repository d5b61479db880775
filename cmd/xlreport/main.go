// Package main provides the CLI entry point for xlreport.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlreport-go/internal/config"
	"github.com/ukaji3/xlreport-go/internal/logging"
	"github.com/ukaji3/xlreport-go/pkg/xlreport"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/output"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/synth"
	"go.uber.org/zap"
)

var (
	configPath string
	jsonOutput bool
	pretty     bool
	outputPath string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlreport",
		Short: "Populate Excel templates with synthetic report rows",
		Long: `xlreport reads the header row of .xlsx templates, generates synthetic
customer/order rows and writes each report to a new timestamped workbook
next to its template. Templates are never modified.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console, json")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newInspectCommand())
	return rootCmd
}

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <template.xlsx> <rows> [<template.xlsx> <rows>...]",
		Short: "Generate one report per template/row-count pair",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runGenerate,
	}

	cmd.Flags().String("layout", string(xlreport.LayoutAppend), "Output layout: append (copy template) or fresh (new workbook)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks a random seed per request)")
	cmd.Flags().Int("years", synth.DefaultYearsBack, "Generated order dates lie within this many past years")
	cmd.Flags().Int("concurrency", 0, "Maximum reports generated at once (0 = unlimited)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the outcome summary as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLogger, err := logging.New(cfg.LoggerSettings())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer closeLogger()

	logger.Info("xlreport starting", zap.Int("arguments", len(args)))

	requests := xlreport.ParseRequests(args, logger)
	if len(requests) == 0 {
		return fmt.Errorf("no valid template/row-count pairs in arguments")
	}

	outcomes := xlreport.NewOrchestrator(cfg.Options(), logger).Run(requests)

	if jsonOutput {
		jsonData, err := output.ToJSON(output.Outcomes(outcomes), pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	} else {
		for _, o := range outcomes {
			if o.Success() {
				fmt.Fprintf(cmd.OutOrStdout(), "ok    %s -> %s\n", o.Request.TemplatePath, o.Artifact.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", o.Request.TemplatePath, o.Err)
			}
		}
	}

	failed := 0
	for _, o := range outcomes {
		if !o.Success() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d report(s) failed", failed, len(outcomes))
	}
	return nil
}

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <template.xlsx>",
		Short: "Print the header and rows of a template as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	schema, err := parser.ReadSchema(inputPath)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}
	sheet, err := parser.ReadSheet(inputPath)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(output.TemplateView{
		BookName: filepath.Base(inputPath),
		Columns:  schema,
		Sheet:    sheet,
	}, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
