package main

import (
	"time"

	"enron-fixtures/internal/config"
	"enron-fixtures/internal/employees"
	"enron-fixtures/internal/logging"
	"enron-fixtures/internal/messages"
	"enron-fixtures/internal/models"

	"github.com/spf13/cobra"
)

var (
	configPath string
	inputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "enronfix",
	Short: "Generate JSON test fixtures from an Enron email corpus export",
	Long: `Generate JSON test fixtures from an Enron email corpus export.

Available subcommands:
  employees - Convert the employee name list to a JSON array of addresses
  messages  - Convert the message header CSV to a JSON array of events`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// employeesCmd converts the tab-separated employee list
var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Convert the employee name list to a JSON array of addresses",
	RunE:  runEmployees,
}

// messagesCmd converts the mongo header-CSV export
var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Convert the message header CSV to a JSON array of events",
	RunE:  runMessages,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "input file, overrides the configured path")
	rootCmd.AddCommand(employeesCmd, messagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Log.Fatalf("Conversion failed: %v", err)
	}
}

// loadConfig returns the defaults unless a config file was supplied
func loadConfig() (*models.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func runEmployees(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := cfg.Employees.Input
	if inputPath != "" {
		input = inputPath
	}

	start := time.Now()
	converter := employees.NewConverter(cfg.Employees.Domain)
	outputPath, err := converter.Convert(input)
	if err != nil {
		return err
	}

	logging.Log.Infof("Employee fixture written to %s in %s", outputPath, time.Since(start))
	return nil
}

func runMessages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := cfg.Messages.Input
	if inputPath != "" {
		input = inputPath
	}

	start := time.Now()
	converter := messages.NewConverter(cfg.Messages.Output)
	outputPath, err := converter.Convert(input)
	if err != nil {
		return err
	}

	logging.Log.Infof("Message event fixture written to %s in %s", outputPath, time.Since(start))
	return nil
}
