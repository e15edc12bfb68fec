package config

import (
	"os"

	"enron-fixtures/internal/models"

	"gopkg.in/yaml.v2"
)

// Default returns the configuration used when no config file is present.
func Default() *models.Config {
	return &models.Config{
		Employees: models.EmployeesConfig{
			Input:  "./employees.txt",
			Domain: "enron.com",
		},
		Messages: models.MessagesConfig{
			Input:  "./mongo-enron.csv",
			Output: "mongo-enron.json",
		},
	}
}

// Load reads the configuration from the specified YAML file and returns a
// Config struct. Fields left empty in the file keep their default values.
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, err
	}

	return config, nil
}
