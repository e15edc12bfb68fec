package models

// Config represents the application configuration
type Config struct {
	Employees EmployeesConfig `yaml:"employees"`
	Messages  MessagesConfig  `yaml:"messages"`
}

// EmployeesConfig configures the employee list conversion
type EmployeesConfig struct {
	Input  string `yaml:"input"`
	Domain string `yaml:"domain"`
}

// MessagesConfig configures the message header CSV conversion
type MessagesConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}
