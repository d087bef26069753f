package app

import (
	"errors"
	"fmt"
)

// Commands understood by App.Run.
const (
	CommandList     = "list"
	CommandDescribe = "describe"
	CommandStack    = "stack"
)

// Output formats for the describe command.
const (
	OutputJSON = "json"
	OutputHCL  = "hcl"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefinitionsPath string // hcl files with additional labware definitions

	LogFormat    string
	LogLevel     string
	OutputFormat string

	Command string
	Args    []string
}

// commandArity is the number of positional arguments each command takes.
var commandArity = map[string]int{
	CommandList:     0,
	CommandDescribe: 2,
	CommandStack:    4,
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		return nil, errors.New("a command is required")
	}
	arity, ok := commandArity[cfg.Command]
	if !ok {
		return nil, fmt.Errorf("unknown command '%s'", cfg.Command)
	}
	if len(cfg.Args) != arity {
		return nil, fmt.Errorf("command '%s' takes %d argument(s), got %d", cfg.Command, arity, len(cfg.Args))
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = OutputJSON
	case OutputJSON, OutputHCL:
	default:
		return nil, fmt.Errorf("unknown output format '%s'", cfg.OutputFormat)
	}

	return &cfg, nil
}
