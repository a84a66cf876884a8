package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RenTrieu/Ares/internal/types"
)

// fileConfig is the on-disk YAML shape a user's ares.yaml config file
// takes. Parsing a config file is explicitly out of core scope (spec
// §1, §10.3): the core accepts an opaque types.Configuration value, and
// this CLI is the only thing that knows how to read YAML into one.
type fileConfig struct {
	HumanCheckerOn bool     `yaml:"human_checker_on"`
	APIMode        bool     `yaml:"api_mode"`
	Sensitivity    string   `yaml:"sensitivity"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Offline        bool     `yaml:"offline"`
	RegexList      []string `yaml:"regex_list"`
	MaxDepth       int      `yaml:"max_depth"`
	MaxQueueSize   int      `yaml:"max_queue_size"`
	Workers        int      `yaml:"workers"`
}

// loadConfigFile reads and parses path into a types.Configuration. A
// missing file is not an error: it yields the zero Configuration, which
// Engine.New's WithDefaults call fills in.
func loadConfigFile(path string) (types.Configuration, error) {
	if path == "" {
		return types.Configuration{}, nil
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return types.Configuration{}, nil
	}
	if err != nil {
		return types.Configuration{}, fmt.Errorf("arescli: read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return types.Configuration{}, fmt.Errorf("arescli: parse config: %w", err)
	}

	sensitivity, _ := types.ParseSensitivity(fc.Sensitivity)
	return types.Configuration{
		HumanCheckerOn: fc.HumanCheckerOn,
		APIMode:        fc.APIMode,
		Sensitivity:    sensitivity,
		Timeout:        time.Duration(fc.TimeoutSeconds) * time.Second,
		Offline:        fc.Offline,
		RegexList:      fc.RegexList,
		MaxDepth:       fc.MaxDepth,
		MaxQueueSize:   fc.MaxQueueSize,
		Workers:        fc.Workers,
	}, nil
}
