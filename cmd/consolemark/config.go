package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the content of a YAML configuration file:
//
//	method: warn
//	output: term
//	color: always
//	stylesheets:
//	  - styles/console.css
type fileConfig struct {
	Method      string   `yaml:"method,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Color       string   `yaml:"color,omitempty"`
	Stylesheets []string `yaml:"stylesheets,omitempty"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}
