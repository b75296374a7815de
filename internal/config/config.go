package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

// Snippet is a user defined template. The {selection} token inside
// Template is replaced with the selected text on insertion.
type Snippet struct {
	Enabled  bool   `yaml:"enabled"`
	Label    string `yaml:"label"`
	Template string `yaml:"template"`
}

type Config struct {
	Heading  int       `yaml:"heading"`  // default heading level, 1..6
	Theme    string    `yaml:"theme"`    // chroma style name for the tui
	Listen   string    `yaml:"listen"`   // server listen address
	Snippets []Snippet `yaml:"snippets"`
}

var DefaultConfig = Config{
	Heading: 3,
	Theme:   "monokai",
	Listen:  ":8080",
	Snippets: []Snippet{
		{ Enabled: true, Label: "details", Template: "<details>\n<summary>Summary</summary>\n\n{selection}\n\n</details>" },
	},
}

func GetConfig() Config {
	conf := DefaultConfig

	conffilename, exists := os.LookupEnv("MDGO_CONF")
	if !exists { conffilename = "config.yaml" }

	data, err := os.ReadFile(conffilename)
	if err != nil { return conf }

	var yamlConfig Config
	err = yaml.Unmarshal(data, &yamlConfig)
	if err != nil { return conf } // malformed config falls back to defaults

	if yamlConfig.Heading != 0 { conf.Heading = yamlConfig.Heading }
	if conf.Heading < 1 || conf.Heading > 6 { conf.Heading = DefaultConfig.Heading }
	if yamlConfig.Theme != "" { conf.Theme = yamlConfig.Theme }
	if yamlConfig.Listen != "" { conf.Listen = yamlConfig.Listen }
	if yamlConfig.Snippets != nil { conf.Snippets = yamlConfig.Snippets }

	return conf
}

// EnabledSnippets filters out disabled entries, keeping order.
func (c Config) EnabledSnippets() []Snippet {
	var enabled []Snippet
	for _, s := range c.Snippets {
		if s.Enabled { enabled = append(enabled, s) }
	}
	return enabled
}
