package cmd

import (
	"errors"
	"os"
	"path"

	"github.com/vippsas/textscan"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// named syntax definitions usable with `extract --syntax <name>`
	Syntaxes map[string]textscan.SyntaxConfig `yaml:"syntaxes"`
}

func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "textscan.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, errors.New("no textscan.yaml found in the target directory")
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(yamlFile, &result)
	if err != nil {
		return Config{}, err
	}
	return result, nil
}

func (c Config) Syntax(name string) (*textscan.Syntax, error) {
	cfg, ok := c.Syntaxes[name]
	if !ok {
		return nil, errors.New("syntax " + name + " not present in configuration file")
	}
	syn, err := cfg.Syntax()
	if err != nil {
		return nil, err
	}
	return &syn, nil
}
