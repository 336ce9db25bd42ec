package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/ujs"
)

// defaultConfigFile is read from the working directory if present.
const defaultConfigFile = ".ujs.yaml"

// options are the settings shared by the config file and the flags. A
// flag given on the command line wins over the file.
type options struct {
	Goal      string `yaml:"goal"`
	Pretty    bool   `yaml:"pretty"`
	Indent    bool   `yaml:"indent"`
	Locations bool   `yaml:"locations"`
	Workers   int    `yaml:"workers"`
}

// config returns the library configuration the options select.
func (o options) config() (*ujs.Config, error) {
	var goal ujs.Goal
	if o.Goal != "" {
		if err := goal.UnmarshalText([]byte(o.Goal)); err != nil {
			return nil, err
		}
	}
	return &ujs.Config{
		Goal:      goal,
		Pretty:    o.Pretty,
		Locations: o.Locations,
	}, nil
}

// loadOptions reads a config file. A missing file is only an error if
// it was named explicitly.
func loadOptions(fs afero.Fs, path string, explicit bool) (options, error) {
	var o options
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return o, nil
		}
		return o, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, errors.Wrapf(err, "parsing config %s", path)
	}
	return o, nil
}
