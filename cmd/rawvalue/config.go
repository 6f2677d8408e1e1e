package main

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/serializer"
	"github.com/wippyai/rawvalue/types"
)

// Config is the YAML configuration file.
type Config struct {
	NullPolicy string       `yaml:"null_policy"`
	TimeZone   string       `yaml:"time_zone"`
	Enums      []EnumConfig `yaml:"enums"`
}

// EnumConfig declares an enum type by name.
type EnumConfig struct {
	Name    string         `yaml:"name"`
	Members []types.Member `yaml:"members"`
	Flags   bool           `yaml:"flags"`
}

// loadConfig reads path. An empty path yields an empty Config.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Detail("read config %s", path).
			Cause(err).
			Build()
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("decode config %s", path).
			Cause(err).
			Build()
	}
	return cfg, nil
}

// registry builds an enum registry holding the declared enums.
func (c *Config) registry() (*types.Registry, error) {
	reg := types.NewRegistry()
	for _, ec := range c.Enums {
		e, err := types.NewEnumType(ec.Name, ec.Flags, ec.Members...)
		if err != nil {
			return nil, err
		}
		if _, exists := reg.LookupName(e.Name); exists {
			return nil, errors.InvalidEnum(errors.PhaseConfig, e.Name, "declared twice")
		}
		if err := reg.Register(nil, e); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// options resolves serializer options from the file.
func (c *Config) options() (serializer.Options, error) {
	opts := serializer.DefaultOptions()

	policy, err := serializer.ParseNullPolicy(c.NullPolicy)
	if err != nil {
		return opts, err
	}
	opts.NullPolicy = policy

	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return opts, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Detail("unknown time zone %q", c.TimeZone).
				Cause(err).
				Build()
		}
		opts.Location = loc
	}
	return opts, nil
}
