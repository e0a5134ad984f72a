// Package config defines the data structures related to configuration and
// includes functions for loading the config and turning it into projection
// parameters.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/internal/store"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PARCEL_PROJECTION_UFCONVERSION.
const EnvPrefix = "PARCEL"

// Configuration holds all configuration for parcel-projection.
type Configuration struct {
	Logging    LoggingConfig         `yaml:"logging,omitempty" mapstructure:"logging"`
	Output     OutputConfig          `yaml:"output,omitempty" mapstructure:"output"`
	Projection ProjectionConfig      `yaml:"projection,omitempty" mapstructure:"projection"`
	Stations   []store.InsertStation `yaml:"stations,omitempty" mapstructure:"stations"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv
}

// ProjectionConfig overrides the projection calibration. Zero values keep
// the published defaults.
type ProjectionConfig struct {
	UFConversion       float64               `yaml:"ufConversion,omitempty" mapstructure:"ufConversion"`
	BaseInvestment     float64               `yaml:"baseInvestment,omitempty" mapstructure:"baseInvestment"`
	CalibrationParcels int                   `yaml:"calibrationParcels,omitempty" mapstructure:"calibrationParcels"`
	HorizonMonths      int                   `yaml:"horizonMonths,omitempty" mapstructure:"horizonMonths"`
	OperatorShare      float64               `yaml:"operatorShare,omitempty" mapstructure:"operatorShare"`
	InvestorShare      float64               `yaml:"investorShare,omitempty" mapstructure:"investorShare"`
	IRRMode            string                `yaml:"irrMode,omitempty" mapstructure:"irrMode"`
	IRRTable           []projection.IRRPoint `yaml:"irrTable,omitempty" mapstructure:"irrTable"`
	IRRDefault         float64               `yaml:"irrDefault,omitempty" mapstructure:"irrDefault"`
	Solver             SolverConfig          `yaml:"solver,omitempty" mapstructure:"solver"`
}

// SolverConfig tunes the numerical IRR solve.
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations int     `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ProjectionParams merges the projection overrides onto the defaults and
// validates the result.
func (c *Configuration) ProjectionParams() (projection.Params, error) {
	params := projection.DefaultParams()
	p := c.Projection

	if p.UFConversion != 0 {
		params.UFConversion = p.UFConversion
	}
	if p.BaseInvestment != 0 {
		params.BaseInvestment = p.BaseInvestment
	}
	if p.CalibrationParcels != 0 {
		params.CalibrationParcels = p.CalibrationParcels
	}
	if p.HorizonMonths != 0 {
		params.HorizonMonths = p.HorizonMonths
	}
	if p.OperatorShare != 0 {
		params.OperatorShare = p.OperatorShare
	}
	if p.InvestorShare != 0 {
		params.InvestorShare = p.InvestorShare
	}
	if len(p.IRRTable) > 0 {
		params.IRRTable = append([]projection.IRRPoint(nil), p.IRRTable...)
	}
	if p.IRRDefault != 0 {
		params.IRRDefault = p.IRRDefault
	}
	if p.Solver.Tolerance != 0 {
		params.SolverTolerance = p.Solver.Tolerance
	}
	if p.Solver.MaxIterations != 0 {
		params.SolverMaxIterations = p.Solver.MaxIterations
	}

	mode, err := projection.ParseIRRMode(p.IRRMode)
	if err != nil {
		return projection.Params{}, err
	}
	if mode != "" {
		params.DefaultIRRMode = mode
	}

	if err := params.Validate(); err != nil {
		return projection.Params{}, err
	}
	return params, nil
}

// SeedStations returns the configured station catalogue, falling back to the
// built-in one.
func (c *Configuration) SeedStations() []store.InsertStation {
	if len(c.Stations) == 0 {
		return store.DefaultStations()
	}
	return append([]store.InsertStation(nil), c.Stations...)
}
