/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the configuration of the command line tools.
//
// Values come, in decreasing precedence, from command line flags, DXSAGE_*
// environment variables, the configuration file and built-in defaults. Nested
// keys use an underscore in the environment: log.level is DXSAGE_LOG_LEVEL.
package config

import (
	stderrors "errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model/shape"
	"dirpx.dev/dxsage/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "DXSAGE"

// Payload directions accepted by Check.
const (
	DirectionInput  = "input"
	DirectionOutput = "output"
)

// Log configures the logger of a tool.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Target is one schema document and the directory its code is written to.
type Target struct {
	Schema string `mapstructure:"schema"`
	Output string `mapstructure:"output"`

	// Package, when set, must equal the package declared by the schema.
	Package string `mapstructure:"package"`
}

// Generate is the configuration of shapegen.
type Generate struct {
	// Header is the path of a file whose content starts every generated file.
	Header  string   `mapstructure:"header"`
	DryRun  bool     `mapstructure:"dry_run"`
	Targets []Target `mapstructure:"targets"`
	Log     Log      `mapstructure:"log"`
}

// Check is the configuration of shapecheck.
type Check struct {
	Operation string `mapstructure:"operation"`
	Direction string `mapstructure:"direction"`
	Mode      string `mapstructure:"mode"`
	Redact    bool   `mapstructure:"redact"`
	List      bool   `mapstructure:"list"`
	Log       Log    `mapstructure:"log"`

	// DecodeMode is Mode parsed by Validate.
	DecodeMode shape.DecodeMode `mapstructure:"-"`
}

func addLogFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", logging.FormatConsole, "log format: console or json")
}

// GenerateFlags registers the shapegen flags on fs.
func GenerateFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path of the shapegen configuration file")
	fs.Bool("dry-run", false, "list the files that would be generated without writing them")
	addLogFlags(fs)
}

// CheckFlags registers the shapecheck flags on fs.
func CheckFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "optional configuration file")
	fs.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	fs.String("operation", "", "operation name, for example DescribeTrainingJob")
	fs.String("direction", DirectionOutput, "payload direction: input or output")
	fs.String("mode", shape.LenientStr, "decode mode: lenient or strict")
	fs.Bool("redact", false, "render sensitive fields as [REDACTED] and skip the JSON output")
	fs.Bool("list", false, "list the known operations and exit")
	addLogFlags(fs)
}

// newViper returns a viper instance reading DXSAGE_* variables and bound to
// the flags of fs. keys maps configuration keys to flag names.
func newViper(fs *pflag.FlagSet, keys map[string]string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return v, nil
}

func readConfig(v *viper.Viper, fs *pflag.FlagSet, required bool) (string, error) {
	path, err := fs.GetString("config")
	if err != nil {
		return "", err
	}
	if path == "" {
		if required {
			return "", fmt.Errorf("config: --config is required")
		}
		return "", nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read config %s: %w", path, err)
	}
	return path, nil
}

// LoadGenerate loads the shapegen configuration. Relative schema, output and
// header paths are resolved against the directory of the configuration file.
func LoadGenerate(fs *pflag.FlagSet) (*Generate, error) {
	v, err := newViper(fs, map[string]string{
		"dry_run":    "dry-run",
		"log.level":  "log-level",
		"log.format": "log-format",
	})
	if err != nil {
		return nil, err
	}
	path, err := readConfig(v, fs, true)
	if err != nil {
		return nil, err
	}

	var cfg Generate
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.resolve(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Generate) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Header = abs(c.Header)
	for i := range c.Targets {
		c.Targets[i].Schema = abs(c.Targets[i].Schema)
		c.Targets[i].Output = abs(c.Targets[i].Output)
	}
}

func invalid(typ, field, rule, reason string) error {
	return &errors.ValidationError{Type: typ, Field: field, Rule: rule, Reason: reason}
}

func validateLog(typ string, l Log) error {
	var err error
	if _, perr := zapcore.ParseLevel(l.Level); perr != nil {
		err = multierr.Append(err, invalid(typ, "Log.Level", "enum", fmt.Sprintf("unknown level %q", l.Level)))
	}
	switch l.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		err = multierr.Append(err, invalid(typ, "Log.Format", "enum", fmt.Sprintf("unknown format %q", l.Format)))
	}
	return err
}

// Validate reports every problem of the configuration.
func (c *Generate) Validate() error {
	err := validateLog("Generate", c.Log)
	if len(c.Targets) == 0 {
		err = multierr.Append(err, invalid("Generate", "Targets", "required", "at least one target is needed"))
	}
	for i, t := range c.Targets {
		field := fmt.Sprintf("Targets[%d]", i)
		if t.Schema == "" {
			err = multierr.Append(err, invalid("Generate", field+".Schema", "required", "must be set"))
		}
		if t.Output == "" {
			err = multierr.Append(err, invalid("Generate", field+".Output", "required", "must be set"))
		}
		if t.Package != "" && !token.IsIdentifier(t.Package) {
			err = multierr.Append(err, invalid("Generate", field+".Package", "identifier",
				fmt.Sprintf("%q is not a Go identifier", t.Package)))
		}
	}
	return err
}

// ReadHeader returns the content of the header file, or "" when none is
// configured.
func (c *Generate) ReadHeader() (string, error) {
	if c.Header == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.Header)
	if err != nil {
		return "", fmt.Errorf("read header: %w", err)
	}
	return string(data), nil
}

// LoadCheck loads the shapecheck configuration. The dotenv file named by
// --env-file is loaded first when it exists; variables already present in the
// environment win over it.
func LoadCheck(fs *pflag.FlagSet) (*Check, error) {
	envFile, err := fs.GetString("env-file")
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v, err := newViper(fs, map[string]string{
		"operation":  "operation",
		"direction":  "direction",
		"mode":       "mode",
		"redact":     "redact",
		"list":       "list",
		"log.level":  "log-level",
		"log.format": "log-format",
	})
	if err != nil {
		return nil, err
	}
	if _, err := readConfig(v, fs, false); err != nil {
		return nil, err
	}

	var cfg Check
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem of the configuration and sets DecodeMode.
func (c *Check) Validate() error {
	err := validateLog("Check", c.Log)

	mode, perr := shape.ParseDecodeMode(c.Mode)
	if perr != nil {
		err = multierr.Append(err, invalid("Check", "Mode", "enum", fmt.Sprintf("unknown mode %q", c.Mode)))
	}
	c.DecodeMode = mode

	if c.List {
		return err
	}
	if c.Operation == "" {
		err = multierr.Append(err, invalid("Check", "Operation", "required", "must be set"))
	}
	switch c.Direction {
	case DirectionInput, DirectionOutput:
	default:
		err = multierr.Append(err, invalid("Check", "Direction", "enum",
			fmt.Sprintf("%q is neither %s nor %s", c.Direction, DirectionInput, DirectionOutput)))
	}
	return err
}
