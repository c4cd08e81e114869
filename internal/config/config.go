package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config holds user settings.
type Config struct {
	AngleMode    string `yaml:"angle_mode" json:"angle_mode" validate:"required,oneof=deg rad"`
	Locale       string `yaml:"locale" json:"locale" validate:"required"`
	HistoryLimit int    `yaml:"history_limit" json:"history_limit" validate:"gte=0,lte=10000"`
	Prompt       string `yaml:"prompt" json:"prompt" validate:"max=16"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AngleMode:    "deg",
		Locale:       "en",
		HistoryLimit: 100,
		Prompt:       "> ",
	}
}

// Loader reads configuration files from a file system.
type Loader struct {
	fs        afero.Fs
	ctx       *cue.Context
	schema    cue.Value
	validator *validator.Validate
}

// NewLoader creates a loader over fs.
func NewLoader(fs afero.Fs) *Loader {
	ctx := cuecontext.New()
	return &Loader{
		fs:        fs,
		ctx:       ctx,
		schema:    ctx.CompileString(schemaCUE, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config")),
		validator: validator.New(),
	}
}

// Load reads path, applies it over Default and validates the result.
func (l *Loader) Load(path string) (Config, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		err = l.decodeYAML(data, &cfg)
	case ".cue":
		err = l.decodeCUE(path, data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q (want .yaml, .yml or .cue)", ext)
	}
	if err != nil {
		return Config{}, err
	}

	if err := l.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the schema and struct rules.
func (l *Loader) Validate(cfg Config) error {
	if err := l.checkSchema(l.ctx.Encode(cfg)); err != nil {
		return err
	}
	if err := l.validator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("invalid config: locale %q: %w", cfg.Locale, err)
	}
	return nil
}

func (l *Loader) decodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (l *Loader) decodeCUE(path string, data []byte, cfg *Config) error {
	v := l.ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return fmt.Errorf("failed to parse CUE: %w", err)
	}
	if err := l.checkSchema(v); err != nil {
		return err
	}
	if err := v.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode CUE: %w", err)
	}
	return nil
}

func (l *Loader) checkSchema(v cue.Value) error {
	unified := l.schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
