// Package config loads the tour's inputs and connection settings.
//
// Every field has a default, so running without a config file reproduces
// the stock tour. A YAML file overlays the defaults; the result is checked
// against an embedded CUE schema before use.
//
// # File Format
//
//	tour:
//	  name: John
//	  greet: Alice
//	  age: 25
//	  height: 5.9
//	  student: true
//	  grade: A
//	  fruits: [Apple, Banana, Cherry]
//	  colors: [Red, Green, Blue]
//	work_dir: /tmp/primer
//	database:
//	  driver: sqlite3   # or "sqlite" for the pure-Go driver
//	  dir: /tmp/primer  # defaults to work_dir
//	  host: localhost
//	  user: root
//	  password: ""
//	  name: tutorial
//	serve:
//	  addr: ":8080"
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config is the full set of settings.
type Config struct {
	Tour     TourConfig     `yaml:"tour" json:"tour"`
	WorkDir  string         `yaml:"work_dir" json:"work_dir"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Serve    ServeConfig    `yaml:"serve" json:"serve"`
}

// TourConfig holds the literal inputs the lessons print.
type TourConfig struct {
	Name    string   `yaml:"name" json:"name"`
	Greet   string   `yaml:"greet" json:"greet"`
	Age     int      `yaml:"age" json:"age"`
	Height  float64  `yaml:"height" json:"height"`
	Student bool     `yaml:"student" json:"student"`
	Grade   string   `yaml:"grade" json:"grade"`
	Fruits  []string `yaml:"fruits" json:"fruits"`
	Colors  []string `yaml:"colors" json:"colors"`
}

// DatabaseConfig holds the connection parameters for the database lesson.
type DatabaseConfig struct {
	Driver   string `yaml:"driver" json:"driver"`
	Dir      string `yaml:"dir" json:"dir"`
	Host     string `yaml:"host" json:"host"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`
	Name     string `yaml:"name" json:"name"`
}

// ServeConfig holds the web form server settings.
type ServeConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Tour: TourConfig{
			Name:    "John",
			Greet:   "Alice",
			Age:     25,
			Height:  5.9,
			Student: true,
			Grade:   "A",
			Fruits:  []string{"Apple", "Banana", "Cherry"},
			Colors:  []string{"Red", "Green", "Blue"},
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			Host:   "localhost",
			User:   "root",
			Name:   "tutorial",
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, Validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against the embedded schema.
func Validate(cfg Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	v := ctx.Encode(cfg)
	if err := v.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := schema.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DatabaseDir is where database files live: Database.Dir if set, WorkDir
// otherwise.
func (c Config) DatabaseDir() string {
	if c.Database.Dir != "" {
		return c.Database.Dir
	}
	return c.WorkDir
}
