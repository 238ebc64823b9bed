// Package config provides configuration management for the reasoner.
//
// Configuration can be loaded from multiple sources (in order of precedence):
// 1. Environment variables, prefix NARS_ (highest priority)
// 2. Configuration file (JSON or YAML)
// 3. Default values (lowest priority)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/reasoner"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"
)

// Config is the complete reasoner configuration.
type Config struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// EngineConfig holds the tunable work-cycle parameters (§4, §9).
type EngineConfig struct {
	// ConceptCapacity bounds the number of concepts memory retains.
	ConceptCapacity int `json:"concept_capacity" yaml:"concept_capacity"`

	// NovelTaskCapacity bounds the task buffer's overflow bag.
	NovelTaskCapacity int `json:"novel_task_capacity" yaml:"novel_task_capacity"`

	// TermLinksPerCycle is K, the number of term-links drawn per firing.
	TermLinksPerCycle int `json:"term_links_per_cycle" yaml:"term_links_per_cycle"`

	// StampMaxLength is L, the evidential-base length bound.
	StampMaxLength int `json:"stamp_max_length" yaml:"stamp_max_length"`

	// BudgetThreshold is the minimum budget summary a derived task needs
	// to survive DerivedTask filtering.
	BudgetThreshold float64 `json:"budget_threshold" yaml:"budget_threshold"`

	// AdmissionThreshold is the judgement-expectation floor for novel-bag
	// admission.
	AdmissionThreshold float64 `json:"admission_threshold" yaml:"admission_threshold"`

	// Volume is the 0-100 verbosity dial controlling the OUT silence
	// threshold (VOL, §6.2).
	Volume int `json:"volume" yaml:"volume"`
}

// StorageConfig selects and configures the SAV/LOA backend.
type StorageConfig struct {
	// Type is "memory" or "sqlite".
	Type string `json:"type" yaml:"type"`

	// SQLitePath is the database file used when Type is "sqlite".
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`

	// Neo4jURI, if set, enables best-effort concept-network export. Empty
	// disables it.
	Neo4jURI      string `json:"neo4j_uri" yaml:"neo4j_uri"`
	Neo4jUsername string `json:"neo4j_username" yaml:"neo4j_username"`
	Neo4jPassword string `json:"neo4j_password" yaml:"neo4j_password"`
	Neo4jDatabase string `json:"neo4j_database" yaml:"neo4j_database"`
}

// LoggingConfig controls the standard-library logger's behavior.
type LoggingConfig struct {
	// Debug enables log.Lshortfile-style verbose flags.
	Debug bool `json:"debug" yaml:"debug"`
}

// Default returns the configuration used when nothing overrides it,
// matching internal/reasoner.Default()'s own constants so the two stay in
// sync when no env/file overlay is present.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			ConceptCapacity:    10000,
			NovelTaskCapacity:  1000,
			TermLinksPerCycle:  3,
			StampMaxLength:     8,
			BudgetThreshold:    0.01,
			AdmissionThreshold: 0.6,
			Volume:             100,
		},
		Storage: StorageConfig{
			Type: "memory",
		},
		Logging: LoggingConfig{
			Debug: false,
		},
	}
}

// Load builds a Config from defaults overlaid with environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("config: load from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromFile builds a Config from defaults, a JSON or YAML file
// (by extension), then an environment overlay — the same env > file >
// default precedence as Load.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse json %q: %w", path, err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("config: load from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromEnv overlays NARS_-prefixed environment variables onto c.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("NARS_ENGINE_CONCEPT_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_CONCEPT_CAPACITY: %w", err)
		}
		c.Engine.ConceptCapacity = n
	}
	if v := os.Getenv("NARS_ENGINE_NOVEL_TASK_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_NOVEL_TASK_CAPACITY: %w", err)
		}
		c.Engine.NovelTaskCapacity = n
	}
	if v := os.Getenv("NARS_ENGINE_TERM_LINKS_PER_CYCLE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_TERM_LINKS_PER_CYCLE: %w", err)
		}
		c.Engine.TermLinksPerCycle = n
	}
	if v := os.Getenv("NARS_ENGINE_STAMP_MAX_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_STAMP_MAX_LENGTH: %w", err)
		}
		c.Engine.StampMaxLength = n
	}
	if v := os.Getenv("NARS_ENGINE_BUDGET_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_BUDGET_THRESHOLD: %w", err)
		}
		c.Engine.BudgetThreshold = f
	}
	if v := os.Getenv("NARS_ENGINE_ADMISSION_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_ADMISSION_THRESHOLD: %w", err)
		}
		c.Engine.AdmissionThreshold = f
	}
	if v := os.Getenv("NARS_ENGINE_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARS_ENGINE_VOLUME: %w", err)
		}
		c.Engine.Volume = n
	}
	if v := os.Getenv("NARS_STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("NARS_STORAGE_SQLITE_PATH"); v != "" {
		c.Storage.SQLitePath = v
	}
	if v := os.Getenv("NARS_STORAGE_NEO4J_URI"); v != "" {
		c.Storage.Neo4jURI = v
	}
	if v := os.Getenv("NARS_STORAGE_NEO4J_USERNAME"); v != "" {
		c.Storage.Neo4jUsername = v
	}
	if v := os.Getenv("NARS_STORAGE_NEO4J_PASSWORD"); v != "" {
		c.Storage.Neo4jPassword = v
	}
	if v := os.Getenv("NARS_STORAGE_NEO4J_DATABASE"); v != "" {
		c.Storage.Neo4jDatabase = v
	}
	if v := os.Getenv("NARS_LOGGING_DEBUG"); v != "" {
		c.Logging.Debug = parseBool(v)
	}
	return nil
}

// Validate rejects a Config whose values would break an engine invariant.
func (c *Config) Validate() error {
	if c.Engine.ConceptCapacity <= 0 {
		return fmt.Errorf("engine.concept_capacity must be > 0")
	}
	if c.Engine.NovelTaskCapacity <= 0 {
		return fmt.Errorf("engine.novel_task_capacity must be > 0")
	}
	if c.Engine.TermLinksPerCycle <= 0 {
		return fmt.Errorf("engine.term_links_per_cycle must be > 0")
	}
	if c.Engine.StampMaxLength <= 0 {
		return fmt.Errorf("engine.stamp_max_length must be > 0")
	}
	if c.Engine.BudgetThreshold < 0 || c.Engine.BudgetThreshold > 1 {
		return fmt.Errorf("engine.budget_threshold must be in [0,1]")
	}
	if c.Engine.AdmissionThreshold < 0 || c.Engine.AdmissionThreshold > 1 {
		return fmt.Errorf("engine.admission_threshold must be in [0,1]")
	}
	if c.Engine.Volume < 0 || c.Engine.Volume > 100 {
		return fmt.Errorf("engine.volume must be in [0,100]")
	}
	if c.Storage.Type != "memory" && c.Storage.Type != "sqlite" {
		return fmt.Errorf("storage.type must be 'memory' or 'sqlite'")
	}
	if c.Storage.Type == "sqlite" && c.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required when storage.type is 'sqlite'")
	}
	return nil
}

// ToParameters converts the engine section into reasoner.Parameters,
// starting from reasoner.Default() for the fields this config does not
// expose (default judgement/task-priority constants) so the two stay in
// sync without duplicating them here.
func (c *Config) ToParameters() reasoner.Parameters {
	p := reasoner.Default()
	p.ConceptCapacity = c.Engine.ConceptCapacity
	p.NovelTaskCapacity = c.Engine.NovelTaskCapacity
	p.TermLinksPerCycle = c.Engine.TermLinksPerCycle
	p.MaxStampLength = c.Engine.StampMaxLength
	p.BudgetThreshold = numeric.NewUF(c.Engine.BudgetThreshold)
	p.AdmissionThreshold = c.Engine.AdmissionThreshold
	p.Volume = c.Engine.Volume
	return p
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on" || s == "enabled"
}
