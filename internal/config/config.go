package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Editor holds all configuration for the enemy table editor.
type Editor struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	Tables TablesConfig `yaml:"tables"`

	// Database is used by the export command only.
	Database DatabaseConfig `yaml:"database"`

	// ForceSave overwrites the enemy table even if it changed on disk since load.
	ForceSave bool `yaml:"force_save"`
}

// TablesConfig locates the game data tables. Relative file names are
// resolved against Dir.
type TablesConfig struct {
	Dir        string `yaml:"dir"`
	Enemies    string `yaml:"enemies"`
	EnemyNames string `yaml:"enemy_names"`
	ItemNames  string `yaml:"item_names"`
}

// Path resolves a table file name against Dir.
func (t TablesConfig) Path(name string) string {
	if filepath.IsAbs(name) || t.Dir == "" {
		return name
	}
	return filepath.Join(t.Dir, name)
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultEditor returns Editor config with sensible defaults.
func DefaultEditor() Editor {
	return Editor{
		LogLevel: "info",
		Tables: TablesConfig{
			Dir:        "data",
			Enemies:    "enemytable.tbl",
			EnemyNames: "enemynametable.tbl",
			ItemNames:  "useitemnametable.tbl",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "enemyedit",
			Password: "enemyedit",
			DBName:   "enemyedit",
			SSLMode:  "disable",
		},
	}
}

// LoadEditor loads editor config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEditor(path string) (Editor, error) {
	cfg := DefaultEditor()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
