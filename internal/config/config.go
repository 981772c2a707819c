package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Generator struct {
		LeadsPath    string `yaml:"leads_path"`
		TrackingPath string `yaml:"tracking_path"`
		OutputDir    string `yaml:"output_dir"`
		BatchSize    int    `yaml:"batch_size"`
	} `yaml:"generator"`

	Site struct {
		ContactEmail string `yaml:"contact_email"`
		Language     string `yaml:"language"`
	} `yaml:"site"`
}

// DefaultBatchSize bounds how many new pages one run may produce.
const DefaultBatchSize = 40

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
