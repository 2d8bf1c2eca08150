package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

const ManifestFile = "manifest.yaml"

type Manifest struct {
	RunID         string        `yaml:"run_id"`
	Seed          int64         `yaml:"seed"`
	ReferenceDate string        `yaml:"reference_date"`
	Database      string        `yaml:"database"`
	Counts        ManifestCount `yaml:"counts"`
	Files         []string      `yaml:"files"`
}

type ManifestCount struct {
	Zones   int `yaml:"zones"`
	Assets  int `yaml:"assets"`
	Sensors int `yaml:"sensors"`
	Alerts  int `yaml:"alerts"`
}

func NewManifest(ds models.Dataset, dbPath string, files []string) Manifest {
	return Manifest{
		RunID:         ds.Run.ID,
		Seed:          ds.Run.Seed,
		ReferenceDate: ds.Run.ReferenceDate.Format(models.DateLayout),
		Database:      dbPath,
		Counts: ManifestCount{
			Zones:   len(ds.Zones),
			Assets:  len(ds.Assets),
			Sensors: len(ds.Sensors),
			Alerts:  len(ds.Alerts),
		},
		Files: files,
	}
}

func WriteManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("error writing manifest: %w", err)
	}
	return nil
}

func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error decoding manifest: %w", err)
	}
	return &m, nil
}
