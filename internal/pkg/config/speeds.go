package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"route-service/internal/entities"
)

type speedsFile struct {
	Speeds map[string]float64 `yaml:"speeds_kmh"`
}

// LoadVehicleSpeeds читает таблицу скоростей из YAML:
//
//	speeds_kmh:
//	  walk: 5
//	  car: 40
//
// Пустой путь означает скорости по умолчанию (nil).
func LoadVehicleSpeeds(path string) (map[entities.VehicleClass]float64, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read speeds file: %w", err)
	}

	var file speedsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse speeds file %s: %w", path, err)
	}

	speeds := make(map[entities.VehicleClass]float64, len(file.Speeds))
	for name, kmh := range file.Speeds {
		class := entities.VehicleClass(name)
		if !class.IsValid() {
			return nil, fmt.Errorf("unknown vehicle class %q in %s", name, path)
		}
		if kmh <= 0 {
			return nil, fmt.Errorf("speed for %q must be positive, got %v", name, kmh)
		}
		speeds[class] = kmh
	}
	return speeds, nil
}
