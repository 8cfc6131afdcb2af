package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ResourceSeed is one bookable resource as declared in the seed file.
// Resources are defined once at process start and never mutated by bookings.
type ResourceSeed struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Type            string `yaml:"type"`
	Description     string `yaml:"description,omitempty"`
	MaxBookingHours int    `yaml:"max_booking_hours,omitempty"`
}

type resourceSeedFile struct {
	Resources []ResourceSeed `yaml:"resources"`
}

// LoadResourceSeeds reads the resource catalog from the YAML file at path.
// An empty path yields the built-in default catalog.
func LoadResourceSeeds(path string, defaultVehicleHours int) ([]ResourceSeed, error) {
	if path == "" {
		return defaultResourceSeeds(defaultVehicleHours), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource seed file %s: %w", path, err)
	}

	var file resourceSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse resource seed file %s: %w", path, err)
	}
	if len(file.Resources) == 0 {
		return nil, fmt.Errorf("resource seed file %s declares no resources", path)
	}

	for i, seed := range file.Resources {
		if seed.ID == "" || seed.Name == "" {
			return nil, fmt.Errorf("resource seed entry %d is missing id or name", i)
		}
		if seed.Type == "vehicle" && seed.MaxBookingHours == 0 {
			file.Resources[i].MaxBookingHours = defaultVehicleHours
		}
	}

	return file.Resources, nil
}

func defaultResourceSeeds(vehicleHours int) []ResourceSeed {
	return []ResourceSeed{
		{ID: "room-1", Name: "Sala 1", Type: "room"},
		{ID: "room-2", Name: "Sala 2", Type: "room"},
		{ID: "room-3", Name: "Sala 3", Type: "room"},
		{ID: "vehicle-1", Name: "Chevrolet Cobalt", Type: "vehicle", MaxBookingHours: vehicleHours},
	}
}
