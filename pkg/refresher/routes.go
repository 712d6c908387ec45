package refresher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type routesFile struct {
	Routes []struct {
		Stations []string `yaml:"stations"`
	} `yaml:"routes"`
}

// LoadRoutes reads a YAML file of station corridors to keep warm, so the
// first viewer of a known route never waits on a cold fetch.
//
//	routes:
//	  - stations: [NYP, NWK, PHL]
func LoadRoutes(path string) ([][]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed routesFile
	if err := yaml.Unmarshal(contents, &parsed); err != nil {
		return nil, fmt.Errorf("parsing routes file %s: %w", path, err)
	}

	var routes [][]string
	for index, route := range parsed.Routes {
		if len(route.Stations) < 2 {
			return nil, fmt.Errorf("route %d in %s needs at least two stations", index, path)
		}

		routes = append(routes, route.Stations)
	}

	return routes, nil
}
