package refresher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railboard/railboard/pkg/refresher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoutesFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestLoadRoutes(t *testing.T) {
	path := writeRoutesFile(t, `
routes:
  - stations: [NYP, NWK, PHL]
  - stations:
      - BOS
      - PVD
`)

	routes, err := refresher.LoadRoutes(path)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"NYP", "NWK", "PHL"},
		{"BOS", "PVD"},
	}, routes)
}

func TestLoadRoutesRejectsShortRoute(t *testing.T) {
	path := writeRoutesFile(t, `
routes:
  - stations: [NYP]
`)

	_, err := refresher.LoadRoutes(path)
	assert.Error(t, err)
}

func TestLoadRoutesMissingFile(t *testing.T) {
	_, err := refresher.LoadRoutes(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
