package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/railboard/railboard/pkg/amtraker"
	"github.com/railboard/railboard/pkg/api"
	"github.com/railboard/railboard/pkg/traincache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, path string) *http.Response {
	t.Helper()

	webApp := api.SetupServer(traincache.Setup(amtraker.NewClient()))

	response, err := webApp.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	return response
}

func TestAPIVersion(t *testing.T) {
	response := request(t, "/version")
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))

	assert.Equal(t, "v0.1", body["version"])
}

func TestRenderTimelineNeedsTwoStations(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, request(t, "/trains?stations=NYP").StatusCode)
	assert.Equal(t, http.StatusBadRequest, request(t, "/trains").StatusCode)
	assert.Equal(t, http.StatusBadRequest, request(t, "/trains/NYP").StatusCode)
}

func TestRenderTimelineRejectsBadBuffers(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, request(t, "/trains?stations=NYP,NWK&buffer_before=abc").StatusCode)
	assert.Equal(t, http.StatusBadRequest, request(t, "/trains?stations=NYP,NWK&buffer_after=-5").StatusCode)
}

func TestGetDocumentNeedsTwoStations(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, request(t, "/document?stations=NYP").StatusCode)
}
