// Common test helpers
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/config"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
	"github.com/vivuhq/vivu/validation"
)

type testCase struct {
	name           string
	queryParams    map[string]string
	expectedStatus int
	checkData      func(assert *require.Assertions, data map[string]any)
}

func newTestLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard)
}

func setupTestServer(t *testing.T, assert *require.Assertions) *gin.Engine {
	tempDir := t.TempDir()
	t.Setenv("ENV", "test")
	t.Setenv("DATA_PATH", tempDir)

	for fileName, content := range testCatalogFiles {
		err := os.WriteFile(filepath.Join(tempDir, fileName), []byte(content), 0644)
		assert.NoError(err, "could not write test catalog file")
	}

	cfg, err := config.Load()
	assert.NoError(err, "could not load config")

	testLogger := newTestLogger()

	source := catalog.NewFileSource(testLogger, cfg.GetDataPath())
	loader := catalog.NewLoader(testLogger, source)
	service := search.New(testLogger, loader, search.NewResultCache(), cfg.GetLocale())

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupSearch(router, testLogger, service, validator)
	SetupSuggest(router, testLogger, service, validator)
	SetupPopular(router, testLogger, service, validator)
	SetupReload(router, testLogger, service)

	return router
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, queryParams map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		values := url.Values{}
		for key, value := range queryParams {
			values.Set(key, value)
		}
		endpoint = endpoint + "?" + values.Encode()
	}

	req, err := http.NewRequest(method, endpoint, nil)
	assert.NoError(err)

	router.ServeHTTP(w, req)
	return w
}

// decodeData unwraps the data field of the standard response envelope.
func decodeData(assert *require.Assertions, body []byte) map[string]any {
	var responseMap map[string]any
	err := json.Unmarshal(body, &responseMap)
	assert.NoError(err)

	data, ok := responseMap["data"].(map[string]any)
	assert.True(ok, "expected data object in response")
	return data
}

func resultIDs(assert *require.Assertions, data map[string]any, key string) []string {
	rawResults, ok := data[key].([]any)
	assert.True(ok, "expected %s array in response data", key)

	ids := make([]string, 0, len(rawResults))
	for _, rawResult := range rawResults {
		result, ok := rawResult.(map[string]any)
		assert.True(ok)
		id, ok := result["id"].(string)
		assert.True(ok)
		ids = append(ids, id)
	}
	return ids
}
