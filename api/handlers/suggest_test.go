package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var suggestHandlerTestCases = []testCase{
	{
		name:           "QueryTooLong",
		queryParams:    map[string]string{"q": strings.Repeat("a", 201)},
		expectedStatus: http.StatusNotAcceptable,
	},
	{
		name:           "NegativeLimit",
		queryParams:    map[string]string{"q": "tà xùa", "limit": "-1"},
		expectedStatus: http.StatusNotAcceptable,
	},
	{
		name:           "LimitOverMaximum",
		queryParams:    map[string]string{"q": "tà xùa", "limit": "21"},
		expectedStatus: http.StatusNotAcceptable,
	},
	{
		name:           "NonNumericLimit",
		queryParams:    map[string]string{"q": "tà xùa", "limit": "abc"},
		expectedStatus: http.StatusUnprocessableEntity,
	},
	{
		name:           "EmptyQueryYieldsNoSuggestions",
		queryParams:    map[string]string{},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			suggestions, ok := data["suggestions"].([]any)
			assert.True(ok, "suggestions must be an array even when empty")
			assert.Empty(suggestions)
		},
	},
	{
		name:           "SingleRuneYieldsNoSuggestions",
		queryParams:    map[string]string{"q": "t"},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			suggestions, ok := data["suggestions"].([]any)
			assert.True(ok)
			assert.Empty(suggestions)
		},
	},
	{
		name:           "RankedByRating",
		queryParams:    map[string]string{"q": "clouds"},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			ids := resultIDs(assert, data, "suggestions")
			assert.Equal([]string{"at-01", "tr-01", "ls-01"}, ids)
		},
	},
	{
		name:           "LimitTruncates",
		queryParams:    map[string]string{"q": "sơn la", "limit": "2"},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			assert.Len(resultIDs(assert, data, "suggestions"), 2)
		},
	},
	{
		name:           "SuggestionShape",
		queryParams:    map[string]string{"q": "valley", "limit": "1"},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			suggestions := data["suggestions"].([]any)
			assert.Len(suggestions, 1)

			suggestion := suggestions[0].(map[string]any)
			assert.NotEmpty(suggestion["id"])
			assert.NotEmpty(suggestion["name"])
			assert.NotEmpty(suggestion["type"])
			assert.NotEmpty(suggestion["location"])
			assert.NotContains(suggestion, "description")
		},
	},
}

func TestHandleSuggest(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	for _, testCase := range suggestHandlerTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			w := makeTestHTTPRequest(router, assert, http.MethodGet, "/suggest", testCase.queryParams)
			responseBytes := w.Body.Bytes()
			assert.Equal(testCase.expectedStatus, w.Code, fmt.Sprintf("response gotten was %s", string(responseBytes)))

			if testCase.checkData != nil {
				testCase.checkData(assert, decodeData(assert, responseBytes))
			}
		})
	}
}
