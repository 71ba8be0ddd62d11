package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

var popularHandlerTestCases = []testCase{
	{
		name:           "NegativeLimit",
		queryParams:    map[string]string{"limit": "-1"},
		expectedStatus: http.StatusNotAcceptable,
	},
	{
		name:           "LimitOverMaximum",
		queryParams:    map[string]string{"limit": "51"},
		expectedStatus: http.StatusNotAcceptable,
	},
	{
		name:           "NonNumericLimit",
		queryParams:    map[string]string{"limit": "abc"},
		expectedStatus: http.StatusUnprocessableEntity,
	},
	{
		name:           "DefaultLimitReturnsTopRated",
		queryParams:    map[string]string{},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			ids := resultIDs(assert, data, "results")
			assert.Equal([]string{"at-01", "tr-01", "ls-01", "dn-01", "ls-02", "tp-01"}, ids)
		},
	},
	{
		name:           "LimitTruncates",
		queryParams:    map[string]string{"limit": "2"},
		expectedStatus: http.StatusOK,
		checkData: func(assert *require.Assertions, data map[string]any) {
			ids := resultIDs(assert, data, "results")
			assert.Equal([]string{"at-01", "tr-01"}, ids)
		},
	},
}

func TestHandlePopular(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert)

	for _, testCase := range popularHandlerTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			w := makeTestHTTPRequest(router, assert, http.MethodGet, "/popular", testCase.queryParams)
			responseBytes := w.Body.Bytes()
			assert.Equal(testCase.expectedStatus, w.Code, fmt.Sprintf("response gotten was %s", string(responseBytes)))

			if testCase.checkData != nil {
				testCase.checkData(assert, decodeData(assert, responseBytes))
			}
		})
	}
}
