package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/clinic_cash_app/cmd/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocCoversRoutes(t *testing.T) {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	routes := map[string][]string{
		"/entries":                           {"get", "post"},
		"/entries/preview":                   {"post"},
		"/entries/manual-liquidation":        {"post"},
		"/entries/{entryID}":                 {"get", "patch", "delete"},
		"/entries/{entryID}/transfer/{role}": {"put"},
		"/register/close":                    {"post"},
		"/register/{date}/summary":           {"get"},
		"/deductions":                        {"get", "post"},
		"/deductions/{deductionID}":          {"delete"},
		"/professionals":                     {"get", "post"},
		"/professionals/{name}":              {"get"},
		"/liquidations":                      {"get"},
		"/liquidations/{professional}":       {"get"},
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, methods := range routes {
		for _, method := range methods {
			assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
		}
	}
}
