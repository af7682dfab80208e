//go:build integration
// +build integration

package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ngodingskuyy/doctypes-go/config"
	"github.com/ngodingskuyy/doctypes-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestDoctypeAPIFlow(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)

	config.GeneratorOutput = t.TempDir()
	router := testutils.SetupRouter(db)

	// create a doctype with fields
	w, created := doJSON(t, router, http.MethodPost, "/api/doctypes", map[string]interface{}{
		"name":  "customer",
		"label": "Customer",
		"fields": []map[string]interface{}{
			{"fieldname": "full_name", "label": "Full Name", "fieldtype": "text", "required": true, "in_list_view": true},
			{"fieldname": "email", "label": "Email", "fieldtype": "email"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(created["id"].(float64))

	// invalid identifier is rejected
	w, _ = doJSON(t, router, http.MethodPost, "/api/doctypes", map[string]interface{}{
		"name": "Bad Name", "label": "x",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// read it back
	w, got := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/doctypes/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customer", got["name"])

	// derived form schema
	w, schema := doJSON(t, router, http.MethodGet, "/api/doctypes/name/customer/schema", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fields := schema["fields"].([]interface{})
	assert.Len(t, fields, 2)

	// list config
	w, cfg := doJSON(t, router, http.MethodGet, "/api/doctypes/name/customer/list-config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"full_name"}, cfg["list_fields"])

	// field type catalog
	w, _ = doJSON(t, router, http.MethodGet, "/api/field-types", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// document create validates against the schema
	w, _ = doJSON(t, router, http.MethodPost, "/api/doctypes/name/customer/documents", map[string]interface{}{
		"data": map[string]interface{}{"email": "not-an-email"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, doc := doJSON(t, router, http.MethodPost, "/api/doctypes/name/customer/documents", map[string]interface{}{
		"data": map[string]interface{}{"full_name": "Ada", "email": "ada@example.com"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	docID := uint(doc["id"].(float64))

	w, _ = doJSON(t, router, http.MethodGet, "/api/doctypes/name/customer/documents", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, stats := doJSON(t, router, http.MethodGet, "/api/doctypes/name/customer/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), stats["total"])

	// deleting a doctype with documents is refused
	w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/doctypes/%d", id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/documents/%d", docID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/doctypes/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// records for a never-generated doctype point at generation
	w, _ = doJSON(t, router, http.MethodGet, "/api/d/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
