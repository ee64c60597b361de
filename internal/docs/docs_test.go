package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustLoad(t *testing.T) *Document {
	t.Helper()
	d, err := Load()
	require.NoError(t, err)
	return d
}

func TestLoadDeclaresSchemas(t *testing.T) {
	d := mustLoad(t)
	assert.Equal(t, []string{
		"BadRequestResponse",
		"CategoryBreakdown",
		"HealthResponse",
		"LearnerProgress",
		"RateLimitedResponse",
		"ReadinessScoreResponse",
	}, d.SchemaNames())
}

func TestValidateLearnerProgress(t *testing.T) {
	d := mustLoad(t)

	errs, err := d.Validate("LearnerProgress", []byte(`{"academics":80,"career_skills":60,"life_skills":70,"technical_skills":75,"communication":65,"teamwork":85,"critical_thinking":70}`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = d.Validate("LearnerProgress", []byte(`{"academics":150,"career_skills":60,"life_skills":70,"technical_skills":75,"communication":65,"teamwork":85,"extra":1}`))
	require.NoError(t, err)
	assert.Len(t, errs, 3)
}

func TestValidateUnknownSchema(t *testing.T) {
	_, err := mustLoad(t).Validate("Nope", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := parse([]byte(""))
	assert.Error(t, err)
}

func TestRoutesServeBothEncodings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	d := mustLoad(t)
	r := gin.New()
	d.RegisterRoutes(r.Group("/api"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/docs-json", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var asJSON map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &asJSON))
	assert.Equal(t, "3.0.3", asJSON["openapi"])
	paths, ok := asJSON["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/readiness/calculate")

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/docs-yaml", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "yaml")
	var asYAML map[string]any
	require.NoError(t, yaml.Unmarshal(resp.Body.Bytes(), &asYAML))
	assert.Equal(t, asJSON["info"].(map[string]any)["title"], asYAML["info"].(map[string]any)["title"])
}
