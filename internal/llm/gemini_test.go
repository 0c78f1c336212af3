package llm

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.5-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"code":       map[string]any{"type": "string", "description": "Python snippet"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"Beginner", "Intermediate", "Advanced"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": float64(4),
			},
			"points": map[string]any{"type": "integer"},
		},
		"required": []any{"code", "options"},
	})

	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Len(t, schema.Properties, 4)
	assert.Equal(t, genai.TypeString, schema.Properties["code"].Type)
	assert.Equal(t, "Python snippet", schema.Properties["code"].Description)
	assert.Len(t, schema.Properties["difficulty"].Enum, 3)
	assert.Equal(t, genai.TypeArray, schema.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["options"].Items.Type)
	assert.Equal(t, genai.TypeInteger, schema.Properties["points"].Type)
	assert.ElementsMatch(t, []string{"code", "options"}, schema.Required)
	assert.Equal(t, []string{"code", "options"}, schema.PropertyOrdering)
	require.NotNil(t, schema.Properties["options"].MinItems)
	require.NotNil(t, schema.Properties["options"].MaxItems)
	assert.Equal(t, int64(4), *schema.Properties["options"].MinItems)
	assert.Equal(t, int64(4), *schema.Properties["options"].MaxItems)
	assert.Nil(t, schema.Properties["code"].MinItems)
}

func TestMapGeminiError(t *testing.T) {
	var rejected *ErrRequestRejected
	assert.ErrorAs(t, mapGeminiError(genai.APIError{Code: http.StatusForbidden}), &rejected)
	assert.ErrorAs(t, mapGeminiError(&genai.APIError{Code: http.StatusBadRequest}), &rejected)

	var rl *ErrRateLimit
	assert.ErrorAs(t, mapGeminiError(genai.APIError{Code: http.StatusTooManyRequests}), &rl)

	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, mapGeminiError(genai.APIError{Code: http.StatusServiceUnavailable}), &unavail)
	assert.ErrorAs(t, mapGeminiError(errors.New("dial tcp: refused")), &unavail)
}

func TestMapGeminiStopReason(t *testing.T) {
	reply := func(reason genai.FinishReason) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: reason}}}
	}
	assert.Equal(t, "end", mapGeminiStopReason(reply(genai.FinishReasonStop)))
	assert.Equal(t, "max_tokens", mapGeminiStopReason(reply(genai.FinishReasonMaxTokens)))
	assert.Equal(t, "error", mapGeminiStopReason(reply(genai.FinishReasonSafety)))
	assert.Equal(t, "end", mapGeminiStopReason(&genai.GenerateContentResponse{}))
}
