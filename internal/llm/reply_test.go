package llm

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReply(t *testing.T) {
	schemaReq := Request{Schema: testSchema()}

	tests := []struct {
		name    string
		text    string
		req     Request
		want    string
		wantErr bool
	}{
		{"plain json", `{"name":"loops","lines":3}`, schemaReq, `{"name":"loops","lines":3}`, false},
		{"json fence", "```json\n{\"name\":\"loops\",\"lines\":3}\n```", schemaReq, `{"name":"loops","lines":3}`, false},
		{"bare fence", "```\n{\"name\":\"loops\",\"lines\":3}\n```", schemaReq, `{"name":"loops","lines":3}`, false},
		{"schema violation", `{"name":"loops"}`, schemaReq, "", true},
		{"empty", "  \n ", schemaReq, "", true},
		{"explanation kept verbatim", "```python\nprint(1)\n```", Request{}, "```python\nprint(1)\n```", false},
		{"explanation trimmed", "  Lists are mutable.\n", Request{}, "Lists are mutable.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeReply("Test", tt.text, tt.req)
			if tt.wantErr {
				var inv *ErrInvalidResponse
				assert.ErrorAs(t, err, &inv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "```{}```", stripFence("```{}```"))
	assert.Equal(t, `{"a":1}`, stripFence(`{"a":1}`))
	assert.Equal(t, "``````", stripFence("``````"))
}

func TestClassifyStatus(t *testing.T) {
	var rl *ErrRateLimit
	assert.ErrorAs(t, classifyStatus(http.StatusTooManyRequests, assert.AnError), &rl)

	var rejected *ErrRequestRejected
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		require.ErrorAs(t, classifyStatus(code, assert.AnError), &rejected)
		assert.Equal(t, code, rejected.StatusCode)
	}

	var unavail *ErrProviderUnavailable
	for _, code := range []int{0, http.StatusRequestTimeout, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		assert.ErrorAs(t, classifyStatus(code, assert.AnError), &unavail)
	}
	assert.ErrorIs(t, classifyStatus(http.StatusUnauthorized, assert.AnError), assert.AnError)
}
