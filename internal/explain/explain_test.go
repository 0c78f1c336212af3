package explain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickcode/internal/llm"
)

const loopCode = "for i in range(3):\n    print(\"Hello\")"

func TestExplain_ReturnsText(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("  range(3) yields 0, 1 and 2. That is three passes, so keep going!\n"))
	e := New(mock, DefaultConfig())

	got, err := e.Explain(context.Background(), loopCode, "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "range(3) yields 0, 1 and 2. That is three passes, so keep going!", got)

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Nil(t, req.Schema)
	assert.Contains(t, req.Messages[0].Content, `The student answered "2"`)
	assert.Contains(t, req.Messages[0].Content, loopCode)
	assert.Contains(t, req.Messages[0].Content, `The correct answer was "3"`)
}

func TestExplain_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"transport", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("dns")}}},
		{"empty reply", llm.TextResponse("   ")},
		{"empty string literal", llm.TextResponse(`""`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(llm.NewMockProvider(tt.resp), DefaultConfig())

			got, err := e.Explain(context.Background(), loopCode, "2", "3")
			assert.Empty(t, got)

			var perr *llm.ProviderError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "explain", perr.Op)
		})
	}
}
