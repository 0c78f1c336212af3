package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry(t *testing.T) {
	ok := TextResponse(`{"ok":true}`)

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{ok}, false, 1},
		{"transient then success", []MockResponse{unavailable(), ok}, false, 2},
		{"all attempts fail", []MockResponse{unavailable(), unavailable(), unavailable(), ok}, true, 3},
		{
			"max tokens not retried",
			[]MockResponse{{Err: &ErrMaxTokensExceeded{}}, ok},
			true, 1,
		},
		{
			"invalid response retried once",
			[]MockResponse{
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`nope`), Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`nope`), Err: errors.New("bad")}},
				ok,
			},
			true, 2,
		},
		{
			"rate limit honours retry-after",
			[]MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, ok},
			false, 2,
		},
		{
			"rejected request not retried",
			[]MockResponse{{Err: &ErrRequestRejected{StatusCode: 401, Err: errors.New("bad key")}}, ok},
			true, 1,
		},
		{
			"deadline not retried",
			[]MockResponse{{Err: context.DeadlineExceeded}, ok},
			true, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, fastRetry())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), TextResponse("ok"))
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(TextResponse("ok"))
	p := WithRetry(mock, RetryConfig{})

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "mock", p.ModelID())
}

func TestRetry_BackoffBounded(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  10,
	}}

	for attempt := range 5 {
		wait := r.backoff(attempt, errors.New("x"))
		assert.LessOrEqual(t, wait, 1200*time.Millisecond)
		assert.GreaterOrEqual(t, wait, 80*time.Millisecond)
	}
}
