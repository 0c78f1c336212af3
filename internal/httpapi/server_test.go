package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/session"
)

type viewJSON struct {
	State struct {
		Phase        string `json:"phase"`
		SessionIndex int    `json:"sessionIndex"`
		CorrectCount int    `json:"correctCount"`
		Selected     string `json:"selected"`
		Revealed     bool   `json:"revealed"`
		IsCorrect    bool   `json:"isCorrect"`
		IsGameOver   bool   `json:"isGameOver"`
		Explanation  string `json:"explanation"`
		Current      *struct {
			ID            string   `json:"id"`
			Topic         string   `json:"topic"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correctAnswer"`
		} `json:"current"`
	} `json:"state"`
	Progress struct {
		XP            int      `json:"xp"`
		Level         int      `json:"level"`
		Streak        int      `json:"streak"`
		LevelProgress float64  `json:"levelProgress"`
		Completed     []string `json:"completedChallenges"`
	} `json:"progress"`
	Signal struct {
		Mood    string `json:"mood"`
		Message string `json:"message"`
	} `json:"signal"`
	Lesson  *lessons.Card `json:"lesson"`
	Summary *struct {
		Tier            string `json:"tier"`
		ScorePercentage int    `json:"scorePercentage"`
		XPEarned        int    `json:"xpEarned"`
	} `json:"summary"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctrl, err := session.New(context.Background(), session.Options{
		Store: progress.NewMemoryStore(nil),
		Now:   func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
		Rand:  rand.New(rand.NewPCG(3, 4)),
	})
	require.NoError(t, err)
	require.NoError(t, ctrl.Start(context.Background()))

	srv := httptest.NewServer(NewHandler(ctrl, lessons.NewService(nil, lessons.DefaultConfig()), nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (int, viewJSON, map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if resp.StatusCode != http.StatusOK {
		var e map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		return resp.StatusCode, viewJSON{}, e
	}
	var v viewJSON
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return resp.StatusCode, v, nil
}

func TestGetState_FirstSessionShowsLesson(t *testing.T) {
	srv := newTestServer(t)

	status, v, _ := do(t, srv, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "lesson", v.State.Phase)
	assert.Equal(t, "teaching", v.Signal.Mood)
	require.NotNil(t, v.Lesson)
	assert.Equal(t, "📦 Variable Boxes", v.Lesson.Title)
	assert.Equal(t, 1, v.Progress.Level)
	assert.NotNil(t, v.Progress.Completed)
	assert.Nil(t, v.Summary)
}

func TestAnswerFlow(t *testing.T) {
	srv := newTestServer(t)

	status, v, _ := do(t, srv, http.MethodPost, "/api/session/lesson/dismiss", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "presenting", v.State.Phase)
	assert.Nil(t, v.Lesson)

	status, _, e := do(t, srv, http.MethodPost, "/api/session/submit", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, e["error"], "no option selected")

	status, _, _ = do(t, srv, http.MethodPost, "/api/session/select", selectRequest{Option: "bogus"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, v, _ = do(t, srv, http.MethodPost, "/api/session/select", selectRequest{Option: "QuickCode"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "QuickCode", v.State.Selected)

	status, v, _ = do(t, srv, http.MethodPost, "/api/session/submit", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, v.State.Revealed)
	assert.True(t, v.State.IsCorrect)
	assert.Equal(t, "happy", v.Signal.Mood)
	assert.Equal(t, 20, v.Progress.XP)
	assert.Equal(t, 1, v.Progress.Streak)
	assert.InDelta(t, 0.2, v.Progress.LevelProgress, 1e-9)
	assert.Equal(t, []string{"1"}, v.Progress.Completed)

	status, _, _ = do(t, srv, http.MethodPost, "/api/session/submit", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, v, _ = do(t, srv, http.MethodPost, "/api/session/advance", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, v.State.SessionIndex)
	assert.False(t, v.State.Revealed)
}

func TestFullSessionReturnsSummary(t *testing.T) {
	srv := newTestServer(t)

	var v viewJSON
	for range session.SessionLength {
		_, v, _ = do(t, srv, http.MethodGet, "/api/state", nil)
		if v.State.Phase == "lesson" {
			_, v, _ = do(t, srv, http.MethodPost, "/api/session/lesson/dismiss", nil)
		}
		require.NotNil(t, v.State.Current)
		do(t, srv, http.MethodPost, "/api/session/select", selectRequest{Option: v.State.Current.CorrectAnswer})
		do(t, srv, http.MethodPost, "/api/session/submit", nil)
		_, v, _ = do(t, srv, http.MethodPost, "/api/session/advance", nil)
	}

	assert.Equal(t, "finished", v.State.Phase)
	assert.True(t, v.State.IsGameOver)
	require.NotNil(t, v.Summary)
	assert.Equal(t, "perfect", v.Summary.Tier)
	assert.Equal(t, 100, v.Summary.ScorePercentage)
	assert.Equal(t, 160, v.Summary.XPEarned)
	assert.Equal(t, 2, v.Progress.Level)

	status, _, _ := do(t, srv, http.MethodPost, "/api/session/advance", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, v, _ = do(t, srv, http.MethodPost, "/api/session/restart", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "presenting", v.State.Phase)
	assert.Equal(t, 160, v.Progress.XP)
	assert.Nil(t, v.Summary)
}

func TestSelect_MalformedBody(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/session/lesson/dismiss", nil)

	resp, err := http.Post(srv.URL+"/api/session/select", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLesson(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/lessons/Functions")
	require.NoError(t, err)
	defer resp.Body.Close()

	var card lessons.Card
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	assert.Equal(t, "🚀 Function Magic", card.Title)
	assert.Equal(t, "Functions", card.Topic)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFor(session.ErrBusy))
	assert.Equal(t, http.StatusConflict, statusFor(session.ErrInvalidPhase))
	assert.Equal(t, http.StatusBadRequest, statusFor(session.ErrNoSelection))
	assert.Equal(t, http.StatusBadRequest, statusFor(session.ErrUnknownOption))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]string{"foo": "bar"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"foo":"bar"}`, w.Body.String())
}
