package httpapi

import (
	"context"

	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/session"
)

// View is the full presentation state returned by every endpoint.
type View struct {
	State    session.State    `json:"state"`
	Progress ProgressView     `json:"progress"`
	Signal   session.Signal   `json:"signal"`
	Lesson   *lessons.Card    `json:"lesson,omitempty"`
	Summary  *session.Summary `json:"summary,omitempty"`
}

// ProgressView is the learner record with derived display fields.
type ProgressView struct {
	XP                  int      `json:"xp"`
	Level               int      `json:"level"`
	Streak              int      `json:"streak"`
	LevelProgress       float64  `json:"levelProgress"`
	LastCompletedDate   string   `json:"lastCompletedDate,omitempty"`
	CompletedChallenges []string `json:"completedChallenges"`
}

func (h *Handler) view(ctx context.Context) View {
	st := h.sess.State()
	rec := h.sess.Progress()

	v := View{
		State:  st,
		Signal: session.DeriveSignal(st),
		Progress: ProgressView{
			XP:                  rec.XP,
			Level:               rec.Level,
			Streak:              rec.Streak,
			LevelProgress:       rec.LevelProgress(),
			CompletedChallenges: rec.CompletedChallengeIDs.Sorted(),
		},
	}
	if rec.LastCompletedDate != nil {
		v.Progress.LastCompletedDate = rec.LastCompletedDate.String()
	}

	if st.ShowingLesson() && st.Current != nil {
		topic := st.Current.Topic
		var card lessons.Card
		if h.cards != nil {
			h.cards.Prefetch(context.WithoutCancel(ctx), topic)
			card = h.cards.Card(topic)
		} else {
			card = lessons.For(topic)
		}
		v.Lesson = &card
	}

	if st.IsGameOver {
		sum := h.sess.Summary()
		v.Summary = &sum
	}
	return v
}
