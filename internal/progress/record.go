package progress

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
)

const (
	// XPPerChallenge is awarded for every correct answer.
	XPPerChallenge = 20

	// XPPerLevel is the experience needed per level.
	XPPerLevel = 100

	// Key is the application-scoped key the record is stored under.
	Key = "python_quickcode_user"
)

// Record is the learner's durable cross-session progress.
type Record struct {
	XP                    int         `json:"xp"`
	Level                 int         `json:"level"`
	Streak                int         `json:"streak"`
	LastCompletedDate     *civil.Date `json:"lastCompletedDate"`
	CompletedChallengeIDs IDSet       `json:"completedChallenges"`
}

// New returns the zero-state record for a learner who has never played.
func New() Record {
	return Record{Level: 1, CompletedChallengeIDs: IDSet{}}
}

// LevelFor derives the level from an xp total.
func LevelFor(xp int) int {
	return xp/XPPerLevel + 1
}

// ApplyCorrect returns the record after a correct answer to challengeID at
// now. The receiver is not modified.
//
// The streak counts distinct days with a correct answer. It is never reset
// when a day is skipped.
func (r Record) ApplyCorrect(challengeID string, now time.Time) Record {
	next := r.Clone()
	next.XP += XPPerChallenge
	next.Level = LevelFor(next.XP)

	today := civil.DateOf(now)
	if next.LastCompletedDate == nil || *next.LastCompletedDate != today {
		next.Streak++
		next.LastCompletedDate = &today
	}

	next.CompletedChallengeIDs.Add(challengeID)
	return next
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	if r.LastCompletedDate != nil {
		d := *r.LastCompletedDate
		out.LastCompletedDate = &d
	}
	out.CompletedChallengeIDs = make(IDSet, len(r.CompletedChallengeIDs))
	for id := range r.CompletedChallengeIDs {
		out.CompletedChallengeIDs[id] = struct{}{}
	}
	return out
}

// IsFirstSession reports whether the learner has never completed a challenge.
func (r Record) IsFirstSession() bool {
	return len(r.CompletedChallengeIDs) == 0
}

// LevelProgress is the fraction of the current level already earned, in [0, 1).
func (r Record) LevelProgress() float64 {
	return float64(r.XP%XPPerLevel) / XPPerLevel
}

// normalize repairs records written by older versions or by hand.
func (r Record) normalize() Record {
	if r.XP < 0 {
		r.XP = 0
	}
	if r.Streak < 0 {
		r.Streak = 0
	}
	r.Level = LevelFor(r.XP)
	if r.CompletedChallengeIDs == nil {
		r.CompletedChallengeIDs = IDSet{}
	}
	return r
}

// Encode serializes r for storage.
func Encode(r Record) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return b, nil
}

// Decode parses a stored record.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decode progress: %w", err)
	}
	return r.normalize(), nil
}

// IDSet is a set of challenge identifiers. It serializes as a sorted array.
type IDSet map[string]struct{}

// Add inserts id.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	*s = set
	return nil
}
