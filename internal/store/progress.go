package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quickcode/internal/progress"
)

const progressTable = "progress_records"

// ProgressRepo persists the learner's progress record as JSON, keyed by
// progress.Key. It implements progress.Store.
type ProgressRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

var _ progress.Store = (*ProgressRepo)(nil)

func (r *ProgressRepo) Load(ctx context.Context) (progress.Record, error) {
	query, args := builder(r.drv).Select("data").
		From(entsql.Table(progressTable)).
		Where(entsql.EQ("key", progress.Key)).
		Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return progress.New(), &progress.PersistenceError{Op: "load", Err: err}
	}
	defer rows.Close()

	data, err := entsql.ScanString(rows)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.New(), nil
	}
	if err != nil {
		return progress.New(), &progress.PersistenceError{Op: "load", Err: err}
	}

	rec, err := progress.Decode([]byte(data))
	if err != nil {
		return progress.New(), &progress.PersistenceError{Op: "load", Err: err}
	}
	return rec, nil
}

func (r *ProgressRepo) Save(ctx context.Context, rec progress.Record) error {
	data, err := progress.Encode(rec)
	if err != nil {
		return &progress.PersistenceError{Op: "save", Err: err}
	}

	query, args := builder(r.drv).Insert(progressTable).
		Columns("key", "data", "updated_at").
		Values(progress.Key, string(data), r.now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return &progress.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Delete removes the stored record. A later Load returns the zero state.
func (r *ProgressRepo) Delete(ctx context.Context) error {
	query, args := builder(r.drv).Delete(progressTable).
		Where(entsql.EQ("key", progress.Key)).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return &progress.PersistenceError{Op: "delete", Err: err}
	}
	return nil
}
