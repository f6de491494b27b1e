package exam

import (
	"context"
	"log"
)

// Aggregator folds evaluated attempts into the per-(user, exam, skill) tally.
// The fold itself is a single atomic upsert in the store so concurrent
// submissions cannot lose counts. Failures are logged and swallowed: a broken
// tally must never fail the answer submission that produced it.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator { return &Aggregator{store: store} }

func (a *Aggregator) Update(ctx context.Context, userID, examType, skill string, ev Evaluation) {
	d := ProgressDelta{
		Correct:  ev.IsCorrect != nil && *ev.IsCorrect,
		Score:    ev.Score,
		Possible: ev.MaxScore,
	}
	if err := a.store.UpsertProgress(ctx, userID, examType, skill, d); err != nil {
		log.Printf("progress update failed for %s %s/%s: %v", userID, examType, skill, err)
	}
}
