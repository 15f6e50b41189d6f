package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/pkg/summary"
)

// SummaryRepo implements summary.Repo on ent. Every mutation is a
// single statement; the unique indexes on the summary tuples and the
// conditional UPDATEs on the body prefix are the coordination
// primitives, exactly as the coordinator requires.
type SummaryRepo struct {
	client *ent.Client
}

// NewSummaryRepo creates a new SummaryRepo
func NewSummaryRepo(client *ent.Client) *SummaryRepo {
	return &SummaryRepo{client: client}
}

var _ summary.Repo = (*SummaryRepo)(nil)

// processingPrefix is the exact body prefix of epoch n.
func processingPrefix(n int) string {
	return fmt.Sprintf("[PROCESSING_%d]", n)
}

// anyProcessingPrefix matches a placeholder of any epoch.
const anyProcessingPrefix = "[PROCESSING_"

func character(key summary.Key) string {
	if key.Character == "" {
		return "none"
	}
	return key.Character
}

// Get returns the current row for the key.
func (r *SummaryRepo) Get(ctx context.Context, key summary.Key) (*summary.Record, error) {
	switch key.Kind {
	case summary.KindCustom:
		row, err := r.client.CustomSummary.Query().
			Where(customPredicates(key)...).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, summary.ErrNotFound
			}
			return nil, err
		}
		return customRecord(row), nil
	default:
		row, err := r.client.DefaultSummary.Query().
			Where(defaultPredicates(key)...).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, summary.ErrNotFound
			}
			return nil, err
		}
		return defaultRecord(row), nil
	}
}

// InsertPlaceholder inserts a PROCESSING_n row; the unique index turns
// a concurrent insert into summary.ErrAlreadyExists.
func (r *SummaryRepo) InsertPlaceholder(ctx context.Context, key summary.Key, n int) (*summary.Record, error) {
	body := summary.ProcessingBody(n)
	switch key.Kind {
	case summary.KindCustom:
		row, err := r.client.CustomSummary.Create().
			SetID(uuid.New().String()).
			SetUserID(key.UserID).
			SetPaperID(key.PaperID).
			SetPromptID(key.PromptID).
			SetLlmProvider(key.Provider).
			SetLlmModel(key.Model).
			SetCharacter(customsummary.Character(character(key))).
			SetAffinity(key.Affinity).
			SetBody(body).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, summary.ErrAlreadyExists
			}
			return nil, err
		}
		return customRecord(row), nil
	default:
		row, err := r.client.DefaultSummary.Create().
			SetID(uuid.New().String()).
			SetPaperID(key.PaperID).
			SetLlmProvider(key.Provider).
			SetLlmModel(key.Model).
			SetCharacter(defaultsummary.Character(character(key))).
			SetAffinity(key.Affinity).
			SetBody(body).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, summary.ErrAlreadyExists
			}
			return nil, err
		}
		return defaultRecord(row), nil
	}
}

// Escalate bumps the placeholder from epoch fromN to fromN+1 in one
// conditional UPDATE; only one escalator per epoch can win.
func (r *SummaryRepo) Escalate(ctx context.Context, key summary.Key, fromN int) (bool, error) {
	next := summary.ProcessingBody(fromN + 1)
	switch key.Kind {
	case summary.KindCustom:
		n, err := r.client.CustomSummary.Update().
			Where(append(customPredicates(key), customsummary.BodyHasPrefix(processingPrefix(fromN)))...).
			SetBody(next).
			Save(ctx)
		return n > 0, err
	default:
		n, err := r.client.DefaultSummary.Update().
			Where(append(defaultPredicates(key), defaultsummary.BodyHasPrefix(processingPrefix(fromN)))...).
			SetBody(next).
			Save(ctx)
		return n > 0, err
	}
}

// Reclaim converts a READY row back into a PROCESSING_1 placeholder.
func (r *SummaryRepo) Reclaim(ctx context.Context, key summary.Key) (bool, error) {
	body := summary.ProcessingBody(1)
	switch key.Kind {
	case summary.KindCustom:
		n, err := r.client.CustomSummary.Update().
			Where(append(customPredicates(key),
				customsummary.Not(customsummary.BodyHasPrefix(anyProcessingPrefix)))...).
			SetBody(body).
			SetOnePoint("").
			Save(ctx)
		return n > 0, err
	default:
		n, err := r.client.DefaultSummary.Update().
			Where(append(defaultPredicates(key),
				defaultsummary.Not(defaultsummary.BodyHasPrefix(anyProcessingPrefix)))...).
			SetBody(body).
			SetOnePoint("").
			Save(ctx)
		return n > 0, err
	}
}

// Finalize replaces the placeholder with the finished content iff the
// row still carries expectedN.
func (r *SummaryRepo) Finalize(ctx context.Context, key summary.Key, expectedN int, final summary.Final) (*summary.Record, bool, error) {
	var affected int
	var err error
	switch key.Kind {
	case summary.KindCustom:
		affected, err = r.client.CustomSummary.Update().
			Where(append(customPredicates(key), customsummary.BodyHasPrefix(processingPrefix(expectedN)))...).
			SetBody(final.Body).
			SetOnePoint(final.OnePoint).
			SetLlmProvider(final.Provider).
			SetLlmModel(final.Model).
			Save(ctx)
	default:
		affected, err = r.client.DefaultSummary.Update().
			Where(append(defaultPredicates(key), defaultsummary.BodyHasPrefix(processingPrefix(expectedN)))...).
			SetBody(final.Body).
			SetOnePoint(final.OnePoint).
			SetLlmProvider(final.Provider).
			SetLlmModel(final.Model).
			Save(ctx)
	}
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return nil, false, nil
	}

	// The row is now addressed by the route that produced the body.
	rec, err := r.Get(ctx, key.WithRoute(final.Provider, final.Model))
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// Overwrite unconditionally replaces the row's content.
func (r *SummaryRepo) Overwrite(ctx context.Context, key summary.Key, final summary.Final) (*summary.Record, error) {
	var affected int
	var err error
	switch key.Kind {
	case summary.KindCustom:
		affected, err = r.client.CustomSummary.Update().
			Where(customPredicates(key)...).
			SetBody(final.Body).
			SetOnePoint(final.OnePoint).
			Save(ctx)
	default:
		affected, err = r.client.DefaultSummary.Update().
			Where(defaultPredicates(key)...).
			SetBody(final.Body).
			SetOnePoint(final.OnePoint).
			Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, summary.ErrNotFound
	}
	return r.Get(ctx, key)
}

// DeletePlaceholder removes the PROCESSING_n row iff it still carries n.
func (r *SummaryRepo) DeletePlaceholder(ctx context.Context, key summary.Key, n int) error {
	switch key.Kind {
	case summary.KindCustom:
		_, err := r.client.CustomSummary.Delete().
			Where(append(customPredicates(key), customsummary.BodyHasPrefix(processingPrefix(n)))...).
			Exec(ctx)
		return err
	default:
		_, err := r.client.DefaultSummary.Delete().
			Where(append(defaultPredicates(key), defaultsummary.BodyHasPrefix(processingPrefix(n)))...).
			Exec(ctx)
		return err
	}
}

func defaultPredicates(key summary.Key) []predicate.DefaultSummary {
	return []predicate.DefaultSummary{
		defaultsummary.PaperID(key.PaperID),
		defaultsummary.LlmProvider(key.Provider),
		defaultsummary.LlmModel(key.Model),
		defaultsummary.CharacterEQ(defaultsummary.Character(character(key))),
		defaultsummary.Affinity(key.Affinity),
	}
}

func customPredicates(key summary.Key) []predicate.CustomSummary {
	return []predicate.CustomSummary{
		customsummary.UserID(key.UserID),
		customsummary.PaperID(key.PaperID),
		customsummary.PromptID(key.PromptID),
		customsummary.LlmProvider(key.Provider),
		customsummary.LlmModel(key.Model),
		customsummary.CharacterEQ(customsummary.Character(character(key))),
		customsummary.Affinity(key.Affinity),
	}
}

func defaultRecord(row *ent.DefaultSummary) *summary.Record {
	return &summary.Record{
		ID:        row.ID,
		Body:      row.Body,
		OnePoint:  row.OnePoint,
		Provider:  row.LlmProvider,
		Model:     row.LlmModel,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func customRecord(row *ent.CustomSummary) *summary.Record {
	return &summary.Record{
		ID:        row.ID,
		Body:      row.Body,
		OnePoint:  row.OnePoint,
		Provider:  row.LlmProvider,
		Model:     row.LlmModel,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
