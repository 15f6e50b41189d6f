package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	entpaper "github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
	"github.com/rainzero1960/paperscout/pkg/paper"
	"github.com/rainzero1960/paperscout/pkg/vector"
)

// PaperService manages paper metadata and the per-user paper links.
type PaperService struct {
	client  *ent.Client
	arxiv   *paper.Client
	vectors vector.Store
}

// NewPaperService creates a new PaperService
func NewPaperService(client *ent.Client, arxiv *paper.Client, vectors vector.Store) *PaperService {
	return &PaperService{client: client, arxiv: arxiv, vectors: vectors}
}

// Ingest registers a paper URL for a user: shared metadata is fetched
// once per external id, and a user link is created. A second ingest of
// the same paper by the same user returns ErrAlreadyExists.
func (s *PaperService) Ingest(httpCtx context.Context, userID, url string) (*ent.UserPaperLink, *ent.PaperMetadata, error) {
	externalID, err := paper.ParseExternalID(url)
	if err != nil {
		return nil, nil, NewValidationError("url", err.Error())
	}

	meta, err := s.ensureMetadata(httpCtx, externalID, url)
	if err != nil {
		return nil, nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	link, err := s.client.UserPaperLink.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetPaperID(meta.ID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, meta, ErrAlreadyExists
		}
		return nil, nil, fmt.Errorf("failed to create paper link: %w", err)
	}
	return link, meta, nil
}

// ensureMetadata returns the shared metadata row for an external id,
// fetching and creating it on first sight. Concurrent first ingests
// serialise on the external_id unique index.
func (s *PaperService) ensureMetadata(httpCtx context.Context, externalID, url string) (*ent.PaperMetadata, error) {
	existing, err := s.client.PaperMetadata.Query().
		Where(entpaper.ExternalID(externalID)).
		Only(httpCtx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query paper metadata: %w", err)
	}

	meta, err := s.arxiv.Fetch(httpCtx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paper metadata: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.client.PaperMetadata.Create().
		SetID(uuid.New().String()).
		SetExternalID(meta.ExternalID).
		SetURL(meta.URL).
		SetTitle(meta.Title).
		SetAuthors(meta.Authors).
		SetAbstract(meta.Abstract).
		Save(ctx)
	if err == nil {
		return created, nil
	}
	if ent.IsConstraintError(err) {
		return s.client.PaperMetadata.Query().
			Where(entpaper.ExternalID(externalID)).
			Only(ctx)
	}
	return nil, fmt.Errorf("failed to create paper metadata: %w", err)
}

// EnsureFullText returns the paper's full text, fetching and caching it
// on first use.
func (s *PaperService) EnsureFullText(ctx context.Context, paperID string) (string, error) {
	meta, err := s.client.PaperMetadata.Get(ctx, paperID)
	if err != nil {
		return "", wrapEntError(err)
	}
	if meta.FullText != nil && *meta.FullText != "" {
		return *meta.FullText, nil
	}

	text, err := s.arxiv.FetchFullText(ctx, meta.ExternalID)
	if err != nil {
		// The HTML rendition does not exist for every paper; the
		// abstract still serves as summary input.
		slog.Warn("Full text unavailable, falling back to abstract",
			"paper_id", paperID, "external_id", meta.ExternalID, "error", err)
		return meta.Abstract, nil
	}

	if _, err := s.client.PaperMetadata.UpdateOneID(paperID).SetFullText(text).Save(ctx); err != nil {
		return "", fmt.Errorf("failed to cache full text: %w", err)
	}
	return text, nil
}

// GetPaper returns shared metadata by id.
func (s *PaperService) GetPaper(ctx context.Context, paperID string) (*ent.PaperMetadata, error) {
	meta, err := s.client.PaperMetadata.Get(ctx, paperID)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return meta, nil
}

// GetLink returns the user's link for a paper.
func (s *PaperService) GetLink(ctx context.Context, userID, paperID string) (*ent.UserPaperLink, error) {
	link, err := s.client.UserPaperLink.Query().
		Where(userpaperlink.UserID(userID), userpaperlink.PaperID(paperID)).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return link, nil
}

// ListLinks returns the user's paper links, newest first.
func (s *PaperService) ListLinks(ctx context.Context, userID string) ([]*ent.UserPaperLink, error) {
	return s.client.UserPaperLink.Query().
		Where(userpaperlink.UserID(userID)).
		Order(ent.Desc(userpaperlink.FieldCreatedAt)).
		All(ctx)
}

// UpdateTags replaces the link's tag set.
func (s *PaperService) UpdateTags(ctx context.Context, userID, paperID, tags string) (*ent.UserPaperLink, error) {
	return s.updateLink(ctx, userID, paperID, func(u *ent.UserPaperLinkUpdate) {
		u.SetTags(tags)
	})
}

// UpdateMemo replaces the link's memo.
func (s *PaperService) UpdateMemo(ctx context.Context, userID, paperID, memo string) (*ent.UserPaperLink, error) {
	return s.updateLink(ctx, userID, paperID, func(u *ent.UserPaperLinkUpdate) {
		u.SetMemo(memo)
	})
}

// Touch records an access for recency ordering.
func (s *PaperService) Touch(ctx context.Context, userID, paperID string) error {
	_, err := s.updateLink(ctx, userID, paperID, func(u *ent.UserPaperLinkUpdate) {
		u.SetLastAccessed(time.Now())
	})
	return err
}

// SetSelection records which stored summary the link displays. At most
// one of the two ids is non-empty; concurrent selections are
// last-writer-wins because selections are user-initiated.
func (s *PaperService) SetSelection(ctx context.Context, userID, paperID, defaultSummaryID, customSummaryID string) (*ent.UserPaperLink, error) {
	if defaultSummaryID != "" && customSummaryID != "" {
		return nil, NewValidationError("selection", "at most one summary id may be set")
	}
	return s.updateLink(ctx, userID, paperID, func(u *ent.UserPaperLinkUpdate) {
		u.ClearSelectedDefaultSummaryID()
		u.ClearSelectedCustomSummaryID()
		if defaultSummaryID != "" {
			u.SetSelectedDefaultSummaryID(defaultSummaryID)
		}
		if customSummaryID != "" {
			u.SetSelectedCustomSummaryID(customSummaryID)
		}
	})
}

func (s *PaperService) updateLink(ctx context.Context, userID, paperID string, apply func(*ent.UserPaperLinkUpdate)) (*ent.UserPaperLink, error) {
	update := s.client.UserPaperLink.Update().
		Where(userpaperlink.UserID(userID), userpaperlink.PaperID(paperID))
	apply(update)
	n, err := update.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetLink(ctx, userID, paperID)
}

// editTarget identifies a user's edit over one summary. Exactly one of
// the two ids is non-empty, matching the partial unique indexes.
func editTarget(userID, defaultSummaryID, customSummaryID string) []predicate.EditedSummary {
	target := []predicate.EditedSummary{editedsummary.UserID(userID)}
	if defaultSummaryID != "" {
		return append(target, editedsummary.DefaultSummaryID(defaultSummaryID))
	}
	return append(target, editedsummary.CustomSummaryID(customSummaryID))
}

// checkEditTarget verifies the summary being overridden exists and is
// visible to the user: custom summaries must be the user's own, default
// summaries must belong to a paper the user links.
func (s *PaperService) checkEditTarget(ctx context.Context, userID, defaultSummaryID, customSummaryID string) error {
	if customSummaryID != "" {
		ok, err := s.client.CustomSummary.Query().
			Where(customsummary.ID(customSummaryID), customsummary.UserID(userID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check custom summary: %w", err)
		}
		if !ok {
			return ErrNotFound
		}
		return nil
	}

	row, err := s.client.DefaultSummary.Get(ctx, defaultSummaryID)
	if err != nil {
		return wrapEntError(err)
	}
	ok, err := s.client.UserPaperLink.Query().
		Where(userpaperlink.UserID(userID), userpaperlink.PaperID(row.PaperID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check paper link: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// UpsertEdited stores the user's hand-edited override of one stored
// summary: created on first edit, replaced on later edits. Exactly one
// of defaultSummaryID / customSummaryID names the target.
func (s *PaperService) UpsertEdited(httpCtx context.Context, userID, defaultSummaryID, customSummaryID, body, onePoint string) (*ent.EditedSummary, error) {
	if (defaultSummaryID == "") == (customSummaryID == "") {
		return nil, NewValidationError("summary_id", "exactly one of default_summary_id and custom_summary_id must be set")
	}
	if body == "" {
		return nil, NewValidationError("body", "body is required")
	}
	if err := s.checkEditTarget(httpCtx, userID, defaultSummaryID, customSummaryID); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	target := editTarget(userID, defaultSummaryID, customSummaryID)
	existing, err := s.client.EditedSummary.Query().Where(target...).Only(ctx)
	if err == nil {
		return s.applyEdit(ctx, existing.ID, body, onePoint)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query edited summary: %w", err)
	}

	create := s.client.EditedSummary.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetBody(body).
		SetOnePoint(onePoint)
	if defaultSummaryID != "" {
		create.SetDefaultSummaryID(defaultSummaryID)
	} else {
		create.SetCustomSummaryID(customSummaryID)
	}
	row, err := create.Save(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create edited summary: %w", err)
	}

	// Lost a first-edit race; the unique index guarantees exactly one
	// row to update now.
	existing, err = s.client.EditedSummary.Query().Where(target...).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-query edited summary: %w", err)
	}
	return s.applyEdit(ctx, existing.ID, body, onePoint)
}

func (s *PaperService) applyEdit(ctx context.Context, id, body, onePoint string) (*ent.EditedSummary, error) {
	row, err := s.client.EditedSummary.UpdateOneID(id).
		SetBody(body).
		SetOnePoint(onePoint).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return row, nil
}

// GetEdited returns the user's edit over a summary, or ErrNotFound when
// none has been made.
func (s *PaperService) GetEdited(ctx context.Context, userID, defaultSummaryID, customSummaryID string) (*ent.EditedSummary, error) {
	if (defaultSummaryID == "") == (customSummaryID == "") {
		return nil, NewValidationError("summary_id", "exactly one of default_summary_id and custom_summary_id must be set")
	}
	row, err := s.client.EditedSummary.Query().
		Where(editTarget(userID, defaultSummaryID, customSummaryID)...).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return row, nil
}

// DeleteLink removes the user's view of a paper: the link, the user's
// custom summaries for it, edited summaries over either summary kind,
// the user's chat sessions on the paper, and the user's vector. Shared
// metadata and default summaries stay for other users.
func (s *PaperService) DeleteLink(httpCtx context.Context, userID, paperID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	customIDs, err := tx.CustomSummary.Query().
		Where(customsummary.UserID(userID), customsummary.PaperID(paperID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list custom summaries: %w", err)
	}
	defaultIDs, err := tx.DefaultSummary.Query().
		Where(defaultsummary.PaperID(paperID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list default summaries: %w", err)
	}

	if _, err := tx.EditedSummary.Delete().
		Where(
			editedsummary.UserID(userID),
			editedsummary.Or(
				editedsummary.CustomSummaryIDIn(customIDs...),
				editedsummary.DefaultSummaryIDIn(defaultIDs...),
			),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete edited summaries: %w", err)
	}

	if _, err := tx.CustomSummary.Delete().
		Where(customsummary.UserID(userID), customsummary.PaperID(paperID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete custom summaries: %w", err)
	}

	// Chat sessions have no FK onto the link; messages cascade from the
	// session row.
	if _, err := tx.PaperChatSession.Delete().
		Where(paperchatsession.UserID(userID), paperchatsession.PaperID(paperID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete chat sessions: %w", err)
	}

	n, err := tx.UserPaperLink.Delete().
		Where(userpaperlink.UserID(userID), userpaperlink.PaperID(paperID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete paper link: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deletion: %w", err)
	}

	if err := s.vectors.DeleteByFilter(ctx, vector.Condition{
		vector.MetaUserID:  userID,
		vector.MetaPaperID: paperID,
	}); err != nil {
		// The vector is orphaned, not leaked: the next index of this
		// pair overwrites it.
		slog.Warn("Failed to delete paper vector", "user_id", userID, "paper_id", paperID, "error", err)
	}
	return nil
}
