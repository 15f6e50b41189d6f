package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	entpaper "github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/paper"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/summary"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
)

// SummaryService orchestrates summary generation end to end: ingest,
// dual generation through the coordinator, selection, vectorisation,
// and tagging.
type SummaryService struct {
	client      *ent.Client
	papers      *PaperService
	coordinator *summary.Coordinator
	gateway     *llm.Gateway
	resolver    *prompt.Resolver
	indexer     *vector.Indexer
	tagger      *tagging.Tagger
	registry    *jobs.Registry
	bulk        *summary.BulkRunner
	cfg         *config.CoordinatorConfig
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(
	client *ent.Client,
	papers *PaperService,
	coordinator *summary.Coordinator,
	gateway *llm.Gateway,
	resolver *prompt.Resolver,
	indexer *vector.Indexer,
	tagger *tagging.Tagger,
	registry *jobs.Registry,
	bulk *summary.BulkRunner,
	cfg *config.CoordinatorConfig,
) *SummaryService {
	if cfg == nil {
		cfg = config.DefaultCoordinatorConfig()
	}
	return &SummaryService{
		client:      client,
		papers:      papers,
		coordinator: coordinator,
		gateway:     gateway,
		resolver:    resolver,
		indexer:     indexer,
		tagger:      tagger,
		registry:    registry,
		bulk:        bulk,
		cfg:         cfg,
	}
}

// GenerateSingleRequest asks for one logical summary of one paper.
type GenerateSingleRequest struct {
	URL             string
	PromptID        string
	CreateEmbedding bool
	IsFirstForPaper bool
	// Provider/Model override the gateway's primary route when set.
	Provider string
	Model    string
}

// GenerateSingleResult reports what one generation call produced.
type GenerateSingleResult struct {
	PaperID          string
	UserPaperLinkID  string
	DefaultSummaryID string
	CustomSummaryID  string
	VectorCreated    bool
	PromptName       string
	PromptType       string
	ProcessingTime   time.Duration
}

// GenerateSingle ingests the paper if needed, ensures both character
// variants of the summary, applies the selection policy, and optionally
// vectorises and tags. Concurrent calls for the same key converge on
// one LLM invocation via the coordinator.
func (s *SummaryService) GenerateSingle(ctx context.Context, userID string, req GenerateSingleRequest) (*GenerateSingleResult, error) {
	start := time.Now()

	link, meta, err := s.ingest(ctx, userID, req.URL)
	if err != nil {
		return nil, err
	}

	pair, err := s.ensurePair(ctx, userID, meta, req.PromptID, req.Provider, req.Model)
	if err != nil {
		return nil, err
	}

	mode := summary.ModeRegenerateDetail
	if req.IsFirstForPaper {
		mode = summary.ModeInitial
	}
	chosen, vectorCreated, err := s.finishPaper(ctx, userID, meta.ID, mode, req.CreateEmbedding, laneAny)
	if err != nil {
		return nil, err
	}

	out := &GenerateSingleResult{
		PaperID:         meta.ID,
		UserPaperLinkID: link.ID,
		PromptName:      pair.promptName,
		PromptType:      pair.promptType,
		VectorCreated:   vectorCreated,
		ProcessingTime:  time.Since(start),
	}
	if chosen != nil {
		out.DefaultSummaryID = chosen.DefaultSummaryID
		out.CustomSummaryID = chosen.CustomSummaryID
	}
	return out, nil
}

// EmbeddingTarget selects which lanes are eligible for vectorisation in
// the parallel flow.
type EmbeddingTarget string

// Embedding targets.
const (
	EmbedDefaultOnly EmbeddingTarget = "default_only"
	EmbedCustomOnly  EmbeddingTarget = "custom_only"
	EmbedBoth        EmbeddingTarget = "both"
	EmbedNone        EmbeddingTarget = "none"
)

// GenerateParallelRequest asks for several prompts' summaries of one
// paper at once.
type GenerateParallelRequest struct {
	URL string
	// PromptIDs name the prompts to run; "" entries run the built-in
	// default prompt.
	PromptIDs        []string
	CreateEmbeddings bool
	EmbeddingTarget  EmbeddingTarget
}

// PromptResult is the per-prompt outcome of a parallel run.
type PromptResult struct {
	PromptID   string
	PromptName string
	PromptType string
	Err        error
}

// GenerateParallelResult aggregates a parallel run.
type GenerateParallelResult struct {
	PaperID         string
	UserPaperLinkID string
	Results         []PromptResult
	Succeeded       int
	Failed          int
	VectorCreated   bool
}

// GenerateParallel runs the dual protocol for every requested prompt in
// parallel, then applies selection and vectorisation once over the
// combined outcome. Individual prompt failures are reported per entry;
// the run continues.
func (s *SummaryService) GenerateParallel(ctx context.Context, userID string, req GenerateParallelRequest) (*GenerateParallelResult, error) {
	if len(req.PromptIDs) == 0 {
		return nil, NewValidationError("selected_prompts", "at least one prompt required")
	}

	link, meta, err := s.ingest(ctx, userID, req.URL)
	if err != nil {
		return nil, err
	}

	out := &GenerateParallelResult{
		PaperID:         meta.ID,
		UserPaperLinkID: link.ID,
		Results:         make([]PromptResult, len(req.PromptIDs)),
	}

	var g errgroup.Group
	g.SetLimit(4)
	for i, promptID := range req.PromptIDs {
		i, promptID := i, promptID
		g.Go(func() error {
			pair, err := s.ensurePair(ctx, userID, meta, promptID, "", "")
			out.Results[i] = PromptResult{PromptID: promptID, Err: err}
			if err == nil {
				out.Results[i].PromptName = pair.promptName
				out.Results[i].PromptType = pair.promptType
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range out.Results {
		if r.Err != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	if out.Succeeded == 0 {
		return out, fmt.Errorf("all %d prompt generations failed", out.Failed)
	}

	lane := laneAny
	embed := req.CreateEmbeddings
	switch req.EmbeddingTarget {
	case EmbedDefaultOnly:
		lane = summary.LaneDefault
	case EmbedCustomOnly:
		lane = summary.LaneCustom
	case EmbedNone:
		embed = false
	}
	_, vectorCreated, err := s.finishPaper(ctx, userID, meta.ID, summary.ModeRegenerateAdd, embed, lane)
	if err != nil {
		return out, err
	}
	out.VectorCreated = vectorCreated
	return out, nil
}

// BulkPaper is one paper's worth of bulk work.
type BulkPaper struct {
	PaperID   string
	PromptIDs []string
}

// StartBulk launches a bulk regeneration for the user's papers in the
// background. Progress is readable from the job registry; a run already
// in flight returns summary.ErrBulkAlreadyRunning.
func (s *SummaryService) StartBulk(userID string, papers []BulkPaper) error {
	if st, ok := s.registry.Get(userID); ok && st.IsRunning {
		return summary.ErrBulkAlreadyRunning
	}

	tasks := make([]summary.Task, 0, len(papers))
	for _, p := range papers {
		p := p
		prompts := make([]func(context.Context) error, 0, len(p.PromptIDs))
		for _, promptID := range p.PromptIDs {
			promptID := promptID
			prompts = append(prompts, func(ctx context.Context) error {
				meta, err := s.papers.GetPaper(ctx, p.PaperID)
				if err != nil {
					return err
				}
				_, err = s.ensurePair(ctx, userID, meta, promptID, "", "")
				return err
			})
		}
		tasks = append(tasks, summary.Task{
			PaperID: p.PaperID,
			Prompts: prompts,
			After: func(ctx context.Context) error {
				_, _, err := s.finishPaper(ctx, userID, p.PaperID, summary.ModeRegenerateAdd, true, laneAny)
				return err
			},
		})
	}

	// The run outlives the HTTP request; clients poll the registry.
	go func() {
		ctx := context.Background()
		if err := s.bulk.Run(ctx, userID, tasks); err != nil && !errors.Is(err, summary.ErrBulkAlreadyRunning) {
			slog.Error("Bulk summary run aborted", "user_id", userID, "error", err)
		}
	}()
	return nil
}

// laneAny places no lane restriction on selection.
const laneAny = summary.LaneAny

// pairInfo describes the prompt a dual generation ran under.
type pairInfo struct {
	promptName string
	promptType string
}

// ensurePair runs the dual acquisition for one (paper, prompt) and
// returns once at least one variant is READY.
func (s *SummaryService) ensurePair(ctx context.Context, userID string, meta *ent.PaperMetadata, promptID, provider, model string) (*pairInfo, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, wrapEntError(err)
	}
	selected := string(u.SelectedCharacter)

	// The none variant never carries a persona; the selected variant
	// does, so the two resolve independently.
	nonePrompt, err := s.resolver.Resolve(ctx, prompt.Request{
		Type: prompt.TypePaperSummary, UserID: userID, PromptID: promptID,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve summary prompt: %w", err)
	}

	spec := s.gateway.DefaultSpec()
	if provider != "" && model != "" {
		spec = config.ModelSpec{Provider: config.ProviderType(provider), Model: model}
	}

	kind := summary.KindDefault
	keyPromptID, keyUserID := "", ""
	if nonePrompt.IsCustom {
		kind = summary.KindCustom
		keyPromptID = nonePrompt.PromptID
		keyUserID = userID
	}
	noneKey := summary.Key{
		Kind: kind, UserID: keyUserID, PaperID: meta.ID, PromptID: keyPromptID,
		Provider: string(spec.Provider), Model: spec.Model, Character: "none",
	}

	body, err := s.papers.EnsureFullText(ctx, meta.ID)
	if err != nil {
		return nil, err
	}
	content := paperContent(meta, body, s.cfg.MaxBodyChars)

	dual := summary.DualRequest{
		NoneKey:         noneKey,
		PromptUpdatedAt: nonePrompt.UpdatedAt,
		GenerateNone:    s.generateFunc(nonePrompt.Body, content, spec),
	}

	if selected != "" && selected != "none" {
		selectedPrompt, err := s.resolver.Resolve(ctx, prompt.Request{
			Type: prompt.TypePaperSummary, UserID: userID, PromptID: promptID,
			UseCharacter: true,
		})
		if err != nil {
			return nil, fmt.Errorf("resolve persona summary prompt: %w", err)
		}
		affinity := u.AffinitySakura
		if prompt.Character(selected) == prompt.CharacterMiyabi {
			affinity = u.AffinityMiyabi
		}
		selectedKey := noneKey
		selectedKey.Character = selected
		selectedKey.Affinity = affinity
		dual.SelectedKey = &selectedKey
		dual.GenerateSelected = s.generateFunc(selectedPrompt.Body, content, spec)
	}

	outcome := s.coordinator.EnsureDual(ctx, dual)
	if !outcome.Succeeded() {
		err := outcome.NoneErr
		if err == nil {
			err = outcome.SelectedErr
		}
		return nil, fmt.Errorf("dual generation failed: %w", err)
	}
	if outcome.NoneErr != nil {
		slog.Warn("Character-none variant failed", "paper_id", meta.ID, "error", outcome.NoneErr)
	}
	if outcome.SelectedErr != nil {
		slog.Warn("Character variant failed", "paper_id", meta.ID, "error", outcome.SelectedErr)
	}

	info := &pairInfo{promptName: nonePrompt.PromptName, promptType: string(kind)}
	if info.promptName == "" {
		info.promptName = "デフォルト要約"
	}
	return info, nil
}

// generateFunc builds the coordinator's LLM closure for one prompt body.
func (s *SummaryService) generateFunc(systemPrompt, content string, spec config.ModelSpec) summary.GenerateFunc {
	return func(ctx context.Context) (*summary.Generation, error) {
		result, err := s.gateway.Invoke(ctx, []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: content},
		}, spec, nil)
		if err != nil {
			return nil, err
		}
		return &summary.Generation{
			Body:         result.Text,
			Provider:     string(result.Provider),
			Model:        result.Model,
			UsedFallback: result.UsedFallback,
		}, nil
	}
}

// finishPaper applies the selection policy over every READY summary of
// the pair, records the pick on the link, and optionally vectorises the
// picked body and tags the link.
func (s *SummaryService) finishPaper(ctx context.Context, userID, paperID string, mode summary.Mode, embed bool, lane summary.Lane) (*summary.Candidate, bool, error) {
	candidates, bodies, err := s.readyCandidates(ctx, userID, paperID, lane)
	if err != nil {
		return nil, false, err
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}

	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, false, wrapEntError(err)
	}

	currentLane := summary.LaneAny
	if link, err := s.papers.GetLink(ctx, userID, paperID); err == nil {
		switch {
		case link.SelectedCustomSummaryID != nil:
			currentLane = summary.LaneCustom
		case link.SelectedDefaultSummaryID != nil:
			currentLane = summary.LaneDefault
		}
	}

	chosen := summary.Select(candidates, string(u.SelectedCharacter), mode, currentLane)
	if chosen == nil {
		return nil, false, nil
	}
	if _, err := s.papers.SetSelection(ctx, userID, paperID, chosen.DefaultSummaryID, chosen.CustomSummaryID); err != nil {
		return nil, false, err
	}

	vectorCreated := false
	if embed {
		if err := s.vectorise(ctx, userID, paperID, chosen, bodies); err != nil {
			// A missing vector degrades search, not correctness; the
			// next regeneration re-indexes.
			slog.Warn("Failed to vectorise summary", "user_id", userID, "paper_id", paperID, "error", err)
		} else {
			vectorCreated = true
		}
	}

	s.maybeTag(ctx, userID, paperID, bodies[candidateID(chosen)])
	return chosen, vectorCreated, nil
}

// readyCandidates loads every READY summary of the pair in the given
// lane, plus a body lookup for vectorisation and tagging.
func (s *SummaryService) readyCandidates(ctx context.Context, userID, paperID string, lane summary.Lane) ([]summary.Candidate, map[string]string, error) {
	var candidates []summary.Candidate
	bodies := make(map[string]string)

	if lane != summary.LaneCustom {
		rows, err := s.client.DefaultSummary.Query().
			Where(defaultsummary.PaperID(paperID)).
			All(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list default summaries: %w", err)
		}
		for _, row := range rows {
			if _, processing := summary.ParseProcessing(row.Body); processing {
				continue
			}
			candidates = append(candidates, summary.Candidate{
				DefaultSummaryID: row.ID,
				Character:        string(row.Character),
				CreatedAt:        row.CreatedAt,
			})
			bodies[row.ID] = row.Body
		}
	}

	if lane != summary.LaneDefault {
		rows, err := s.client.CustomSummary.Query().
			Where(customsummary.UserID(userID), customsummary.PaperID(paperID)).
			All(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list custom summaries: %w", err)
		}
		for _, row := range rows {
			if _, processing := summary.ParseProcessing(row.Body); processing {
				continue
			}
			candidates = append(candidates, summary.Candidate{
				CustomSummaryID: row.ID,
				Character:       string(row.Character),
				CreatedAt:       row.CreatedAt,
			})
			bodies[row.ID] = row.Body
		}
	}
	return candidates, bodies, nil
}

func candidateID(c *summary.Candidate) string {
	if c.IsCustom() {
		return c.CustomSummaryID
	}
	return c.DefaultSummaryID
}

// vectorise replaces the pair's vector with the chosen summary's body.
func (s *SummaryService) vectorise(ctx context.Context, userID, paperID string, chosen *summary.Candidate, bodies map[string]string) error {
	body := bodies[candidateID(chosen)]
	if body == "" {
		return fmt.Errorf("chosen summary body unavailable")
	}

	meta := map[string]string{
		vector.MetaUserID:  userID,
		vector.MetaPaperID: paperID,
	}
	if chosen.IsCustom() {
		meta[vector.MetaSummaryType] = vector.SummaryTypeCustom
		meta[vector.MetaCustomSummaryID] = chosen.CustomSummaryID
	} else {
		meta[vector.MetaSummaryType] = vector.SummaryTypeDefault
		meta[vector.MetaDefaultSummaryID] = chosen.DefaultSummaryID
	}
	return s.indexer.Index(ctx, []vector.Item{{Text: body, Metadata: meta}})
}

// maybeTag generates content tags when the link carries none yet.
func (s *SummaryService) maybeTag(ctx context.Context, userID, paperID, body string) {
	link, err := s.papers.GetLink(ctx, userID, paperID)
	if err != nil || body == "" {
		return
	}
	if tagging.HasContentTags(link.Tags) {
		return
	}

	tags, err := s.tagger.GenerateTags(ctx, userID, body)
	if err != nil {
		// A failed tagging run leaves the link untagged.
		slog.Warn("Tagging failed, leaving link untagged", "user_id", userID, "paper_id", paperID, "error", err)
		return
	}
	merged := tagging.MergeWithLevelTags(link.Tags, tags)
	if _, err := s.papers.UpdateTags(ctx, userID, paperID, merged); err != nil {
		slog.Warn("Failed to store tags", "user_id", userID, "paper_id", paperID, "error", err)
	}
}

// ingest registers the link, tolerating a pre-existing one.
func (s *SummaryService) ingest(ctx context.Context, userID, url string) (*ent.UserPaperLink, *ent.PaperMetadata, error) {
	link, meta, err := s.papers.Ingest(ctx, userID, url)
	if errors.Is(err, ErrAlreadyExists) {
		link, err = s.papers.GetLink(ctx, userID, meta.ID)
	}
	if err != nil {
		return nil, nil, err
	}
	return link, meta, nil
}

// paperContent assembles the generation input from metadata and body.
func paperContent(meta *ent.PaperMetadata, body string, maxChars int) string {
	if maxChars > 0 && len([]rune(body)) > maxChars {
		body = string([]rune(body)[:maxChars])
	}
	return fmt.Sprintf("タイトル: %s\n著者: %s\n\n概要:\n%s\n\n本文:\n%s",
		meta.Title, meta.Authors, meta.Abstract, body)
}

// DuplicationInfo describes a stored summary found by CheckDuplications.
type DuplicationInfo struct {
	URL        string
	PromptName string
	PromptType string
	PromptID   string
}

// DuplicationReport is the outcome of a batch duplication check.
type DuplicationReport struct {
	ExistingVectorURLs  []string
	ExistingSummaryInfo []DuplicationInfo
}

// CheckDuplications reports, for a batch of URLs, which already have a
// vector for this user and which summaries already exist. One vector
// round trip for the whole batch.
func (s *SummaryService) CheckDuplications(ctx context.Context, userID string, urls []string) (*DuplicationReport, error) {
	report := &DuplicationReport{}

	byExternalID := make(map[string]string, len(urls))
	externalIDs := make([]string, 0, len(urls))
	for _, url := range urls {
		externalID, err := paper.ParseExternalID(url)
		if err != nil {
			continue
		}
		byExternalID[externalID] = url
		externalIDs = append(externalIDs, externalID)
	}
	if len(externalIDs) == 0 {
		return report, nil
	}

	metas, err := s.client.PaperMetadata.Query().
		Where(entpaper.ExternalIDIn(externalIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query paper metadata: %w", err)
	}
	if len(metas) == 0 {
		return report, nil
	}

	paperIDs := make([]string, len(metas))
	urlByPaperID := make(map[string]string, len(metas))
	for i, m := range metas {
		paperIDs[i] = m.ID
		urlByPaperID[m.ID] = byExternalID[m.ExternalID]
	}

	exists, err := s.indexer.Store().BatchExists(ctx, userID, paperIDs)
	if err != nil {
		return nil, fmt.Errorf("check vector existence: %w", err)
	}
	for paperID, ok := range exists {
		if ok {
			report.ExistingVectorURLs = append(report.ExistingVectorURLs, urlByPaperID[paperID])
		}
	}

	defaults, err := s.client.DefaultSummary.Query().
		Where(defaultsummary.PaperIDIn(paperIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query default summaries: %w", err)
	}
	for _, row := range defaults {
		if _, processing := summary.ParseProcessing(row.Body); processing {
			continue
		}
		report.ExistingSummaryInfo = append(report.ExistingSummaryInfo, DuplicationInfo{
			URL:        urlByPaperID[row.PaperID],
			PromptName: "デフォルト要約",
			PromptType: string(summary.KindDefault),
		})
	}

	customs, err := s.client.CustomSummary.Query().
		Where(customsummary.UserID(userID), customsummary.PaperIDIn(paperIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query custom summaries: %w", err)
	}
	for _, row := range customs {
		if _, processing := summary.ParseProcessing(row.Body); processing {
			continue
		}
		info := DuplicationInfo{
			URL:        urlByPaperID[row.PaperID],
			PromptType: string(summary.KindCustom),
			PromptID:   row.PromptID,
		}
		if p, err := s.client.Prompt.Get(ctx, row.PromptID); err == nil {
			info.PromptName = p.Name
		}
		report.ExistingSummaryInfo = append(report.ExistingSummaryInfo, info)
	}
	return report, nil
}

// ExistingSummary is the outcome of a per-key existence check.
type ExistingSummary struct {
	Exists bool
	// RequiresRegeneration is true when the referenced custom prompt
	// changed after the stored summary was written.
	RequiresRegeneration bool
	SummaryType          string
	SummaryID            string
}

// CheckExisting reports whether a READY summary already exists for the
// (url, prompt, provider, model) key in either character variant.
func (s *SummaryService) CheckExisting(ctx context.Context, userID, url, promptID, provider, model string) (*ExistingSummary, error) {
	externalID, err := paper.ParseExternalID(url)
	if err != nil {
		return nil, NewValidationError("url", err.Error())
	}
	meta, err := s.client.PaperMetadata.Query().
		Where(entpaper.ExternalID(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ExistingSummary{}, nil
		}
		return nil, fmt.Errorf("query paper metadata: %w", err)
	}

	if promptID == "" {
		rows, err := s.client.DefaultSummary.Query().
			Where(
				defaultsummary.PaperID(meta.ID),
				defaultsummary.LlmProvider(provider),
				defaultsummary.LlmModel(model),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query default summaries: %w", err)
		}
		for _, row := range rows {
			if _, processing := summary.ParseProcessing(row.Body); processing {
				continue
			}
			return &ExistingSummary{
				Exists:      true,
				SummaryType: string(summary.KindDefault),
				SummaryID:   row.ID,
			}, nil
		}
		return &ExistingSummary{}, nil
	}

	rows, err := s.client.CustomSummary.Query().
		Where(
			customsummary.UserID(userID),
			customsummary.PaperID(meta.ID),
			customsummary.PromptID(promptID),
			customsummary.LlmProvider(provider),
			customsummary.LlmModel(model),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query custom summaries: %w", err)
	}
	for _, row := range rows {
		if _, processing := summary.ParseProcessing(row.Body); processing {
			continue
		}
		out := &ExistingSummary{
			Exists:      true,
			SummaryType: string(summary.KindCustom),
			SummaryID:   row.ID,
		}
		if p, err := s.client.Prompt.Get(ctx, promptID); err == nil {
			out.RequiresRegeneration = p.UpdatedAt.After(row.UpdatedAt)
		}
		return out, nil
	}
	return &ExistingSummary{}, nil
}
