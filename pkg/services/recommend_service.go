package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
	"github.com/rainzero1960/paperscout/pkg/recommend"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
)

// RecommendService gathers the recommender's inputs from the link table
// and persists its picks as Recommended tags.
type RecommendService struct {
	client *ent.Client
	papers *PaperService
	store  vector.Store
}

// NewRecommendService creates a new RecommendService
func NewRecommendService(client *ent.Client, papers *PaperService, store vector.Store) *RecommendService {
	return &RecommendService{client: client, papers: papers, store: store}
}

// Recommend scores the user's untagged papers against the Favourite and
// NotInterested centroids and tags the best ones Recommended. Returns
// the picked link ids in descending score order.
func (s *RecommendService) Recommend(ctx context.Context, userID string) ([]string, error) {
	links, err := s.client.UserPaperLink.Query().
		Where(userpaperlink.UserID(userID)).
		Order(ent.Desc(userpaperlink.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paper links: %w", err)
	}

	input := recommend.Input{UserID: userID}
	for _, link := range links {
		tags := tagging.ParseTagList(link.Tags)
		var level string
		for _, tag := range tags {
			if tagging.IsLevelTag(tag) {
				level = tag
				break
			}
		}
		switch level {
		case tagging.TagFavourite:
			input.FavouritePaperIDs = append(input.FavouritePaperIDs, link.PaperID)
		case tagging.TagNotInterested:
			input.NotInterestedPaperIDs = append(input.NotInterestedPaperIDs, link.PaperID)
		case tagging.TagRecommended:
			input.ExistingRecommended++
		default:
			input.Candidates = append(input.Candidates, recommend.Candidate{
				LinkID:  link.ID,
				PaperID: link.PaperID,
			})
		}
	}

	picks, err := recommend.Recommend(ctx, s.store, input)
	if err != nil {
		return nil, err
	}

	linkByID := make(map[string]*ent.UserPaperLink, len(links))
	for _, link := range links {
		linkByID[link.ID] = link
	}

	out := make([]string, 0, len(picks))
	for _, pick := range picks {
		link := linkByID[pick.LinkID]
		tags := append(tagging.ParseTagList(link.Tags), tagging.TagRecommended)
		if _, err := s.papers.UpdateTags(ctx, userID, link.PaperID, tagging.JoinTags(tags)); err != nil {
			slog.Warn("Failed to tag recommended paper",
				"user_id", userID, "paper_id", link.PaperID, "error", err)
			continue
		}
		out = append(out, pick.LinkID)
	}
	return out, nil
}
