package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/database"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// Services bundles the service layer the HTTP surface exposes.
type Services struct {
	Users     *services.UserService
	Papers    *services.PaperService
	Prompts   *services.PromptService
	Summaries *services.SummaryService
	Research  *services.ResearchService
	RAG       *services.RAGService
	Chat      *services.PaperChatService
	Recommend *services.RecommendService
}

// Server is the HTTP server over the service layer.
type Server struct {
	db       *database.Client
	svc      Services
	registry *jobs.Registry
}

// NewServer creates a new API server.
func NewServer(db *database.Client, svc Services, registry *jobs.Registry) *Server {
	return &Server{
		db:       db,
		svc:      svc,
		registry: registry,
	}
}

// Router builds the gin engine with all routes registered. The health
// endpoint is open; everything else requires a bearer token.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.Health)

	authed := r.Group("/", bearerAuth(s.svc.Users))

	papers := authed.Group("/papers")
	{
		papers.POST("/generate_single_summary", s.GenerateSingleSummary)
		papers.POST("/generate_multiple_summaries_parallel", s.GenerateMultipleSummariesParallel)
		papers.POST("/import_from_arxiv", s.ImportFromArxiv)
		papers.POST("/check_duplications", s.CheckDuplications)
		papers.POST("/check_existing_summary", s.CheckExistingSummary)
		papers.POST("/recommend", s.RecommendPapers)

		papers.GET("", s.ListPapers)
		papers.GET("/:paper_id", s.GetPaper)
		papers.PUT("/:paper_id/tags", s.UpdatePaperTags)
		papers.PUT("/:paper_id/memo", s.UpdatePaperMemo)
		papers.PUT("/:paper_id/selection", s.SetPaperSelection)
		papers.DELETE("/:paper_id", s.DeletePaper)
	}

	summaries := authed.Group("/summaries")
	{
		summaries.PUT("/edited", s.UpsertEditedSummary)
		summaries.GET("/edited", s.GetEditedSummary)
	}

	for _, category := range []string{"deepresearch", "deeprag"} {
		g := authed.Group("/" + category)
		g.POST("/start", s.startResearch(category))
		g.GET("/sessions", s.listResearchSessions(category))
		g.GET("/sessions/:session_id/status", s.ResearchSessionStatus)
	}

	rag := authed.Group("/rag")
	{
		rag.POST("/query", s.RAGQuery)
		rag.POST("/start_async", s.RAGStartAsync)
		rag.GET("/sessions/:run_id/status", s.RAGRunStatus)
	}

	chat := authed.Group("/chat")
	{
		chat.POST("/sessions", s.CreateChatSession)
		chat.GET("/sessions", s.ListChatSessions)
		chat.GET("/sessions/:session_id/messages", s.ListChatMessages)
		chat.POST("/sessions/:session_id/messages", s.SendChatMessage)
	}

	prompts := authed.Group("/prompts")
	{
		prompts.POST("", s.CreatePrompt)
		prompts.GET("", s.ListPrompts)
		prompts.PUT("/:prompt_id", s.UpdatePrompt)
		prompts.DELETE("/:prompt_id", s.DeletePrompt)
	}

	groups := authed.Group("/prompt-groups")
	{
		groups.POST("", s.CreatePromptGroup)
		groups.GET("", s.ListPromptGroups)
		groups.DELETE("/:group_id", s.DeletePromptGroup)
	}

	auth := authed.Group("/auth")
	{
		auth.GET("/me", s.Me)
		auth.PUT("/display_name", s.UpdateDisplayName)
		auth.POST("/select_character", s.SelectCharacter)
		auth.POST("/affinity", s.SetAffinity)
		auth.POST("/points", s.AddPoints)
		auth.GET("/character-selection-bulk-update-progress", s.BulkUpdateProgress)
	}

	return r
}
