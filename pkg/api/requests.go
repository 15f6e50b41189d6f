package api

// Request bodies of the JSON surface. Validation beyond shape checks
// lives in the service layer.

type generateSingleRequest struct {
	URL             string `json:"url" binding:"required"`
	PromptID        string `json:"prompt_id"`
	CreateEmbedding bool   `json:"create_embedding"`
	IsFirstForPaper bool   `json:"is_first_for_paper"`
	Provider        string `json:"provider"`
	Model           string `json:"model"`
}

type generateParallelRequest struct {
	URL              string   `json:"url" binding:"required"`
	SelectedPrompts  []string `json:"selected_prompts"`
	CreateEmbeddings bool     `json:"create_embeddings"`
	EmbeddingTarget  string   `json:"embedding_target"`
}

type importFromArxivRequest struct {
	URL      string `json:"url" binding:"required"`
	PromptID string `json:"prompt_id"`
}

type checkDuplicationsRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

type checkExistingSummaryRequest struct {
	URL      string `json:"url" binding:"required"`
	PromptID string `json:"prompt_id"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type upsertEditedSummaryRequest struct {
	DefaultSummaryID string `json:"default_summary_id"`
	CustomSummaryID  string `json:"custom_summary_id"`
	Body             string `json:"body" binding:"required"`
	OnePoint         string `json:"one_point"`
}

type researchStartRequest struct {
	Query              string   `json:"query" binding:"required"`
	SessionID          string   `json:"session_id"`
	SystemPromptGroup  string   `json:"system_prompt_group_id"`
	UseCharacterPrompt bool     `json:"use_character_prompt"`
	Tags               []string `json:"tags"`
}

type ragHistoryTurn struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ragQueryRequest struct {
	Question           string           `json:"question" binding:"required"`
	History            []ragHistoryTurn `json:"history"`
	Tags               []string         `json:"tags"`
	PromptID           string           `json:"prompt_id"`
	UseCharacterPrompt bool             `json:"use_character_prompt"`
	UseWeb             bool             `json:"use_web"`
}

type createChatSessionRequest struct {
	PaperID string `json:"paper_id" binding:"required"`
	Title   string `json:"title"`
}

type sendChatMessageRequest struct {
	Content            string `json:"content" binding:"required"`
	UseCharacterPrompt bool   `json:"use_character_prompt"`
}

type createPromptRequest struct {
	Type     string `json:"type" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category"`
}

type updatePromptRequest struct {
	Name     *string `json:"name"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"is_active"`
}

type createPromptGroupRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	CoordinatorID string `json:"coordinator_prompt_id"`
	PlannerID     string `json:"planner_prompt_id"`
	SupervisorID  string `json:"supervisor_prompt_id"`
	AgentID       string `json:"agent_prompt_id"`
	SummaryID     string `json:"summary_prompt_id"`
}

type selectCharacterRequest struct {
	Character string `json:"character" binding:"required"`
}

type updateDisplayNameRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type setAffinityRequest struct {
	Character string `json:"character" binding:"required"`
	Level     int    `json:"level"`
}

type addPointsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type updateTagsRequest struct {
	Tags string `json:"tags"`
}

type updateMemoRequest struct {
	Memo string `json:"memo"`
}

type setSelectionRequest struct {
	SelectedDefaultSummaryID string `json:"selected_default_summary_id"`
	SelectedCustomSummaryID  string `json:"selected_custom_summary_id"`
}
