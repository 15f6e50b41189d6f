// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomSummariesColumns holds the columns for the "custom_summaries" table.
	CustomSummariesColumns = []*schema.Column{
		{Name: "custom_summary_id", Type: field.TypeString, Unique: true},
		{Name: "llm_provider", Type: field.TypeString},
		{Name: "llm_model", Type: field.TypeString},
		{Name: "character", Type: field.TypeEnum, Enums: []string{"none", "sakura", "miyabi"}, Default: "none"},
		{Name: "affinity", Type: field.TypeInt, Default: 0},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "one_point", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "paper_id", Type: field.TypeString},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// CustomSummariesTable holds the schema information for the "custom_summaries" table.
	CustomSummariesTable = &schema.Table{
		Name:       "custom_summaries",
		Columns:    CustomSummariesColumns,
		PrimaryKey: []*schema.Column{CustomSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "custom_summaries_paper_metadata_custom_summaries",
				Columns:    []*schema.Column{CustomSummariesColumns[9]},
				RefColumns: []*schema.Column{PaperMetadataColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "custom_summaries_prompts_custom_summaries",
				Columns:    []*schema.Column{CustomSummariesColumns[10]},
				RefColumns: []*schema.Column{PromptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "custom_summaries_users_custom_summaries",
				Columns:    []*schema.Column{CustomSummariesColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "customsummary_user_id_paper_id_prompt_id_llm_provider_llm_model_character_affinity",
				Unique:  true,
				Columns: []*schema.Column{CustomSummariesColumns[11], CustomSummariesColumns[9], CustomSummariesColumns[10], CustomSummariesColumns[1], CustomSummariesColumns[2], CustomSummariesColumns[3], CustomSummariesColumns[4]},
			},
			{
				Name:    "customsummary_user_id_paper_id",
				Unique:  false,
				Columns: []*schema.Column{CustomSummariesColumns[11], CustomSummariesColumns[9]},
			},
		},
	}
	// DefaultSummariesColumns holds the columns for the "default_summaries" table.
	DefaultSummariesColumns = []*schema.Column{
		{Name: "default_summary_id", Type: field.TypeString, Unique: true},
		{Name: "llm_provider", Type: field.TypeString},
		{Name: "llm_model", Type: field.TypeString},
		{Name: "character", Type: field.TypeEnum, Enums: []string{"none", "sakura", "miyabi"}, Default: "none"},
		{Name: "affinity", Type: field.TypeInt, Default: 0},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "one_point", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "paper_id", Type: field.TypeString},
	}
	// DefaultSummariesTable holds the schema information for the "default_summaries" table.
	DefaultSummariesTable = &schema.Table{
		Name:       "default_summaries",
		Columns:    DefaultSummariesColumns,
		PrimaryKey: []*schema.Column{DefaultSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "default_summaries_paper_metadata_default_summaries",
				Columns:    []*schema.Column{DefaultSummariesColumns[9]},
				RefColumns: []*schema.Column{PaperMetadataColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "defaultsummary_paper_id_llm_provider_llm_model_character_affinity",
				Unique:  true,
				Columns: []*schema.Column{DefaultSummariesColumns[9], DefaultSummariesColumns[1], DefaultSummariesColumns[2], DefaultSummariesColumns[3], DefaultSummariesColumns[4]},
			},
		},
	}
	// EditedSummariesColumns holds the columns for the "edited_summaries" table.
	EditedSummariesColumns = []*schema.Column{
		{Name: "edited_summary_id", Type: field.TypeString, Unique: true},
		{Name: "default_summary_id", Type: field.TypeString, Nullable: true},
		{Name: "custom_summary_id", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "one_point", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// EditedSummariesTable holds the schema information for the "edited_summaries" table.
	EditedSummariesTable = &schema.Table{
		Name:       "edited_summaries",
		Columns:    EditedSummariesColumns,
		PrimaryKey: []*schema.Column{EditedSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "edited_summaries_users_edited_summaries",
				Columns:    []*schema.Column{EditedSummariesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "editedsummary_user_id_default_summary_id",
				Unique:  true,
				Columns: []*schema.Column{EditedSummariesColumns[7], EditedSummariesColumns[1]},
			},
			{
				Name:    "editedsummary_user_id_custom_summary_id",
				Unique:  true,
				Columns: []*schema.Column{EditedSummariesColumns[7], EditedSummariesColumns[2]},
			},
		},
	}
	// PaperChatMessagesColumns holds the columns for the "paper_chat_messages" table.
	PaperChatMessagesColumns = []*schema.Column{
		{Name: "paper_chat_message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system", "tool", "system_error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// PaperChatMessagesTable holds the schema information for the "paper_chat_messages" table.
	PaperChatMessagesTable = &schema.Table{
		Name:       "paper_chat_messages",
		Columns:    PaperChatMessagesColumns,
		PrimaryKey: []*schema.Column{PaperChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "paper_chat_messages_paper_chat_sessions_messages",
				Columns:    []*schema.Column{PaperChatMessagesColumns[5]},
				RefColumns: []*schema.Column{PaperChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paperchatmessage_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{PaperChatMessagesColumns[5], PaperChatMessagesColumns[3]},
			},
		},
	}
	// PaperChatSessionsColumns holds the columns for the "paper_chat_sessions" table.
	PaperChatSessionsColumns = []*schema.Column{
		{Name: "paper_chat_session_id", Type: field.TypeString, Unique: true},
		{Name: "paper_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// PaperChatSessionsTable holds the schema information for the "paper_chat_sessions" table.
	PaperChatSessionsTable = &schema.Table{
		Name:       "paper_chat_sessions",
		Columns:    PaperChatSessionsColumns,
		PrimaryKey: []*schema.Column{PaperChatSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "paper_chat_sessions_users_chat_sessions",
				Columns:    []*schema.Column{PaperChatSessionsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paperchatsession_user_id_paper_id",
				Unique:  false,
				Columns: []*schema.Column{PaperChatSessionsColumns[6], PaperChatSessionsColumns[1]},
			},
		},
	}
	// PaperMetadataColumns holds the columns for the "paper_metadata" table.
	PaperMetadataColumns = []*schema.Column{
		{Name: "paper_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "authors", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "abstract", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PaperMetadataTable holds the schema information for the "paper_metadata" table.
	PaperMetadataTable = &schema.Table{
		Name:       "paper_metadata",
		Columns:    PaperMetadataColumns,
		PrimaryKey: []*schema.Column{PaperMetadataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "papermetadata_url",
				Unique:  false,
				Columns: []*schema.Column{PaperMetadataColumns[2]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"paper_summary", "character_persona", "tagging", "paper_chat_system", "rag_system", "research_coordinator", "research_planner", "research_supervisor", "research_agent", "research_summary"}},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompts_users_prompts",
				Columns:    []*schema.Column{PromptsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_type",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[1]},
			},
			{
				Name:    "prompt_owner_user_id_type",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[8], PromptsColumns[1]},
			},
		},
	}
	// PromptGroupsColumns holds the columns for the "prompt_groups" table.
	PromptGroupsColumns = []*schema.Column{
		{Name: "prompt_group_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"deepresearch", "deeprag"}},
		{Name: "coordinator_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "planner_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "supervisor_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "summary_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// PromptGroupsTable holds the schema information for the "prompt_groups" table.
	PromptGroupsTable = &schema.Table{
		Name:       "prompt_groups",
		Columns:    PromptGroupsColumns,
		PrimaryKey: []*schema.Column{PromptGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_groups_users_prompt_groups",
				Columns:    []*schema.Column{PromptGroupsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptgroup_name_user_id_category",
				Unique:  true,
				Columns: []*schema.Column{PromptGroupsColumns[1], PromptGroupsColumns[10], PromptGroupsColumns[2]},
			},
		},
	}
	// ResearchMessagesColumns holds the columns for the "research_messages" table.
	ResearchMessagesColumns = []*schema.Column{
		{Name: "research_message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system_step", "system", "tool", "system_error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_intermediate", Type: field.TypeBool, Default: true},
		{Name: "metadata_json", Type: field.TypeJSON, Nullable: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ResearchMessagesTable holds the schema information for the "research_messages" table.
	ResearchMessagesTable = &schema.Table{
		Name:       "research_messages",
		Columns:    ResearchMessagesColumns,
		PrimaryKey: []*schema.Column{ResearchMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_messages_research_sessions_messages",
				Columns:    []*schema.Column{ResearchMessagesColumns[7]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchmessage_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ResearchMessagesColumns[7], ResearchMessagesColumns[5]},
			},
		},
	}
	// ResearchSessionsColumns holds the columns for the "research_sessions" table.
	ResearchSessionsColumns = []*schema.Column{
		{Name: "research_session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"deepresearch", "deeprag", "rag"}},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"pending", "coordinator", "planning", "supervising", "agent_running", "tools", "summarizing", "completed", "failed", "unknown_completion"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// ResearchSessionsTable holds the schema information for the "research_sessions" table.
	ResearchSessionsTable = &schema.Table{
		Name:       "research_sessions",
		Columns:    ResearchSessionsColumns,
		PrimaryKey: []*schema.Column{ResearchSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_sessions_users_research_sessions",
				Columns:    []*schema.Column{ResearchSessionsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[6], ResearchSessionsColumns[4]},
			},
			{
				Name:    "researchsession_processing_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "selected_character", Type: field.TypeEnum, Enums: []string{"none", "sakura", "miyabi"}, Default: "none"},
		{Name: "affinity_sakura", Type: field.TypeInt, Default: 0},
		{Name: "affinity_miyabi", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserPaperLinksColumns holds the columns for the "user_paper_links" table.
	UserPaperLinksColumns = []*schema.Column{
		{Name: "user_paper_link_id", Type: field.TypeString, Unique: true},
		{Name: "tags", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "memo", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "selected_default_summary_id", Type: field.TypeString, Nullable: true},
		{Name: "selected_custom_summary_id", Type: field.TypeString, Nullable: true},
		{Name: "last_accessed", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "paper_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// UserPaperLinksTable holds the schema information for the "user_paper_links" table.
	UserPaperLinksTable = &schema.Table{
		Name:       "user_paper_links",
		Columns:    UserPaperLinksColumns,
		PrimaryKey: []*schema.Column{UserPaperLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_paper_links_paper_metadata_user_links",
				Columns:    []*schema.Column{UserPaperLinksColumns[8]},
				RefColumns: []*schema.Column{PaperMetadataColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "user_paper_links_users_paper_links",
				Columns:    []*schema.Column{UserPaperLinksColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userpaperlink_user_id_paper_id",
				Unique:  true,
				Columns: []*schema.Column{UserPaperLinksColumns[9], UserPaperLinksColumns[8]},
			},
			{
				Name:    "userpaperlink_user_id_last_accessed",
				Unique:  false,
				Columns: []*schema.Column{UserPaperLinksColumns[9], UserPaperLinksColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomSummariesTable,
		DefaultSummariesTable,
		EditedSummariesTable,
		PaperChatMessagesTable,
		PaperChatSessionsTable,
		PaperMetadataTable,
		PromptsTable,
		PromptGroupsTable,
		ResearchMessagesTable,
		ResearchSessionsTable,
		UsersTable,
		UserPaperLinksTable,
	}
)

func init() {
	CustomSummariesTable.ForeignKeys[0].RefTable = PaperMetadataTable
	CustomSummariesTable.ForeignKeys[1].RefTable = PromptsTable
	CustomSummariesTable.ForeignKeys[2].RefTable = UsersTable
	DefaultSummariesTable.ForeignKeys[0].RefTable = PaperMetadataTable
	EditedSummariesTable.ForeignKeys[0].RefTable = UsersTable
	PaperChatMessagesTable.ForeignKeys[0].RefTable = PaperChatSessionsTable
	PaperChatSessionsTable.ForeignKeys[0].RefTable = UsersTable
	PromptsTable.ForeignKeys[0].RefTable = UsersTable
	PromptGroupsTable.ForeignKeys[0].RefTable = UsersTable
	ResearchMessagesTable.ForeignKeys[0].RefTable = ResearchSessionsTable
	ResearchSessionsTable.ForeignKeys[0].RefTable = UsersTable
	UserPaperLinksTable.ForeignKeys[0].RefTable = PaperMetadataTable
	UserPaperLinksTable.ForeignKeys[1].RefTable = UsersTable
}
