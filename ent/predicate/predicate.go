// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CustomSummary is the predicate function for customsummary builders.
type CustomSummary func(*sql.Selector)

// DefaultSummary is the predicate function for defaultsummary builders.
type DefaultSummary func(*sql.Selector)

// EditedSummary is the predicate function for editedsummary builders.
type EditedSummary func(*sql.Selector)

// PaperChatMessage is the predicate function for paperchatmessage builders.
type PaperChatMessage func(*sql.Selector)

// PaperChatSession is the predicate function for paperchatsession builders.
type PaperChatSession func(*sql.Selector)

// PaperMetadata is the predicate function for papermetadata builders.
type PaperMetadata func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// PromptGroup is the predicate function for promptgroup builders.
type PromptGroup func(*sql.Selector)

// ResearchMessage is the predicate function for researchmessage builders.
type ResearchMessage func(*sql.Selector)

// ResearchSession is the predicate function for researchsession builders.
type ResearchSession func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserPaperLink is the predicate function for userpaperlink builders.
type UserPaperLink func(*sql.Selector)
