// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCustomSummary    = "CustomSummary"
	TypeDefaultSummary   = "DefaultSummary"
	TypeEditedSummary    = "EditedSummary"
	TypePaperChatMessage = "PaperChatMessage"
	TypePaperChatSession = "PaperChatSession"
	TypePaperMetadata    = "PaperMetadata"
	TypePrompt           = "Prompt"
	TypePromptGroup      = "PromptGroup"
	TypeResearchMessage  = "ResearchMessage"
	TypeResearchSession  = "ResearchSession"
	TypeUser             = "User"
	TypeUserPaperLink    = "UserPaperLink"
)

// CustomSummaryMutation represents an operation that mutates the CustomSummary nodes in the graph.
type CustomSummaryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	llm_provider  *string
	llm_model     *string
	character     *customsummary.Character
	affinity      *int
	addaffinity   *int
	body          *string
	one_point     *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	paper         *string
	clearedpaper  bool
	prompt        *string
	clearedprompt bool
	done          bool
	oldValue      func(context.Context) (*CustomSummary, error)
	predicates    []predicate.CustomSummary
}

var _ ent.Mutation = (*CustomSummaryMutation)(nil)

// customsummaryOption allows management of the mutation configuration using functional options.
type customsummaryOption func(*CustomSummaryMutation)

// newCustomSummaryMutation creates new mutation for the CustomSummary entity.
func newCustomSummaryMutation(c config, op Op, opts ...customsummaryOption) *CustomSummaryMutation {
	m := &CustomSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomSummaryID sets the ID field of the mutation.
func withCustomSummaryID(id string) customsummaryOption {
	return func(m *CustomSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *CustomSummary
		)
		m.oldValue = func(ctx context.Context) (*CustomSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CustomSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomSummary sets the old CustomSummary of the mutation.
func withCustomSummary(node *CustomSummary) customsummaryOption {
	return func(m *CustomSummaryMutation) {
		m.oldValue = func(context.Context) (*CustomSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CustomSummary entities.
func (m *CustomSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CustomSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CustomSummaryMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CustomSummaryMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CustomSummaryMutation) ResetUserID() {
	m.user = nil
}

// SetPaperID sets the "paper_id" field.
func (m *CustomSummaryMutation) SetPaperID(s string) {
	m.paper = &s
}

// PaperID returns the value of the "paper_id" field in the mutation.
func (m *CustomSummaryMutation) PaperID() (r string, exists bool) {
	v := m.paper
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperID returns the old "paper_id" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldPaperID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperID: %w", err)
	}
	return oldValue.PaperID, nil
}

// ResetPaperID resets all changes to the "paper_id" field.
func (m *CustomSummaryMutation) ResetPaperID() {
	m.paper = nil
}

// SetPromptID sets the "prompt_id" field.
func (m *CustomSummaryMutation) SetPromptID(s string) {
	m.prompt = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *CustomSummaryMutation) PromptID() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldPromptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *CustomSummaryMutation) ResetPromptID() {
	m.prompt = nil
}

// SetLlmProvider sets the "llm_provider" field.
func (m *CustomSummaryMutation) SetLlmProvider(s string) {
	m.llm_provider = &s
}

// LlmProvider returns the value of the "llm_provider" field in the mutation.
func (m *CustomSummaryMutation) LlmProvider() (r string, exists bool) {
	v := m.llm_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProvider returns the old "llm_provider" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldLlmProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProvider: %w", err)
	}
	return oldValue.LlmProvider, nil
}

// ResetLlmProvider resets all changes to the "llm_provider" field.
func (m *CustomSummaryMutation) ResetLlmProvider() {
	m.llm_provider = nil
}

// SetLlmModel sets the "llm_model" field.
func (m *CustomSummaryMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *CustomSummaryMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldLlmModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *CustomSummaryMutation) ResetLlmModel() {
	m.llm_model = nil
}

// SetCharacter sets the "character" field.
func (m *CustomSummaryMutation) SetCharacter(c customsummary.Character) {
	m.character = &c
}

// Character returns the value of the "character" field in the mutation.
func (m *CustomSummaryMutation) Character() (r customsummary.Character, exists bool) {
	v := m.character
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacter returns the old "character" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldCharacter(ctx context.Context) (v customsummary.Character, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacter: %w", err)
	}
	return oldValue.Character, nil
}

// ResetCharacter resets all changes to the "character" field.
func (m *CustomSummaryMutation) ResetCharacter() {
	m.character = nil
}

// SetAffinity sets the "affinity" field.
func (m *CustomSummaryMutation) SetAffinity(i int) {
	m.affinity = &i
	m.addaffinity = nil
}

// Affinity returns the value of the "affinity" field in the mutation.
func (m *CustomSummaryMutation) Affinity() (r int, exists bool) {
	v := m.affinity
	if v == nil {
		return
	}
	return *v, true
}

// OldAffinity returns the old "affinity" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldAffinity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffinity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffinity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffinity: %w", err)
	}
	return oldValue.Affinity, nil
}

// AddAffinity adds i to the "affinity" field.
func (m *CustomSummaryMutation) AddAffinity(i int) {
	if m.addaffinity != nil {
		*m.addaffinity += i
	} else {
		m.addaffinity = &i
	}
}

// AddedAffinity returns the value that was added to the "affinity" field in this mutation.
func (m *CustomSummaryMutation) AddedAffinity() (r int, exists bool) {
	v := m.addaffinity
	if v == nil {
		return
	}
	return *v, true
}

// ResetAffinity resets all changes to the "affinity" field.
func (m *CustomSummaryMutation) ResetAffinity() {
	m.affinity = nil
	m.addaffinity = nil
}

// SetBody sets the "body" field.
func (m *CustomSummaryMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *CustomSummaryMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *CustomSummaryMutation) ResetBody() {
	m.body = nil
}

// SetOnePoint sets the "one_point" field.
func (m *CustomSummaryMutation) SetOnePoint(s string) {
	m.one_point = &s
}

// OnePoint returns the value of the "one_point" field in the mutation.
func (m *CustomSummaryMutation) OnePoint() (r string, exists bool) {
	v := m.one_point
	if v == nil {
		return
	}
	return *v, true
}

// OldOnePoint returns the old "one_point" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldOnePoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnePoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnePoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnePoint: %w", err)
	}
	return oldValue.OnePoint, nil
}

// ClearOnePoint clears the value of the "one_point" field.
func (m *CustomSummaryMutation) ClearOnePoint() {
	m.one_point = nil
	m.clearedFields[customsummary.FieldOnePoint] = struct{}{}
}

// OnePointCleared returns if the "one_point" field was cleared in this mutation.
func (m *CustomSummaryMutation) OnePointCleared() bool {
	_, ok := m.clearedFields[customsummary.FieldOnePoint]
	return ok
}

// ResetOnePoint resets all changes to the "one_point" field.
func (m *CustomSummaryMutation) ResetOnePoint() {
	m.one_point = nil
	delete(m.clearedFields, customsummary.FieldOnePoint)
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CustomSummary entity.
// If the CustomSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *CustomSummaryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[customsummary.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CustomSummaryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CustomSummaryMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CustomSummaryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearPaper clears the "paper" edge to the PaperMetadata entity.
func (m *CustomSummaryMutation) ClearPaper() {
	m.clearedpaper = true
	m.clearedFields[customsummary.FieldPaperID] = struct{}{}
}

// PaperCleared reports if the "paper" edge to the PaperMetadata entity was cleared.
func (m *CustomSummaryMutation) PaperCleared() bool {
	return m.clearedpaper
}

// PaperIDs returns the "paper" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaperID instead. It exists only for internal usage by the builders.
func (m *CustomSummaryMutation) PaperIDs() (ids []string) {
	if id := m.paper; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPaper resets all changes to the "paper" edge.
func (m *CustomSummaryMutation) ResetPaper() {
	m.paper = nil
	m.clearedpaper = false
}

// ClearPrompt clears the "prompt" edge to the Prompt entity.
func (m *CustomSummaryMutation) ClearPrompt() {
	m.clearedprompt = true
	m.clearedFields[customsummary.FieldPromptID] = struct{}{}
}

// PromptCleared reports if the "prompt" edge to the Prompt entity was cleared.
func (m *CustomSummaryMutation) PromptCleared() bool {
	return m.clearedprompt
}

// PromptIDs returns the "prompt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PromptID instead. It exists only for internal usage by the builders.
func (m *CustomSummaryMutation) PromptIDs() (ids []string) {
	if id := m.prompt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPrompt resets all changes to the "prompt" edge.
func (m *CustomSummaryMutation) ResetPrompt() {
	m.prompt = nil
	m.clearedprompt = false
}

// Where appends a list predicates to the CustomSummaryMutation builder.
func (m *CustomSummaryMutation) Where(ps ...predicate.CustomSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CustomSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CustomSummary).
func (m *CustomSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomSummaryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user != nil {
		fields = append(fields, customsummary.FieldUserID)
	}
	if m.paper != nil {
		fields = append(fields, customsummary.FieldPaperID)
	}
	if m.prompt != nil {
		fields = append(fields, customsummary.FieldPromptID)
	}
	if m.llm_provider != nil {
		fields = append(fields, customsummary.FieldLlmProvider)
	}
	if m.llm_model != nil {
		fields = append(fields, customsummary.FieldLlmModel)
	}
	if m.character != nil {
		fields = append(fields, customsummary.FieldCharacter)
	}
	if m.affinity != nil {
		fields = append(fields, customsummary.FieldAffinity)
	}
	if m.body != nil {
		fields = append(fields, customsummary.FieldBody)
	}
	if m.one_point != nil {
		fields = append(fields, customsummary.FieldOnePoint)
	}
	if m.created_at != nil {
		fields = append(fields, customsummary.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customsummary.FieldUserID:
		return m.UserID()
	case customsummary.FieldPaperID:
		return m.PaperID()
	case customsummary.FieldPromptID:
		return m.PromptID()
	case customsummary.FieldLlmProvider:
		return m.LlmProvider()
	case customsummary.FieldLlmModel:
		return m.LlmModel()
	case customsummary.FieldCharacter:
		return m.Character()
	case customsummary.FieldAffinity:
		return m.Affinity()
	case customsummary.FieldBody:
		return m.Body()
	case customsummary.FieldOnePoint:
		return m.OnePoint()
	case customsummary.FieldCreatedAt:
		return m.CreatedAt()
	case customsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customsummary.FieldUserID:
		return m.OldUserID(ctx)
	case customsummary.FieldPaperID:
		return m.OldPaperID(ctx)
	case customsummary.FieldPromptID:
		return m.OldPromptID(ctx)
	case customsummary.FieldLlmProvider:
		return m.OldLlmProvider(ctx)
	case customsummary.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case customsummary.FieldCharacter:
		return m.OldCharacter(ctx)
	case customsummary.FieldAffinity:
		return m.OldAffinity(ctx)
	case customsummary.FieldBody:
		return m.OldBody(ctx)
	case customsummary.FieldOnePoint:
		return m.OldOnePoint(ctx)
	case customsummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CustomSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customsummary.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case customsummary.FieldPaperID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperID(v)
		return nil
	case customsummary.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case customsummary.FieldLlmProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProvider(v)
		return nil
	case customsummary.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case customsummary.FieldCharacter:
		v, ok := value.(customsummary.Character)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacter(v)
		return nil
	case customsummary.FieldAffinity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffinity(v)
		return nil
	case customsummary.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case customsummary.FieldOnePoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnePoint(v)
		return nil
	case customsummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CustomSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addaffinity != nil {
		fields = append(fields, customsummary.FieldAffinity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case customsummary.FieldAffinity:
		return m.AddedAffinity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case customsummary.FieldAffinity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAffinity(v)
		return nil
	}
	return fmt.Errorf("unknown CustomSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customsummary.FieldOnePoint) {
		fields = append(fields, customsummary.FieldOnePoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomSummaryMutation) ClearField(name string) error {
	switch name {
	case customsummary.FieldOnePoint:
		m.ClearOnePoint()
		return nil
	}
	return fmt.Errorf("unknown CustomSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomSummaryMutation) ResetField(name string) error {
	switch name {
	case customsummary.FieldUserID:
		m.ResetUserID()
		return nil
	case customsummary.FieldPaperID:
		m.ResetPaperID()
		return nil
	case customsummary.FieldPromptID:
		m.ResetPromptID()
		return nil
	case customsummary.FieldLlmProvider:
		m.ResetLlmProvider()
		return nil
	case customsummary.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case customsummary.FieldCharacter:
		m.ResetCharacter()
		return nil
	case customsummary.FieldAffinity:
		m.ResetAffinity()
		return nil
	case customsummary.FieldBody:
		m.ResetBody()
		return nil
	case customsummary.FieldOnePoint:
		m.ResetOnePoint()
		return nil
	case customsummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CustomSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, customsummary.EdgeUser)
	}
	if m.paper != nil {
		edges = append(edges, customsummary.EdgePaper)
	}
	if m.prompt != nil {
		edges = append(edges, customsummary.EdgePrompt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case customsummary.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case customsummary.EdgePaper:
		if id := m.paper; id != nil {
			return []ent.Value{*id}
		}
	case customsummary.EdgePrompt:
		if id := m.prompt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, customsummary.EdgeUser)
	}
	if m.clearedpaper {
		edges = append(edges, customsummary.EdgePaper)
	}
	if m.clearedprompt {
		edges = append(edges, customsummary.EdgePrompt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case customsummary.EdgeUser:
		return m.cleareduser
	case customsummary.EdgePaper:
		return m.clearedpaper
	case customsummary.EdgePrompt:
		return m.clearedprompt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomSummaryMutation) ClearEdge(name string) error {
	switch name {
	case customsummary.EdgeUser:
		m.ClearUser()
		return nil
	case customsummary.EdgePaper:
		m.ClearPaper()
		return nil
	case customsummary.EdgePrompt:
		m.ClearPrompt()
		return nil
	}
	return fmt.Errorf("unknown CustomSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomSummaryMutation) ResetEdge(name string) error {
	switch name {
	case customsummary.EdgeUser:
		m.ResetUser()
		return nil
	case customsummary.EdgePaper:
		m.ResetPaper()
		return nil
	case customsummary.EdgePrompt:
		m.ResetPrompt()
		return nil
	}
	return fmt.Errorf("unknown CustomSummary edge %s", name)
}

// DefaultSummaryMutation represents an operation that mutates the DefaultSummary nodes in the graph.
type DefaultSummaryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	llm_provider  *string
	llm_model     *string
	character     *defaultsummary.Character
	affinity      *int
	addaffinity   *int
	body          *string
	one_point     *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	paper         *string
	clearedpaper  bool
	done          bool
	oldValue      func(context.Context) (*DefaultSummary, error)
	predicates    []predicate.DefaultSummary
}

var _ ent.Mutation = (*DefaultSummaryMutation)(nil)

// defaultsummaryOption allows management of the mutation configuration using functional options.
type defaultsummaryOption func(*DefaultSummaryMutation)

// newDefaultSummaryMutation creates new mutation for the DefaultSummary entity.
func newDefaultSummaryMutation(c config, op Op, opts ...defaultsummaryOption) *DefaultSummaryMutation {
	m := &DefaultSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeDefaultSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDefaultSummaryID sets the ID field of the mutation.
func withDefaultSummaryID(id string) defaultsummaryOption {
	return func(m *DefaultSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *DefaultSummary
		)
		m.oldValue = func(ctx context.Context) (*DefaultSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DefaultSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDefaultSummary sets the old DefaultSummary of the mutation.
func withDefaultSummary(node *DefaultSummary) defaultsummaryOption {
	return func(m *DefaultSummaryMutation) {
		m.oldValue = func(context.Context) (*DefaultSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DefaultSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DefaultSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DefaultSummary entities.
func (m *DefaultSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DefaultSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DefaultSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DefaultSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaperID sets the "paper_id" field.
func (m *DefaultSummaryMutation) SetPaperID(s string) {
	m.paper = &s
}

// PaperID returns the value of the "paper_id" field in the mutation.
func (m *DefaultSummaryMutation) PaperID() (r string, exists bool) {
	v := m.paper
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperID returns the old "paper_id" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldPaperID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperID: %w", err)
	}
	return oldValue.PaperID, nil
}

// ResetPaperID resets all changes to the "paper_id" field.
func (m *DefaultSummaryMutation) ResetPaperID() {
	m.paper = nil
}

// SetLlmProvider sets the "llm_provider" field.
func (m *DefaultSummaryMutation) SetLlmProvider(s string) {
	m.llm_provider = &s
}

// LlmProvider returns the value of the "llm_provider" field in the mutation.
func (m *DefaultSummaryMutation) LlmProvider() (r string, exists bool) {
	v := m.llm_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProvider returns the old "llm_provider" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldLlmProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProvider: %w", err)
	}
	return oldValue.LlmProvider, nil
}

// ResetLlmProvider resets all changes to the "llm_provider" field.
func (m *DefaultSummaryMutation) ResetLlmProvider() {
	m.llm_provider = nil
}

// SetLlmModel sets the "llm_model" field.
func (m *DefaultSummaryMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *DefaultSummaryMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldLlmModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *DefaultSummaryMutation) ResetLlmModel() {
	m.llm_model = nil
}

// SetCharacter sets the "character" field.
func (m *DefaultSummaryMutation) SetCharacter(d defaultsummary.Character) {
	m.character = &d
}

// Character returns the value of the "character" field in the mutation.
func (m *DefaultSummaryMutation) Character() (r defaultsummary.Character, exists bool) {
	v := m.character
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacter returns the old "character" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldCharacter(ctx context.Context) (v defaultsummary.Character, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacter: %w", err)
	}
	return oldValue.Character, nil
}

// ResetCharacter resets all changes to the "character" field.
func (m *DefaultSummaryMutation) ResetCharacter() {
	m.character = nil
}

// SetAffinity sets the "affinity" field.
func (m *DefaultSummaryMutation) SetAffinity(i int) {
	m.affinity = &i
	m.addaffinity = nil
}

// Affinity returns the value of the "affinity" field in the mutation.
func (m *DefaultSummaryMutation) Affinity() (r int, exists bool) {
	v := m.affinity
	if v == nil {
		return
	}
	return *v, true
}

// OldAffinity returns the old "affinity" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldAffinity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffinity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffinity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffinity: %w", err)
	}
	return oldValue.Affinity, nil
}

// AddAffinity adds i to the "affinity" field.
func (m *DefaultSummaryMutation) AddAffinity(i int) {
	if m.addaffinity != nil {
		*m.addaffinity += i
	} else {
		m.addaffinity = &i
	}
}

// AddedAffinity returns the value that was added to the "affinity" field in this mutation.
func (m *DefaultSummaryMutation) AddedAffinity() (r int, exists bool) {
	v := m.addaffinity
	if v == nil {
		return
	}
	return *v, true
}

// ResetAffinity resets all changes to the "affinity" field.
func (m *DefaultSummaryMutation) ResetAffinity() {
	m.affinity = nil
	m.addaffinity = nil
}

// SetBody sets the "body" field.
func (m *DefaultSummaryMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *DefaultSummaryMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *DefaultSummaryMutation) ResetBody() {
	m.body = nil
}

// SetOnePoint sets the "one_point" field.
func (m *DefaultSummaryMutation) SetOnePoint(s string) {
	m.one_point = &s
}

// OnePoint returns the value of the "one_point" field in the mutation.
func (m *DefaultSummaryMutation) OnePoint() (r string, exists bool) {
	v := m.one_point
	if v == nil {
		return
	}
	return *v, true
}

// OldOnePoint returns the old "one_point" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldOnePoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnePoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnePoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnePoint: %w", err)
	}
	return oldValue.OnePoint, nil
}

// ClearOnePoint clears the value of the "one_point" field.
func (m *DefaultSummaryMutation) ClearOnePoint() {
	m.one_point = nil
	m.clearedFields[defaultsummary.FieldOnePoint] = struct{}{}
}

// OnePointCleared returns if the "one_point" field was cleared in this mutation.
func (m *DefaultSummaryMutation) OnePointCleared() bool {
	_, ok := m.clearedFields[defaultsummary.FieldOnePoint]
	return ok
}

// ResetOnePoint resets all changes to the "one_point" field.
func (m *DefaultSummaryMutation) ResetOnePoint() {
	m.one_point = nil
	delete(m.clearedFields, defaultsummary.FieldOnePoint)
}

// SetCreatedAt sets the "created_at" field.
func (m *DefaultSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DefaultSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DefaultSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DefaultSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DefaultSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DefaultSummary entity.
// If the DefaultSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefaultSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DefaultSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPaper clears the "paper" edge to the PaperMetadata entity.
func (m *DefaultSummaryMutation) ClearPaper() {
	m.clearedpaper = true
	m.clearedFields[defaultsummary.FieldPaperID] = struct{}{}
}

// PaperCleared reports if the "paper" edge to the PaperMetadata entity was cleared.
func (m *DefaultSummaryMutation) PaperCleared() bool {
	return m.clearedpaper
}

// PaperIDs returns the "paper" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaperID instead. It exists only for internal usage by the builders.
func (m *DefaultSummaryMutation) PaperIDs() (ids []string) {
	if id := m.paper; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPaper resets all changes to the "paper" edge.
func (m *DefaultSummaryMutation) ResetPaper() {
	m.paper = nil
	m.clearedpaper = false
}

// Where appends a list predicates to the DefaultSummaryMutation builder.
func (m *DefaultSummaryMutation) Where(ps ...predicate.DefaultSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DefaultSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DefaultSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DefaultSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DefaultSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DefaultSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DefaultSummary).
func (m *DefaultSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DefaultSummaryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.paper != nil {
		fields = append(fields, defaultsummary.FieldPaperID)
	}
	if m.llm_provider != nil {
		fields = append(fields, defaultsummary.FieldLlmProvider)
	}
	if m.llm_model != nil {
		fields = append(fields, defaultsummary.FieldLlmModel)
	}
	if m.character != nil {
		fields = append(fields, defaultsummary.FieldCharacter)
	}
	if m.affinity != nil {
		fields = append(fields, defaultsummary.FieldAffinity)
	}
	if m.body != nil {
		fields = append(fields, defaultsummary.FieldBody)
	}
	if m.one_point != nil {
		fields = append(fields, defaultsummary.FieldOnePoint)
	}
	if m.created_at != nil {
		fields = append(fields, defaultsummary.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, defaultsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DefaultSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case defaultsummary.FieldPaperID:
		return m.PaperID()
	case defaultsummary.FieldLlmProvider:
		return m.LlmProvider()
	case defaultsummary.FieldLlmModel:
		return m.LlmModel()
	case defaultsummary.FieldCharacter:
		return m.Character()
	case defaultsummary.FieldAffinity:
		return m.Affinity()
	case defaultsummary.FieldBody:
		return m.Body()
	case defaultsummary.FieldOnePoint:
		return m.OnePoint()
	case defaultsummary.FieldCreatedAt:
		return m.CreatedAt()
	case defaultsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DefaultSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case defaultsummary.FieldPaperID:
		return m.OldPaperID(ctx)
	case defaultsummary.FieldLlmProvider:
		return m.OldLlmProvider(ctx)
	case defaultsummary.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case defaultsummary.FieldCharacter:
		return m.OldCharacter(ctx)
	case defaultsummary.FieldAffinity:
		return m.OldAffinity(ctx)
	case defaultsummary.FieldBody:
		return m.OldBody(ctx)
	case defaultsummary.FieldOnePoint:
		return m.OldOnePoint(ctx)
	case defaultsummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case defaultsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DefaultSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DefaultSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case defaultsummary.FieldPaperID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperID(v)
		return nil
	case defaultsummary.FieldLlmProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProvider(v)
		return nil
	case defaultsummary.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case defaultsummary.FieldCharacter:
		v, ok := value.(defaultsummary.Character)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacter(v)
		return nil
	case defaultsummary.FieldAffinity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffinity(v)
		return nil
	case defaultsummary.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case defaultsummary.FieldOnePoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnePoint(v)
		return nil
	case defaultsummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case defaultsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DefaultSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DefaultSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addaffinity != nil {
		fields = append(fields, defaultsummary.FieldAffinity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DefaultSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case defaultsummary.FieldAffinity:
		return m.AddedAffinity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DefaultSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case defaultsummary.FieldAffinity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAffinity(v)
		return nil
	}
	return fmt.Errorf("unknown DefaultSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DefaultSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(defaultsummary.FieldOnePoint) {
		fields = append(fields, defaultsummary.FieldOnePoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DefaultSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DefaultSummaryMutation) ClearField(name string) error {
	switch name {
	case defaultsummary.FieldOnePoint:
		m.ClearOnePoint()
		return nil
	}
	return fmt.Errorf("unknown DefaultSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DefaultSummaryMutation) ResetField(name string) error {
	switch name {
	case defaultsummary.FieldPaperID:
		m.ResetPaperID()
		return nil
	case defaultsummary.FieldLlmProvider:
		m.ResetLlmProvider()
		return nil
	case defaultsummary.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case defaultsummary.FieldCharacter:
		m.ResetCharacter()
		return nil
	case defaultsummary.FieldAffinity:
		m.ResetAffinity()
		return nil
	case defaultsummary.FieldBody:
		m.ResetBody()
		return nil
	case defaultsummary.FieldOnePoint:
		m.ResetOnePoint()
		return nil
	case defaultsummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case defaultsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DefaultSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DefaultSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.paper != nil {
		edges = append(edges, defaultsummary.EdgePaper)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DefaultSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case defaultsummary.EdgePaper:
		if id := m.paper; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DefaultSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DefaultSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DefaultSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpaper {
		edges = append(edges, defaultsummary.EdgePaper)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DefaultSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case defaultsummary.EdgePaper:
		return m.clearedpaper
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DefaultSummaryMutation) ClearEdge(name string) error {
	switch name {
	case defaultsummary.EdgePaper:
		m.ClearPaper()
		return nil
	}
	return fmt.Errorf("unknown DefaultSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DefaultSummaryMutation) ResetEdge(name string) error {
	switch name {
	case defaultsummary.EdgePaper:
		m.ResetPaper()
		return nil
	}
	return fmt.Errorf("unknown DefaultSummary edge %s", name)
}

// EditedSummaryMutation represents an operation that mutates the EditedSummary nodes in the graph.
type EditedSummaryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	default_summary_id *string
	custom_summary_id  *string
	body               *string
	one_point          *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	user               *string
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*EditedSummary, error)
	predicates         []predicate.EditedSummary
}

var _ ent.Mutation = (*EditedSummaryMutation)(nil)

// editedsummaryOption allows management of the mutation configuration using functional options.
type editedsummaryOption func(*EditedSummaryMutation)

// newEditedSummaryMutation creates new mutation for the EditedSummary entity.
func newEditedSummaryMutation(c config, op Op, opts ...editedsummaryOption) *EditedSummaryMutation {
	m := &EditedSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeEditedSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEditedSummaryID sets the ID field of the mutation.
func withEditedSummaryID(id string) editedsummaryOption {
	return func(m *EditedSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *EditedSummary
		)
		m.oldValue = func(ctx context.Context) (*EditedSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EditedSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEditedSummary sets the old EditedSummary of the mutation.
func withEditedSummary(node *EditedSummary) editedsummaryOption {
	return func(m *EditedSummaryMutation) {
		m.oldValue = func(context.Context) (*EditedSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EditedSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EditedSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EditedSummary entities.
func (m *EditedSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EditedSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EditedSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EditedSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EditedSummaryMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EditedSummaryMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EditedSummaryMutation) ResetUserID() {
	m.user = nil
}

// SetDefaultSummaryID sets the "default_summary_id" field.
func (m *EditedSummaryMutation) SetDefaultSummaryID(s string) {
	m.default_summary_id = &s
}

// DefaultSummaryID returns the value of the "default_summary_id" field in the mutation.
func (m *EditedSummaryMutation) DefaultSummaryID() (r string, exists bool) {
	v := m.default_summary_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultSummaryID returns the old "default_summary_id" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldDefaultSummaryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultSummaryID: %w", err)
	}
	return oldValue.DefaultSummaryID, nil
}

// ClearDefaultSummaryID clears the value of the "default_summary_id" field.
func (m *EditedSummaryMutation) ClearDefaultSummaryID() {
	m.default_summary_id = nil
	m.clearedFields[editedsummary.FieldDefaultSummaryID] = struct{}{}
}

// DefaultSummaryIDCleared returns if the "default_summary_id" field was cleared in this mutation.
func (m *EditedSummaryMutation) DefaultSummaryIDCleared() bool {
	_, ok := m.clearedFields[editedsummary.FieldDefaultSummaryID]
	return ok
}

// ResetDefaultSummaryID resets all changes to the "default_summary_id" field.
func (m *EditedSummaryMutation) ResetDefaultSummaryID() {
	m.default_summary_id = nil
	delete(m.clearedFields, editedsummary.FieldDefaultSummaryID)
}

// SetCustomSummaryID sets the "custom_summary_id" field.
func (m *EditedSummaryMutation) SetCustomSummaryID(s string) {
	m.custom_summary_id = &s
}

// CustomSummaryID returns the value of the "custom_summary_id" field in the mutation.
func (m *EditedSummaryMutation) CustomSummaryID() (r string, exists bool) {
	v := m.custom_summary_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomSummaryID returns the old "custom_summary_id" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldCustomSummaryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomSummaryID: %w", err)
	}
	return oldValue.CustomSummaryID, nil
}

// ClearCustomSummaryID clears the value of the "custom_summary_id" field.
func (m *EditedSummaryMutation) ClearCustomSummaryID() {
	m.custom_summary_id = nil
	m.clearedFields[editedsummary.FieldCustomSummaryID] = struct{}{}
}

// CustomSummaryIDCleared returns if the "custom_summary_id" field was cleared in this mutation.
func (m *EditedSummaryMutation) CustomSummaryIDCleared() bool {
	_, ok := m.clearedFields[editedsummary.FieldCustomSummaryID]
	return ok
}

// ResetCustomSummaryID resets all changes to the "custom_summary_id" field.
func (m *EditedSummaryMutation) ResetCustomSummaryID() {
	m.custom_summary_id = nil
	delete(m.clearedFields, editedsummary.FieldCustomSummaryID)
}

// SetBody sets the "body" field.
func (m *EditedSummaryMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *EditedSummaryMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *EditedSummaryMutation) ResetBody() {
	m.body = nil
}

// SetOnePoint sets the "one_point" field.
func (m *EditedSummaryMutation) SetOnePoint(s string) {
	m.one_point = &s
}

// OnePoint returns the value of the "one_point" field in the mutation.
func (m *EditedSummaryMutation) OnePoint() (r string, exists bool) {
	v := m.one_point
	if v == nil {
		return
	}
	return *v, true
}

// OldOnePoint returns the old "one_point" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldOnePoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnePoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnePoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnePoint: %w", err)
	}
	return oldValue.OnePoint, nil
}

// ClearOnePoint clears the value of the "one_point" field.
func (m *EditedSummaryMutation) ClearOnePoint() {
	m.one_point = nil
	m.clearedFields[editedsummary.FieldOnePoint] = struct{}{}
}

// OnePointCleared returns if the "one_point" field was cleared in this mutation.
func (m *EditedSummaryMutation) OnePointCleared() bool {
	_, ok := m.clearedFields[editedsummary.FieldOnePoint]
	return ok
}

// ResetOnePoint resets all changes to the "one_point" field.
func (m *EditedSummaryMutation) ResetOnePoint() {
	m.one_point = nil
	delete(m.clearedFields, editedsummary.FieldOnePoint)
}

// SetCreatedAt sets the "created_at" field.
func (m *EditedSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EditedSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EditedSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EditedSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EditedSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EditedSummary entity.
// If the EditedSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditedSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EditedSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *EditedSummaryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[editedsummary.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *EditedSummaryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *EditedSummaryMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *EditedSummaryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the EditedSummaryMutation builder.
func (m *EditedSummaryMutation) Where(ps ...predicate.EditedSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EditedSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EditedSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EditedSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EditedSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EditedSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EditedSummary).
func (m *EditedSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EditedSummaryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, editedsummary.FieldUserID)
	}
	if m.default_summary_id != nil {
		fields = append(fields, editedsummary.FieldDefaultSummaryID)
	}
	if m.custom_summary_id != nil {
		fields = append(fields, editedsummary.FieldCustomSummaryID)
	}
	if m.body != nil {
		fields = append(fields, editedsummary.FieldBody)
	}
	if m.one_point != nil {
		fields = append(fields, editedsummary.FieldOnePoint)
	}
	if m.created_at != nil {
		fields = append(fields, editedsummary.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, editedsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EditedSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case editedsummary.FieldUserID:
		return m.UserID()
	case editedsummary.FieldDefaultSummaryID:
		return m.DefaultSummaryID()
	case editedsummary.FieldCustomSummaryID:
		return m.CustomSummaryID()
	case editedsummary.FieldBody:
		return m.Body()
	case editedsummary.FieldOnePoint:
		return m.OnePoint()
	case editedsummary.FieldCreatedAt:
		return m.CreatedAt()
	case editedsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EditedSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case editedsummary.FieldUserID:
		return m.OldUserID(ctx)
	case editedsummary.FieldDefaultSummaryID:
		return m.OldDefaultSummaryID(ctx)
	case editedsummary.FieldCustomSummaryID:
		return m.OldCustomSummaryID(ctx)
	case editedsummary.FieldBody:
		return m.OldBody(ctx)
	case editedsummary.FieldOnePoint:
		return m.OldOnePoint(ctx)
	case editedsummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case editedsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EditedSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditedSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case editedsummary.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case editedsummary.FieldDefaultSummaryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultSummaryID(v)
		return nil
	case editedsummary.FieldCustomSummaryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomSummaryID(v)
		return nil
	case editedsummary.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case editedsummary.FieldOnePoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnePoint(v)
		return nil
	case editedsummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case editedsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EditedSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EditedSummaryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EditedSummaryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditedSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EditedSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EditedSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(editedsummary.FieldDefaultSummaryID) {
		fields = append(fields, editedsummary.FieldDefaultSummaryID)
	}
	if m.FieldCleared(editedsummary.FieldCustomSummaryID) {
		fields = append(fields, editedsummary.FieldCustomSummaryID)
	}
	if m.FieldCleared(editedsummary.FieldOnePoint) {
		fields = append(fields, editedsummary.FieldOnePoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EditedSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EditedSummaryMutation) ClearField(name string) error {
	switch name {
	case editedsummary.FieldDefaultSummaryID:
		m.ClearDefaultSummaryID()
		return nil
	case editedsummary.FieldCustomSummaryID:
		m.ClearCustomSummaryID()
		return nil
	case editedsummary.FieldOnePoint:
		m.ClearOnePoint()
		return nil
	}
	return fmt.Errorf("unknown EditedSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EditedSummaryMutation) ResetField(name string) error {
	switch name {
	case editedsummary.FieldUserID:
		m.ResetUserID()
		return nil
	case editedsummary.FieldDefaultSummaryID:
		m.ResetDefaultSummaryID()
		return nil
	case editedsummary.FieldCustomSummaryID:
		m.ResetCustomSummaryID()
		return nil
	case editedsummary.FieldBody:
		m.ResetBody()
		return nil
	case editedsummary.FieldOnePoint:
		m.ResetOnePoint()
		return nil
	case editedsummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case editedsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EditedSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EditedSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, editedsummary.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EditedSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case editedsummary.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EditedSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EditedSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EditedSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, editedsummary.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EditedSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case editedsummary.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EditedSummaryMutation) ClearEdge(name string) error {
	switch name {
	case editedsummary.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown EditedSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EditedSummaryMutation) ResetEdge(name string) error {
	switch name {
	case editedsummary.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown EditedSummary edge %s", name)
}

// PaperChatMessageMutation represents an operation that mutates the PaperChatMessage nodes in the graph.
type PaperChatMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	role           *paperchatmessage.Role
	content        *string
	sequence       *int
	addsequence    *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*PaperChatMessage, error)
	predicates     []predicate.PaperChatMessage
}

var _ ent.Mutation = (*PaperChatMessageMutation)(nil)

// paperchatmessageOption allows management of the mutation configuration using functional options.
type paperchatmessageOption func(*PaperChatMessageMutation)

// newPaperChatMessageMutation creates new mutation for the PaperChatMessage entity.
func newPaperChatMessageMutation(c config, op Op, opts ...paperchatmessageOption) *PaperChatMessageMutation {
	m := &PaperChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypePaperChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperChatMessageID sets the ID field of the mutation.
func withPaperChatMessageID(id string) paperchatmessageOption {
	return func(m *PaperChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *PaperChatMessage
		)
		m.oldValue = func(ctx context.Context) (*PaperChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaperChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaperChatMessage sets the old PaperChatMessage of the mutation.
func withPaperChatMessage(node *PaperChatMessage) paperchatmessageOption {
	return func(m *PaperChatMessageMutation) {
		m.oldValue = func(context.Context) (*PaperChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaperChatMessage entities.
func (m *PaperChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaperChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PaperChatMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PaperChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PaperChatMessage entity.
// If the PaperChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PaperChatMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *PaperChatMessageMutation) SetRole(pa paperchatmessage.Role) {
	m.role = &pa
}

// Role returns the value of the "role" field in the mutation.
func (m *PaperChatMessageMutation) Role() (r paperchatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the PaperChatMessage entity.
// If the PaperChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatMessageMutation) OldRole(ctx context.Context) (v paperchatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *PaperChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *PaperChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PaperChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PaperChatMessage entity.
// If the PaperChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PaperChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetSequence sets the "sequence" field.
func (m *PaperChatMessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PaperChatMessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PaperChatMessage entity.
// If the PaperChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatMessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PaperChatMessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PaperChatMessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PaperChatMessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PaperChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaperChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaperChatMessage entity.
// If the PaperChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaperChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the PaperChatSession entity.
func (m *PaperChatMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[paperchatmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PaperChatSession entity was cleared.
func (m *PaperChatMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PaperChatMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PaperChatMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the PaperChatMessageMutation builder.
func (m *PaperChatMessageMutation) Where(ps ...predicate.PaperChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaperChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaperChatMessage).
func (m *PaperChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, paperchatmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, paperchatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, paperchatmessage.FieldContent)
	}
	if m.sequence != nil {
		fields = append(fields, paperchatmessage.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, paperchatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paperchatmessage.FieldSessionID:
		return m.SessionID()
	case paperchatmessage.FieldRole:
		return m.Role()
	case paperchatmessage.FieldContent:
		return m.Content()
	case paperchatmessage.FieldSequence:
		return m.Sequence()
	case paperchatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paperchatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case paperchatmessage.FieldRole:
		return m.OldRole(ctx)
	case paperchatmessage.FieldContent:
		return m.OldContent(ctx)
	case paperchatmessage.FieldSequence:
		return m.OldSequence(ctx)
	case paperchatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaperChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paperchatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case paperchatmessage.FieldRole:
		v, ok := value.(paperchatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case paperchatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case paperchatmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case paperchatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaperChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, paperchatmessage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paperchatmessage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paperchatmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PaperChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperChatMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperChatMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PaperChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperChatMessageMutation) ResetField(name string) error {
	switch name {
	case paperchatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case paperchatmessage.FieldRole:
		m.ResetRole()
		return nil
	case paperchatmessage.FieldContent:
		m.ResetContent()
		return nil
	case paperchatmessage.FieldSequence:
		m.ResetSequence()
		return nil
	case paperchatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaperChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, paperchatmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paperchatmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, paperchatmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case paperchatmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case paperchatmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown PaperChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case paperchatmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown PaperChatMessage edge %s", name)
}

// PaperChatSessionMutation represents an operation that mutates the PaperChatSession nodes in the graph.
type PaperChatSessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	paper_id          *string
	title             *string
	processing_status *paperchatsession.ProcessingStatus
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	user              *string
	cleareduser       bool
	messages          map[string]struct{}
	removedmessages   map[string]struct{}
	clearedmessages   bool
	done              bool
	oldValue          func(context.Context) (*PaperChatSession, error)
	predicates        []predicate.PaperChatSession
}

var _ ent.Mutation = (*PaperChatSessionMutation)(nil)

// paperchatsessionOption allows management of the mutation configuration using functional options.
type paperchatsessionOption func(*PaperChatSessionMutation)

// newPaperChatSessionMutation creates new mutation for the PaperChatSession entity.
func newPaperChatSessionMutation(c config, op Op, opts ...paperchatsessionOption) *PaperChatSessionMutation {
	m := &PaperChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePaperChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperChatSessionID sets the ID field of the mutation.
func withPaperChatSessionID(id string) paperchatsessionOption {
	return func(m *PaperChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PaperChatSession
		)
		m.oldValue = func(ctx context.Context) (*PaperChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaperChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaperChatSession sets the old PaperChatSession of the mutation.
func withPaperChatSession(node *PaperChatSession) paperchatsessionOption {
	return func(m *PaperChatSessionMutation) {
		m.oldValue = func(context.Context) (*PaperChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaperChatSession entities.
func (m *PaperChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaperChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PaperChatSessionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PaperChatSessionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PaperChatSession entity.
// If the PaperChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PaperChatSessionMutation) ResetUserID() {
	m.user = nil
}

// SetPaperID sets the "paper_id" field.
func (m *PaperChatSessionMutation) SetPaperID(s string) {
	m.paper_id = &s
}

// PaperID returns the value of the "paper_id" field in the mutation.
func (m *PaperChatSessionMutation) PaperID() (r string, exists bool) {
	v := m.paper_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperID returns the old "paper_id" field's value of the PaperChatSession entity.
// If the PaperChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatSessionMutation) OldPaperID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperID: %w", err)
	}
	return oldValue.PaperID, nil
}

// ResetPaperID resets all changes to the "paper_id" field.
func (m *PaperChatSessionMutation) ResetPaperID() {
	m.paper_id = nil
}

// SetTitle sets the "title" field.
func (m *PaperChatSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PaperChatSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PaperChatSession entity.
// If the PaperChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *PaperChatSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[paperchatsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *PaperChatSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[paperchatsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *PaperChatSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, paperchatsession.FieldTitle)
}

// SetProcessingStatus sets the "processing_status" field.
func (m *PaperChatSessionMutation) SetProcessingStatus(ps paperchatsession.ProcessingStatus) {
	m.processing_status = &ps
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *PaperChatSessionMutation) ProcessingStatus() (r paperchatsession.ProcessingStatus, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the PaperChatSession entity.
// If the PaperChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatSessionMutation) OldProcessingStatus(ctx context.Context) (v paperchatsession.ProcessingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *PaperChatSessionMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PaperChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaperChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaperChatSession entity.
// If the PaperChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaperChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaperChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaperChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaperChatSession entity.
// If the PaperChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaperChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PaperChatSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[paperchatsession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PaperChatSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PaperChatSessionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PaperChatSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddMessageIDs adds the "messages" edge to the PaperChatMessage entity by ids.
func (m *PaperChatSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the PaperChatMessage entity.
func (m *PaperChatSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the PaperChatMessage entity was cleared.
func (m *PaperChatSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the PaperChatMessage entity by IDs.
func (m *PaperChatSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the PaperChatMessage entity.
func (m *PaperChatSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *PaperChatSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *PaperChatSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the PaperChatSessionMutation builder.
func (m *PaperChatSessionMutation) Where(ps ...predicate.PaperChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaperChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaperChatSession).
func (m *PaperChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, paperchatsession.FieldUserID)
	}
	if m.paper_id != nil {
		fields = append(fields, paperchatsession.FieldPaperID)
	}
	if m.title != nil {
		fields = append(fields, paperchatsession.FieldTitle)
	}
	if m.processing_status != nil {
		fields = append(fields, paperchatsession.FieldProcessingStatus)
	}
	if m.created_at != nil {
		fields = append(fields, paperchatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paperchatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paperchatsession.FieldUserID:
		return m.UserID()
	case paperchatsession.FieldPaperID:
		return m.PaperID()
	case paperchatsession.FieldTitle:
		return m.Title()
	case paperchatsession.FieldProcessingStatus:
		return m.ProcessingStatus()
	case paperchatsession.FieldCreatedAt:
		return m.CreatedAt()
	case paperchatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paperchatsession.FieldUserID:
		return m.OldUserID(ctx)
	case paperchatsession.FieldPaperID:
		return m.OldPaperID(ctx)
	case paperchatsession.FieldTitle:
		return m.OldTitle(ctx)
	case paperchatsession.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case paperchatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paperchatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaperChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paperchatsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case paperchatsession.FieldPaperID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperID(v)
		return nil
	case paperchatsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case paperchatsession.FieldProcessingStatus:
		v, ok := value.(paperchatsession.ProcessingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case paperchatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paperchatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaperChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperChatSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PaperChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paperchatsession.FieldTitle) {
		fields = append(fields, paperchatsession.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperChatSessionMutation) ClearField(name string) error {
	switch name {
	case paperchatsession.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown PaperChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperChatSessionMutation) ResetField(name string) error {
	switch name {
	case paperchatsession.FieldUserID:
		m.ResetUserID()
		return nil
	case paperchatsession.FieldPaperID:
		m.ResetPaperID()
		return nil
	case paperchatsession.FieldTitle:
		m.ResetTitle()
		return nil
	case paperchatsession.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case paperchatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paperchatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaperChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, paperchatsession.EdgeUser)
	}
	if m.messages != nil {
		edges = append(edges, paperchatsession.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paperchatsession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case paperchatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, paperchatsession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case paperchatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, paperchatsession.EdgeUser)
	}
	if m.clearedmessages {
		edges = append(edges, paperchatsession.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case paperchatsession.EdgeUser:
		return m.cleareduser
	case paperchatsession.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperChatSessionMutation) ClearEdge(name string) error {
	switch name {
	case paperchatsession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PaperChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case paperchatsession.EdgeUser:
		m.ResetUser()
		return nil
	case paperchatsession.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown PaperChatSession edge %s", name)
}

// PaperMetadataMutation represents an operation that mutates the PaperMetadata nodes in the graph.
type PaperMetadataMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	external_id              *string
	url                      *string
	title                    *string
	authors                  *string
	abstract                 *string
	full_text                *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	default_summaries        map[string]struct{}
	removeddefault_summaries map[string]struct{}
	cleareddefault_summaries bool
	custom_summaries         map[string]struct{}
	removedcustom_summaries  map[string]struct{}
	clearedcustom_summaries  bool
	user_links               map[string]struct{}
	removeduser_links        map[string]struct{}
	cleareduser_links        bool
	done                     bool
	oldValue                 func(context.Context) (*PaperMetadata, error)
	predicates               []predicate.PaperMetadata
}

var _ ent.Mutation = (*PaperMetadataMutation)(nil)

// papermetadataOption allows management of the mutation configuration using functional options.
type papermetadataOption func(*PaperMetadataMutation)

// newPaperMetadataMutation creates new mutation for the PaperMetadata entity.
func newPaperMetadataMutation(c config, op Op, opts ...papermetadataOption) *PaperMetadataMutation {
	m := &PaperMetadataMutation{
		config:        c,
		op:            op,
		typ:           TypePaperMetadata,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperMetadataID sets the ID field of the mutation.
func withPaperMetadataID(id string) papermetadataOption {
	return func(m *PaperMetadataMutation) {
		var (
			err   error
			once  sync.Once
			value *PaperMetadata
		)
		m.oldValue = func(ctx context.Context) (*PaperMetadata, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaperMetadata.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaperMetadata sets the old PaperMetadata of the mutation.
func withPaperMetadata(node *PaperMetadata) papermetadataOption {
	return func(m *PaperMetadataMutation) {
		m.oldValue = func(context.Context) (*PaperMetadata, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperMetadataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperMetadataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaperMetadata entities.
func (m *PaperMetadataMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperMetadataMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperMetadataMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaperMetadata.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *PaperMetadataMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *PaperMetadataMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *PaperMetadataMutation) ResetExternalID() {
	m.external_id = nil
}

// SetURL sets the "url" field.
func (m *PaperMetadataMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *PaperMetadataMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *PaperMetadataMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *PaperMetadataMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PaperMetadataMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PaperMetadataMutation) ResetTitle() {
	m.title = nil
}

// SetAuthors sets the "authors" field.
func (m *PaperMetadataMutation) SetAuthors(s string) {
	m.authors = &s
}

// Authors returns the value of the "authors" field in the mutation.
func (m *PaperMetadataMutation) Authors() (r string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldAuthors(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// ClearAuthors clears the value of the "authors" field.
func (m *PaperMetadataMutation) ClearAuthors() {
	m.authors = nil
	m.clearedFields[papermetadata.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *PaperMetadataMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[papermetadata.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *PaperMetadataMutation) ResetAuthors() {
	m.authors = nil
	delete(m.clearedFields, papermetadata.FieldAuthors)
}

// SetAbstract sets the "abstract" field.
func (m *PaperMetadataMutation) SetAbstract(s string) {
	m.abstract = &s
}

// Abstract returns the value of the "abstract" field in the mutation.
func (m *PaperMetadataMutation) Abstract() (r string, exists bool) {
	v := m.abstract
	if v == nil {
		return
	}
	return *v, true
}

// OldAbstract returns the old "abstract" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldAbstract(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbstract is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbstract requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbstract: %w", err)
	}
	return oldValue.Abstract, nil
}

// ClearAbstract clears the value of the "abstract" field.
func (m *PaperMetadataMutation) ClearAbstract() {
	m.abstract = nil
	m.clearedFields[papermetadata.FieldAbstract] = struct{}{}
}

// AbstractCleared returns if the "abstract" field was cleared in this mutation.
func (m *PaperMetadataMutation) AbstractCleared() bool {
	_, ok := m.clearedFields[papermetadata.FieldAbstract]
	return ok
}

// ResetAbstract resets all changes to the "abstract" field.
func (m *PaperMetadataMutation) ResetAbstract() {
	m.abstract = nil
	delete(m.clearedFields, papermetadata.FieldAbstract)
}

// SetFullText sets the "full_text" field.
func (m *PaperMetadataMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *PaperMetadataMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldFullText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ClearFullText clears the value of the "full_text" field.
func (m *PaperMetadataMutation) ClearFullText() {
	m.full_text = nil
	m.clearedFields[papermetadata.FieldFullText] = struct{}{}
}

// FullTextCleared returns if the "full_text" field was cleared in this mutation.
func (m *PaperMetadataMutation) FullTextCleared() bool {
	_, ok := m.clearedFields[papermetadata.FieldFullText]
	return ok
}

// ResetFullText resets all changes to the "full_text" field.
func (m *PaperMetadataMutation) ResetFullText() {
	m.full_text = nil
	delete(m.clearedFields, papermetadata.FieldFullText)
}

// SetCreatedAt sets the "created_at" field.
func (m *PaperMetadataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaperMetadataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaperMetadataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaperMetadataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaperMetadataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaperMetadata entity.
// If the PaperMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMetadataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaperMetadataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDefaultSummaryIDs adds the "default_summaries" edge to the DefaultSummary entity by ids.
func (m *PaperMetadataMutation) AddDefaultSummaryIDs(ids ...string) {
	if m.default_summaries == nil {
		m.default_summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.default_summaries[ids[i]] = struct{}{}
	}
}

// ClearDefaultSummaries clears the "default_summaries" edge to the DefaultSummary entity.
func (m *PaperMetadataMutation) ClearDefaultSummaries() {
	m.cleareddefault_summaries = true
}

// DefaultSummariesCleared reports if the "default_summaries" edge to the DefaultSummary entity was cleared.
func (m *PaperMetadataMutation) DefaultSummariesCleared() bool {
	return m.cleareddefault_summaries
}

// RemoveDefaultSummaryIDs removes the "default_summaries" edge to the DefaultSummary entity by IDs.
func (m *PaperMetadataMutation) RemoveDefaultSummaryIDs(ids ...string) {
	if m.removeddefault_summaries == nil {
		m.removeddefault_summaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.default_summaries, ids[i])
		m.removeddefault_summaries[ids[i]] = struct{}{}
	}
}

// RemovedDefaultSummaries returns the removed IDs of the "default_summaries" edge to the DefaultSummary entity.
func (m *PaperMetadataMutation) RemovedDefaultSummariesIDs() (ids []string) {
	for id := range m.removeddefault_summaries {
		ids = append(ids, id)
	}
	return
}

// DefaultSummariesIDs returns the "default_summaries" edge IDs in the mutation.
func (m *PaperMetadataMutation) DefaultSummariesIDs() (ids []string) {
	for id := range m.default_summaries {
		ids = append(ids, id)
	}
	return
}

// ResetDefaultSummaries resets all changes to the "default_summaries" edge.
func (m *PaperMetadataMutation) ResetDefaultSummaries() {
	m.default_summaries = nil
	m.cleareddefault_summaries = false
	m.removeddefault_summaries = nil
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by ids.
func (m *PaperMetadataMutation) AddCustomSummaryIDs(ids ...string) {
	if m.custom_summaries == nil {
		m.custom_summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.custom_summaries[ids[i]] = struct{}{}
	}
}

// ClearCustomSummaries clears the "custom_summaries" edge to the CustomSummary entity.
func (m *PaperMetadataMutation) ClearCustomSummaries() {
	m.clearedcustom_summaries = true
}

// CustomSummariesCleared reports if the "custom_summaries" edge to the CustomSummary entity was cleared.
func (m *PaperMetadataMutation) CustomSummariesCleared() bool {
	return m.clearedcustom_summaries
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to the CustomSummary entity by IDs.
func (m *PaperMetadataMutation) RemoveCustomSummaryIDs(ids ...string) {
	if m.removedcustom_summaries == nil {
		m.removedcustom_summaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.custom_summaries, ids[i])
		m.removedcustom_summaries[ids[i]] = struct{}{}
	}
}

// RemovedCustomSummaries returns the removed IDs of the "custom_summaries" edge to the CustomSummary entity.
func (m *PaperMetadataMutation) RemovedCustomSummariesIDs() (ids []string) {
	for id := range m.removedcustom_summaries {
		ids = append(ids, id)
	}
	return
}

// CustomSummariesIDs returns the "custom_summaries" edge IDs in the mutation.
func (m *PaperMetadataMutation) CustomSummariesIDs() (ids []string) {
	for id := range m.custom_summaries {
		ids = append(ids, id)
	}
	return
}

// ResetCustomSummaries resets all changes to the "custom_summaries" edge.
func (m *PaperMetadataMutation) ResetCustomSummaries() {
	m.custom_summaries = nil
	m.clearedcustom_summaries = false
	m.removedcustom_summaries = nil
}

// AddUserLinkIDs adds the "user_links" edge to the UserPaperLink entity by ids.
func (m *PaperMetadataMutation) AddUserLinkIDs(ids ...string) {
	if m.user_links == nil {
		m.user_links = make(map[string]struct{})
	}
	for i := range ids {
		m.user_links[ids[i]] = struct{}{}
	}
}

// ClearUserLinks clears the "user_links" edge to the UserPaperLink entity.
func (m *PaperMetadataMutation) ClearUserLinks() {
	m.cleareduser_links = true
}

// UserLinksCleared reports if the "user_links" edge to the UserPaperLink entity was cleared.
func (m *PaperMetadataMutation) UserLinksCleared() bool {
	return m.cleareduser_links
}

// RemoveUserLinkIDs removes the "user_links" edge to the UserPaperLink entity by IDs.
func (m *PaperMetadataMutation) RemoveUserLinkIDs(ids ...string) {
	if m.removeduser_links == nil {
		m.removeduser_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.user_links, ids[i])
		m.removeduser_links[ids[i]] = struct{}{}
	}
}

// RemovedUserLinks returns the removed IDs of the "user_links" edge to the UserPaperLink entity.
func (m *PaperMetadataMutation) RemovedUserLinksIDs() (ids []string) {
	for id := range m.removeduser_links {
		ids = append(ids, id)
	}
	return
}

// UserLinksIDs returns the "user_links" edge IDs in the mutation.
func (m *PaperMetadataMutation) UserLinksIDs() (ids []string) {
	for id := range m.user_links {
		ids = append(ids, id)
	}
	return
}

// ResetUserLinks resets all changes to the "user_links" edge.
func (m *PaperMetadataMutation) ResetUserLinks() {
	m.user_links = nil
	m.cleareduser_links = false
	m.removeduser_links = nil
}

// Where appends a list predicates to the PaperMetadataMutation builder.
func (m *PaperMetadataMutation) Where(ps ...predicate.PaperMetadata) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperMetadataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperMetadataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaperMetadata, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperMetadataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperMetadataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaperMetadata).
func (m *PaperMetadataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperMetadataMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.external_id != nil {
		fields = append(fields, papermetadata.FieldExternalID)
	}
	if m.url != nil {
		fields = append(fields, papermetadata.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, papermetadata.FieldTitle)
	}
	if m.authors != nil {
		fields = append(fields, papermetadata.FieldAuthors)
	}
	if m.abstract != nil {
		fields = append(fields, papermetadata.FieldAbstract)
	}
	if m.full_text != nil {
		fields = append(fields, papermetadata.FieldFullText)
	}
	if m.created_at != nil {
		fields = append(fields, papermetadata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, papermetadata.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperMetadataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case papermetadata.FieldExternalID:
		return m.ExternalID()
	case papermetadata.FieldURL:
		return m.URL()
	case papermetadata.FieldTitle:
		return m.Title()
	case papermetadata.FieldAuthors:
		return m.Authors()
	case papermetadata.FieldAbstract:
		return m.Abstract()
	case papermetadata.FieldFullText:
		return m.FullText()
	case papermetadata.FieldCreatedAt:
		return m.CreatedAt()
	case papermetadata.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperMetadataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case papermetadata.FieldExternalID:
		return m.OldExternalID(ctx)
	case papermetadata.FieldURL:
		return m.OldURL(ctx)
	case papermetadata.FieldTitle:
		return m.OldTitle(ctx)
	case papermetadata.FieldAuthors:
		return m.OldAuthors(ctx)
	case papermetadata.FieldAbstract:
		return m.OldAbstract(ctx)
	case papermetadata.FieldFullText:
		return m.OldFullText(ctx)
	case papermetadata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case papermetadata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaperMetadata field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMetadataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case papermetadata.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case papermetadata.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case papermetadata.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case papermetadata.FieldAuthors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case papermetadata.FieldAbstract:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbstract(v)
		return nil
	case papermetadata.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case papermetadata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case papermetadata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaperMetadata field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperMetadataMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperMetadataMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMetadataMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PaperMetadata numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperMetadataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(papermetadata.FieldAuthors) {
		fields = append(fields, papermetadata.FieldAuthors)
	}
	if m.FieldCleared(papermetadata.FieldAbstract) {
		fields = append(fields, papermetadata.FieldAbstract)
	}
	if m.FieldCleared(papermetadata.FieldFullText) {
		fields = append(fields, papermetadata.FieldFullText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperMetadataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperMetadataMutation) ClearField(name string) error {
	switch name {
	case papermetadata.FieldAuthors:
		m.ClearAuthors()
		return nil
	case papermetadata.FieldAbstract:
		m.ClearAbstract()
		return nil
	case papermetadata.FieldFullText:
		m.ClearFullText()
		return nil
	}
	return fmt.Errorf("unknown PaperMetadata nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperMetadataMutation) ResetField(name string) error {
	switch name {
	case papermetadata.FieldExternalID:
		m.ResetExternalID()
		return nil
	case papermetadata.FieldURL:
		m.ResetURL()
		return nil
	case papermetadata.FieldTitle:
		m.ResetTitle()
		return nil
	case papermetadata.FieldAuthors:
		m.ResetAuthors()
		return nil
	case papermetadata.FieldAbstract:
		m.ResetAbstract()
		return nil
	case papermetadata.FieldFullText:
		m.ResetFullText()
		return nil
	case papermetadata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case papermetadata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PaperMetadata field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperMetadataMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.default_summaries != nil {
		edges = append(edges, papermetadata.EdgeDefaultSummaries)
	}
	if m.custom_summaries != nil {
		edges = append(edges, papermetadata.EdgeCustomSummaries)
	}
	if m.user_links != nil {
		edges = append(edges, papermetadata.EdgeUserLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperMetadataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case papermetadata.EdgeDefaultSummaries:
		ids := make([]ent.Value, 0, len(m.default_summaries))
		for id := range m.default_summaries {
			ids = append(ids, id)
		}
		return ids
	case papermetadata.EdgeCustomSummaries:
		ids := make([]ent.Value, 0, len(m.custom_summaries))
		for id := range m.custom_summaries {
			ids = append(ids, id)
		}
		return ids
	case papermetadata.EdgeUserLinks:
		ids := make([]ent.Value, 0, len(m.user_links))
		for id := range m.user_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperMetadataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddefault_summaries != nil {
		edges = append(edges, papermetadata.EdgeDefaultSummaries)
	}
	if m.removedcustom_summaries != nil {
		edges = append(edges, papermetadata.EdgeCustomSummaries)
	}
	if m.removeduser_links != nil {
		edges = append(edges, papermetadata.EdgeUserLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperMetadataMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case papermetadata.EdgeDefaultSummaries:
		ids := make([]ent.Value, 0, len(m.removeddefault_summaries))
		for id := range m.removeddefault_summaries {
			ids = append(ids, id)
		}
		return ids
	case papermetadata.EdgeCustomSummaries:
		ids := make([]ent.Value, 0, len(m.removedcustom_summaries))
		for id := range m.removedcustom_summaries {
			ids = append(ids, id)
		}
		return ids
	case papermetadata.EdgeUserLinks:
		ids := make([]ent.Value, 0, len(m.removeduser_links))
		for id := range m.removeduser_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperMetadataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddefault_summaries {
		edges = append(edges, papermetadata.EdgeDefaultSummaries)
	}
	if m.clearedcustom_summaries {
		edges = append(edges, papermetadata.EdgeCustomSummaries)
	}
	if m.cleareduser_links {
		edges = append(edges, papermetadata.EdgeUserLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperMetadataMutation) EdgeCleared(name string) bool {
	switch name {
	case papermetadata.EdgeDefaultSummaries:
		return m.cleareddefault_summaries
	case papermetadata.EdgeCustomSummaries:
		return m.clearedcustom_summaries
	case papermetadata.EdgeUserLinks:
		return m.cleareduser_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperMetadataMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PaperMetadata unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperMetadataMutation) ResetEdge(name string) error {
	switch name {
	case papermetadata.EdgeDefaultSummaries:
		m.ResetDefaultSummaries()
		return nil
	case papermetadata.EdgeCustomSummaries:
		m.ResetCustomSummaries()
		return nil
	case papermetadata.EdgeUserLinks:
		m.ResetUserLinks()
		return nil
	}
	return fmt.Errorf("unknown PaperMetadata edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	_type                   *prompt.Type
	name                    *string
	category                *string
	body                    *string
	is_active               *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	owner                   *string
	clearedowner            bool
	custom_summaries        map[string]struct{}
	removedcustom_summaries map[string]struct{}
	clearedcustom_summaries bool
	done                    bool
	oldValue                func(context.Context) (*Prompt, error)
	predicates              []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *PromptMutation) SetType(pr prompt.Type) {
	m._type = &pr
}

// GetType returns the value of the "type" field in the mutation.
func (m *PromptMutation) GetType() (r prompt.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldType(ctx context.Context) (v prompt.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *PromptMutation) ResetType() {
	m._type = nil
}

// SetName sets the "name" field.
func (m *PromptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *PromptMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PromptMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *PromptMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[prompt.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *PromptMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[prompt.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *PromptMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, prompt.FieldCategory)
}

// SetBody sets the "body" field.
func (m *PromptMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *PromptMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *PromptMutation) ResetBody() {
	m.body = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *PromptMutation) SetOwnerUserID(s string) {
	m.owner = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *PromptMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldOwnerUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *PromptMutation) ClearOwnerUserID() {
	m.owner = nil
	m.clearedFields[prompt.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *PromptMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[prompt.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *PromptMutation) ResetOwnerUserID() {
	m.owner = nil
	delete(m.clearedFields, prompt.FieldOwnerUserID)
}

// SetIsActive sets the "is_active" field.
func (m *PromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *PromptMutation) SetOwnerID(id string) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *PromptMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[prompt.FieldOwnerUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *PromptMutation) OwnerCleared() bool {
	return m.OwnerUserIDCleared() || m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *PromptMutation) OwnerID() (id string, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *PromptMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *PromptMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by ids.
func (m *PromptMutation) AddCustomSummaryIDs(ids ...string) {
	if m.custom_summaries == nil {
		m.custom_summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.custom_summaries[ids[i]] = struct{}{}
	}
}

// ClearCustomSummaries clears the "custom_summaries" edge to the CustomSummary entity.
func (m *PromptMutation) ClearCustomSummaries() {
	m.clearedcustom_summaries = true
}

// CustomSummariesCleared reports if the "custom_summaries" edge to the CustomSummary entity was cleared.
func (m *PromptMutation) CustomSummariesCleared() bool {
	return m.clearedcustom_summaries
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to the CustomSummary entity by IDs.
func (m *PromptMutation) RemoveCustomSummaryIDs(ids ...string) {
	if m.removedcustom_summaries == nil {
		m.removedcustom_summaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.custom_summaries, ids[i])
		m.removedcustom_summaries[ids[i]] = struct{}{}
	}
}

// RemovedCustomSummaries returns the removed IDs of the "custom_summaries" edge to the CustomSummary entity.
func (m *PromptMutation) RemovedCustomSummariesIDs() (ids []string) {
	for id := range m.removedcustom_summaries {
		ids = append(ids, id)
	}
	return
}

// CustomSummariesIDs returns the "custom_summaries" edge IDs in the mutation.
func (m *PromptMutation) CustomSummariesIDs() (ids []string) {
	for id := range m.custom_summaries {
		ids = append(ids, id)
	}
	return
}

// ResetCustomSummaries resets all changes to the "custom_summaries" edge.
func (m *PromptMutation) ResetCustomSummaries() {
	m.custom_summaries = nil
	m.clearedcustom_summaries = false
	m.removedcustom_summaries = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._type != nil {
		fields = append(fields, prompt.FieldType)
	}
	if m.name != nil {
		fields = append(fields, prompt.FieldName)
	}
	if m.category != nil {
		fields = append(fields, prompt.FieldCategory)
	}
	if m.body != nil {
		fields = append(fields, prompt.FieldBody)
	}
	if m.owner != nil {
		fields = append(fields, prompt.FieldOwnerUserID)
	}
	if m.is_active != nil {
		fields = append(fields, prompt.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldType:
		return m.GetType()
	case prompt.FieldName:
		return m.Name()
	case prompt.FieldCategory:
		return m.Category()
	case prompt.FieldBody:
		return m.Body()
	case prompt.FieldOwnerUserID:
		return m.OwnerUserID()
	case prompt.FieldIsActive:
		return m.IsActive()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	case prompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldType:
		return m.OldType(ctx)
	case prompt.FieldName:
		return m.OldName(ctx)
	case prompt.FieldCategory:
		return m.OldCategory(ctx)
	case prompt.FieldBody:
		return m.OldBody(ctx)
	case prompt.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case prompt.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldType:
		v, ok := value.(prompt.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case prompt.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompt.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case prompt.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case prompt.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case prompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldCategory) {
		fields = append(fields, prompt.FieldCategory)
	}
	if m.FieldCleared(prompt.FieldOwnerUserID) {
		fields = append(fields, prompt.FieldOwnerUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldCategory:
		m.ClearCategory()
		return nil
	case prompt.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldType:
		m.ResetType()
		return nil
	case prompt.FieldName:
		m.ResetName()
		return nil
	case prompt.FieldCategory:
		m.ResetCategory()
		return nil
	case prompt.FieldBody:
		m.ResetBody()
		return nil
	case prompt.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case prompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, prompt.EdgeOwner)
	}
	if m.custom_summaries != nil {
		edges = append(edges, prompt.EdgeCustomSummaries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prompt.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case prompt.EdgeCustomSummaries:
		ids := make([]ent.Value, 0, len(m.custom_summaries))
		for id := range m.custom_summaries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcustom_summaries != nil {
		edges = append(edges, prompt.EdgeCustomSummaries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prompt.EdgeCustomSummaries:
		ids := make([]ent.Value, 0, len(m.removedcustom_summaries))
		for id := range m.removedcustom_summaries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, prompt.EdgeOwner)
	}
	if m.clearedcustom_summaries {
		edges = append(edges, prompt.EdgeCustomSummaries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	switch name {
	case prompt.EdgeOwner:
		return m.clearedowner
	case prompt.EdgeCustomSummaries:
		return m.clearedcustom_summaries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	switch name {
	case prompt.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	switch name {
	case prompt.EdgeOwner:
		m.ResetOwner()
		return nil
	case prompt.EdgeCustomSummaries:
		m.ResetCustomSummaries()
		return nil
	}
	return fmt.Errorf("unknown Prompt edge %s", name)
}

// PromptGroupMutation represents an operation that mutates the PromptGroup nodes in the graph.
type PromptGroupMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	category              *promptgroup.Category
	coordinator_prompt_id *string
	planner_prompt_id     *string
	supervisor_prompt_id  *string
	agent_prompt_id       *string
	summary_prompt_id     *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	user                  *string
	cleareduser           bool
	done                  bool
	oldValue              func(context.Context) (*PromptGroup, error)
	predicates            []predicate.PromptGroup
}

var _ ent.Mutation = (*PromptGroupMutation)(nil)

// promptgroupOption allows management of the mutation configuration using functional options.
type promptgroupOption func(*PromptGroupMutation)

// newPromptGroupMutation creates new mutation for the PromptGroup entity.
func newPromptGroupMutation(c config, op Op, opts ...promptgroupOption) *PromptGroupMutation {
	m := &PromptGroupMutation{
		config:        c,
		op:            op,
		typ:           TypePromptGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptGroupID sets the ID field of the mutation.
func withPromptGroupID(id string) promptgroupOption {
	return func(m *PromptGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptGroup
		)
		m.oldValue = func(ctx context.Context) (*PromptGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptGroup sets the old PromptGroup of the mutation.
func withPromptGroup(node *PromptGroup) promptgroupOption {
	return func(m *PromptGroupMutation) {
		m.oldValue = func(context.Context) (*PromptGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptGroup entities.
func (m *PromptGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptGroupMutation) ResetName() {
	m.name = nil
}

// SetUserID sets the "user_id" field.
func (m *PromptGroupMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PromptGroupMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PromptGroupMutation) ResetUserID() {
	m.user = nil
}

// SetCategory sets the "category" field.
func (m *PromptGroupMutation) SetCategory(pr promptgroup.Category) {
	m.category = &pr
}

// Category returns the value of the "category" field in the mutation.
func (m *PromptGroupMutation) Category() (r promptgroup.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldCategory(ctx context.Context) (v promptgroup.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *PromptGroupMutation) ResetCategory() {
	m.category = nil
}

// SetCoordinatorPromptID sets the "coordinator_prompt_id" field.
func (m *PromptGroupMutation) SetCoordinatorPromptID(s string) {
	m.coordinator_prompt_id = &s
}

// CoordinatorPromptID returns the value of the "coordinator_prompt_id" field in the mutation.
func (m *PromptGroupMutation) CoordinatorPromptID() (r string, exists bool) {
	v := m.coordinator_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCoordinatorPromptID returns the old "coordinator_prompt_id" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldCoordinatorPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoordinatorPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoordinatorPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoordinatorPromptID: %w", err)
	}
	return oldValue.CoordinatorPromptID, nil
}

// ClearCoordinatorPromptID clears the value of the "coordinator_prompt_id" field.
func (m *PromptGroupMutation) ClearCoordinatorPromptID() {
	m.coordinator_prompt_id = nil
	m.clearedFields[promptgroup.FieldCoordinatorPromptID] = struct{}{}
}

// CoordinatorPromptIDCleared returns if the "coordinator_prompt_id" field was cleared in this mutation.
func (m *PromptGroupMutation) CoordinatorPromptIDCleared() bool {
	_, ok := m.clearedFields[promptgroup.FieldCoordinatorPromptID]
	return ok
}

// ResetCoordinatorPromptID resets all changes to the "coordinator_prompt_id" field.
func (m *PromptGroupMutation) ResetCoordinatorPromptID() {
	m.coordinator_prompt_id = nil
	delete(m.clearedFields, promptgroup.FieldCoordinatorPromptID)
}

// SetPlannerPromptID sets the "planner_prompt_id" field.
func (m *PromptGroupMutation) SetPlannerPromptID(s string) {
	m.planner_prompt_id = &s
}

// PlannerPromptID returns the value of the "planner_prompt_id" field in the mutation.
func (m *PromptGroupMutation) PlannerPromptID() (r string, exists bool) {
	v := m.planner_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannerPromptID returns the old "planner_prompt_id" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldPlannerPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannerPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannerPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannerPromptID: %w", err)
	}
	return oldValue.PlannerPromptID, nil
}

// ClearPlannerPromptID clears the value of the "planner_prompt_id" field.
func (m *PromptGroupMutation) ClearPlannerPromptID() {
	m.planner_prompt_id = nil
	m.clearedFields[promptgroup.FieldPlannerPromptID] = struct{}{}
}

// PlannerPromptIDCleared returns if the "planner_prompt_id" field was cleared in this mutation.
func (m *PromptGroupMutation) PlannerPromptIDCleared() bool {
	_, ok := m.clearedFields[promptgroup.FieldPlannerPromptID]
	return ok
}

// ResetPlannerPromptID resets all changes to the "planner_prompt_id" field.
func (m *PromptGroupMutation) ResetPlannerPromptID() {
	m.planner_prompt_id = nil
	delete(m.clearedFields, promptgroup.FieldPlannerPromptID)
}

// SetSupervisorPromptID sets the "supervisor_prompt_id" field.
func (m *PromptGroupMutation) SetSupervisorPromptID(s string) {
	m.supervisor_prompt_id = &s
}

// SupervisorPromptID returns the value of the "supervisor_prompt_id" field in the mutation.
func (m *PromptGroupMutation) SupervisorPromptID() (r string, exists bool) {
	v := m.supervisor_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupervisorPromptID returns the old "supervisor_prompt_id" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldSupervisorPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupervisorPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupervisorPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupervisorPromptID: %w", err)
	}
	return oldValue.SupervisorPromptID, nil
}

// ClearSupervisorPromptID clears the value of the "supervisor_prompt_id" field.
func (m *PromptGroupMutation) ClearSupervisorPromptID() {
	m.supervisor_prompt_id = nil
	m.clearedFields[promptgroup.FieldSupervisorPromptID] = struct{}{}
}

// SupervisorPromptIDCleared returns if the "supervisor_prompt_id" field was cleared in this mutation.
func (m *PromptGroupMutation) SupervisorPromptIDCleared() bool {
	_, ok := m.clearedFields[promptgroup.FieldSupervisorPromptID]
	return ok
}

// ResetSupervisorPromptID resets all changes to the "supervisor_prompt_id" field.
func (m *PromptGroupMutation) ResetSupervisorPromptID() {
	m.supervisor_prompt_id = nil
	delete(m.clearedFields, promptgroup.FieldSupervisorPromptID)
}

// SetAgentPromptID sets the "agent_prompt_id" field.
func (m *PromptGroupMutation) SetAgentPromptID(s string) {
	m.agent_prompt_id = &s
}

// AgentPromptID returns the value of the "agent_prompt_id" field in the mutation.
func (m *PromptGroupMutation) AgentPromptID() (r string, exists bool) {
	v := m.agent_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentPromptID returns the old "agent_prompt_id" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldAgentPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentPromptID: %w", err)
	}
	return oldValue.AgentPromptID, nil
}

// ClearAgentPromptID clears the value of the "agent_prompt_id" field.
func (m *PromptGroupMutation) ClearAgentPromptID() {
	m.agent_prompt_id = nil
	m.clearedFields[promptgroup.FieldAgentPromptID] = struct{}{}
}

// AgentPromptIDCleared returns if the "agent_prompt_id" field was cleared in this mutation.
func (m *PromptGroupMutation) AgentPromptIDCleared() bool {
	_, ok := m.clearedFields[promptgroup.FieldAgentPromptID]
	return ok
}

// ResetAgentPromptID resets all changes to the "agent_prompt_id" field.
func (m *PromptGroupMutation) ResetAgentPromptID() {
	m.agent_prompt_id = nil
	delete(m.clearedFields, promptgroup.FieldAgentPromptID)
}

// SetSummaryPromptID sets the "summary_prompt_id" field.
func (m *PromptGroupMutation) SetSummaryPromptID(s string) {
	m.summary_prompt_id = &s
}

// SummaryPromptID returns the value of the "summary_prompt_id" field in the mutation.
func (m *PromptGroupMutation) SummaryPromptID() (r string, exists bool) {
	v := m.summary_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryPromptID returns the old "summary_prompt_id" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldSummaryPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryPromptID: %w", err)
	}
	return oldValue.SummaryPromptID, nil
}

// ClearSummaryPromptID clears the value of the "summary_prompt_id" field.
func (m *PromptGroupMutation) ClearSummaryPromptID() {
	m.summary_prompt_id = nil
	m.clearedFields[promptgroup.FieldSummaryPromptID] = struct{}{}
}

// SummaryPromptIDCleared returns if the "summary_prompt_id" field was cleared in this mutation.
func (m *PromptGroupMutation) SummaryPromptIDCleared() bool {
	_, ok := m.clearedFields[promptgroup.FieldSummaryPromptID]
	return ok
}

// ResetSummaryPromptID resets all changes to the "summary_prompt_id" field.
func (m *PromptGroupMutation) ResetSummaryPromptID() {
	m.summary_prompt_id = nil
	delete(m.clearedFields, promptgroup.FieldSummaryPromptID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PromptGroup entity.
// If the PromptGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PromptGroupMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[promptgroup.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PromptGroupMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PromptGroupMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PromptGroupMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the PromptGroupMutation builder.
func (m *PromptGroupMutation) Where(ps ...predicate.PromptGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptGroup).
func (m *PromptGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptGroupMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, promptgroup.FieldName)
	}
	if m.user != nil {
		fields = append(fields, promptgroup.FieldUserID)
	}
	if m.category != nil {
		fields = append(fields, promptgroup.FieldCategory)
	}
	if m.coordinator_prompt_id != nil {
		fields = append(fields, promptgroup.FieldCoordinatorPromptID)
	}
	if m.planner_prompt_id != nil {
		fields = append(fields, promptgroup.FieldPlannerPromptID)
	}
	if m.supervisor_prompt_id != nil {
		fields = append(fields, promptgroup.FieldSupervisorPromptID)
	}
	if m.agent_prompt_id != nil {
		fields = append(fields, promptgroup.FieldAgentPromptID)
	}
	if m.summary_prompt_id != nil {
		fields = append(fields, promptgroup.FieldSummaryPromptID)
	}
	if m.created_at != nil {
		fields = append(fields, promptgroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, promptgroup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptgroup.FieldName:
		return m.Name()
	case promptgroup.FieldUserID:
		return m.UserID()
	case promptgroup.FieldCategory:
		return m.Category()
	case promptgroup.FieldCoordinatorPromptID:
		return m.CoordinatorPromptID()
	case promptgroup.FieldPlannerPromptID:
		return m.PlannerPromptID()
	case promptgroup.FieldSupervisorPromptID:
		return m.SupervisorPromptID()
	case promptgroup.FieldAgentPromptID:
		return m.AgentPromptID()
	case promptgroup.FieldSummaryPromptID:
		return m.SummaryPromptID()
	case promptgroup.FieldCreatedAt:
		return m.CreatedAt()
	case promptgroup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptgroup.FieldName:
		return m.OldName(ctx)
	case promptgroup.FieldUserID:
		return m.OldUserID(ctx)
	case promptgroup.FieldCategory:
		return m.OldCategory(ctx)
	case promptgroup.FieldCoordinatorPromptID:
		return m.OldCoordinatorPromptID(ctx)
	case promptgroup.FieldPlannerPromptID:
		return m.OldPlannerPromptID(ctx)
	case promptgroup.FieldSupervisorPromptID:
		return m.OldSupervisorPromptID(ctx)
	case promptgroup.FieldAgentPromptID:
		return m.OldAgentPromptID(ctx)
	case promptgroup.FieldSummaryPromptID:
		return m.OldSummaryPromptID(ctx)
	case promptgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case promptgroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptgroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case promptgroup.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case promptgroup.FieldCategory:
		v, ok := value.(promptgroup.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case promptgroup.FieldCoordinatorPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoordinatorPromptID(v)
		return nil
	case promptgroup.FieldPlannerPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannerPromptID(v)
		return nil
	case promptgroup.FieldSupervisorPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupervisorPromptID(v)
		return nil
	case promptgroup.FieldAgentPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentPromptID(v)
		return nil
	case promptgroup.FieldSummaryPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryPromptID(v)
		return nil
	case promptgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case promptgroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptgroup.FieldCoordinatorPromptID) {
		fields = append(fields, promptgroup.FieldCoordinatorPromptID)
	}
	if m.FieldCleared(promptgroup.FieldPlannerPromptID) {
		fields = append(fields, promptgroup.FieldPlannerPromptID)
	}
	if m.FieldCleared(promptgroup.FieldSupervisorPromptID) {
		fields = append(fields, promptgroup.FieldSupervisorPromptID)
	}
	if m.FieldCleared(promptgroup.FieldAgentPromptID) {
		fields = append(fields, promptgroup.FieldAgentPromptID)
	}
	if m.FieldCleared(promptgroup.FieldSummaryPromptID) {
		fields = append(fields, promptgroup.FieldSummaryPromptID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptGroupMutation) ClearField(name string) error {
	switch name {
	case promptgroup.FieldCoordinatorPromptID:
		m.ClearCoordinatorPromptID()
		return nil
	case promptgroup.FieldPlannerPromptID:
		m.ClearPlannerPromptID()
		return nil
	case promptgroup.FieldSupervisorPromptID:
		m.ClearSupervisorPromptID()
		return nil
	case promptgroup.FieldAgentPromptID:
		m.ClearAgentPromptID()
		return nil
	case promptgroup.FieldSummaryPromptID:
		m.ClearSummaryPromptID()
		return nil
	}
	return fmt.Errorf("unknown PromptGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptGroupMutation) ResetField(name string) error {
	switch name {
	case promptgroup.FieldName:
		m.ResetName()
		return nil
	case promptgroup.FieldUserID:
		m.ResetUserID()
		return nil
	case promptgroup.FieldCategory:
		m.ResetCategory()
		return nil
	case promptgroup.FieldCoordinatorPromptID:
		m.ResetCoordinatorPromptID()
		return nil
	case promptgroup.FieldPlannerPromptID:
		m.ResetPlannerPromptID()
		return nil
	case promptgroup.FieldSupervisorPromptID:
		m.ResetSupervisorPromptID()
		return nil
	case promptgroup.FieldAgentPromptID:
		m.ResetAgentPromptID()
		return nil
	case promptgroup.FieldSummaryPromptID:
		m.ResetSummaryPromptID()
		return nil
	case promptgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case promptgroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, promptgroup.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptgroup.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, promptgroup.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case promptgroup.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptGroupMutation) ClearEdge(name string) error {
	switch name {
	case promptgroup.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PromptGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptGroupMutation) ResetEdge(name string) error {
	switch name {
	case promptgroup.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown PromptGroup edge %s", name)
}

// ResearchMessageMutation represents an operation that mutates the ResearchMessage nodes in the graph.
type ResearchMessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	role            *researchmessage.Role
	content         *string
	is_intermediate *bool
	metadata_json   *map[string]interface{}
	sequence        *int
	addsequence     *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*ResearchMessage, error)
	predicates      []predicate.ResearchMessage
}

var _ ent.Mutation = (*ResearchMessageMutation)(nil)

// researchmessageOption allows management of the mutation configuration using functional options.
type researchmessageOption func(*ResearchMessageMutation)

// newResearchMessageMutation creates new mutation for the ResearchMessage entity.
func newResearchMessageMutation(c config, op Op, opts ...researchmessageOption) *ResearchMessageMutation {
	m := &ResearchMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchMessageID sets the ID field of the mutation.
func withResearchMessageID(id string) researchmessageOption {
	return func(m *ResearchMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchMessage
		)
		m.oldValue = func(ctx context.Context) (*ResearchMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchMessage sets the old ResearchMessage of the mutation.
func withResearchMessage(node *ResearchMessage) researchmessageOption {
	return func(m *ResearchMessageMutation) {
		m.oldValue = func(context.Context) (*ResearchMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchMessage entities.
func (m *ResearchMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ResearchMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResearchMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResearchMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *ResearchMessageMutation) SetRole(r researchmessage.Role) {
	m.role = &r
}

// Role returns the value of the "role" field in the mutation.
func (m *ResearchMessageMutation) Role() (r researchmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldRole(ctx context.Context) (v researchmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ResearchMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ResearchMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ResearchMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ResearchMessageMutation) ResetContent() {
	m.content = nil
}

// SetIsIntermediate sets the "is_intermediate" field.
func (m *ResearchMessageMutation) SetIsIntermediate(b bool) {
	m.is_intermediate = &b
}

// IsIntermediate returns the value of the "is_intermediate" field in the mutation.
func (m *ResearchMessageMutation) IsIntermediate() (r bool, exists bool) {
	v := m.is_intermediate
	if v == nil {
		return
	}
	return *v, true
}

// OldIsIntermediate returns the old "is_intermediate" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldIsIntermediate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsIntermediate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsIntermediate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsIntermediate: %w", err)
	}
	return oldValue.IsIntermediate, nil
}

// ResetIsIntermediate resets all changes to the "is_intermediate" field.
func (m *ResearchMessageMutation) ResetIsIntermediate() {
	m.is_intermediate = nil
}

// SetMetadataJSON sets the "metadata_json" field.
func (m *ResearchMessageMutation) SetMetadataJSON(value map[string]interface{}) {
	m.metadata_json = &value
}

// MetadataJSON returns the value of the "metadata_json" field in the mutation.
func (m *ResearchMessageMutation) MetadataJSON() (r map[string]interface{}, exists bool) {
	v := m.metadata_json
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataJSON returns the old "metadata_json" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldMetadataJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataJSON: %w", err)
	}
	return oldValue.MetadataJSON, nil
}

// ClearMetadataJSON clears the value of the "metadata_json" field.
func (m *ResearchMessageMutation) ClearMetadataJSON() {
	m.metadata_json = nil
	m.clearedFields[researchmessage.FieldMetadataJSON] = struct{}{}
}

// MetadataJSONCleared returns if the "metadata_json" field was cleared in this mutation.
func (m *ResearchMessageMutation) MetadataJSONCleared() bool {
	_, ok := m.clearedFields[researchmessage.FieldMetadataJSON]
	return ok
}

// ResetMetadataJSON resets all changes to the "metadata_json" field.
func (m *ResearchMessageMutation) ResetMetadataJSON() {
	m.metadata_json = nil
	delete(m.clearedFields, researchmessage.FieldMetadataJSON)
}

// SetSequence sets the "sequence" field.
func (m *ResearchMessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ResearchMessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ResearchMessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ResearchMessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ResearchMessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchMessage entity.
// If the ResearchMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (m *ResearchMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[researchmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ResearchSession entity was cleared.
func (m *ResearchMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ResearchMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ResearchMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ResearchMessageMutation builder.
func (m *ResearchMessageMutation) Where(ps ...predicate.ResearchMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchMessage).
func (m *ResearchMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, researchmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, researchmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, researchmessage.FieldContent)
	}
	if m.is_intermediate != nil {
		fields = append(fields, researchmessage.FieldIsIntermediate)
	}
	if m.metadata_json != nil {
		fields = append(fields, researchmessage.FieldMetadataJSON)
	}
	if m.sequence != nil {
		fields = append(fields, researchmessage.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, researchmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchmessage.FieldSessionID:
		return m.SessionID()
	case researchmessage.FieldRole:
		return m.Role()
	case researchmessage.FieldContent:
		return m.Content()
	case researchmessage.FieldIsIntermediate:
		return m.IsIntermediate()
	case researchmessage.FieldMetadataJSON:
		return m.MetadataJSON()
	case researchmessage.FieldSequence:
		return m.Sequence()
	case researchmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case researchmessage.FieldRole:
		return m.OldRole(ctx)
	case researchmessage.FieldContent:
		return m.OldContent(ctx)
	case researchmessage.FieldIsIntermediate:
		return m.OldIsIntermediate(ctx)
	case researchmessage.FieldMetadataJSON:
		return m.OldMetadataJSON(ctx)
	case researchmessage.FieldSequence:
		return m.OldSequence(ctx)
	case researchmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case researchmessage.FieldRole:
		v, ok := value.(researchmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case researchmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case researchmessage.FieldIsIntermediate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsIntermediate(v)
		return nil
	case researchmessage.FieldMetadataJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataJSON(v)
		return nil
	case researchmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case researchmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, researchmessage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchmessage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchmessage.FieldMetadataJSON) {
		fields = append(fields, researchmessage.FieldMetadataJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchMessageMutation) ClearField(name string) error {
	switch name {
	case researchmessage.FieldMetadataJSON:
		m.ClearMetadataJSON()
		return nil
	}
	return fmt.Errorf("unknown ResearchMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchMessageMutation) ResetField(name string) error {
	switch name {
	case researchmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case researchmessage.FieldRole:
		m.ResetRole()
		return nil
	case researchmessage.FieldContent:
		m.ResetContent()
		return nil
	case researchmessage.FieldIsIntermediate:
		m.ResetIsIntermediate()
		return nil
	case researchmessage.FieldMetadataJSON:
		m.ResetMetadataJSON()
		return nil
	case researchmessage.FieldSequence:
		m.ResetSequence()
		return nil
	case researchmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, researchmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, researchmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case researchmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchMessageMutation) ClearEdge(name string) error {
	switch name {
	case researchmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ResearchMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchMessageMutation) ResetEdge(name string) error {
	switch name {
	case researchmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ResearchMessage edge %s", name)
}

// ResearchSessionMutation represents an operation that mutates the ResearchSession nodes in the graph.
type ResearchSessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	title             *string
	category          *researchsession.Category
	processing_status *researchsession.ProcessingStatus
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	user              *string
	cleareduser       bool
	messages          map[string]struct{}
	removedmessages   map[string]struct{}
	clearedmessages   bool
	done              bool
	oldValue          func(context.Context) (*ResearchSession, error)
	predicates        []predicate.ResearchSession
}

var _ ent.Mutation = (*ResearchSessionMutation)(nil)

// researchsessionOption allows management of the mutation configuration using functional options.
type researchsessionOption func(*ResearchSessionMutation)

// newResearchSessionMutation creates new mutation for the ResearchSession entity.
func newResearchSessionMutation(c config, op Op, opts ...researchsessionOption) *ResearchSessionMutation {
	m := &ResearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchSessionID sets the ID field of the mutation.
func withResearchSessionID(id string) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchSession
		)
		m.oldValue = func(ctx context.Context) (*ResearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchSession sets the old ResearchSession of the mutation.
func withResearchSession(node *ResearchSession) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		m.oldValue = func(context.Context) (*ResearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchSession entities.
func (m *ResearchSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ResearchSessionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResearchSessionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResearchSessionMutation) ResetUserID() {
	m.user = nil
}

// SetTitle sets the "title" field.
func (m *ResearchSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ResearchSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ResearchSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[researchsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ResearchSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ResearchSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, researchsession.FieldTitle)
}

// SetCategory sets the "category" field.
func (m *ResearchSessionMutation) SetCategory(r researchsession.Category) {
	m.category = &r
}

// Category returns the value of the "category" field in the mutation.
func (m *ResearchSessionMutation) Category() (r researchsession.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCategory(ctx context.Context) (v researchsession.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ResearchSessionMutation) ResetCategory() {
	m.category = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *ResearchSessionMutation) SetProcessingStatus(rs researchsession.ProcessingStatus) {
	m.processing_status = &rs
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *ResearchSessionMutation) ProcessingStatus() (r researchsession.ProcessingStatus, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldProcessingStatus(ctx context.Context) (v researchsession.ProcessingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *ResearchSessionMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResearchSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResearchSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResearchSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ResearchSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[researchsession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ResearchSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ResearchSessionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ResearchSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddMessageIDs adds the "messages" edge to the ResearchMessage entity by ids.
func (m *ResearchSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ResearchMessage entity.
func (m *ResearchSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ResearchMessage entity was cleared.
func (m *ResearchSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ResearchMessage entity by IDs.
func (m *ResearchSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ResearchMessage entity.
func (m *ResearchSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ResearchSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ResearchSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ResearchSessionMutation builder.
func (m *ResearchSessionMutation) Where(ps ...predicate.ResearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchSession).
func (m *ResearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, researchsession.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, researchsession.FieldTitle)
	}
	if m.category != nil {
		fields = append(fields, researchsession.FieldCategory)
	}
	if m.processing_status != nil {
		fields = append(fields, researchsession.FieldProcessingStatus)
	}
	if m.created_at != nil {
		fields = append(fields, researchsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, researchsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchsession.FieldUserID:
		return m.UserID()
	case researchsession.FieldTitle:
		return m.Title()
	case researchsession.FieldCategory:
		return m.Category()
	case researchsession.FieldProcessingStatus:
		return m.ProcessingStatus()
	case researchsession.FieldCreatedAt:
		return m.CreatedAt()
	case researchsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchsession.FieldUserID:
		return m.OldUserID(ctx)
	case researchsession.FieldTitle:
		return m.OldTitle(ctx)
	case researchsession.FieldCategory:
		return m.OldCategory(ctx)
	case researchsession.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case researchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case researchsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case researchsession.FieldCategory:
		v, ok := value.(researchsession.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case researchsession.FieldProcessingStatus:
		v, ok := value.(researchsession.ProcessingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case researchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchsession.FieldTitle) {
		fields = append(fields, researchsession.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ClearField(name string) error {
	switch name {
	case researchsession.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ResetField(name string) error {
	switch name {
	case researchsession.FieldUserID:
		m.ResetUserID()
		return nil
	case researchsession.FieldTitle:
		m.ResetTitle()
		return nil
	case researchsession.FieldCategory:
		m.ResetCategory()
		return nil
	case researchsession.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case researchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, researchsession.EdgeUser)
	}
	if m.messages != nil {
		edges = append(edges, researchsession.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchsession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case researchsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, researchsession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, researchsession.EdgeUser)
	}
	if m.clearedmessages {
		edges = append(edges, researchsession.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case researchsession.EdgeUser:
		return m.cleareduser
	case researchsession.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchSessionMutation) ClearEdge(name string) error {
	switch name {
	case researchsession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchSessionMutation) ResetEdge(name string) error {
	switch name {
	case researchsession.EdgeUser:
		m.ResetUser()
		return nil
	case researchsession.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	username                 *string
	display_name             *string
	points                   *int
	addpoints                *int
	selected_character       *user.SelectedCharacter
	affinity_sakura          *int
	addaffinity_sakura       *int
	affinity_miyabi          *int
	addaffinity_miyabi       *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	paper_links              map[string]struct{}
	removedpaper_links       map[string]struct{}
	clearedpaper_links       bool
	custom_summaries         map[string]struct{}
	removedcustom_summaries  map[string]struct{}
	clearedcustom_summaries  bool
	edited_summaries         map[string]struct{}
	removededited_summaries  map[string]struct{}
	clearededited_summaries  bool
	prompts                  map[string]struct{}
	removedprompts           map[string]struct{}
	clearedprompts           bool
	prompt_groups            map[string]struct{}
	removedprompt_groups     map[string]struct{}
	clearedprompt_groups     bool
	research_sessions        map[string]struct{}
	removedresearch_sessions map[string]struct{}
	clearedresearch_sessions bool
	chat_sessions            map[string]struct{}
	removedchat_sessions     map[string]struct{}
	clearedchat_sessions     bool
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetPoints sets the "points" field.
func (m *UserMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *UserMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *UserMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *UserMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *UserMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetSelectedCharacter sets the "selected_character" field.
func (m *UserMutation) SetSelectedCharacter(uc user.SelectedCharacter) {
	m.selected_character = &uc
}

// SelectedCharacter returns the value of the "selected_character" field in the mutation.
func (m *UserMutation) SelectedCharacter() (r user.SelectedCharacter, exists bool) {
	v := m.selected_character
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedCharacter returns the old "selected_character" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSelectedCharacter(ctx context.Context) (v user.SelectedCharacter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedCharacter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedCharacter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedCharacter: %w", err)
	}
	return oldValue.SelectedCharacter, nil
}

// ResetSelectedCharacter resets all changes to the "selected_character" field.
func (m *UserMutation) ResetSelectedCharacter() {
	m.selected_character = nil
}

// SetAffinitySakura sets the "affinity_sakura" field.
func (m *UserMutation) SetAffinitySakura(i int) {
	m.affinity_sakura = &i
	m.addaffinity_sakura = nil
}

// AffinitySakura returns the value of the "affinity_sakura" field in the mutation.
func (m *UserMutation) AffinitySakura() (r int, exists bool) {
	v := m.affinity_sakura
	if v == nil {
		return
	}
	return *v, true
}

// OldAffinitySakura returns the old "affinity_sakura" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAffinitySakura(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffinitySakura is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffinitySakura requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffinitySakura: %w", err)
	}
	return oldValue.AffinitySakura, nil
}

// AddAffinitySakura adds i to the "affinity_sakura" field.
func (m *UserMutation) AddAffinitySakura(i int) {
	if m.addaffinity_sakura != nil {
		*m.addaffinity_sakura += i
	} else {
		m.addaffinity_sakura = &i
	}
}

// AddedAffinitySakura returns the value that was added to the "affinity_sakura" field in this mutation.
func (m *UserMutation) AddedAffinitySakura() (r int, exists bool) {
	v := m.addaffinity_sakura
	if v == nil {
		return
	}
	return *v, true
}

// ResetAffinitySakura resets all changes to the "affinity_sakura" field.
func (m *UserMutation) ResetAffinitySakura() {
	m.affinity_sakura = nil
	m.addaffinity_sakura = nil
}

// SetAffinityMiyabi sets the "affinity_miyabi" field.
func (m *UserMutation) SetAffinityMiyabi(i int) {
	m.affinity_miyabi = &i
	m.addaffinity_miyabi = nil
}

// AffinityMiyabi returns the value of the "affinity_miyabi" field in the mutation.
func (m *UserMutation) AffinityMiyabi() (r int, exists bool) {
	v := m.affinity_miyabi
	if v == nil {
		return
	}
	return *v, true
}

// OldAffinityMiyabi returns the old "affinity_miyabi" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAffinityMiyabi(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffinityMiyabi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffinityMiyabi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffinityMiyabi: %w", err)
	}
	return oldValue.AffinityMiyabi, nil
}

// AddAffinityMiyabi adds i to the "affinity_miyabi" field.
func (m *UserMutation) AddAffinityMiyabi(i int) {
	if m.addaffinity_miyabi != nil {
		*m.addaffinity_miyabi += i
	} else {
		m.addaffinity_miyabi = &i
	}
}

// AddedAffinityMiyabi returns the value that was added to the "affinity_miyabi" field in this mutation.
func (m *UserMutation) AddedAffinityMiyabi() (r int, exists bool) {
	v := m.addaffinity_miyabi
	if v == nil {
		return
	}
	return *v, true
}

// ResetAffinityMiyabi resets all changes to the "affinity_miyabi" field.
func (m *UserMutation) ResetAffinityMiyabi() {
	m.affinity_miyabi = nil
	m.addaffinity_miyabi = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPaperLinkIDs adds the "paper_links" edge to the UserPaperLink entity by ids.
func (m *UserMutation) AddPaperLinkIDs(ids ...string) {
	if m.paper_links == nil {
		m.paper_links = make(map[string]struct{})
	}
	for i := range ids {
		m.paper_links[ids[i]] = struct{}{}
	}
}

// ClearPaperLinks clears the "paper_links" edge to the UserPaperLink entity.
func (m *UserMutation) ClearPaperLinks() {
	m.clearedpaper_links = true
}

// PaperLinksCleared reports if the "paper_links" edge to the UserPaperLink entity was cleared.
func (m *UserMutation) PaperLinksCleared() bool {
	return m.clearedpaper_links
}

// RemovePaperLinkIDs removes the "paper_links" edge to the UserPaperLink entity by IDs.
func (m *UserMutation) RemovePaperLinkIDs(ids ...string) {
	if m.removedpaper_links == nil {
		m.removedpaper_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.paper_links, ids[i])
		m.removedpaper_links[ids[i]] = struct{}{}
	}
}

// RemovedPaperLinks returns the removed IDs of the "paper_links" edge to the UserPaperLink entity.
func (m *UserMutation) RemovedPaperLinksIDs() (ids []string) {
	for id := range m.removedpaper_links {
		ids = append(ids, id)
	}
	return
}

// PaperLinksIDs returns the "paper_links" edge IDs in the mutation.
func (m *UserMutation) PaperLinksIDs() (ids []string) {
	for id := range m.paper_links {
		ids = append(ids, id)
	}
	return
}

// ResetPaperLinks resets all changes to the "paper_links" edge.
func (m *UserMutation) ResetPaperLinks() {
	m.paper_links = nil
	m.clearedpaper_links = false
	m.removedpaper_links = nil
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by ids.
func (m *UserMutation) AddCustomSummaryIDs(ids ...string) {
	if m.custom_summaries == nil {
		m.custom_summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.custom_summaries[ids[i]] = struct{}{}
	}
}

// ClearCustomSummaries clears the "custom_summaries" edge to the CustomSummary entity.
func (m *UserMutation) ClearCustomSummaries() {
	m.clearedcustom_summaries = true
}

// CustomSummariesCleared reports if the "custom_summaries" edge to the CustomSummary entity was cleared.
func (m *UserMutation) CustomSummariesCleared() bool {
	return m.clearedcustom_summaries
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to the CustomSummary entity by IDs.
func (m *UserMutation) RemoveCustomSummaryIDs(ids ...string) {
	if m.removedcustom_summaries == nil {
		m.removedcustom_summaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.custom_summaries, ids[i])
		m.removedcustom_summaries[ids[i]] = struct{}{}
	}
}

// RemovedCustomSummaries returns the removed IDs of the "custom_summaries" edge to the CustomSummary entity.
func (m *UserMutation) RemovedCustomSummariesIDs() (ids []string) {
	for id := range m.removedcustom_summaries {
		ids = append(ids, id)
	}
	return
}

// CustomSummariesIDs returns the "custom_summaries" edge IDs in the mutation.
func (m *UserMutation) CustomSummariesIDs() (ids []string) {
	for id := range m.custom_summaries {
		ids = append(ids, id)
	}
	return
}

// ResetCustomSummaries resets all changes to the "custom_summaries" edge.
func (m *UserMutation) ResetCustomSummaries() {
	m.custom_summaries = nil
	m.clearedcustom_summaries = false
	m.removedcustom_summaries = nil
}

// AddEditedSummaryIDs adds the "edited_summaries" edge to the EditedSummary entity by ids.
func (m *UserMutation) AddEditedSummaryIDs(ids ...string) {
	if m.edited_summaries == nil {
		m.edited_summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.edited_summaries[ids[i]] = struct{}{}
	}
}

// ClearEditedSummaries clears the "edited_summaries" edge to the EditedSummary entity.
func (m *UserMutation) ClearEditedSummaries() {
	m.clearededited_summaries = true
}

// EditedSummariesCleared reports if the "edited_summaries" edge to the EditedSummary entity was cleared.
func (m *UserMutation) EditedSummariesCleared() bool {
	return m.clearededited_summaries
}

// RemoveEditedSummaryIDs removes the "edited_summaries" edge to the EditedSummary entity by IDs.
func (m *UserMutation) RemoveEditedSummaryIDs(ids ...string) {
	if m.removededited_summaries == nil {
		m.removededited_summaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.edited_summaries, ids[i])
		m.removededited_summaries[ids[i]] = struct{}{}
	}
}

// RemovedEditedSummaries returns the removed IDs of the "edited_summaries" edge to the EditedSummary entity.
func (m *UserMutation) RemovedEditedSummariesIDs() (ids []string) {
	for id := range m.removededited_summaries {
		ids = append(ids, id)
	}
	return
}

// EditedSummariesIDs returns the "edited_summaries" edge IDs in the mutation.
func (m *UserMutation) EditedSummariesIDs() (ids []string) {
	for id := range m.edited_summaries {
		ids = append(ids, id)
	}
	return
}

// ResetEditedSummaries resets all changes to the "edited_summaries" edge.
func (m *UserMutation) ResetEditedSummaries() {
	m.edited_summaries = nil
	m.clearededited_summaries = false
	m.removededited_summaries = nil
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by ids.
func (m *UserMutation) AddPromptIDs(ids ...string) {
	if m.prompts == nil {
		m.prompts = make(map[string]struct{})
	}
	for i := range ids {
		m.prompts[ids[i]] = struct{}{}
	}
}

// ClearPrompts clears the "prompts" edge to the Prompt entity.
func (m *UserMutation) ClearPrompts() {
	m.clearedprompts = true
}

// PromptsCleared reports if the "prompts" edge to the Prompt entity was cleared.
func (m *UserMutation) PromptsCleared() bool {
	return m.clearedprompts
}

// RemovePromptIDs removes the "prompts" edge to the Prompt entity by IDs.
func (m *UserMutation) RemovePromptIDs(ids ...string) {
	if m.removedprompts == nil {
		m.removedprompts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.prompts, ids[i])
		m.removedprompts[ids[i]] = struct{}{}
	}
}

// RemovedPrompts returns the removed IDs of the "prompts" edge to the Prompt entity.
func (m *UserMutation) RemovedPromptsIDs() (ids []string) {
	for id := range m.removedprompts {
		ids = append(ids, id)
	}
	return
}

// PromptsIDs returns the "prompts" edge IDs in the mutation.
func (m *UserMutation) PromptsIDs() (ids []string) {
	for id := range m.prompts {
		ids = append(ids, id)
	}
	return
}

// ResetPrompts resets all changes to the "prompts" edge.
func (m *UserMutation) ResetPrompts() {
	m.prompts = nil
	m.clearedprompts = false
	m.removedprompts = nil
}

// AddPromptGroupIDs adds the "prompt_groups" edge to the PromptGroup entity by ids.
func (m *UserMutation) AddPromptGroupIDs(ids ...string) {
	if m.prompt_groups == nil {
		m.prompt_groups = make(map[string]struct{})
	}
	for i := range ids {
		m.prompt_groups[ids[i]] = struct{}{}
	}
}

// ClearPromptGroups clears the "prompt_groups" edge to the PromptGroup entity.
func (m *UserMutation) ClearPromptGroups() {
	m.clearedprompt_groups = true
}

// PromptGroupsCleared reports if the "prompt_groups" edge to the PromptGroup entity was cleared.
func (m *UserMutation) PromptGroupsCleared() bool {
	return m.clearedprompt_groups
}

// RemovePromptGroupIDs removes the "prompt_groups" edge to the PromptGroup entity by IDs.
func (m *UserMutation) RemovePromptGroupIDs(ids ...string) {
	if m.removedprompt_groups == nil {
		m.removedprompt_groups = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.prompt_groups, ids[i])
		m.removedprompt_groups[ids[i]] = struct{}{}
	}
}

// RemovedPromptGroups returns the removed IDs of the "prompt_groups" edge to the PromptGroup entity.
func (m *UserMutation) RemovedPromptGroupsIDs() (ids []string) {
	for id := range m.removedprompt_groups {
		ids = append(ids, id)
	}
	return
}

// PromptGroupsIDs returns the "prompt_groups" edge IDs in the mutation.
func (m *UserMutation) PromptGroupsIDs() (ids []string) {
	for id := range m.prompt_groups {
		ids = append(ids, id)
	}
	return
}

// ResetPromptGroups resets all changes to the "prompt_groups" edge.
func (m *UserMutation) ResetPromptGroups() {
	m.prompt_groups = nil
	m.clearedprompt_groups = false
	m.removedprompt_groups = nil
}

// AddResearchSessionIDs adds the "research_sessions" edge to the ResearchSession entity by ids.
func (m *UserMutation) AddResearchSessionIDs(ids ...string) {
	if m.research_sessions == nil {
		m.research_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.research_sessions[ids[i]] = struct{}{}
	}
}

// ClearResearchSessions clears the "research_sessions" edge to the ResearchSession entity.
func (m *UserMutation) ClearResearchSessions() {
	m.clearedresearch_sessions = true
}

// ResearchSessionsCleared reports if the "research_sessions" edge to the ResearchSession entity was cleared.
func (m *UserMutation) ResearchSessionsCleared() bool {
	return m.clearedresearch_sessions
}

// RemoveResearchSessionIDs removes the "research_sessions" edge to the ResearchSession entity by IDs.
func (m *UserMutation) RemoveResearchSessionIDs(ids ...string) {
	if m.removedresearch_sessions == nil {
		m.removedresearch_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.research_sessions, ids[i])
		m.removedresearch_sessions[ids[i]] = struct{}{}
	}
}

// RemovedResearchSessions returns the removed IDs of the "research_sessions" edge to the ResearchSession entity.
func (m *UserMutation) RemovedResearchSessionsIDs() (ids []string) {
	for id := range m.removedresearch_sessions {
		ids = append(ids, id)
	}
	return
}

// ResearchSessionsIDs returns the "research_sessions" edge IDs in the mutation.
func (m *UserMutation) ResearchSessionsIDs() (ids []string) {
	for id := range m.research_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetResearchSessions resets all changes to the "research_sessions" edge.
func (m *UserMutation) ResetResearchSessions() {
	m.research_sessions = nil
	m.clearedresearch_sessions = false
	m.removedresearch_sessions = nil
}

// AddChatSessionIDs adds the "chat_sessions" edge to the PaperChatSession entity by ids.
func (m *UserMutation) AddChatSessionIDs(ids ...string) {
	if m.chat_sessions == nil {
		m.chat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_sessions[ids[i]] = struct{}{}
	}
}

// ClearChatSessions clears the "chat_sessions" edge to the PaperChatSession entity.
func (m *UserMutation) ClearChatSessions() {
	m.clearedchat_sessions = true
}

// ChatSessionsCleared reports if the "chat_sessions" edge to the PaperChatSession entity was cleared.
func (m *UserMutation) ChatSessionsCleared() bool {
	return m.clearedchat_sessions
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to the PaperChatSession entity by IDs.
func (m *UserMutation) RemoveChatSessionIDs(ids ...string) {
	if m.removedchat_sessions == nil {
		m.removedchat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_sessions, ids[i])
		m.removedchat_sessions[ids[i]] = struct{}{}
	}
}

// RemovedChatSessions returns the removed IDs of the "chat_sessions" edge to the PaperChatSession entity.
func (m *UserMutation) RemovedChatSessionsIDs() (ids []string) {
	for id := range m.removedchat_sessions {
		ids = append(ids, id)
	}
	return
}

// ChatSessionsIDs returns the "chat_sessions" edge IDs in the mutation.
func (m *UserMutation) ChatSessionsIDs() (ids []string) {
	for id := range m.chat_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetChatSessions resets all changes to the "chat_sessions" edge.
func (m *UserMutation) ResetChatSessions() {
	m.chat_sessions = nil
	m.clearedchat_sessions = false
	m.removedchat_sessions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.points != nil {
		fields = append(fields, user.FieldPoints)
	}
	if m.selected_character != nil {
		fields = append(fields, user.FieldSelectedCharacter)
	}
	if m.affinity_sakura != nil {
		fields = append(fields, user.FieldAffinitySakura)
	}
	if m.affinity_miyabi != nil {
		fields = append(fields, user.FieldAffinityMiyabi)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldPoints:
		return m.Points()
	case user.FieldSelectedCharacter:
		return m.SelectedCharacter()
	case user.FieldAffinitySakura:
		return m.AffinitySakura()
	case user.FieldAffinityMiyabi:
		return m.AffinityMiyabi()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldPoints:
		return m.OldPoints(ctx)
	case user.FieldSelectedCharacter:
		return m.OldSelectedCharacter(ctx)
	case user.FieldAffinitySakura:
		return m.OldAffinitySakura(ctx)
	case user.FieldAffinityMiyabi:
		return m.OldAffinityMiyabi(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case user.FieldSelectedCharacter:
		v, ok := value.(user.SelectedCharacter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedCharacter(v)
		return nil
	case user.FieldAffinitySakura:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffinitySakura(v)
		return nil
	case user.FieldAffinityMiyabi:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffinityMiyabi(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, user.FieldPoints)
	}
	if m.addaffinity_sakura != nil {
		fields = append(fields, user.FieldAffinitySakura)
	}
	if m.addaffinity_miyabi != nil {
		fields = append(fields, user.FieldAffinityMiyabi)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldPoints:
		return m.AddedPoints()
	case user.FieldAffinitySakura:
		return m.AddedAffinitySakura()
	case user.FieldAffinityMiyabi:
		return m.AddedAffinityMiyabi()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case user.FieldAffinitySakura:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAffinitySakura(v)
		return nil
	case user.FieldAffinityMiyabi:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAffinityMiyabi(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldPoints:
		m.ResetPoints()
		return nil
	case user.FieldSelectedCharacter:
		m.ResetSelectedCharacter()
		return nil
	case user.FieldAffinitySakura:
		m.ResetAffinitySakura()
		return nil
	case user.FieldAffinityMiyabi:
		m.ResetAffinityMiyabi()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.paper_links != nil {
		edges = append(edges, user.EdgePaperLinks)
	}
	if m.custom_summaries != nil {
		edges = append(edges, user.EdgeCustomSummaries)
	}
	if m.edited_summaries != nil {
		edges = append(edges, user.EdgeEditedSummaries)
	}
	if m.prompts != nil {
		edges = append(edges, user.EdgePrompts)
	}
	if m.prompt_groups != nil {
		edges = append(edges, user.EdgePromptGroups)
	}
	if m.research_sessions != nil {
		edges = append(edges, user.EdgeResearchSessions)
	}
	if m.chat_sessions != nil {
		edges = append(edges, user.EdgeChatSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePaperLinks:
		ids := make([]ent.Value, 0, len(m.paper_links))
		for id := range m.paper_links {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCustomSummaries:
		ids := make([]ent.Value, 0, len(m.custom_summaries))
		for id := range m.custom_summaries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeEditedSummaries:
		ids := make([]ent.Value, 0, len(m.edited_summaries))
		for id := range m.edited_summaries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePrompts:
		ids := make([]ent.Value, 0, len(m.prompts))
		for id := range m.prompts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePromptGroups:
		ids := make([]ent.Value, 0, len(m.prompt_groups))
		for id := range m.prompt_groups {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeResearchSessions:
		ids := make([]ent.Value, 0, len(m.research_sessions))
		for id := range m.research_sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.chat_sessions))
		for id := range m.chat_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedpaper_links != nil {
		edges = append(edges, user.EdgePaperLinks)
	}
	if m.removedcustom_summaries != nil {
		edges = append(edges, user.EdgeCustomSummaries)
	}
	if m.removededited_summaries != nil {
		edges = append(edges, user.EdgeEditedSummaries)
	}
	if m.removedprompts != nil {
		edges = append(edges, user.EdgePrompts)
	}
	if m.removedprompt_groups != nil {
		edges = append(edges, user.EdgePromptGroups)
	}
	if m.removedresearch_sessions != nil {
		edges = append(edges, user.EdgeResearchSessions)
	}
	if m.removedchat_sessions != nil {
		edges = append(edges, user.EdgeChatSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePaperLinks:
		ids := make([]ent.Value, 0, len(m.removedpaper_links))
		for id := range m.removedpaper_links {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCustomSummaries:
		ids := make([]ent.Value, 0, len(m.removedcustom_summaries))
		for id := range m.removedcustom_summaries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeEditedSummaries:
		ids := make([]ent.Value, 0, len(m.removededited_summaries))
		for id := range m.removededited_summaries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePrompts:
		ids := make([]ent.Value, 0, len(m.removedprompts))
		for id := range m.removedprompts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePromptGroups:
		ids := make([]ent.Value, 0, len(m.removedprompt_groups))
		for id := range m.removedprompt_groups {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeResearchSessions:
		ids := make([]ent.Value, 0, len(m.removedresearch_sessions))
		for id := range m.removedresearch_sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.removedchat_sessions))
		for id := range m.removedchat_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedpaper_links {
		edges = append(edges, user.EdgePaperLinks)
	}
	if m.clearedcustom_summaries {
		edges = append(edges, user.EdgeCustomSummaries)
	}
	if m.clearededited_summaries {
		edges = append(edges, user.EdgeEditedSummaries)
	}
	if m.clearedprompts {
		edges = append(edges, user.EdgePrompts)
	}
	if m.clearedprompt_groups {
		edges = append(edges, user.EdgePromptGroups)
	}
	if m.clearedresearch_sessions {
		edges = append(edges, user.EdgeResearchSessions)
	}
	if m.clearedchat_sessions {
		edges = append(edges, user.EdgeChatSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePaperLinks:
		return m.clearedpaper_links
	case user.EdgeCustomSummaries:
		return m.clearedcustom_summaries
	case user.EdgeEditedSummaries:
		return m.clearededited_summaries
	case user.EdgePrompts:
		return m.clearedprompts
	case user.EdgePromptGroups:
		return m.clearedprompt_groups
	case user.EdgeResearchSessions:
		return m.clearedresearch_sessions
	case user.EdgeChatSessions:
		return m.clearedchat_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePaperLinks:
		m.ResetPaperLinks()
		return nil
	case user.EdgeCustomSummaries:
		m.ResetCustomSummaries()
		return nil
	case user.EdgeEditedSummaries:
		m.ResetEditedSummaries()
		return nil
	case user.EdgePrompts:
		m.ResetPrompts()
		return nil
	case user.EdgePromptGroups:
		m.ResetPromptGroups()
		return nil
	case user.EdgeResearchSessions:
		m.ResetResearchSessions()
		return nil
	case user.EdgeChatSessions:
		m.ResetChatSessions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserPaperLinkMutation represents an operation that mutates the UserPaperLink nodes in the graph.
type UserPaperLinkMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	tags                        *string
	memo                        *string
	selected_default_summary_id *string
	selected_custom_summary_id  *string
	last_accessed               *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	user                        *string
	cleareduser                 bool
	paper                       *string
	clearedpaper                bool
	done                        bool
	oldValue                    func(context.Context) (*UserPaperLink, error)
	predicates                  []predicate.UserPaperLink
}

var _ ent.Mutation = (*UserPaperLinkMutation)(nil)

// userpaperlinkOption allows management of the mutation configuration using functional options.
type userpaperlinkOption func(*UserPaperLinkMutation)

// newUserPaperLinkMutation creates new mutation for the UserPaperLink entity.
func newUserPaperLinkMutation(c config, op Op, opts ...userpaperlinkOption) *UserPaperLinkMutation {
	m := &UserPaperLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeUserPaperLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserPaperLinkID sets the ID field of the mutation.
func withUserPaperLinkID(id string) userpaperlinkOption {
	return func(m *UserPaperLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *UserPaperLink
		)
		m.oldValue = func(ctx context.Context) (*UserPaperLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserPaperLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserPaperLink sets the old UserPaperLink of the mutation.
func withUserPaperLink(node *UserPaperLink) userpaperlinkOption {
	return func(m *UserPaperLinkMutation) {
		m.oldValue = func(context.Context) (*UserPaperLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserPaperLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserPaperLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserPaperLink entities.
func (m *UserPaperLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserPaperLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserPaperLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserPaperLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserPaperLinkMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserPaperLinkMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserPaperLinkMutation) ResetUserID() {
	m.user = nil
}

// SetPaperID sets the "paper_id" field.
func (m *UserPaperLinkMutation) SetPaperID(s string) {
	m.paper = &s
}

// PaperID returns the value of the "paper_id" field in the mutation.
func (m *UserPaperLinkMutation) PaperID() (r string, exists bool) {
	v := m.paper
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperID returns the old "paper_id" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldPaperID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperID: %w", err)
	}
	return oldValue.PaperID, nil
}

// ResetPaperID resets all changes to the "paper_id" field.
func (m *UserPaperLinkMutation) ResetPaperID() {
	m.paper = nil
}

// SetTags sets the "tags" field.
func (m *UserPaperLinkMutation) SetTags(s string) {
	m.tags = &s
}

// Tags returns the value of the "tags" field in the mutation.
func (m *UserPaperLinkMutation) Tags() (r string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldTags(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// ClearTags clears the value of the "tags" field.
func (m *UserPaperLinkMutation) ClearTags() {
	m.tags = nil
	m.clearedFields[userpaperlink.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *UserPaperLinkMutation) TagsCleared() bool {
	_, ok := m.clearedFields[userpaperlink.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *UserPaperLinkMutation) ResetTags() {
	m.tags = nil
	delete(m.clearedFields, userpaperlink.FieldTags)
}

// SetMemo sets the "memo" field.
func (m *UserPaperLinkMutation) SetMemo(s string) {
	m.memo = &s
}

// Memo returns the value of the "memo" field in the mutation.
func (m *UserPaperLinkMutation) Memo() (r string, exists bool) {
	v := m.memo
	if v == nil {
		return
	}
	return *v, true
}

// OldMemo returns the old "memo" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldMemo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemo: %w", err)
	}
	return oldValue.Memo, nil
}

// ClearMemo clears the value of the "memo" field.
func (m *UserPaperLinkMutation) ClearMemo() {
	m.memo = nil
	m.clearedFields[userpaperlink.FieldMemo] = struct{}{}
}

// MemoCleared returns if the "memo" field was cleared in this mutation.
func (m *UserPaperLinkMutation) MemoCleared() bool {
	_, ok := m.clearedFields[userpaperlink.FieldMemo]
	return ok
}

// ResetMemo resets all changes to the "memo" field.
func (m *UserPaperLinkMutation) ResetMemo() {
	m.memo = nil
	delete(m.clearedFields, userpaperlink.FieldMemo)
}

// SetSelectedDefaultSummaryID sets the "selected_default_summary_id" field.
func (m *UserPaperLinkMutation) SetSelectedDefaultSummaryID(s string) {
	m.selected_default_summary_id = &s
}

// SelectedDefaultSummaryID returns the value of the "selected_default_summary_id" field in the mutation.
func (m *UserPaperLinkMutation) SelectedDefaultSummaryID() (r string, exists bool) {
	v := m.selected_default_summary_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedDefaultSummaryID returns the old "selected_default_summary_id" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldSelectedDefaultSummaryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedDefaultSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedDefaultSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedDefaultSummaryID: %w", err)
	}
	return oldValue.SelectedDefaultSummaryID, nil
}

// ClearSelectedDefaultSummaryID clears the value of the "selected_default_summary_id" field.
func (m *UserPaperLinkMutation) ClearSelectedDefaultSummaryID() {
	m.selected_default_summary_id = nil
	m.clearedFields[userpaperlink.FieldSelectedDefaultSummaryID] = struct{}{}
}

// SelectedDefaultSummaryIDCleared returns if the "selected_default_summary_id" field was cleared in this mutation.
func (m *UserPaperLinkMutation) SelectedDefaultSummaryIDCleared() bool {
	_, ok := m.clearedFields[userpaperlink.FieldSelectedDefaultSummaryID]
	return ok
}

// ResetSelectedDefaultSummaryID resets all changes to the "selected_default_summary_id" field.
func (m *UserPaperLinkMutation) ResetSelectedDefaultSummaryID() {
	m.selected_default_summary_id = nil
	delete(m.clearedFields, userpaperlink.FieldSelectedDefaultSummaryID)
}

// SetSelectedCustomSummaryID sets the "selected_custom_summary_id" field.
func (m *UserPaperLinkMutation) SetSelectedCustomSummaryID(s string) {
	m.selected_custom_summary_id = &s
}

// SelectedCustomSummaryID returns the value of the "selected_custom_summary_id" field in the mutation.
func (m *UserPaperLinkMutation) SelectedCustomSummaryID() (r string, exists bool) {
	v := m.selected_custom_summary_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedCustomSummaryID returns the old "selected_custom_summary_id" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldSelectedCustomSummaryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedCustomSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedCustomSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedCustomSummaryID: %w", err)
	}
	return oldValue.SelectedCustomSummaryID, nil
}

// ClearSelectedCustomSummaryID clears the value of the "selected_custom_summary_id" field.
func (m *UserPaperLinkMutation) ClearSelectedCustomSummaryID() {
	m.selected_custom_summary_id = nil
	m.clearedFields[userpaperlink.FieldSelectedCustomSummaryID] = struct{}{}
}

// SelectedCustomSummaryIDCleared returns if the "selected_custom_summary_id" field was cleared in this mutation.
func (m *UserPaperLinkMutation) SelectedCustomSummaryIDCleared() bool {
	_, ok := m.clearedFields[userpaperlink.FieldSelectedCustomSummaryID]
	return ok
}

// ResetSelectedCustomSummaryID resets all changes to the "selected_custom_summary_id" field.
func (m *UserPaperLinkMutation) ResetSelectedCustomSummaryID() {
	m.selected_custom_summary_id = nil
	delete(m.clearedFields, userpaperlink.FieldSelectedCustomSummaryID)
}

// SetLastAccessed sets the "last_accessed" field.
func (m *UserPaperLinkMutation) SetLastAccessed(t time.Time) {
	m.last_accessed = &t
}

// LastAccessed returns the value of the "last_accessed" field in the mutation.
func (m *UserPaperLinkMutation) LastAccessed() (r time.Time, exists bool) {
	v := m.last_accessed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessed returns the old "last_accessed" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldLastAccessed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessed: %w", err)
	}
	return oldValue.LastAccessed, nil
}

// ClearLastAccessed clears the value of the "last_accessed" field.
func (m *UserPaperLinkMutation) ClearLastAccessed() {
	m.last_accessed = nil
	m.clearedFields[userpaperlink.FieldLastAccessed] = struct{}{}
}

// LastAccessedCleared returns if the "last_accessed" field was cleared in this mutation.
func (m *UserPaperLinkMutation) LastAccessedCleared() bool {
	_, ok := m.clearedFields[userpaperlink.FieldLastAccessed]
	return ok
}

// ResetLastAccessed resets all changes to the "last_accessed" field.
func (m *UserPaperLinkMutation) ResetLastAccessed() {
	m.last_accessed = nil
	delete(m.clearedFields, userpaperlink.FieldLastAccessed)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserPaperLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserPaperLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserPaperLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserPaperLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserPaperLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserPaperLink entity.
// If the UserPaperLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserPaperLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserPaperLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserPaperLinkMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[userpaperlink.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserPaperLinkMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserPaperLinkMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserPaperLinkMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearPaper clears the "paper" edge to the PaperMetadata entity.
func (m *UserPaperLinkMutation) ClearPaper() {
	m.clearedpaper = true
	m.clearedFields[userpaperlink.FieldPaperID] = struct{}{}
}

// PaperCleared reports if the "paper" edge to the PaperMetadata entity was cleared.
func (m *UserPaperLinkMutation) PaperCleared() bool {
	return m.clearedpaper
}

// PaperIDs returns the "paper" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaperID instead. It exists only for internal usage by the builders.
func (m *UserPaperLinkMutation) PaperIDs() (ids []string) {
	if id := m.paper; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPaper resets all changes to the "paper" edge.
func (m *UserPaperLinkMutation) ResetPaper() {
	m.paper = nil
	m.clearedpaper = false
}

// Where appends a list predicates to the UserPaperLinkMutation builder.
func (m *UserPaperLinkMutation) Where(ps ...predicate.UserPaperLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserPaperLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserPaperLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserPaperLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserPaperLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserPaperLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserPaperLink).
func (m *UserPaperLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserPaperLinkMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, userpaperlink.FieldUserID)
	}
	if m.paper != nil {
		fields = append(fields, userpaperlink.FieldPaperID)
	}
	if m.tags != nil {
		fields = append(fields, userpaperlink.FieldTags)
	}
	if m.memo != nil {
		fields = append(fields, userpaperlink.FieldMemo)
	}
	if m.selected_default_summary_id != nil {
		fields = append(fields, userpaperlink.FieldSelectedDefaultSummaryID)
	}
	if m.selected_custom_summary_id != nil {
		fields = append(fields, userpaperlink.FieldSelectedCustomSummaryID)
	}
	if m.last_accessed != nil {
		fields = append(fields, userpaperlink.FieldLastAccessed)
	}
	if m.created_at != nil {
		fields = append(fields, userpaperlink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userpaperlink.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserPaperLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userpaperlink.FieldUserID:
		return m.UserID()
	case userpaperlink.FieldPaperID:
		return m.PaperID()
	case userpaperlink.FieldTags:
		return m.Tags()
	case userpaperlink.FieldMemo:
		return m.Memo()
	case userpaperlink.FieldSelectedDefaultSummaryID:
		return m.SelectedDefaultSummaryID()
	case userpaperlink.FieldSelectedCustomSummaryID:
		return m.SelectedCustomSummaryID()
	case userpaperlink.FieldLastAccessed:
		return m.LastAccessed()
	case userpaperlink.FieldCreatedAt:
		return m.CreatedAt()
	case userpaperlink.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserPaperLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userpaperlink.FieldUserID:
		return m.OldUserID(ctx)
	case userpaperlink.FieldPaperID:
		return m.OldPaperID(ctx)
	case userpaperlink.FieldTags:
		return m.OldTags(ctx)
	case userpaperlink.FieldMemo:
		return m.OldMemo(ctx)
	case userpaperlink.FieldSelectedDefaultSummaryID:
		return m.OldSelectedDefaultSummaryID(ctx)
	case userpaperlink.FieldSelectedCustomSummaryID:
		return m.OldSelectedCustomSummaryID(ctx)
	case userpaperlink.FieldLastAccessed:
		return m.OldLastAccessed(ctx)
	case userpaperlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userpaperlink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserPaperLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserPaperLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userpaperlink.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userpaperlink.FieldPaperID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperID(v)
		return nil
	case userpaperlink.FieldTags:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case userpaperlink.FieldMemo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemo(v)
		return nil
	case userpaperlink.FieldSelectedDefaultSummaryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedDefaultSummaryID(v)
		return nil
	case userpaperlink.FieldSelectedCustomSummaryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedCustomSummaryID(v)
		return nil
	case userpaperlink.FieldLastAccessed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessed(v)
		return nil
	case userpaperlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userpaperlink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserPaperLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserPaperLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserPaperLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserPaperLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserPaperLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserPaperLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userpaperlink.FieldTags) {
		fields = append(fields, userpaperlink.FieldTags)
	}
	if m.FieldCleared(userpaperlink.FieldMemo) {
		fields = append(fields, userpaperlink.FieldMemo)
	}
	if m.FieldCleared(userpaperlink.FieldSelectedDefaultSummaryID) {
		fields = append(fields, userpaperlink.FieldSelectedDefaultSummaryID)
	}
	if m.FieldCleared(userpaperlink.FieldSelectedCustomSummaryID) {
		fields = append(fields, userpaperlink.FieldSelectedCustomSummaryID)
	}
	if m.FieldCleared(userpaperlink.FieldLastAccessed) {
		fields = append(fields, userpaperlink.FieldLastAccessed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserPaperLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserPaperLinkMutation) ClearField(name string) error {
	switch name {
	case userpaperlink.FieldTags:
		m.ClearTags()
		return nil
	case userpaperlink.FieldMemo:
		m.ClearMemo()
		return nil
	case userpaperlink.FieldSelectedDefaultSummaryID:
		m.ClearSelectedDefaultSummaryID()
		return nil
	case userpaperlink.FieldSelectedCustomSummaryID:
		m.ClearSelectedCustomSummaryID()
		return nil
	case userpaperlink.FieldLastAccessed:
		m.ClearLastAccessed()
		return nil
	}
	return fmt.Errorf("unknown UserPaperLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserPaperLinkMutation) ResetField(name string) error {
	switch name {
	case userpaperlink.FieldUserID:
		m.ResetUserID()
		return nil
	case userpaperlink.FieldPaperID:
		m.ResetPaperID()
		return nil
	case userpaperlink.FieldTags:
		m.ResetTags()
		return nil
	case userpaperlink.FieldMemo:
		m.ResetMemo()
		return nil
	case userpaperlink.FieldSelectedDefaultSummaryID:
		m.ResetSelectedDefaultSummaryID()
		return nil
	case userpaperlink.FieldSelectedCustomSummaryID:
		m.ResetSelectedCustomSummaryID()
		return nil
	case userpaperlink.FieldLastAccessed:
		m.ResetLastAccessed()
		return nil
	case userpaperlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userpaperlink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserPaperLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserPaperLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, userpaperlink.EdgeUser)
	}
	if m.paper != nil {
		edges = append(edges, userpaperlink.EdgePaper)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserPaperLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userpaperlink.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case userpaperlink.EdgePaper:
		if id := m.paper; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserPaperLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserPaperLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserPaperLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, userpaperlink.EdgeUser)
	}
	if m.clearedpaper {
		edges = append(edges, userpaperlink.EdgePaper)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserPaperLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case userpaperlink.EdgeUser:
		return m.cleareduser
	case userpaperlink.EdgePaper:
		return m.clearedpaper
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserPaperLinkMutation) ClearEdge(name string) error {
	switch name {
	case userpaperlink.EdgeUser:
		m.ClearUser()
		return nil
	case userpaperlink.EdgePaper:
		m.ClearPaper()
		return nil
	}
	return fmt.Errorf("unknown UserPaperLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserPaperLinkMutation) ResetEdge(name string) error {
	switch name {
	case userpaperlink.EdgeUser:
		m.ResetUser()
		return nil
	case userpaperlink.EdgePaper:
		m.ResetPaper()
		return nil
	}
	return fmt.Errorf("unknown UserPaperLink edge %s", name)
}
