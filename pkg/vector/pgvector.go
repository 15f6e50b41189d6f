package vector

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// metadataColumns whitelists the filterable columns of paper_vectors.
// Filter keys outside this set are rejected rather than interpolated.
var metadataColumns = map[string]string{
	MetaUserID:           "user_id",
	MetaPaperID:          "paper_id",
	MetaSummaryType:      "summary_type",
	MetaDefaultSummaryID: "default_summary_id",
	MetaCustomSummaryID:  "custom_summary_id",
	MetaProvider:         "llm_provider",
	MetaModel:            "llm_model",
}

// PgvectorStore keeps vectors in the relational database using the
// pgvector extension. The paper_vectors table is created by the
// embedded migrations.
type PgvectorStore struct {
	db        *sql.DB
	batchSize int
}

// NewPgvectorStore wraps an open database handle.
func NewPgvectorStore(db *sql.DB, batchSize int) *PgvectorStore {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &PgvectorStore{db: db, batchSize: batchSize}
}

// Add implements Store as a batched upsert on (user_id, paper_id).
func (s *PgvectorStore) Add(ctx context.Context, docs []Document) error {
	const stmt = `
		INSERT INTO paper_vectors
			(id, user_id, paper_id, summary_type, default_summary_id,
			 custom_summary_id, llm_provider, llm_model, content, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::vector)
		ON CONFLICT (user_id, paper_id) DO UPDATE SET
			summary_type = EXCLUDED.summary_type,
			default_summary_id = EXCLUDED.default_summary_id,
			custom_summary_id = EXCLUDED.custom_summary_id,
			llm_provider = EXCLUDED.llm_provider,
			llm_model = EXCLUDED.llm_model,
			content = EXCLUDED.content,
			embedding = EXCLUDED.embedding,
			updated_at = now()`

	for _, batch := range chunk(docs, s.batchSize) {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin vector upsert: %w", err)
		}
		for _, doc := range batch {
			if len(doc.Embedding) == 0 {
				_ = tx.Rollback()
				return fmt.Errorf("document %s has no embedding", doc.ID)
			}
			meta := doc.Metadata
			_, err := tx.ExecContext(ctx, stmt,
				doc.ID,
				meta[MetaUserID],
				meta[MetaPaperID],
				nullable(meta[MetaSummaryType]),
				nullable(meta[MetaDefaultSummaryID]),
				nullable(meta[MetaCustomSummaryID]),
				nullable(meta[MetaProvider]),
				nullable(meta[MetaModel]),
				doc.Content,
				vectorLiteral(doc.Embedding),
			)
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("upsert vector %s: %w", doc.ID, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit vector upsert: %w", err)
		}
	}
	return nil
}

// DeleteByFilter implements Store.
func (s *PgvectorStore) DeleteByFilter(ctx context.Context, cond Condition) error {
	if len(cond) == 0 {
		return fmt.Errorf("refusing to delete with an empty filter")
	}
	where, args, err := conditionSQL(cond, 1)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM paper_vectors WHERE "+where, args...); err != nil {
		return fmt.Errorf("delete vectors: %w", err)
	}
	return nil
}

// SearchByVector implements Store. Cosine distance via the <=> operator;
// the reported score is 1 - distance.
func (s *PgvectorStore) SearchByVector(ctx context.Context, queryEmbedding []float32, k int, filter *Filter) ([]SearchResult, error) {
	where, args, err := filterSQL(filter, 2)
	if err != nil {
		return nil, err
	}
	args = append([]any{vectorLiteral(queryEmbedding)}, args...)

	query := `
		SELECT id, user_id, paper_id,
			COALESCE(summary_type, ''), COALESCE(default_summary_id, ''),
			COALESCE(custom_summary_id, ''), COALESCE(llm_provider, ''),
			COALESCE(llm_model, ''), content, embedding::text,
			1 - (embedding <=> $1::vector) AS score
		FROM paper_vectors`
	if where != "" {
		query += " WHERE " + where
	}
	query += fmt.Sprintf(" ORDER BY embedding <=> $1::vector LIMIT %d", k)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search vectors: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var doc Document
		var userID, paperID, summaryType, defaultID, customID, provider, model, embText string
		var score float32
		if err := rows.Scan(&doc.ID, &userID, &paperID, &summaryType, &defaultID,
			&customID, &provider, &model, &doc.Content, &embText, &score); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		doc.Embedding, err = parseVectorLiteral(embText)
		if err != nil {
			return nil, err
		}
		doc.Metadata = map[string]string{
			MetaUserID:           userID,
			MetaPaperID:          paperID,
			MetaSummaryType:      summaryType,
			MetaDefaultSummaryID: defaultID,
			MetaCustomSummaryID:  customID,
			MetaProvider:         provider,
			MetaModel:            model,
		}
		out = append(out, SearchResult{Document: doc, Score: score})
	}
	return out, rows.Err()
}

// GetEmbeddings implements Store.
func (s *PgvectorStore) GetEmbeddings(ctx context.Context, keys []Key) (map[Key][]float32, error) {
	out := make(map[Key][]float32, len(keys))
	for _, batch := range chunk(keys, s.batchSize) {
		ids := make([]string, len(batch))
		for i, key := range batch {
			ids[i] = DocumentID(key.UserID, key.PaperID)
		}
		rows, err := s.db.QueryContext(ctx,
			"SELECT user_id, paper_id, embedding::text FROM paper_vectors WHERE id = ANY($1)", ids)
		if err != nil {
			return nil, fmt.Errorf("fetch embeddings: %w", err)
		}
		for rows.Next() {
			var userID, paperID, embText string
			if err := rows.Scan(&userID, &paperID, &embText); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan embedding row: %w", err)
			}
			emb, err := parseVectorLiteral(embText)
			if err != nil {
				rows.Close()
				return nil, err
			}
			out[Key{UserID: userID, PaperID: paperID}] = emb
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return out, nil
}

// BatchExists implements Store with a single query per chunk.
func (s *PgvectorStore) BatchExists(ctx context.Context, userID string, paperIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(paperIDs))
	for _, pid := range paperIDs {
		out[pid] = false
	}
	for _, batch := range chunk(paperIDs, s.batchSize) {
		rows, err := s.db.QueryContext(ctx,
			"SELECT paper_id FROM paper_vectors WHERE user_id = $1 AND paper_id = ANY($2)",
			userID, batch)
		if err != nil {
			return nil, fmt.Errorf("check vector existence: %w", err)
		}
		for rows.Next() {
			var pid string
			if err := rows.Scan(&pid); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan existence row: %w", err)
			}
			out[pid] = true
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return out, nil
}

// conditionSQL renders one conjunction. Placeholder numbering starts at
// argBase. Keys iterate in sorted order so generated SQL is stable.
func conditionSQL(cond Condition, argBase int) (string, []any, error) {
	keys := make([]string, 0, len(cond))
	for key := range cond {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var parts []string
	var args []any
	for _, key := range keys {
		column, ok := metadataColumns[key]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter key %q", key)
		}
		parts = append(parts, fmt.Sprintf("%s = $%d", column, argBase+len(args)))
		args = append(args, cond[key])
	}
	return strings.Join(parts, " AND "), args, nil
}

// filterSQL renders a disjunction of conjunctions, or "" for match-all.
func filterSQL(filter *Filter, argBase int) (string, []any, error) {
	if filter == nil || len(filter.AnyOf) == 0 {
		return "", nil, nil
	}
	var branches []string
	var args []any
	for _, cond := range filter.AnyOf {
		if len(cond) == 0 {
			continue
		}
		sqlPart, condArgs, err := conditionSQL(cond, argBase+len(args))
		if err != nil {
			return "", nil, err
		}
		branches = append(branches, "("+sqlPart+")")
		args = append(args, condArgs...)
	}
	if len(branches) == 0 {
		return "", nil, nil
	}
	return strings.Join(branches, " OR "), args, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// vectorLiteral renders the pgvector input format, e.g. [0.1,0.2].
func vectorLiteral(v []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

func parseVectorLiteral(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float32, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("parse vector literal: %w", err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
