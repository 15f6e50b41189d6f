// Package tagging asks the LLM to label a paper with tags drawn from a
// fixed, category-grouped vocabulary, and parses the single-line CSV
// answer.
package tagging

import (
	"sort"
	"strings"
)

// Category groups the vocabulary for the rules text.
type Category string

// Vocabulary categories.
const (
	CategoryModality     Category = "Modality"
	CategoryTask         Category = "Task"
	CategoryArchitecture Category = "Architecture"
	CategoryTechniques   Category = "Techniques"
	CategoryEvaluation   Category = "Evaluation"
)

// vocabulary is the fixed tag set. Tags outside it are discarded at
// parse time.
var vocabulary = map[Category][]string{
	CategoryModality: {
		"NLP", "Vision", "Speech", "Multimodal", "Tabular", "Graph", "Time-Series",
	},
	CategoryTask: {
		"Classification", "Generation", "Translation", "Summarization",
		"Question-Answering", "Retrieval", "Detection", "Segmentation",
		"Recommendation", "Reinforcement-Learning",
	},
	CategoryArchitecture: {
		"Transformer", "CNN", "RNN", "GNN", "Diffusion", "GAN", "VAE",
		"Mixture-of-Experts", "State-Space-Model",
	},
	CategoryTechniques: {
		"Attention", "Fine-Tuning", "Prompting", "RAG", "Distillation",
		"Quantization", "Pretraining", "Contrastive-Learning", "RLHF",
		"Chain-of-Thought", "Self-Supervised",
	},
	CategoryEvaluation: {
		"Benchmark", "Ablation", "Human-Evaluation", "Survey",
	},
}

// Level tags annotate user intent rather than paper content. The tagger
// never writes them and always preserves existing ones.
const (
	TagFavourite     = "Favourite"
	TagNotInterested = "NotInterested"
	TagRecommended   = "Recommended"
)

var levelTags = map[string]bool{
	TagFavourite:     true,
	TagNotInterested: true,
	TagRecommended:   true,
}

// IsLevelTag reports whether tag is a user-annotation tag.
func IsLevelTag(tag string) bool {
	return levelTags[tag]
}

// knownTags is the flat lookup over all categories, keyed lowercase.
var knownTags = func() map[string]string {
	m := make(map[string]string)
	for _, tags := range vocabulary {
		for _, tag := range tags {
			m[strings.ToLower(tag)] = tag
		}
	}
	return m
}()

// Canonical maps a raw tag to its canonical vocabulary form, matching
// case-insensitively. ok is false for tags outside the vocabulary.
func Canonical(raw string) (string, bool) {
	tag, ok := knownTags[strings.ToLower(strings.TrimSpace(raw))]
	return tag, ok
}

// RulesText renders the vocabulary and the written selection rules for
// the tagging prompt.
func RulesText() string {
	var b strings.Builder
	b.WriteString("利用可能なタグ(カテゴリ別):\n")
	categories := []Category{
		CategoryModality, CategoryTask, CategoryArchitecture,
		CategoryTechniques, CategoryEvaluation,
	}
	for _, cat := range categories {
		tags := append([]string(nil), vocabulary[cat]...)
		sort.Strings(tags)
		b.WriteString("- ")
		b.WriteString(string(cat))
		b.WriteString(": ")
		b.WriteString(strings.Join(tags, ", "))
		b.WriteString("\n")
	}
	b.WriteString(`
選択ルール:
- Modality または Task から少なくとも1つ選ぶこと。
- Architecture から少なくとも1つ選ぶこと。
- Techniques から1つ選ぶことを推奨する。
- 該当するものがあれば他のカテゴリからも選んでよい。
- 内容の重複するタグは選ばないこと。
- 合計で2つ以上選ぶこと。
- 出力はタグ名のみをカンマ区切りで1行に並べること。`)
	return b.String()
}
