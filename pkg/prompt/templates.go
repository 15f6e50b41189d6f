// Package prompt resolves the effective prompt body for a call site:
// built-in defaults overridable per user, placeholder substitution, and
// character persona prepending for the types that support it.
package prompt

// Type identifies a prompt slot. Values match the prompt table enum.
type Type string

// Prompt types.
const (
	TypePaperSummary        Type = "paper_summary"
	TypeCharacterPersona    Type = "character_persona"
	TypeTagging             Type = "tagging"
	TypePaperChatSystem     Type = "paper_chat_system"
	TypeRAGSystem           Type = "rag_system"
	TypeResearchCoordinator Type = "research_coordinator"
	TypeResearchPlanner     Type = "research_planner"
	TypeResearchSupervisor  Type = "research_supervisor"
	TypeResearchAgent       Type = "research_agent"
	TypeResearchSummary     Type = "research_summary"
)

// characterPrependTypes are the types whose resolved body gets the
// persona prompt prepended when the user has a character selected.
var characterPrependTypes = map[Type]bool{
	TypePaperSummary:    true,
	TypePaperChatSystem: true,
	TypeRAGSystem:       true,
	TypeResearchSummary: true,
}

// defaultTemplates are the built-in prompt bodies, keyed by type. User
// custom prompts override these at resolution time.
var defaultTemplates = map[Type]string{
	TypePaperSummary: `今日は{today}です。{name}さんのために、以下の論文を日本語で要約してください。

必ず次の構成で出力してください。

## 一言でいうと
（この論文の核心を一文で）

## 背景と目的
## 提案手法
## 実験と結果
## 考察と限界

論文本文に書かれていない内容を推測で補わないでください。`,

	TypeTagging: `以下の論文要約を読み、指定された語彙リストからタグを選んでください。
出力はタグ名をカンマ区切りで並べた1行のみとし、説明文は書かないでください。`,

	TypePaperChatSystem: `あなたは{name}さんの論文読解を支援するアシスタントです。
今日は{today}です。対象の論文の内容に基づいて、正確かつ簡潔に日本語で回答してください。
論文に記載のない事項は「論文には記載がありません」と明示してください。`,

	TypeRAGSystem: `あなたは{name}さんの蓄積した論文コーパスを横断して質問に答えるリサーチアシスタントです。
利用可能なツールで根拠を検索してから回答してください。
外部情報を参照する場合は、その箇所に必ずURLをそのまま埋め込んでください。
[1], [2] のような番号形式の脚注は使用禁止です。
根拠が見つからない場合はその旨を述べてください。`,

	TypeResearchCoordinator: `あなたは調査リクエストの受付担当です。ユーザーの入力を分析し、
調査が必要かどうかを判断してください。挨拶や雑談には直接回答し、
調査が必要な場合は調査課題を明確化してください。
出力は指定されたJSONスキーマに従ってください。`,

	TypeResearchPlanner: `調査課題を、並行して実行可能な具体的サブトピックに分割してください。
各サブトピックは独立して調査できる粒度にしてください。`,

	TypeResearchSupervisor: `あなたは調査チームの監督者です。これまでの調査結果を評価し、
追加調査が必要なサブトピックがあるか判断してください。
十分な情報が集まった場合は調査完了を宣言してください。
出力は指定されたJSONスキーマに従ってください。`,

	TypeResearchAgent: `あなたは調査員です。割り当てられたサブトピックについて、
利用可能なツールを使って情報を収集し、発見した事実を出典付きで報告してください。`,

	TypeResearchSummary: `今日は{today}です。これまでの全調査結果を統合し、{name}さん向けの
最終レポートを日本語で作成してください。見出し付きの構造化された文章とし、
各主張には出典を明記してください。`,
}

// DefaultTemplate returns the built-in body for a type, and whether one
// exists. character_persona has no single default; see personas.go.
func DefaultTemplate(t Type) (string, bool) {
	body, ok := defaultTemplates[t]
	return body, ok
}
