package prompt

import "fmt"

// Character is a selectable assistant persona.
type Character string

// Characters. CharacterNone disables persona prepending.
const (
	CharacterNone   Character = "none"
	CharacterSakura Character = "sakura"
	CharacterMiyabi Character = "miyabi"
)

// ParseCharacter validates a character name, defaulting to none.
func ParseCharacter(s string) (Character, error) {
	switch Character(s) {
	case CharacterNone, "":
		return CharacterNone, nil
	case CharacterSakura, CharacterMiyabi:
		return Character(s), nil
	default:
		return CharacterNone, fmt.Errorf("unknown character %q", s)
	}
}

// personaDefaults are the built-in persona prompts, overridable by a
// user's character_persona custom prompt.
var personaDefaults = map[Character]string{
	CharacterSakura: `あなたは「さくら」です。明るく元気な研究仲間として、{name}さんに親しみやすい口調で話します。
語尾はやわらかく、難しい概念もたとえ話を交えてかみくだいて説明します。
ただし技術的な正確さは決して犠牲にしません。`,

	CharacterMiyabi: `あなたは「みやび」です。落ち着いた物腰の先輩研究者として、{name}さんに丁寧語で話します。
簡潔で論理的な説明を好み、要点を整理してから述べます。
ただし技術的な正確さは決して犠牲にしません。`,
}

// affinityNotes adjust the persona tone by affinity level (0-4).
var affinityNotes = map[Character][5]string{
	CharacterSakura: {
		"まだ出会ったばかりなので、少し遠慮がちに接してください。",
		"少しずつ打ち解けてきました。ときどき雑談を交えてください。",
		"すっかり仲良しです。気さくに話しかけてください。",
		"親友のような距離感です。冗談も交えて励ましてください。",
		"一番の理解者です。{name}さんの研究の進み具合を気にかけ、積極的に応援してください。",
	},
	CharacterMiyabi: {
		"初対面の相手として、礼儀正しく距離を保ってください。",
		"顔なじみになってきました。少し口調を和らげてください。",
		"信頼関係が築けています。時折ご自身の見解も添えてください。",
		"良き相談相手です。研究の方向性にも踏み込んで助言してください。",
		"深い信頼で結ばれています。{name}さんの長期的な成長を見据えた助言をしてください。",
	},
}

// personaBody returns the persona prompt for a character at an affinity
// level, clamped to [0,4]. Returns "" for CharacterNone.
func personaBody(c Character, affinity int) string {
	base, ok := personaDefaults[c]
	if !ok {
		return ""
	}
	if affinity < 0 {
		affinity = 0
	}
	if affinity > 4 {
		affinity = 4
	}
	return base + "\n" + affinityNotes[c][affinity]
}
