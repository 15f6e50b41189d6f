package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rainzero1960/paperscout/pkg/config"
	"google.golang.org/api/option"
)

// GeminiProvider calls the Google Gemini API.
type GeminiProvider struct {
	apiKey string
}

// NewGeminiProvider creates a Gemini provider.
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey}
}

// Type implements Provider.
func (p *GeminiProvider) Type() config.ProviderType {
	return config.ProviderGemini
}

// Generate implements Provider. System messages become the model's
// SystemInstruction; the rest of the conversation is replayed as chat
// history with the final user turn sent as the message.
func (p *GeminiProvider) Generate(ctx context.Context, messages []Message, model string, opts *Options) (*Result, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	genModel := client.GenerativeModel(model)
	if opts != nil {
		if opts.Temperature != nil {
			genModel.SetTemperature(*opts.Temperature)
		}
		if opts.TopP != nil {
			genModel.SetTopP(*opts.TopP)
		}
		if opts.JSONMode {
			genModel.ResponseMIMEType = "application/json"
		}
		if len(opts.Tools) > 0 {
			genModel.Tools = geminiTools(opts.Tools)
		}
	}

	var system []string
	var history []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, msg.Content)
		case RoleTool:
			var response map[string]any
			if err := json.Unmarshal([]byte(msg.Content), &response); err != nil {
				response = map[string]any{"result": msg.Content}
			}
			history = append(history, &genai.Content{
				Role:  "function",
				Parts: []genai.Part{genai.FunctionResponse{Name: msg.ToolName, Response: response}},
			})
		case RoleAssistant:
			parts := make([]genai.Part, 0, 1+len(msg.ToolCalls))
			if msg.Content != "" {
				parts = append(parts, genai.Text(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				var args map[string]any
				_ = json.Unmarshal([]byte(tc.Arguments), &args)
				parts = append(parts, genai.FunctionCall{Name: tc.Name, Args: args})
			}
			history = append(history, &genai.Content{Role: "model", Parts: parts})
		default:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		}
	}
	if len(system) > 0 {
		genModel.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(strings.Join(system, "\n\n"))},
		}
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no non-system messages to send")
	}

	last := history[len(history)-1]
	cs := genModel.StartChat()
	cs.History = history[:len(history)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	return geminiResult(resp)
}

func geminiResult(resp *genai.GenerateContentResponse) (*Result, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	result := &Result{}
	var text strings.Builder
	toolSeq := 0
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			text.WriteString(string(v))
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				args = []byte("{}")
			}
			toolSeq++
			result.ToolCalls = append(result.ToolCalls, ToolCall{
				ID:        fmt.Sprintf("call_%d", toolSeq),
				Name:      v.Name,
				Arguments: string(args),
			})
		}
	}
	result.Text = text.String()
	return result, nil
}

func geminiTools(tools []ToolDefinition) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		decls[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  geminiSchema(t.Parameters),
		}
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// geminiSchema converts a JSON Schema object into the genai schema type.
// Only the subset our tools use (flat object of typed properties) is
// translated.
func geminiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	result := &genai.Schema{Type: genai.TypeObject}
	if props, ok := schema["properties"].(map[string]any); ok {
		result.Properties = make(map[string]*genai.Schema, len(props))
		for key, val := range props {
			propMap, ok := val.(map[string]any)
			if !ok {
				continue
			}
			prop := &genai.Schema{}
			if typeStr, ok := propMap["type"].(string); ok {
				prop.Type = geminiType(typeStr)
			}
			if desc, ok := propMap["description"].(string); ok {
				prop.Description = desc
			}
			result.Properties[key] = prop
		}
	}
	switch required := schema["required"].(type) {
	case []string:
		result.Required = required
	case []any:
		for _, v := range required {
			if s, ok := v.(string); ok {
				result.Required = append(result.Required, s)
			}
		}
	}
	return result
}

func geminiType(typeStr string) genai.Type {
	switch typeStr {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}
