package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/rainzero1960/paperscout/pkg/config"
)

// OpenAIProvider calls the OpenAI chat completions API. With a custom
// base URL it also fronts OpenRouter-compatible endpoints, which is how
// the fallback route is usually deployed.
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider creates an OpenAI provider. baseURL may be empty.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	return &OpenAIProvider{client: openai.NewClient(reqOpts...)}
}

// Type implements Provider.
func (p *OpenAIProvider) Type() config.ProviderType {
	return config.ProviderOpenAI
}

// Generate implements Provider.
func (p *OpenAIProvider) Generate(ctx context.Context, messages []Message, model string, opts *Options) (*Result, error) {
	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: openaiMessages(messages),
	}
	if opts != nil {
		if opts.Temperature != nil {
			params.Temperature = openai.Float(float64(*opts.Temperature))
		}
		if opts.TopP != nil {
			params.TopP = openai.Float(float64(*opts.TopP))
		}
		if opts.JSONMode {
			params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: openai.Ptr(shared.NewResponseFormatJSONObjectParam()),
			}
		}
		if len(opts.Tools) > 0 {
			params.Tools = openaiTools(opts.Tools)
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	msg := completion.Choices[0].Message
	result := &Result{Text: msg.Content}
	for _, tc := range msg.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return result, nil
}

func openaiMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			if len(msg.ToolCalls) > 0 {
				assistant := openai.ChatCompletionAssistantMessageParam{}
				if msg.Content != "" {
					assistant.Content.OfString = openai.String(msg.Content)
				}
				for _, tc := range msg.ToolCalls {
					assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: tc.Arguments,
						},
					})
				}
				out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
			} else {
				out = append(out, openai.AssistantMessage(msg.Content))
			}
		case RoleTool:
			out = append(out, openai.ToolMessage(msg.Content, msg.ToolCallID))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

func openaiTools(tools []ToolDefinition) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		out[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  shared.FunctionParameters(t.Parameters),
			},
		}
	}
	return out
}
