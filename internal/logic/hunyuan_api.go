package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	v20230901 "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/hunyuan/v20230901"
	"github.com/tmc/langchaingo/llms"
)

var errUnsupportedPart = errors.New("hunyuan model only accepts text parts")

// hunyuanChat 混元 SDK 中本模型用到的部分
type hunyuanChat interface {
	ChatCompletionsWithContext(ctx context.Context, request *v20230901.ChatCompletionsRequest) (*v20230901.ChatCompletionsResponse, error)
}

// hunyuanModel 用腾讯云官方 Go SDK 实现 llms.Model, 非流式调用
type hunyuanModel struct {
	client hunyuanChat
	model  string
}

var _ llms.Model = (*hunyuanModel)(nil)

func newHunyuanModel(secretID, secretKey, endpoint, model string) (*hunyuanModel, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = endpoint
	client, err := v20230901.NewClient(credential, "", cpf)
	if err != nil {
		return nil, fmt.Errorf("create hunyuan client: %w", err)
	}
	return &hunyuanModel{client: client, model: model}, nil
}

func (m *hunyuanModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func (m *hunyuanModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	var opts llms.CallOptions
	for _, opt := range options {
		opt(&opts)
	}

	req := v20230901.NewChatCompletionsRequest()
	req.Model = common.StringPtr(m.model)
	req.Stream = common.BoolPtr(false)
	if opts.Temperature > 0 {
		req.Temperature = common.Float64Ptr(opts.Temperature)
	}
	for _, mc := range messages {
		content, err := textContent(mc)
		if err != nil {
			return nil, err
		}
		req.Messages = append(req.Messages, &v20230901.Message{
			Role:    common.StringPtr(hunyuanRole(mc.Role)),
			Content: common.StringPtr(content),
		})
	}

	resp, err := m.client.ChatCompletionsWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hunyuan chat completions: %w", err)
	}
	if resp == nil || resp.Response == nil || len(resp.Response.Choices) == 0 {
		return nil, errEmpty
	}

	choices := make([]*llms.ContentChoice, 0, len(resp.Response.Choices))
	for _, choice := range resp.Response.Choices {
		if choice == nil || choice.Message == nil || choice.Message.Content == nil {
			continue
		}
		stop := ""
		if choice.FinishReason != nil {
			stop = *choice.FinishReason
		}
		choices = append(choices, &llms.ContentChoice{Content: *choice.Message.Content, StopReason: stop})
	}
	if len(choices) == 0 {
		return nil, errEmpty
	}
	return &llms.ContentResponse{Choices: choices}, nil
}

func textContent(mc llms.MessageContent) (string, error) {
	var sb strings.Builder
	for _, part := range mc.Parts {
		text, ok := part.(llms.TextContent)
		if !ok {
			return "", fmt.Errorf("%w: got %T", errUnsupportedPart, part)
		}
		sb.WriteString(text.Text)
	}
	return sb.String(), nil
}

func hunyuanRole(role llms.ChatMessageType) string {
	switch role {
	case llms.ChatMessageTypeSystem:
		return "system"
	case llms.ChatMessageTypeAI:
		return "assistant"
	default:
		return "user"
	}
}
