package logic

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	langopenai "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"healcolor-backend/internal/common"
)

// Models 视觉与文本两个模型, 为 nil 时对应任务直接走规则引擎
type Models struct {
	Vision     llms.Model
	VisionName string
	Text       llms.Model
	TextName   string
}

// NewModels 按 LLM_PROVIDER 创建模型, 缺少密钥不是错误, 只是全部走规则引擎
func NewModels(cfg common.Config, logger *zap.SugaredLogger) (Models, error) {
	switch cfg.LLMProvider {
	case common.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			logger.Warnw("OPENAI_API_KEY is empty, analysis runs on rules only")
			return Models{}, nil
		}
		vision, err := newOpenAIModel(cfg, cfg.OpenAIVisionModel)
		if err != nil {
			return Models{}, err
		}
		text, err := newOpenAIModel(cfg, cfg.OpenAITextModel)
		if err != nil {
			return Models{}, err
		}
		return Models{Vision: vision, VisionName: cfg.OpenAIVisionModel, Text: text, TextName: cfg.OpenAITextModel}, nil

	case common.ProviderHunyuan:
		if cfg.TencentSecretID == "" || cfg.TencentSecretKey == "" {
			logger.Warnw("TENCENTCLOUD credentials are empty, analysis runs on rules only")
			return Models{}, nil
		}
		model, err := newHunyuanModel(cfg.TencentSecretID, cfg.TencentSecretKey, common.DefaultHunyuanEndpoint, cfg.HunyuanModel)
		if err != nil {
			return Models{}, err
		}
		// 混元只接受文本, 视觉任务会在调用时报错并退回规则
		return Models{Vision: model, VisionName: cfg.HunyuanModel, Text: model, TextName: cfg.HunyuanModel}, nil

	default:
		return Models{}, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func newOpenAIModel(cfg common.Config, model string) (llms.Model, error) {
	opts := []langopenai.Option{
		langopenai.WithToken(cfg.OpenAIAPIKey),
		langopenai.WithModel(model),
		langopenai.WithResponseFormat(langopenai.ResponseFormatJSON),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, langopenai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	llm, err := langopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai model %s: %w", model, err)
	}
	return llm, nil
}
