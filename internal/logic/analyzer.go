package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

var (
	errNoModel  = errors.New("model not configured")
	errEmpty    = errors.New("empty model response")
	errSchema   = errors.New("model output violates schema")
	errNotJSON  = errors.New("model output is not JSON")
	validSeason = map[string]bool{"spring": true, "summer": true, "autumn": true, "winter": true}
	validSub    = map[string]bool{"warm": true, "cool": true, "clear": true, "soft": true, "deep": true, "light": true}
)

// Analyzer 调用大模型完成各项分析, 任何失败都退回规则引擎, 调用方不会看到错误
type Analyzer struct {
	models  Models
	timeout time.Duration
	logger  *zap.SugaredLogger
}

func NewAnalyzer(models Models, timeout time.Duration, logger *zap.SugaredLogger) *Analyzer {
	if timeout <= 0 {
		timeout = common.DefaultLLMTimeout
	}
	return &Analyzer{models: models, timeout: timeout, logger: logger}
}

type generateOptions struct {
	temperature float64
	maxTokens   int
}

// generate 单次调用, 不重试, 超时由 a.timeout 控制
func (a *Analyzer) generate(ctx context.Context, model llms.Model, system string, opts generateOptions, parts ...llms.ContentPart) (string, error) {
	if model == nil {
		return "", errNoModel
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		{Role: llms.ChatMessageTypeHuman, Parts: parts},
	}
	callOptions := []llms.CallOption{llms.WithTemperature(opts.temperature)}
	if opts.maxTokens > 0 {
		callOptions = append(callOptions, llms.WithMaxTokens(opts.maxTokens))
	}
	resp, err := model.GenerateContent(ctx, messages, callOptions...)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", errEmpty
	}
	return resp.Choices[0].Content, nil
}

func (a *Analyzer) warn(task string, err error) {
	a.logger.Warnw("llm task fell back to rules", "task", task, "error", err)
}

// AnalyzeColor 根据照片判断季节/子类型与表情, image 为去掉 data URL 前缀的 base64
func (a *Analyzer) AnalyzeColor(ctx context.Context, image string) ColorAnalysis {
	raw, err := a.generate(ctx, a.models.Vision, common.ColorSystemPrompt,
		generateOptions{temperature: 0.3, maxTokens: 500},
		llms.TextPart(common.ColorAnalysisPrompt),
		llms.ImageURLPart("data:image/jpeg;base64,"+image),
	)
	var result ColorAnalysis
	if err == nil {
		result, err = parseColorAnalysis(raw)
	}
	if err != nil {
		a.warn("color", err)
		return fallbackColorAnalysis()
	}
	result.Source = a.models.VisionName
	return result
}

// ScoreEmotion 文本情绪打分
func (a *Analyzer) ScoreEmotion(ctx context.Context, text string) (Emotions, string) {
	raw, err := a.generate(ctx, a.models.Text, common.EmotionSystemPrompt,
		generateOptions{temperature: 0.2, maxTokens: 300},
		llms.TextPart(fmt.Sprintf(common.EmotionAnalysisPrompt, text)),
	)
	var result Emotions
	if err == nil {
		result, err = parseEmotions(raw)
	}
	if err != nil {
		a.warn("emotion", err)
		return keywordEmotions(text), common.SourceFallback
	}
	return result, a.models.TextName
}

// HealingContent 生成每日疗愈色文案
func (a *Analyzer) HealingContent(ctx context.Context, color db.ColorItem, season, tone string) (HealingContent, string) {
	prompt := fmt.Sprintf(common.HealingContentPrompt,
		color.Name, color.Hex, color.Description, displayName(common.SeasonNames, season), displayName(common.ToneNames, tone))
	raw, err := a.generate(ctx, a.models.Text, common.HealingSystemPrompt,
		generateOptions{temperature: 0.8, maxTokens: 400},
		llms.TextPart(prompt),
	)
	var result HealingContent
	if err == nil {
		result, err = parseHealingContent(raw, color.Name)
	}
	if err != nil {
		a.warn("healing", err)
		return fallbackHealingContent(color.Name), common.SourceFallback
	}
	return result, a.models.TextName
}

// WeeklyInsight 根据周平均分生成洞察文案
func (a *Analyzer) WeeklyInsight(ctx context.Context, avg Emotions) (InsightText, string) {
	prompt := fmt.Sprintf(common.WeeklyInsightPrompt, avg.Anxiety, avg.Stress, avg.Satisfaction, avg.Happiness, avg.Depression)
	raw, err := a.generate(ctx, a.models.Text, common.InsightSystemPrompt,
		generateOptions{temperature: 0.7},
		llms.TextPart(prompt),
	)
	var result InsightText
	if err == nil {
		result, err = parseInsight(raw, simpleInsight(avg))
	}
	if err != nil {
		a.warn("insight", err)
		return simpleInsight(avg), common.SourceFallback
	}
	return result, a.models.TextName
}

// RecommendInput 生成推荐所需的用户信息
type RecommendInput struct {
	Season  string
	Tone    string
	Subtype string
	Primary db.ColorItem
	Summary string
}

// Recommend 生成服饰/饮食/活动推荐, 结果中的 Source 标记来源
func (a *Analyzer) Recommend(ctx context.Context, in RecommendInput) Recommendations {
	prompt := fmt.Sprintf(common.RecommendPrompt,
		displayName(common.SeasonNames, in.Season), displayName(common.ToneNames, in.Tone), in.Subtype,
		in.Primary.Name, in.Primary.Hex, in.Summary)
	raw, err := a.generate(ctx, a.models.Text, common.RecommendSystemPrompt,
		generateOptions{temperature: 0.8, maxTokens: 1000},
		llms.TextPart(prompt),
	)
	var result Recommendations
	if err == nil {
		result, err = parseRecommendations(raw, in.Season)
	}
	if err != nil {
		a.warn("recommend", err)
		return fallbackRecommendations(in.Season)
	}
	result.Source = a.models.TextName
	return result
}

func displayName(names map[string]string, key string) string {
	if name, ok := names[key]; ok {
		return name
	}
	return key
}

// decodeObject 去掉 markdown 代码块后解析为 JSON 对象
func decodeObject(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	var value any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotJSON, err)
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", errSchema)
	}
	return obj, nil
}

// number 缺失或无法转换为数字时返回 ok=false
func number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if s, isString := v.(string); isString {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stringField(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func parseColorAnalysis(raw string) (ColorAnalysis, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return ColorAnalysis{}, err
	}
	tone, ok := obj["tone"].(map[string]any)
	if !ok {
		return ColorAnalysis{}, fmt.Errorf("%w: missing tone object", errSchema)
	}

	season := strings.ToLower(stringField(tone["season"]))
	if !validSeason[season] {
		season = defaultSeason
	}
	subtype := strings.ToLower(stringField(tone["subtype"]))
	if !validSub[subtype] {
		subtype = defaultSubtype
	}
	confidence, ok := number(tone["confidence"])
	if !ok {
		confidence = 0.85
	}

	result := ColorAnalysis{
		Season:     season,
		Subtype:    subtype,
		Tone:       deriveTone(subtype),
		Confidence: clamp(confidence, 0, 1),
	}
	if emotion, ok := obj["emotion"].(map[string]any); ok {
		result.FacialExpression = strings.ToLower(stringField(emotion["facial_expression"]))
	}
	return result, nil
}

var emotionFields = []string{emotionAnxiety, emotionStress, emotionSatisfaction, emotionHappiness, emotionDepression}

func parseEmotions(raw string) (Emotions, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Emotions{}, err
	}
	present := false
	scores := make(map[string]float64, len(emotionFields))
	for _, field := range emotionFields {
		v, ok := obj[field]
		if !ok {
			continue
		}
		present = true
		if f, ok := number(v); ok {
			scores[field] = clamp(f, 0, 100)
		}
	}
	if !present {
		return Emotions{}, fmt.Errorf("%w: no emotion scores", errSchema)
	}
	return Emotions{
		Anxiety:      scores[emotionAnxiety],
		Stress:       scores[emotionStress],
		Satisfaction: scores[emotionSatisfaction],
		Happiness:    scores[emotionHappiness],
		Depression:   scores[emotionDepression],
	}, nil
}

func parseHealingContent(raw, colorName string) (HealingContent, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return HealingContent{}, err
	}
	fallback := fallbackHealingContent(colorName)
	return HealingContent{
		CalmEffect:       orDefault(stringField(obj["calm_effect"]), fallback.CalmEffect),
		PersonalFit:      orDefault(stringField(obj["personal_fit"]), fallback.PersonalFit),
		DailyAffirmation: orDefault(stringField(obj["daily_affirmation"]), fallback.DailyAffirmation),
	}, nil
}

func parseInsight(raw string, fallback InsightText) (InsightText, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return InsightText{}, err
	}
	return InsightText{
		Improvement: orDefault(stringField(obj["improvement"]), fallback.Improvement),
		Suggestion:  orDefault(stringField(obj["suggestion"]), fallback.Suggestion),
	}, nil
}

func parseRecommendations(raw, season string) (Recommendations, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Recommendations{}, err
	}
	return Recommendations{
		Fashion:    repairItems(obj["fashion"], itemFashion, "f", seasonTable(fashionBySeason, season)),
		Food:       repairItems(obj["food"], itemFood, "fd", seasonTable(foodBySeason, season)),
		Activities: repairItems(obj["activities"], itemActivity, "a", seasonTable(activityBySeason, season)),
	}, nil
}

// repairItems 列表缺失或为空时整类使用静态表, 否则逐项补齐字段, 不丢弃任何一项
func repairItems(v any, itemType, idPrefix string, fallback []RecommendationItem) []RecommendationItem {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return fallback
	}
	items := make([]RecommendationItem, 0, len(list))
	for i, elem := range list {
		fields, _ := elem.(map[string]any)
		items = append(items, RecommendationItem{
			ID:          orDefault(stringField(fields["id"]), fmt.Sprintf("%s%d", idPrefix, i+1)),
			Type:        itemType,
			Title:       orDefault(stringField(fields["title"]), defaultItemTitle),
			Description: stringField(fields["description"]),
			Color:       orDefault(stringField(fields["color"]), defaultItemColor),
		})
	}
	return items
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
