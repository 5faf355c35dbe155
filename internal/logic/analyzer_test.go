package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

func newTestAnalyzer(models Models, timeout time.Duration) *Analyzer {
	return NewAnalyzer(models, timeout, zap.NewNop().Sugar())
}

func TestDecodeObject(t *testing.T) {
	obj, err := decodeObject("```json\n{\"a\": 1}\n```")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, obj)

	obj, err = decodeObject("  ```\n{\"b\":\"x\"}```  ")
	require.NoError(t, err)
	assert.Equal(t, "x", obj["b"])

	_, err = decodeObject("[1,2,3]")
	assert.ErrorIs(t, err, errSchema)

	_, err = decodeObject("이것은 JSON이 아닙니다")
	assert.ErrorIs(t, err, errNotJSON)
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{42.0, 42, true},
		{" 17.5 ", 17.5, true},
		{"80", 80, true},
		{true, 1, true},
		{nil, 0, false},
		{"높음", 0, false},
		{map[string]any{}, 0, false},
		{"NaN", 0, false},
	}
	for _, tc := range cases {
		got, ok := number(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestParseColorAnalysis(t *testing.T) {
	_, err := parseColorAnalysis(`{"season":"spring"}`)
	assert.ErrorIs(t, err, errSchema)

	result, err := parseColorAnalysis(`{"tone":{"season":"WINTER","subtype":"clear","confidence":-2},"emotion":{"facial_expression":"calm"}}`)
	require.NoError(t, err)
	assert.Equal(t, ColorAnalysis{
		Season:           "winter",
		Subtype:          "clear",
		Tone:             "cool",
		Confidence:       0,
		FacialExpression: "calm",
	}, result)

	result, err = parseColorAnalysis(`{"tone":{}}`)
	require.NoError(t, err)
	assert.Equal(t, "summer", result.Season)
	assert.Equal(t, "cool", result.Subtype)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Empty(t, result.FacialExpression)
}

func TestParseEmotions(t *testing.T) {
	_, err := parseEmotions(`{}`)
	assert.ErrorIs(t, err, errSchema)

	e, err := parseEmotions(`{"depression": 101, "happiness": null}`)
	require.NoError(t, err)
	assert.Equal(t, Emotions{Depression: 100}, e)
}

func TestParseHealingContentFillsMissingFields(t *testing.T) {
	content, err := parseHealingContent(`{"calm_effect":"마음이 편해져요","personal_fit":"  "}`, "라벤더")
	require.NoError(t, err)
	fallback := fallbackHealingContent("라벤더")
	assert.Equal(t, "마음이 편해져요", content.CalmEffect)
	assert.Equal(t, fallback.PersonalFit, content.PersonalFit)
	assert.Equal(t, fallback.DailyAffirmation, content.DailyAffirmation)
	assert.Contains(t, fallback.CalmEffect, "라벤더")
}

func TestRepairItems(t *testing.T) {
	fallback := seasonTable(activityBySeason, "winter")
	assert.Equal(t, fallback, repairItems(nil, itemActivity, "a", fallback))
	assert.Equal(t, fallback, repairItems([]any{}, itemActivity, "a", fallback))

	// 非对象元素也保留, 字段全部补默认值
	items := repairItems([]any{"walk", map[string]any{"title": 12}}, itemActivity, "a", fallback)
	assert.Equal(t, []RecommendationItem{
		{ID: "a1", Type: itemActivity, Title: defaultItemTitle, Color: defaultItemColor},
		{ID: "a2", Type: itemActivity, Title: "12", Color: defaultItemColor},
	}, items)
}

func TestAnalyzerWithoutModels(t *testing.T) {
	a := newTestAnalyzer(Models{}, 0)
	ctx := context.Background()

	assert.Equal(t, common.DefaultLLMTimeout, a.timeout)
	assert.Equal(t, fallbackColorAnalysis(), a.AnalyzeColor(ctx, "AAAA"))

	e, source := a.ScoreEmotion(ctx, "스트레스 때문에 피곤")
	assert.Equal(t, Emotions{Stress: 60}, e)
	assert.Equal(t, common.SourceFallback, source)

	recs := a.Recommend(ctx, RecommendInput{Season: "spring"})
	assert.Equal(t, fallbackRecommendations("spring"), recs)

	text, source := a.WeeklyInsight(ctx, Emotions{Anxiety: 90})
	assert.Equal(t, simpleInsight(Emotions{Anxiety: 90}), text)
	assert.Equal(t, common.SourceFallback, source)
}

// 模型超时后退回规则引擎, 不会等待更久
func TestAnalyzerTimeout(t *testing.T) {
	model := &fakeModel{block: true}
	a := newTestAnalyzer(textModels(model), 50*time.Millisecond)

	start := time.Now()
	content, source := a.HealingContent(context.Background(), db.ColorItem{Name: "민트 그린", Hex: "#98FB98"}, "summer", "cool")
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, common.SourceFallback, source)
	assert.Equal(t, fallbackHealingContent("민트 그린"), content)
	assert.Equal(t, 1, model.callCount())
}

// 单次调用, 失败不重试
func TestAnalyzerDoesNotRetry(t *testing.T) {
	model := &fakeModel{err: errors.New("500 from upstream")}
	a := newTestAnalyzer(textModels(model), time.Second)

	a.ScoreEmotion(context.Background(), "걱정")
	assert.Equal(t, 1, model.callCount())
}

func TestAnalyzerPromptContent(t *testing.T) {
	model := &fakeModel{reply: `{"calm_effect":"a","personal_fit":"b","daily_affirmation":"c"}`}
	a := newTestAnalyzer(textModels(model), time.Second)

	content, source := a.HealingContent(context.Background(),
		db.ColorItem{Name: "코랄", Hex: "#FF7F50", Description: "생기 있는 코랄"}, "spring", "warm")
	assert.Equal(t, HealingContent{CalmEffect: "a", PersonalFit: "b", DailyAffirmation: "c"}, content)
	assert.Equal(t, "gpt-4o-mini", source)

	prompt := model.lastPrompt()
	assert.Contains(t, prompt, "코랄")
	assert.Contains(t, prompt, "#FF7F50")
	assert.Contains(t, prompt, common.SeasonNames["spring"])

	messages := model.messages[0]
	require.Len(t, messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, messages[1].Role)
}
