package logic

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

func TestFallbackRecommendations(t *testing.T) {
	for _, season := range []string{"spring", "summer", "autumn", "winter"} {
		recs := fallbackRecommendations(season)
		assert.Len(t, recs.Fashion, 3, season)
		assert.Len(t, recs.Food, 3, season)
		assert.Len(t, recs.Activities, 3, season)
		assert.Equal(t, common.SourceFallback, recs.Source)
	}
	// 未知季节使用夏季表
	assert.Equal(t, fashionBySeason["summer"], fallbackRecommendations("monsoon").Fashion)
}

func TestEmotionSummary(t *testing.T) {
	assert.Equal(t, "감정 데이터 없음", emotionSummary(nil))
	assert.Equal(t, "안정적인 상태", emotionSummary([]db.EmotionEntry{{Happiness: 50}}))
	assert.Equal(t, "스트레스가 높음, 불안감이 있음, 기분 전환이 필요함",
		emotionSummary([]db.EmotionEntry{{Stress: 80, Anxiety: 60, Happiness: 20}}))
	assert.Equal(t, "행복감이 높음", emotionSummary([]db.EmotionEntry{{Happiness: 90}, {Happiness: 70}}))
}

// 模型失败时返回用户季节的静态推荐, 各三项
func TestRecommendationsFallback(t *testing.T) {
	model := &fakeModel{err: errors.New("upstream unavailable")}
	env := newTestEnv(t, textModels(model))

	w := env.do(t, "GET", "/api/recommendations", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeData[recommendationResponse](t, w)

	assert.Equal(t, defaultPrimaryColor, resp.Color)
	assert.Equal(t, fashionBySeason["summer"], resp.Items)
	assert.Equal(t, foodBySeason["summer"], resp.Foods)
	assert.Equal(t, activityBySeason["summer"], resp.Activities)
	require.NotNil(t, resp.Debug)
	assert.Equal(t, recommendDebug{Source: common.SourceFallback, Season: "summer", Tone: "cool", Subtype: "Summer_cool"}, *resp.Debug)
	assert.Equal(t, 1, model.callCount())
}

func TestRecommendationsUsePersonalColor(t *testing.T) {
	env := newTestEnv(t, Models{})
	require.NoError(t, env.store.UpsertColorResult(context.Background(), &db.ColorResult{
		UserID: "u1", Season: "autumn", Tone: "warm", Subtype: "Autumn_deep",
		RecommendedColors: colorPalettes["autumn_deep"], AnalyzedAt: env.now,
	}))

	resp := decodeData[recommendationResponse](t, env.do(t, "GET", "/api/recommendations", "u1", nil))
	assert.Equal(t, colorPalettes["autumn_deep"][0], resp.Color)
	assert.Equal(t, fashionBySeason["autumn"], resp.Items)
	assert.Equal(t, foodBySeason["autumn"], resp.Foods)
	assert.Equal(t, activityBySeason["autumn"], resp.Activities)
	assert.Equal(t, "Autumn_deep", resp.Debug.Subtype)
}

// 模型输出逐项修复, 缺失的类别用静态表补齐
func TestRecommendationsRepairModelOutput(t *testing.T) {
	model := &fakeModel{reply: `{
		"fashion":[{"title":"코트"},{"id":"x","type":"food","color":"#123456","description":"설명"}],
		"food":[],
		"activities":"none"
	}`}
	env := newTestEnv(t, textModels(model))
	seedEntry(t, env, "u1", env.now.Add(-1), Emotions{Stress: 80})

	resp := decodeData[recommendationResponse](t, env.do(t, "GET", "/api/recommendations", "u1", nil))
	assert.Equal(t, []RecommendationItem{
		{ID: "f1", Type: itemFashion, Title: "코트", Color: defaultItemColor},
		{ID: "x", Type: itemFashion, Title: defaultItemTitle, Description: "설명", Color: "#123456"},
	}, resp.Items)
	assert.Equal(t, foodBySeason["summer"], resp.Foods)
	assert.Equal(t, activityBySeason["summer"], resp.Activities)
	assert.Equal(t, "gpt-4o-mini", resp.Debug.Source)

	// 最近情绪概要写进提示词
	assert.Contains(t, model.lastPrompt(), "스트레스가 높음")
}

// 读取失败时按默认用户处理
func TestRecommendationsTolerateReadFailures(t *testing.T) {
	env := newTestEnv(t, Models{})
	env.handler.store = &failingStore{
		Store:       env.store,
		getColorErr: errors.New("connection reset"),
		recentErr:   errors.New("connection reset"),
	}

	w := env.do(t, "GET", "/api/recommendations", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "summer", decodeData[recommendationResponse](t, w).Debug.Season)
}

func TestRecommendationsByColorCurated(t *testing.T) {
	env := newTestEnv(t, Models{})

	w := env.do(t, "GET", "/api/recommendations/by-color?color=e6e6fa", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeData[recommendationResponse](t, w)

	assert.Equal(t, db.ColorItem{Name: "라벤더", Hex: "#E6E6FA"}, resp.Color)
	assert.Equal(t, healingColorItems["#E6E6FA"].fashion, resp.Items)
	assert.Equal(t, healingColorItems["#E6E6FA"].food, resp.Foods)
	assert.Empty(t, resp.Activities)
	assert.NotNil(t, resp.Activities)
	assert.Nil(t, resp.Debug)
}

// 未收录的颜色按用户季节取前两项
func TestRecommendationsByColorUnknown(t *testing.T) {
	env := newTestEnv(t, Models{})

	resp := decodeData[recommendationResponse](t, env.do(t, "GET", "/api/recommendations/by-color?color=%23123456", "u1", nil))
	assert.Equal(t, db.ColorItem{Name: unknownColorName, Hex: "#123456"}, resp.Color)
	assert.Equal(t, fashionBySeason["summer"][:2], resp.Items)
	assert.Equal(t, foodBySeason["summer"][:2], resp.Foods)

	require.NoError(t, env.store.UpsertColorResult(context.Background(), &db.ColorResult{
		UserID: "u1", Season: "winter", Tone: "cool", Subtype: "Winter_cool", AnalyzedAt: env.now,
	}))
	resp = decodeData[recommendationResponse](t, env.do(t, "GET", "/api/recommendations/by-color?color=123456", "u1", nil))
	assert.Equal(t, fashionBySeason["winter"][:2], resp.Items)
	assert.Equal(t, foodBySeason["winter"][:2], resp.Foods)

	// 静态表不受截断影响
	assert.Len(t, fashionBySeason["winter"], 3)
}

func TestRecommendationsByColorBadRequest(t *testing.T) {
	env := newTestEnv(t, Models{})

	w := env.do(t, "GET", "/api/recommendations/by-color", "u1", nil)
	assertError(t, w, http.StatusBadRequest, codeBadRequest)
	assert.Equal(t, "색상 코드가 필요합니다.", decodeEnvelope(t, w).Error.Message)

	for _, color := range []string{"zzz", "%23FFF", "12345G", "%23E6E6FA00"} {
		w = env.do(t, "GET", "/api/recommendations/by-color?color="+color, "u1", nil)
		assertError(t, w, http.StatusBadRequest, codeBadRequest)
		assert.Equal(t, "올바른 색상 코드가 아닙니다.", decodeEnvelope(t, w).Error.Message)
	}
}
