package logic

import (
	"fmt"
	"strings"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

// Emotions 五项情绪分数, 0-100
type Emotions struct {
	Anxiety      float64 `json:"anxiety"`
	Stress       float64 `json:"stress"`
	Satisfaction float64 `json:"satisfaction"`
	Happiness    float64 `json:"happiness"`
	Depression   float64 `json:"depression"`
}

// ColorAnalysis 个人色彩诊断结果, Tone 总是由 Subtype 推导
type ColorAnalysis struct {
	Season           string
	Subtype          string
	Tone             string
	Confidence       float64
	FacialExpression string
	Source           string
}

// HealingContent 每日疗愈色的文案
type HealingContent struct {
	CalmEffect       string
	PersonalFit      string
	DailyAffirmation string
}

// InsightText 每周洞察文案
type InsightText struct {
	Improvement string
	Suggestion  string
}

// Recommendations 三类推荐
type Recommendations struct {
	Fashion    []RecommendationItem
	Food       []RecommendationItem
	Activities []RecommendationItem
	Source     string
}

var coolSubtypes = map[string]bool{"cool": true, "clear": true, "soft": true}

// deriveTone cool/clear/soft 为冷调, 其余为暖调
func deriveTone(subtype string) string {
	if coolSubtypes[subtype] {
		return "cool"
	}
	return "warm"
}

func fallbackColorAnalysis() ColorAnalysis {
	return ColorAnalysis{
		Season:           defaultSeason,
		Subtype:          defaultSubtype,
		Tone:             deriveTone(defaultSubtype),
		Confidence:       0.7,
		FacialExpression: "neutral",
		Source:           common.SourceFallback,
	}
}

// keywordScore 命中一个关键词记 30 分, 最高 100
func keywordScore(text string, keywords []string) float64 {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return min(float64(count*30), 100)
}

// keywordEmotions 关键词规则打分
func keywordEmotions(text string) Emotions {
	lower := strings.ToLower(text)
	return Emotions{
		Anxiety:      keywordScore(lower, emotionKeywords[emotionAnxiety]),
		Stress:       keywordScore(lower, emotionKeywords[emotionStress]),
		Satisfaction: keywordScore(lower, emotionKeywords[emotionSatisfaction]),
		Happiness:    keywordScore(lower, emotionKeywords[emotionHappiness]),
		Depression:   keywordScore(lower, emotionKeywords[emotionDepression]),
	}
}

// dominantEmotion 正面总分不低于负面时取幸福/满足中较高者,
// 否则取焦虑/压力/抑郁中最高者, 并列时按此顺序取先出现的
func dominantEmotion(e Emotions) string {
	positive := e.Satisfaction + e.Happiness
	negative := e.Anxiety + e.Stress + e.Depression
	if positive >= negative {
		if e.Happiness > e.Satisfaction {
			return emotionHappiness
		}
		return emotionSatisfaction
	}

	dominant, best := emotionAnxiety, e.Anxiety
	if e.Stress > best {
		dominant, best = emotionStress, e.Stress
	}
	if e.Depression > best {
		dominant = emotionDepression
	}
	return dominant
}

// healingColorsFor 未知情绪使用 stress 的疗愈色
func healingColorsFor(emotion string) []db.HealingColor {
	colors, ok := emotionHealingColors[emotion]
	if !ok {
		colors = emotionHealingColors[emotionStress]
	}
	return append([]db.HealingColor(nil), colors...)
}

func fallbackHealingContent(colorName string) HealingContent {
	return HealingContent{
		CalmEffect:       fmt.Sprintf("%s은(는) 마음을 편안하게 해주고 일상의 스트레스를 완화하는 효과가 있습니다. 이 컬러를 통해 내면의 평화를 찾아보세요.", colorName),
		PersonalFit:      "당신의 퍼스널 컬러와 조화롭게 어울려 자연스러운 아름다움을 더해줍니다.",
		DailyAffirmation: "오늘 하루도 당신은 충분히 아름답고 가치 있는 존재입니다. 자신을 믿으세요.",
	}
}

// simpleInsight 根据周平均分生成规则文案
func simpleInsight(avg Emotions) InsightText {
	positive := (avg.Satisfaction + avg.Happiness) / 2
	negative := (avg.Anxiety + avg.Stress + avg.Depression) / 3

	switch {
	case positive > negative:
		return InsightText{
			Improvement: "이번 주는 전반적으로 긍정적인 감정이 우세했습니다. 좋은 한 주였네요!",
			Suggestion:  "다음 주에도 현재의 긍정적인 상태를 유지하면서 작은 기쁨들을 찾아보세요.",
		}
	case avg.Stress > 60:
		return InsightText{
			Improvement: "이번 주는 스트레스가 높았던 것 같습니다. 충분한 휴식이 필요해 보여요.",
			Suggestion:  "다음 주에는 자신을 위한 시간을 조금 더 가져보는 건 어떨까요?",
		}
	case avg.Anxiety > 60:
		return InsightText{
			Improvement: "불안한 마음이 많았던 한 주였네요. 당신의 감정은 충분히 이해됩니다.",
			Suggestion:  "깊은 호흡과 함께 천천히 마음을 가라앉혀 보세요.",
		}
	default:
		return InsightText{
			Improvement: "다양한 감정을 경험한 한 주였습니다.",
			Suggestion:  "다음 주에는 힐링 컬러와 함께 마음의 평화를 찾아보세요.",
		}
	}
}

// 本周无记录时的固定文案
const (
	noDataImprovement = "이번 주에 기록된 감정이 없습니다. 매일 감정을 기록해보세요!"
	noDataSuggestion  = "다음 주에는 하루에 한 번씩 감정을 기록해보는 것은 어떨까요?"
)

func fallbackRecommendations(season string) Recommendations {
	return Recommendations{
		Fashion:    seasonTable(fashionBySeason, season),
		Food:       seasonTable(foodBySeason, season),
		Activities: seasonTable(activityBySeason, season),
		Source:     common.SourceFallback,
	}
}

// averageEmotions 算术平均, 空列表返回零值
func averageEmotions(entries []db.EmotionEntry) Emotions {
	var sum Emotions
	if len(entries) == 0 {
		return sum
	}
	for _, e := range entries {
		sum.Anxiety += e.Anxiety
		sum.Stress += e.Stress
		sum.Satisfaction += e.Satisfaction
		sum.Happiness += e.Happiness
		sum.Depression += e.Depression
	}
	n := float64(len(entries))
	return Emotions{
		Anxiety:      sum.Anxiety / n,
		Stress:       sum.Stress / n,
		Satisfaction: sum.Satisfaction / n,
		Happiness:    sum.Happiness / n,
		Depression:   sum.Depression / n,
	}
}

// emotionSummary 最近几条情绪记录的概要, 用于推荐提示词
func emotionSummary(entries []db.EmotionEntry) string {
	if len(entries) == 0 {
		return "감정 데이터 없음"
	}
	avg := averageEmotions(entries)
	var notes []string
	if avg.Stress > 50 {
		notes = append(notes, "스트레스가 높음")
	}
	if avg.Anxiety > 50 {
		notes = append(notes, "불안감이 있음")
	}
	if avg.Happiness > 60 {
		notes = append(notes, "행복감이 높음")
	}
	if avg.Happiness < 40 {
		notes = append(notes, "기분 전환이 필요함")
	}
	if len(notes) == 0 {
		return "안정적인 상태"
	}
	return strings.Join(notes, ", ")
}
