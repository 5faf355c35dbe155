package common

import "time"

const (
	DefaultOpenAIVisionModel = "gpt-4o"
	DefaultOpenAITextModel   = "gpt-4o-mini"
	DefaultHunyuanModel      = "hunyuan-turbos-latest"
	DefaultHunyuanEndpoint   = "hunyuan.tencentcloudapi.com"
	DefaultLLMTimeout        = 12 * time.Second

	ProviderOpenAI  = "openai"
	ProviderHunyuan = "hunyuan"

	// SourceFallback 规则引擎产生的结果来源标记
	SourceFallback = "fallback"
)

// 各分析任务的提示词, 输出一律为 JSON
const (
	ColorSystemPrompt = "당신은 숙련된 퍼스널 컬러 컨설턴트입니다. 피부의 언더톤과 명도, 색의 조화를 근거로 판단합니다."

	ColorAnalysisPrompt = `첨부한 얼굴 사진을 보고 퍼스널 컬러와 표정을 판단해주세요.

판단 기준:
1. 피부 언더톤 (warm/cool/neutral)
2. 피부 밝기 (light/medium/dark)
3. 계절 타입: spring, summer, autumn, winter 중 하나
4. 세부 타입: warm, cool, clear, soft, deep, light 중 하나
5. 표정: happy, neutral, calm, sad, surprised, angry 중 하나

사진이 흐리거나 얼굴이 일부만 보여도 가장 가능성이 높은 값을 고르세요. "unknown" 같은 값은 쓰지 마세요.

아래 JSON 형식으로만 답하세요:
{
  "tone": {
    "season": "spring|summer|autumn|winter",
    "subtype": "warm|cool|clear|soft|deep|light",
    "confidence": 0.0,
    "undertone": "warm|cool|neutral",
    "brightness": "light|medium|dark",
    "analysis_reason": "판단 근거"
  },
  "emotion": {
    "facial_expression": "happy|neutral|calm|sad|surprised|angry",
    "facial_expression_confidence": 0.0
  }
}`

	EmotionSystemPrompt = "당신은 공감 능력이 뛰어난 심리 상담가입니다. 한국어 표현의 미묘한 뉘앙스와 맥락을 읽어 감정을 분석합니다."

	// EmotionAnalysisPrompt 参数: 用户输入文本
	EmotionAnalysisPrompt = `다음 글에 드러난 작성자의 감정 상태를 분석해주세요.

글: "%s"

각 감정을 0에서 100 사이 점수로 평가하세요.
- 0-20: 거의 없음
- 21-40: 약함
- 41-60: 보통
- 61-80: 강함
- 81-100: 매우 강함

아래 JSON 형식으로만 답하세요:
{
  "anxiety": 0,
  "stress": 0,
  "satisfaction": 0,
  "happiness": 0,
  "depression": 0,
  "dominant_emotion": "가장 두드러진 감정",
  "analysis_note": "짧은 메모"
}`

	HealingSystemPrompt = "당신은 색채 심리에 밝은 따뜻한 컬러 테라피스트입니다. 사용자에게 맞춘 짧은 힐링 메시지를 씁니다."

	// HealingContentPrompt 参数: 颜色名, HEX, 颜色描述, 季节, 色调
	HealingContentPrompt = `오늘의 힐링 컬러에 대한 개인화된 메시지를 작성해주세요.

오늘의 힐링 컬러: %s (%s)
컬러 설명: %s
사용자 퍼스널 컬러: %s %s

1. calm_effect: 이 색이 주는 심리적 안정 효과 (2-3문장)
2. personal_fit: 사용자의 퍼스널 컬러와 이 색의 조화 (2문장)
3. daily_affirmation: 오늘 하루를 위한 따뜻한 확언 (1-2문장)

아래 JSON 형식으로만 답하세요:
{"calm_effect": "...", "personal_fit": "...", "daily_affirmation": "..."}`

	InsightSystemPrompt = "당신은 따뜻하고 공감 능력이 뛰어난 상담 전문가입니다."

	// WeeklyInsightPrompt 参数: 焦虑, 压力, 满足, 幸福, 抑郁 周平均分
	WeeklyInsightPrompt = `사용자의 이번 주 평균 감정 점수입니다 (0-100).
- 불안: %.1f
- 스트레스: %.1f
- 만족감: %.1f
- 행복: %.1f
- 우울: %.1f

1. improvement: 이번 주 감정 상태에 대한 짧은 분석 (2-3문장)
2. suggestion: 다음 주를 위한 따뜻한 조언 (1-2문장)

아래 JSON 형식으로만 답하세요:
{"improvement": "...", "suggestion": "..."}`

	RecommendSystemPrompt = "당신은 퍼스널 컬러와 컬러 테라피에 정통한 라이프스타일 코디네이터입니다. 색의 심리 효과와 퍼스널 컬러 조화를 함께 고려합니다."

	// RecommendPrompt 参数: 季节, 色调, 子类型, 主色名, 主色HEX, 近期情绪概要
	RecommendPrompt = `사용자의 퍼스널 컬러와 최근 감정 상태에 맞는 추천을 만들어주세요.

- 퍼스널 컬러: %s %s (%s)
- 대표 색상: %s (%s)
- 최근 감정 상태: %s

카테고리마다 정확히 3개씩 추천하세요.
1. fashion: 의류와 액세서리
2. food: 퍼스널 컬러와 어울리는 음식과 음료
3. activities: 감정 상태 개선에 도움이 되는 활동

모든 항목의 color는 사용자의 계절과 톤에 어울리는 HEX 코드여야 합니다.

아래 JSON 형식으로만 답하세요:
{
  "fashion": [{"id": "f1", "type": "fashion", "title": "...", "description": "...", "color": "#RRGGBB"}],
  "food": [{"id": "fd1", "type": "food", "title": "...", "description": "...", "color": "#RRGGBB"}],
  "activities": [{"id": "a1", "type": "activity", "title": "...", "description": "...", "color": "#RRGGBB"}]
}`
)

// SeasonNames 季节的韩文名称
var SeasonNames = map[string]string{
	"spring": "봄",
	"summer": "여름",
	"autumn": "가을",
	"winter": "겨울",
}

// ToneNames 色调的韩文名称
var ToneNames = map[string]string{
	"warm": "웜톤",
	"cool": "쿨톤",
}
