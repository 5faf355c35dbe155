package logic

import "healcolor-backend/internal/db"

// 默认调色板与默认季节
const (
	defaultPaletteKey = "summer_cool"
	defaultSeason     = "summer"
	defaultTone       = "cool"
	defaultSubtype    = "cool"
	defaultItemColor  = "#E6E6FA"
	defaultItemTitle  = "추천 아이템"
	unknownColorName  = "힐링 컬러"
)

// colorPalettes 各季节子类型的推荐色, key 为 season_subtype
var colorPalettes = map[string][]db.ColorItem{
	"spring_warm": {
		{Name: "코랄", Hex: "#FF7F50", Description: "따뜻하고 생기 있는 코랄"},
		{Name: "피치", Hex: "#FFDAB9", Description: "부드러운 복숭아빛"},
		{Name: "골든 옐로우", Hex: "#FFD700", Description: "밝고 화사한 금색"},
		{Name: "라이트 그린", Hex: "#90EE90", Description: "싱그러운 연두색"},
		{Name: "아이보리", Hex: "#FFFFF0", Description: "따뜻한 아이보리"},
	},
	"spring_clear": {
		{Name: "브라이트 코랄", Hex: "#FF6B6B", Description: "선명한 코랄"},
		{Name: "터콰이즈", Hex: "#40E0D0", Description: "맑은 청록색"},
		{Name: "선 옐로우", Hex: "#FFEF00", Description: "맑고 밝은 노랑"},
		{Name: "페퍼민트", Hex: "#98FF98", Description: "상쾌한 민트색"},
		{Name: "퓨어 화이트", Hex: "#FFFFFF", Description: "깨끗한 순백색"},
	},
	"summer_cool": {
		{Name: "라벤더", Hex: "#E6E6FA", Description: "차분한 라벤더"},
		{Name: "스카이 블루", Hex: "#87CEEB", Description: "시원한 하늘색"},
		{Name: "소프트 핑크", Hex: "#FFB6C1", Description: "부드러운 분홍"},
		{Name: "민트 그린", Hex: "#98FB98", Description: "청량한 민트"},
		{Name: "페일 그레이", Hex: "#D3D3D3", Description: "세련된 회색"},
	},
	"summer_soft": {
		{Name: "더스티 핑크", Hex: "#D8A9A9", Description: "차분한 더스티 핑크"},
		{Name: "세이지 그린", Hex: "#9DC183", Description: "부드러운 세이지"},
		{Name: "모브", Hex: "#E0B0FF", Description: "우아한 모브"},
		{Name: "블루 그레이", Hex: "#6699CC", Description: "세련된 블루 그레이"},
		{Name: "로즈 베이지", Hex: "#C4A484", Description: "따뜻한 로즈 베이지"},
	},
	"autumn_warm": {
		{Name: "테라코타", Hex: "#E2725B", Description: "따뜻한 테라코타"},
		{Name: "머스타드", Hex: "#FFDB58", Description: "깊은 머스타드"},
		{Name: "올리브 그린", Hex: "#808000", Description: "자연스러운 올리브"},
		{Name: "버건디", Hex: "#800020", Description: "깊은 버건디"},
		{Name: "카멜", Hex: "#C19A6B", Description: "클래식한 카멜"},
	},
	"autumn_deep": {
		{Name: "초콜릿", Hex: "#7B3F00", Description: "깊은 초콜릿 브라운"},
		{Name: "포레스트 그린", Hex: "#228B22", Description: "깊은 숲색"},
		{Name: "퍼플 와인", Hex: "#722F37", Description: "고급스러운 와인색"},
		{Name: "브릭 레드", Hex: "#CB4154", Description: "따뜻한 벽돌색"},
		{Name: "골드", Hex: "#D4AF37", Description: "우아한 골드"},
	},
	"winter_cool": {
		{Name: "로얄 블루", Hex: "#4169E1", Description: "선명한 로얄 블루"},
		{Name: "퓨시아", Hex: "#FF00FF", Description: "강렬한 퓨시아"},
		{Name: "에메랄드", Hex: "#50C878", Description: "선명한 에메랄드"},
		{Name: "퓨어 화이트", Hex: "#FFFFFF", Description: "순수한 화이트"},
		{Name: "실버", Hex: "#C0C0C0", Description: "차가운 실버"},
	},
	"winter_clear": {
		{Name: "트루 레드", Hex: "#FF0000", Description: "선명한 빨강"},
		{Name: "일렉트릭 블루", Hex: "#7DF9FF", Description: "강렬한 일렉트릭 블루"},
		{Name: "핫 핑크", Hex: "#FF69B4", Description: "화려한 핫 핑크"},
		{Name: "블랙", Hex: "#000000", Description: "깊은 블랙"},
		{Name: "아이시 블루", Hex: "#A5F2F3", Description: "차가운 아이시 블루"},
	},
}

var seasonDescriptions = map[string]string{
	"spring": "봄 타입은 밝고 따뜻한 색조가 잘 어울립니다. 피부에 황색 베이스가 있으며, 생기 있고 화사한 컬러가 얼굴을 환하게 밝혀줍니다.",
	"summer": "여름 타입은 부드럽고 시원한 색조가 잘 어울립니다. 피부에 핑크빛 베이스가 있으며, 파스텔 톤과 그레이시한 컬러가 우아함을 더해줍니다.",
	"autumn": "가을 타입은 따뜻하고 깊은 색조가 잘 어울립니다. 피부에 황금빛 베이스가 있으며, 어스 톤과 깊이 있는 컬러가 고급스러움을 연출합니다.",
	"winter": "겨울 타입은 선명하고 차가운 색조가 잘 어울립니다. 피부에 푸른 베이스가 있으며, 대비가 강한 컬러가 세련된 인상을 줍니다.",
}

// 情绪类别
const (
	emotionAnxiety      = "anxiety"
	emotionStress       = "stress"
	emotionSatisfaction = "satisfaction"
	emotionHappiness    = "happiness"
	emotionDepression   = "depression"
)

// emotionHealingColors 主导情绪对应的两种疗愈色
var emotionHealingColors = map[string][]db.HealingColor{
	emotionAnxiety: {
		{Name: "라벤더", Hex: "#E6E6FA", Effect: "마음을 진정시키고 불안을 완화합니다"},
		{Name: "페일 블루", Hex: "#AFEEEE", Effect: "평온함과 안정감을 선사합니다"},
	},
	emotionStress: {
		{Name: "민트 그린", Hex: "#98FB98", Effect: "긴장을 풀어주고 스트레스를 해소합니다"},
		{Name: "스카이 블루", Hex: "#87CEEB", Effect: "마음의 휴식을 가져다줍니다"},
	},
	emotionDepression: {
		{Name: "소프트 옐로우", Hex: "#FFFACD", Effect: "밝은 에너지로 기분을 북돋웁니다"},
		{Name: "피치", Hex: "#FFDAB9", Effect: "따뜻함으로 마음을 감싸줍니다"},
	},
	emotionHappiness: {
		{Name: "코랄", Hex: "#FF7F50", Effect: "행복한 에너지를 더욱 증폭시킵니다"},
		{Name: "골드", Hex: "#FFD700", Effect: "긍정적인 기운을 더해줍니다"},
	},
	emotionSatisfaction: {
		{Name: "세이지 그린", Hex: "#9DC183", Effect: "만족감을 지속시키고 균형을 유지합니다"},
		{Name: "소프트 베이지", Hex: "#F5F5DC", Effect: "안정감과 편안함을 선사합니다"},
	},
}

// emotionKeywords 规则打分用的关键词
var emotionKeywords = map[string][]string{
	emotionAnxiety:      {"불안", "걱정", "두려움", "무서움", "초조", "긴장"},
	emotionStress:       {"스트레스", "피곤", "지침", "힘듦", "벅참", "압박"},
	emotionSatisfaction: {"만족", "뿌듯", "성취", "보람", "충족"},
	emotionHappiness:    {"행복", "기쁨", "즐거움", "좋음", "신남", "기분좋"},
	emotionDepression:   {"우울", "슬픔", "외로움", "공허", "무기력", "우울함"},
}

// 推荐类别
const (
	itemFashion  = "fashion"
	itemFood     = "food"
	itemActivity = "activity"
)

// RecommendationItem 单个推荐项
type RecommendationItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var fashionBySeason = map[string][]RecommendationItem{
	"spring": {
		{ID: "f1", Type: itemFashion, Title: "코랄 블라우스", Description: "화사한 봄을 위한 코랄 컬러 블라우스", Color: "#FF7F50"},
		{ID: "f2", Type: itemFashion, Title: "피치 스카프", Description: "부드러운 피치 톤 실크 스카프", Color: "#FFDAB9"},
		{ID: "f3", Type: itemFashion, Title: "아이보리 니트", Description: "따뜻한 아이보리 캐시미어 니트", Color: "#FFFFF0"},
	},
	"summer": {
		{ID: "f4", Type: itemFashion, Title: "라벤더 원피스", Description: "우아한 라벤더 컬러 린넨 원피스", Color: "#E6E6FA"},
		{ID: "f5", Type: itemFashion, Title: "스카이 블루 셔츠", Description: "시원한 스카이 블루 면 셔츠", Color: "#87CEEB"},
		{ID: "f6", Type: itemFashion, Title: "소프트 핑크 카디건", Description: "부드러운 핑크 톤 가디건", Color: "#FFB6C1"},
	},
	"autumn": {
		{ID: "f7", Type: itemFashion, Title: "테라코타 재킷", Description: "따뜻한 테라코타 울 재킷", Color: "#E2725B"},
		{ID: "f8", Type: itemFashion, Title: "머스타드 스웨터", Description: "깊은 머스타드 컬러 니트", Color: "#FFDB58"},
		{ID: "f9", Type: itemFashion, Title: "올리브 코트", Description: "클래식한 올리브 그린 코트", Color: "#808000"},
	},
	"winter": {
		{ID: "f10", Type: itemFashion, Title: "로얄 블루 드레스", Description: "선명한 로얄 블루 이브닝 드레스", Color: "#4169E1"},
		{ID: "f11", Type: itemFashion, Title: "퓨어 화이트 셔츠", Description: "깔끔한 화이트 포플린 셔츠", Color: "#FFFFFF"},
		{ID: "f12", Type: itemFashion, Title: "블랙 테일러드 재킷", Description: "세련된 블랙 테일러드 재킷", Color: "#000000"},
	},
}

var foodBySeason = map[string][]RecommendationItem{
	"spring": {
		{ID: "fd1", Type: itemFood, Title: "딸기 요거트 볼", Description: "신선한 딸기와 요거트로 만든 건강 볼", Color: "#FF6B6B"},
		{ID: "fd2", Type: itemFood, Title: "연어 샐러드", Description: "오메가3 풍부한 연어 아보카도 샐러드", Color: "#FA8072"},
		{ID: "fd3", Type: itemFood, Title: "망고 스무디", Description: "비타민 가득 망고 스무디", Color: "#FFD700"},
	},
	"summer": {
		{ID: "fd4", Type: itemFood, Title: "블루베리 스무디", Description: "항산화 성분 가득 블루베리 스무디", Color: "#4169E1"},
		{ID: "fd5", Type: itemFood, Title: "수박 주스", Description: "시원한 수박 주스", Color: "#FF6B6B"},
		{ID: "fd6", Type: itemFood, Title: "민트 레모네이드", Description: "청량한 민트 레모네이드", Color: "#98FB98"},
	},
	"autumn": {
		{ID: "fd7", Type: itemFood, Title: "단호박 수프", Description: "달콤한 단호박 크림 수프", Color: "#FF8C00"},
		{ID: "fd8", Type: itemFood, Title: "고구마 라떼", Description: "따뜻한 고구마 라떼", Color: "#D2691E"},
		{ID: "fd9", Type: itemFood, Title: "버섯 리조또", Description: "깊은 풍미의 버섯 리조또", Color: "#8B4513"},
	},
	"winter": {
		{ID: "fd10", Type: itemFood, Title: "석류 주스", Description: "진한 석류 원액 주스", Color: "#DC143C"},
		{ID: "fd11", Type: itemFood, Title: "검은콩 죽", Description: "영양 가득 검은콩 죽", Color: "#2F4F4F"},
		{ID: "fd12", Type: itemFood, Title: "핫초코", Description: "진한 다크 핫초콜릿", Color: "#8B4513"},
	},
}

// 每季三项活动, 与服饰/饮食保持一致
var activityBySeason = map[string][]RecommendationItem{
	"spring": {
		{ID: "a1", Type: itemActivity, Title: "벚꽃 산책", Description: "봄꽃 가득한 공원에서 가벼운 산책", Color: "#FFB6C1"},
		{ID: "a2", Type: itemActivity, Title: "꽃꽂이 클래스", Description: "봄 꽃으로 하는 플라워 아레인지먼트", Color: "#98FB98"},
		{ID: "a9", Type: itemActivity, Title: "피크닉", Description: "햇살 좋은 날 야외에서 즐기는 피크닉", Color: "#FFD700"},
	},
	"summer": {
		{ID: "a3", Type: itemActivity, Title: "수영", Description: "시원한 물에서 즐기는 수영", Color: "#87CEEB"},
		{ID: "a4", Type: itemActivity, Title: "요가 명상", Description: "마음을 차분하게 하는 요가 명상", Color: "#E6E6FA"},
		{ID: "a10", Type: itemActivity, Title: "해 질 녘 산책", Description: "선선한 저녁 바람을 맞으며 걷기", Color: "#FFB6C1"},
	},
	"autumn": {
		{ID: "a5", Type: itemActivity, Title: "단풍 트레킹", Description: "가을 단풍을 즐기는 산행", Color: "#FF8C00"},
		{ID: "a6", Type: itemActivity, Title: "도자기 만들기", Description: "마음을 담은 도자기 공예", Color: "#D2691E"},
		{ID: "a11", Type: itemActivity, Title: "캘리그라피", Description: "차분하게 마음을 담아 쓰는 손글씨", Color: "#808000"},
	},
	"winter": {
		{ID: "a7", Type: itemActivity, Title: "독서", Description: "따뜻한 실내에서 즐기는 독서", Color: "#8B4513"},
		{ID: "a8", Type: itemActivity, Title: "미술관 방문", Description: "예술 작품 감상하기", Color: "#4169E1"},
		{ID: "a12", Type: itemActivity, Title: "홈 베이킹", Description: "따뜻한 오븐 앞에서 구워보는 쿠키", Color: "#DC143C"},
	},
}

type colorItems struct {
	fashion []RecommendationItem
	food    []RecommendationItem
}

// healingColorItems 疗愈色专属推荐, key 为大写 HEX
var healingColorItems = map[string]colorItems{
	"#E6E6FA": {
		fashion: []RecommendationItem{{ID: "hf1", Type: itemFashion, Title: "라벤더 캐시미어 스웨터", Description: "부드러운 라벤더 톤으로 마음을 진정시켜주는 니트", Color: "#E6E6FA"}},
		food:    []RecommendationItem{{ID: "hfd1", Type: itemFood, Title: "라벤더 허브티", Description: "마음을 진정시키는 라벤더 허브티", Color: "#E6E6FA"}},
	},
	"#87CEEB": {
		fashion: []RecommendationItem{{ID: "hf2", Type: itemFashion, Title: "스카이 블루 린넨 셔츠", Description: "시원하고 청량한 느낌의 셔츠", Color: "#87CEEB"}},
		food:    []RecommendationItem{{ID: "hfd2", Type: itemFood, Title: "블루베리 요거트", Description: "상큼하고 건강한 블루베리 요거트", Color: "#87CEEB"}},
	},
	"#98FB98": {
		fashion: []RecommendationItem{{ID: "hf3", Type: itemFashion, Title: "민트 그린 카디건", Description: "상쾌한 느낌의 민트 카디건", Color: "#98FB98"}},
		food:    []RecommendationItem{{ID: "hfd3", Type: itemFood, Title: "민트 모히또", Description: "청량감 가득한 민트 음료", Color: "#98FB98"}},
	},
	"#FFB6C1": {
		fashion: []RecommendationItem{{ID: "hf4", Type: itemFashion, Title: "소프트 핑크 블라우스", Description: "부드러운 핑크톤으로 따뜻함을 주는 블라우스", Color: "#FFB6C1"}},
		food:    []RecommendationItem{{ID: "hfd4", Type: itemFood, Title: "딸기 라떼", Description: "달콤하고 부드러운 딸기 라떼", Color: "#FFB6C1"}},
	},
	"#FFFACD": {
		fashion: []RecommendationItem{{ID: "hf5", Type: itemFashion, Title: "레몬 옐로우 셔츠", Description: "밝고 활기찬 느낌의 레몬 옐로우 셔츠", Color: "#FFFACD"}},
		food:    []RecommendationItem{{ID: "hfd5", Type: itemFood, Title: "레몬 에이드", Description: "상큼하고 기분 좋은 레몬 에이드", Color: "#FFFACD"}},
	},
}

var colorNames = map[string]string{
	"#E6E6FA": "라벤더",
	"#87CEEB": "스카이 블루",
	"#98FB98": "민트 그린",
	"#FFB6C1": "소프트 핑크",
	"#FFFACD": "레몬 옐로우",
	"#FFA07A": "라이트 살몬",
	"#DDA0DD": "플럼",
	"#F0E68C": "카키",
}

// paletteFor 按 key 取调色板, 不存在时用 summer_cool
func paletteFor(key string) []db.ColorItem {
	if colors, ok := colorPalettes[key]; ok {
		return colors
	}
	return colorPalettes[defaultPaletteKey]
}

func seasonTable(table map[string][]RecommendationItem, season string) []RecommendationItem {
	items, ok := table[season]
	if !ok {
		items = table[defaultSeason]
	}
	// 返回副本, 调用方可以安全地截断或修改
	return append([]RecommendationItem(nil), items...)
}

func colorNameFromHex(hex string) string {
	if name, ok := colorNames[hex]; ok {
		return name
	}
	return unknownColorName
}
