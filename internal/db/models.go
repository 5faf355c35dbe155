package db

import (
	"time"
)

// ColorItem 调色板中的一个颜色
type ColorItem struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	Description string `json:"description,omitempty"`
}

// HealingColor 情绪对应的疗愈色
type HealingColor struct {
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Effect string `json:"effect"`
}

// ColorResult 个人色彩诊断结果, 每个用户一行, 重新诊断时覆盖
type ColorResult struct {
	UserID            string      `gorm:"size:64;primaryKey" json:"userId"`
	Season            string      `gorm:"size:16" json:"season"`
	Tone              string      `gorm:"size:8" json:"tone"`
	Subtype           string      `gorm:"size:32" json:"subtype"`
	Confidence        float64     `json:"confidence"`
	Description       string      `gorm:"type:text" json:"description"`
	RecommendedColors []ColorItem `gorm:"type:text;serializer:json" json:"recommendedColors"`
	FacialExpression  *string     `gorm:"size:32" json:"facialExpression"`
	AnalyzedAt        time.Time   `json:"analyzedAt"`
	UpdatedAt         time.Time   `json:"-"`
}

// EmotionEntry 情绪日记, 只追加
type EmotionEntry struct {
	ID            string         `gorm:"size:36;primaryKey" json:"id"`
	UserID        string         `gorm:"size:64;index:idx_entry_user_created,priority:1" json:"userId"`
	InputText     string         `gorm:"type:text" json:"inputText"`
	Anxiety       float64        `json:"anxiety"`
	Stress        float64        `json:"stress"`
	Satisfaction  float64        `json:"satisfaction"`
	Happiness     float64        `json:"happiness"`
	Depression    float64        `json:"depression"`
	HealingColors []HealingColor `gorm:"type:text;serializer:json" json:"healingColors"`
	CreatedAt     time.Time      `gorm:"index:idx_entry_user_created,priority:2" json:"createdAt"`
}

// DailyHealingColor 每日疗愈色, (user_id, date) 唯一, 生成后当天不变
type DailyHealingColor struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"size:64;uniqueIndex:uidx_healing_user_date" json:"userId"`
	Date             string    `gorm:"size:10;uniqueIndex:uidx_healing_user_date" json:"date"` // yyyy-mm-dd
	ColorName        string    `gorm:"size:64" json:"colorName"`
	ColorHex         string    `gorm:"size:7" json:"colorHex"`
	ColorDescription string    `gorm:"size:255" json:"colorDescription"`
	CalmEffect       string    `gorm:"type:text" json:"calmEffect"`
	PersonalFit      string    `gorm:"type:text" json:"personalFit"`
	DailyAffirmation string    `gorm:"type:text" json:"dailyAffirmation"`
	CreatedAt        time.Time `json:"createdAt"`
}

// WeeklyInsight 每周情绪洞察, (user_id, week_start) 唯一
type WeeklyInsight struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             string    `gorm:"size:64;uniqueIndex:uidx_insight_user_week" json:"userId"`
	WeekStart          string    `gorm:"size:10;uniqueIndex:uidx_insight_user_week" json:"weekStart"`
	WeekEnd            string    `gorm:"size:10" json:"weekEnd"`
	AvgAnxiety         float64   `json:"avgAnxiety"`
	AvgStress          float64   `json:"avgStress"`
	AvgSatisfaction    float64   `json:"avgSatisfaction"`
	AvgHappiness       float64   `json:"avgHappiness"`
	AvgDepression      float64   `json:"avgDepression"`
	Improvement        string    `gorm:"type:text" json:"improvement"`
	NextWeekSuggestion string    `gorm:"type:text" json:"nextWeekSuggestion"`
	ActiveDays         int       `json:"activeDays"`
	ColorImprovement   float64   `json:"colorImprovement"`
	MoodImprovement    float64   `json:"moodImprovement"`
	StressRelief       float64   `json:"stressRelief"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Feedback 用户评分
type Feedback struct {
	ID         string    `gorm:"size:36;primaryKey" json:"id"`
	UserID     string    `gorm:"size:64;index" json:"userId"`
	Rating     int       `json:"rating"`
	TargetType string    `gorm:"size:32" json:"targetType"`
	TargetID   string    `gorm:"size:64" json:"targetId"`
	Comment    *string   `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// 反馈目标类型
const (
	TargetColorResult    = "color_result"
	TargetEmotionMap     = "emotion_map"
	TargetHealingColor   = "healing_color"
	TargetRecommendation = "recommendation"
)

// AllModels 需要自动迁移的表
func AllModels() []any {
	return []any{&ColorResult{}, &EmotionEntry{}, &DailyHealingColor{}, &WeeklyInsight{}, &Feedback{}}
}
