package logic

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

type insightStats struct {
	ActiveDays       int     `json:"activeDays"`
	ColorImprovement float64 `json:"colorImprovement"`
	MoodImprovement  float64 `json:"moodImprovement"`
	StressRelief     float64 `json:"stressRelief"`
}

type weeklyInsightResponse struct {
	WeekStart           string       `json:"weekStart"`
	WeekEnd             string       `json:"weekEnd"`
	EmotionDistribution Emotions     `json:"emotionDistribution"`
	Improvement         string       `json:"improvement"`
	NextWeekSuggestion  string       `json:"nextWeekSuggestion"`
	Stats               insightStats `json:"stats"`
}

func newWeeklyInsightResponse(row *db.WeeklyInsight) weeklyInsightResponse {
	return weeklyInsightResponse{
		WeekStart: row.WeekStart,
		WeekEnd:   row.WeekEnd,
		EmotionDistribution: Emotions{
			Anxiety:      row.AvgAnxiety,
			Stress:       row.AvgStress,
			Satisfaction: row.AvgSatisfaction,
			Happiness:    row.AvgHappiness,
			Depression:   row.AvgDepression,
		},
		Improvement:        row.Improvement,
		NextWeekSuggestion: row.NextWeekSuggestion,
		Stats: insightStats{
			ActiveDays:       row.ActiveDays,
			ColorImprovement: row.ColorImprovement,
			MoodImprovement:  row.MoodImprovement,
			StressRelief:     row.StressRelief,
		},
	}
}

func noDataInsight(week common.Week) weeklyInsightResponse {
	return weeklyInsightResponse{
		WeekStart:          week.StartKey(),
		WeekEnd:            week.EndKey(),
		Improvement:        noDataImprovement,
		NextWeekSuggestion: noDataSuggestion,
	}
}

// percentChange 以上周为基准的变化百分比, 上周为 0 时记 0, 结果限制在 [-100, 100]
func percentChange(from, to float64) float64 {
	if from <= 0 {
		return 0
	}
	return clamp((to-from)/from*100, -100, 100)
}

// buildWeeklyInsight 汇总本周记录, 文案字段由调用方填充
func buildWeeklyInsight(userID string, week common.Week, entries, previous []db.EmotionEntry) *db.WeeklyInsight {
	avg := averageEmotions(entries)

	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[common.DateKey(e.CreatedAt)] = struct{}{}
	}
	activeDays := len(days)

	row := &db.WeeklyInsight{
		UserID:           userID,
		WeekStart:        week.StartKey(),
		WeekEnd:          week.EndKey(),
		AvgAnxiety:       avg.Anxiety,
		AvgStress:        avg.Stress,
		AvgSatisfaction:  avg.Satisfaction,
		AvgHappiness:     avg.Happiness,
		AvgDepression:    avg.Depression,
		ActiveDays:       activeDays,
		ColorImprovement: min(float64(activeDays*15), 100),
	}
	if len(previous) > 0 {
		prev := averageEmotions(previous)
		row.MoodImprovement = percentChange(prev.Happiness, avg.Happiness)
		// 压力下降为正
		if prev.Stress > 0 {
			row.StressRelief = clamp((prev.Stress-avg.Stress)/prev.Stress*100, -100, 100)
		}
	}
	return row
}

// WeeklyInsightHandler 本周情绪洞察, 每周只计算一次
func (h *Handler) WeeklyInsightHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUser(c)
	week := common.WeekOf(h.now())

	cached, err := h.store.GetWeeklyInsight(ctx, userID, week.StartKey())
	if err == nil {
		respondOK(c, newWeeklyInsightResponse(cached))
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		h.logger.Warnw("read weekly insight failed", "userID", userID, "error", err)
	}

	entries, err := h.store.ListEmotionEntries(ctx, userID, week.Start, week.End)
	if err != nil {
		h.logger.Errorw("list week entries failed", "userID", userID, "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "주간 인사이트 조회 중 오류가 발생했습니다.")
		return
	}
	if len(entries) == 0 {
		respondOK(c, noDataInsight(week))
		return
	}

	prevWeek := week.Previous()
	previous, err := h.store.ListEmotionEntries(ctx, userID, prevWeek.Start, prevWeek.End)
	if err != nil {
		h.logger.Warnw("list previous week entries failed", "userID", userID, "error", err)
		previous = nil
	}

	row := buildWeeklyInsight(userID, week, entries, previous)
	text, source := h.analyzer.WeeklyInsight(ctx, averageEmotions(entries))
	row.Improvement = text.Improvement
	row.NextWeekSuggestion = text.Suggestion

	if err := h.store.InsertWeeklyInsight(ctx, row); err != nil {
		row = h.resolveInsightConflict(c, row, err)
	} else {
		h.logger.Infow("weekly insight saved", "userID", userID, "week", row.WeekStart, "source", source)
	}
	respondOK(c, newWeeklyInsightResponse(row))
}

func (h *Handler) resolveInsightConflict(c *gin.Context, row *db.WeeklyInsight, insertErr error) *db.WeeklyInsight {
	if !errors.Is(insertErr, db.ErrDuplicate) {
		h.logger.Errorw("insert weekly insight failed", "userID", row.UserID, "error", insertErr)
		return row
	}
	winner, err := h.store.GetWeeklyInsight(c.Request.Context(), row.UserID, row.WeekStart)
	if err != nil {
		h.logger.Errorw("re-read weekly insight failed", "userID", row.UserID, "error", err)
		return row
	}
	return winner
}
