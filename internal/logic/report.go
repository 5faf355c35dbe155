package logic

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

type reportUser struct {
	Email         string `json:"email"`
	ParticipantID string `json:"participantId"`
}

type reportColor struct {
	Season      string `json:"season"`
	Tone        string `json:"tone"`
	Description string `json:"description"`
}

type reportEmotions struct {
	Emotions
	TotalEntries int `json:"totalEntries"`
}

type reportInsight struct {
	Improvement        string  `json:"improvement"`
	NextWeekSuggestion string  `json:"nextWeekSuggestion"`
	ActiveDays         int     `json:"activeDays"`
	MoodImprovement    float64 `json:"moodImprovement"`
	StressRelief       float64 `json:"stressRelief"`
	ColorImprovement   float64 `json:"colorImprovement"`
}

// weeklyReport PDF 渲染所需的数据, 渲染本身不在服务端
type weeklyReport struct {
	User           reportUser      `json:"user"`
	WeekStart      string          `json:"weekStart"`
	WeekEnd        string          `json:"weekEnd"`
	PersonalColor  *reportColor    `json:"personalColor,omitempty"`
	EmotionSummary *reportEmotions `json:"emotionSummary,omitempty"`
	WeeklyInsight  *reportInsight  `json:"weeklyInsight,omitempty"`
}

// WeeklyReportHandler 并发读取色彩结果/本周记录/本周洞察并汇总
func (h *Handler) WeeklyReportHandler(c *gin.Context) {
	userID := currentUser(c)
	claims := currentClaims(c)
	week := common.WeekOf(h.now())

	var (
		personal *db.ColorResult
		entries  []db.EmotionEntry
		insight  *db.WeeklyInsight
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		row, err := h.store.GetColorResult(ctx, userID)
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		personal = row
		return err
	})
	g.Go(func() error {
		rows, err := h.store.ListEmotionEntries(ctx, userID, week.Start, week.End)
		entries = rows
		return err
	})
	g.Go(func() error {
		row, err := h.store.GetWeeklyInsight(ctx, userID, week.StartKey())
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		insight = row
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Errorw("build weekly report failed", "userID", userID, "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "주간 리포트 데이터 조회 중 오류가 발생했습니다.")
		return
	}

	report := weeklyReport{
		User:      reportUser{Email: claims.Email, ParticipantID: claims.UserMetadata.ParticipantID},
		WeekStart: week.StartKey(),
		WeekEnd:   week.EndKey(),
	}
	if personal != nil {
		report.PersonalColor = &reportColor{Season: personal.Season, Tone: personal.Tone, Description: personal.Description}
	}
	if len(entries) > 0 {
		report.EmotionSummary = &reportEmotions{Emotions: averageEmotions(entries), TotalEntries: len(entries)}
	}
	if insight != nil {
		report.WeeklyInsight = &reportInsight{
			Improvement:        insight.Improvement,
			NextWeekSuggestion: insight.NextWeekSuggestion,
			ActiveDays:         insight.ActiveDays,
			MoodImprovement:    insight.MoodImprovement,
			StressRelief:       insight.StressRelief,
			ColorImprovement:   insight.ColorImprovement,
		}
	}
	respondOK(c, report)
}
