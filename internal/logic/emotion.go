package logic

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"healcolor-backend/internal/db"
)

type emotionEntryResponse struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Text          string            `json:"text"`
	Emotions      Emotions          `json:"emotions"`
	HealingColors []db.HealingColor `json:"healingColors"`
}

func newEmotionEntryResponse(entry db.EmotionEntry) emotionEntryResponse {
	healing := entry.HealingColors
	if healing == nil {
		healing = []db.HealingColor{}
	}
	return emotionEntryResponse{
		ID:   entry.ID,
		Date: entry.CreatedAt,
		Text: entry.InputText,
		Emotions: Emotions{
			Anxiety:      entry.Anxiety,
			Stress:       entry.Stress,
			Satisfaction: entry.Satisfaction,
			Happiness:    entry.Happiness,
			Depression:   entry.Depression,
		},
		HealingColors: healing,
	}
}

// AnalyzeEmotionHandler 情绪日记打分并保存
func (h *Handler) AnalyzeEmotionHandler(c *gin.Context) {
	var req emotionAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err, emotionMessages))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, emotionMessages["Text"])
		return
	}

	ctx := c.Request.Context()
	userID := currentUser(c)
	emotions, source := h.analyzer.ScoreEmotion(ctx, req.Text)
	dominant := dominantEmotion(emotions)

	entry := db.EmotionEntry{
		ID:            uuid.NewString(),
		UserID:        userID,
		InputText:     req.Text,
		Anxiety:       emotions.Anxiety,
		Stress:        emotions.Stress,
		Satisfaction:  emotions.Satisfaction,
		Happiness:     emotions.Happiness,
		Depression:    emotions.Depression,
		HealingColors: healingColorsFor(dominant),
		CreatedAt:     h.now(),
	}
	if err := h.store.InsertEmotionEntry(ctx, &entry); err != nil {
		h.logger.Errorw("insert emotion entry failed", "userID", userID, "error", err)
		respondError(c, http.StatusInternalServerError, codeDatabaseError, "감정 기록 저장 중 오류가 발생했습니다.")
		return
	}

	h.logger.Infow("emotion entry saved", "id", entry.ID, "dominant", dominant, "source", source)
	respondOK(c, newEmotionEntryResponse(entry))
}

// EmotionHistoryHandler 最近的情绪记录, 新的在前
func (h *Handler) EmotionHistoryHandler(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	entries, err := h.store.RecentEmotionEntries(c.Request.Context(), currentUser(c), limit)
	if err != nil {
		h.logger.Errorw("list emotion entries failed", "error", err)
		respondError(c, http.StatusInternalServerError, codeDatabaseError, "감정 기록 조회 중 오류가 발생했습니다.")
		return
	}

	resp := make([]emotionEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, newEmotionEntryResponse(entry))
	}
	respondOK(c, resp)
}
