package logic

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"healcolor-backend/internal/db"
)

// FeedbackHandler 保存用户评分
func (h *Handler) FeedbackHandler(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err, feedbackFields))
		return
	}
	targetID := strings.TrimSpace(req.TargetID)
	if targetID == "" {
		badRequest(c, feedbackFields["TargetID"])
		return
	}

	feedback := &db.Feedback{
		ID:         uuid.NewString(),
		UserID:     currentUser(c),
		Rating:     *req.Rating,
		TargetType: req.TargetType,
		TargetID:   targetID,
		CreatedAt:  h.now(),
	}
	if req.Comment != nil && strings.TrimSpace(*req.Comment) != "" {
		comment := *req.Comment
		feedback.Comment = &comment
	}

	if err := h.store.InsertFeedback(c.Request.Context(), feedback); err != nil {
		h.logger.Errorw("insert feedback failed", "userID", feedback.UserID, "error", err)
		respondError(c, http.StatusInternalServerError, codeDatabaseError, "피드백 저장 중 오류가 발생했습니다.")
		return
	}
	respondOK(c, feedback)
}
