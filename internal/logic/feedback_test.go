package logic

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healcolor-backend/internal/db"
)

func TestFeedbackRatingBounds(t *testing.T) {
	env := newTestEnv(t, Models{})

	cases := []struct {
		rating int
		status int
	}{
		{0, http.StatusBadRequest},
		{1, http.StatusOK},
		{5, http.StatusOK},
		{6, http.StatusBadRequest},
		{-1, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.rating), func(t *testing.T) {
			w := env.do(t, "POST", "/api/feedback", "u1", map[string]any{
				"rating": tc.rating, "targetType": db.TargetHealingColor, "targetId": "2025-03-12",
			})
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			if tc.status == http.StatusBadRequest {
				assert.Equal(t, feedbackFields["Rating"], decodeEnvelope(t, w).Error.Message)
			}
		})
	}
}

func TestFeedbackSaved(t *testing.T) {
	env := newTestEnv(t, Models{})

	w := env.do(t, "POST", "/api/feedback", "u1", map[string]any{
		"rating": 5, "targetType": "color_result", "targetId": " X ", "comment": "좋아요",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeData[db.Feedback](t, w)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, db.TargetColorResult, resp.TargetType)
	assert.Equal(t, "X", resp.TargetID)
	require.NotNil(t, resp.Comment)
	assert.Equal(t, "좋아요", *resp.Comment)

	var stored db.Feedback
	require.NoError(t, env.conn.First(&stored, "id = ?", resp.ID).Error)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, 5, stored.Rating)
	assert.Equal(t, "X", stored.TargetID)
	require.NotNil(t, stored.Comment)
	assert.Equal(t, "좋아요", *stored.Comment)

	// 空白评论存为 null
	w = env.do(t, "POST", "/api/feedback", "u1", map[string]any{
		"rating": 3, "targetType": "recommendation", "targetId": "f4", "comment": "  ",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeData[db.Feedback](t, w).Comment)
}

func TestFeedbackValidation(t *testing.T) {
	env := newTestEnv(t, Models{})

	cases := []struct {
		name string
		body any
		msg  string
	}{
		{"missing rating", map[string]any{"targetType": "color_result", "targetId": "x"}, feedbackFields["Rating"]},
		{"bad target type", map[string]any{"rating": 3, "targetType": "profile", "targetId": "x"}, feedbackFields["TargetType"]},
		{"missing target id", map[string]any{"rating": 3, "targetType": "emotion_map"}, feedbackFields["TargetID"]},
		{"blank target id", map[string]any{"rating": 3, "targetType": "emotion_map", "targetId": "   "}, feedbackFields["TargetID"]},
		{"rating as string", map[string]any{"rating": "5", "targetType": "color_result", "targetId": "x"}, msgMalformedBody},
		{"fractional rating", map[string]any{"rating": 2.5, "targetType": "color_result", "targetId": "x"}, msgMalformedBody},
		{"not json", "rating=5", msgMalformedBody},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, "POST", "/api/feedback", "u1", tc.body)
			assertError(t, w, http.StatusBadRequest, codeBadRequest)
			assert.Equal(t, tc.msg, decodeEnvelope(t, w).Error.Message)
		})
	}
}

func TestFeedbackInsertFailure(t *testing.T) {
	env := newTestEnv(t, Models{})
	env.handler.store = &failingStore{Store: env.store, feedbackErr: errors.New("disk full")}

	w := env.do(t, "POST", "/api/feedback", "u1", map[string]any{
		"rating": 4, "targetType": "healing_color", "targetId": "x",
	})
	assertError(t, w, http.StatusInternalServerError, codeDatabaseError)
}
