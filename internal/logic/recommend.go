package logic

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"healcolor-backend/internal/db"
)

const recentEmotionWindow = 5

var defaultPrimaryColor = db.ColorItem{Name: "라벤더", Hex: "#E6E6FA", Description: "차분한 라벤더"}

type recommendDebug struct {
	Source  string `json:"source"`
	Season  string `json:"season"`
	Tone    string `json:"tone"`
	Subtype string `json:"subtype"`
}

type recommendationResponse struct {
	Color      db.ColorItem         `json:"color"`
	Items      []RecommendationItem `json:"items"`
	Foods      []RecommendationItem `json:"foods"`
	Activities []RecommendationItem `json:"activities"`
	Debug      *recommendDebug      `json:"_debug,omitempty"`
}

// RecommendationsHandler 按个人色彩与最近情绪生成推荐
func (h *Handler) RecommendationsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUser(c)

	in := RecommendInput{
		Season:  defaultSeason,
		Tone:    defaultTone,
		Subtype: subtypeLabel(defaultSeason, defaultSubtype),
		Primary: defaultPrimaryColor,
	}
	if personal, err := h.store.GetColorResult(ctx, userID); err == nil {
		in.Season, in.Tone, in.Subtype = personal.Season, personal.Tone, personal.Subtype
		if len(personal.RecommendedColors) > 0 {
			in.Primary = personal.RecommendedColors[0]
		}
	} else if !errors.Is(err, db.ErrNotFound) {
		h.logger.Warnw("read color result failed", "userID", userID, "error", err)
	}

	recent, err := h.store.RecentEmotionEntries(ctx, userID, recentEmotionWindow)
	if err != nil {
		h.logger.Warnw("read recent emotions failed", "userID", userID, "error", err)
		recent = nil
	}
	in.Summary = emotionSummary(recent)

	recs := h.analyzer.Recommend(ctx, in)
	respondOK(c, recommendationResponse{
		Color:      in.Primary,
		Items:      recs.Fashion,
		Foods:      recs.Food,
		Activities: recs.Activities,
		Debug: &recommendDebug{
			Source:  recs.Source,
			Season:  in.Season,
			Tone:    in.Tone,
			Subtype: in.Subtype,
		},
	})
}

// RecommendationsByColorHandler 某个疗愈色对应的服饰与饮食
func (h *Handler) RecommendationsByColorHandler(c *gin.Context) {
	raw := c.Query("color")
	if strings.TrimSpace(raw) == "" {
		badRequest(c, "색상 코드가 필요합니다.")
		return
	}
	hex, ok := normalizeHex(raw)
	if !ok {
		badRequest(c, "올바른 색상 코드가 아닙니다.")
		return
	}

	var fashion, food []RecommendationItem
	if curated, ok := healingColorItems[hex]; ok {
		fashion = append(fashion, curated.fashion...)
		food = append(food, curated.food...)
	} else {
		season := defaultSeason
		personal, err := h.store.GetColorResult(c.Request.Context(), currentUser(c))
		switch {
		case err == nil:
			season = personal.Season
		case !errors.Is(err, db.ErrNotFound):
			h.logger.Warnw("read color result failed", "error", err)
		}
		fashion = seasonTable(fashionBySeason, season)[:2]
		food = seasonTable(foodBySeason, season)[:2]
	}

	respondOK(c, recommendationResponse{
		Color:      db.ColorItem{Name: colorNameFromHex(hex), Hex: hex},
		Items:      fashion,
		Foods:      food,
		Activities: []RecommendationItem{},
	})
}
