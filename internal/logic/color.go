package logic

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
)

type debugInfo struct {
	Source string `json:"source"`
}

type colorResultResponse struct {
	Season            string         `json:"season"`
	Tone              string         `json:"tone"`
	Description       string         `json:"description"`
	RecommendedColors []db.ColorItem `json:"recommendedColors"`
	AnalyzedAt        time.Time      `json:"analyzedAt"`
	Confidence        float64        `json:"confidence"`
	Subtype           string         `json:"subtype"`
	FacialExpression  *string        `json:"facialExpression"`
	Debug             *debugInfo     `json:"_debug,omitempty"`
}

func newColorResultResponse(row *db.ColorResult) colorResultResponse {
	return colorResultResponse{
		Season:            row.Season,
		Tone:              row.Tone,
		Description:       row.Description,
		RecommendedColors: row.RecommendedColors,
		AnalyzedAt:        row.AnalyzedAt,
		Confidence:        row.Confidence,
		Subtype:           row.Subtype,
		FacialExpression:  row.FacialExpression,
	}
}

// subtypeLabel 存储用的展示标签, 例如 Summer_cool
func subtypeLabel(season, subtype string) string {
	label := season + "_" + subtype
	return strings.ToUpper(label[:1]) + label[1:]
}

// colorPaletteKey 先找 season_subtype, 没有再用 season_tone
func colorPaletteKey(a ColorAnalysis) string {
	key := a.Season + "_" + a.Subtype
	if _, ok := colorPalettes[key]; ok {
		return key
	}
	return a.Season + "_" + a.Tone
}

// AnalyzeColorHandler 个人色彩诊断, 结果按用户覆盖保存
func (h *Handler) AnalyzeColorHandler(c *gin.Context) {
	var req colorAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err, colorMessages))
		return
	}
	image := stripDataURL(req.Image)
	if image == "" {
		badRequest(c, colorMessages["Image"])
		return
	}

	ctx := c.Request.Context()
	userID := currentUser(c)
	analysis := h.analyzer.AnalyzeColor(ctx, image)

	row := &db.ColorResult{
		UserID:            userID,
		Season:            analysis.Season,
		Tone:              analysis.Tone,
		Subtype:           subtypeLabel(analysis.Season, analysis.Subtype),
		Confidence:        analysis.Confidence,
		Description:       seasonDescriptions[analysis.Season],
		RecommendedColors: paletteFor(colorPaletteKey(analysis)),
		AnalyzedAt:        h.now(),
	}
	if analysis.FacialExpression != "" {
		expression := analysis.FacialExpression
		row.FacialExpression = &expression
	}

	if err := h.store.UpsertColorResult(ctx, row); err != nil {
		h.logger.Errorw("upsert color result failed", "userID", userID, "error", err)
	}

	resp := newColorResultResponse(row)
	resp.Debug = &debugInfo{Source: analysis.Source}
	respondOK(c, resp)
}

// ColorResultHandler 读取已保存的诊断结果
func (h *Handler) ColorResultHandler(c *gin.Context) {
	row, err := h.store.GetColorResult(c.Request.Context(), currentUser(c))
	if errors.Is(err, db.ErrNotFound) {
		respondError(c, http.StatusNotFound, codeNotFound, "색상 분석 결과가 없습니다. 먼저 분석을 진행해주세요.")
		return
	}
	if err != nil {
		h.logger.Errorw("get color result failed", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "색상 결과 조회 중 오류가 발생했습니다.")
		return
	}
	respondOK(c, newColorResultResponse(row))
}

type dailyHealingResponse struct {
	Color            db.ColorItem `json:"color"`
	CalmEffect       string       `json:"calmEffect"`
	PersonalFit      string       `json:"personalFit"`
	DailyAffirmation string       `json:"dailyAffirmation"`
	Date             string       `json:"date"`
}

func newDailyHealingResponse(row *db.DailyHealingColor) dailyHealingResponse {
	return dailyHealingResponse{
		Color:            db.ColorItem{Name: row.ColorName, Hex: row.ColorHex, Description: row.ColorDescription},
		CalmEffect:       row.CalmEffect,
		PersonalFit:      row.PersonalFit,
		DailyAffirmation: row.DailyAffirmation,
		Date:             row.Date,
	}
}

// DailyHealingHandler 今日疗愈色, 同一 UTC 日内只生成一次
func (h *Handler) DailyHealingHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUser(c)
	now := h.now()
	today := common.DateKey(now)

	cached, err := h.store.GetDailyHealingColor(ctx, userID, today)
	if err == nil {
		respondOK(c, newDailyHealingResponse(cached))
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		h.logger.Warnw("read daily healing color failed", "userID", userID, "error", err)
	}

	season, tone, paletteKey := defaultSeason, defaultTone, defaultPaletteKey
	if personal, err := h.store.GetColorResult(ctx, userID); err == nil {
		season, tone = personal.Season, personal.Tone
		paletteKey = season + "_" + tone
	} else if !errors.Is(err, db.ErrNotFound) {
		h.logger.Warnw("read color result failed", "userID", userID, "error", err)
	}

	colors := paletteFor(paletteKey)
	color := colors[common.DayOfYear(now)%len(colors)]
	content, _ := h.analyzer.HealingContent(ctx, color, season, tone)

	row := &db.DailyHealingColor{
		UserID:           userID,
		Date:             today,
		ColorName:        color.Name,
		ColorHex:         color.Hex,
		ColorDescription: color.Description,
		CalmEffect:       content.CalmEffect,
		PersonalFit:      content.PersonalFit,
		DailyAffirmation: content.DailyAffirmation,
	}
	if err := h.store.InsertDailyHealingColor(ctx, row); err != nil {
		row = h.resolveDailyConflict(c, row, err)
	}
	respondOK(c, newDailyHealingResponse(row))
}

// resolveDailyConflict 并发请求先写入时返回已存在的那一行
func (h *Handler) resolveDailyConflict(c *gin.Context, row *db.DailyHealingColor, insertErr error) *db.DailyHealingColor {
	if !errors.Is(insertErr, db.ErrDuplicate) {
		h.logger.Errorw("insert daily healing color failed", "userID", row.UserID, "error", insertErr)
		return row
	}
	winner, err := h.store.GetDailyHealingColor(c.Request.Context(), row.UserID, row.Date)
	if err != nil {
		h.logger.Errorw("re-read daily healing color failed", "userID", row.UserID, "error", err)
		return row
	}
	return winner
}
