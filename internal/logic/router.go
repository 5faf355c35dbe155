package logic

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healcolor-backend/internal/db"
)

// Store 处理器依赖的持久化接口, 由 db.Store 实现
type Store interface {
	GetColorResult(ctx context.Context, userID string) (*db.ColorResult, error)
	UpsertColorResult(ctx context.Context, result *db.ColorResult) error
	GetDailyHealingColor(ctx context.Context, userID, date string) (*db.DailyHealingColor, error)
	InsertDailyHealingColor(ctx context.Context, row *db.DailyHealingColor) error
	GetWeeklyInsight(ctx context.Context, userID, weekStart string) (*db.WeeklyInsight, error)
	InsertWeeklyInsight(ctx context.Context, row *db.WeeklyInsight) error
	InsertEmotionEntry(ctx context.Context, entry *db.EmotionEntry) error
	ListEmotionEntries(ctx context.Context, userID string, from, to time.Time) ([]db.EmotionEntry, error)
	RecentEmotionEntries(ctx context.Context, userID string, limit int) ([]db.EmotionEntry, error)
	InsertFeedback(ctx context.Context, feedback *db.Feedback) error
}

var _ Store = (*db.Store)(nil)

// Handler 各接口的处理器, 不持有跨请求的可变状态
type Handler struct {
	store    Store
	analyzer *Analyzer
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewHandler(store Store, analyzer *Analyzer, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		store:    store,
		analyzer: analyzer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetupRouter 路由入口
func SetupRouter(h *Handler, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.logger), corsMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api", AuthMiddleware([]byte(jwtSecret)))
	guard := func(code, message string) gin.HandlerFunc {
		return recoverWith(h.logger, code, message)
	}

	api.POST("/color/analyze", guard(codeAnalysisError, "색상 분석 중 오류가 발생했습니다."), h.AnalyzeColorHandler)
	api.GET("/color/result", guard(codeInternalError, "색상 결과 조회 중 오류가 발생했습니다."), h.ColorResultHandler)
	api.GET("/color/daily-healing", guard(codeInternalError, "일일 힐링 컬러 조회 중 오류가 발생했습니다."), h.DailyHealingHandler)

	api.POST("/emotion/analyze", guard(codeAnalysisError, "감정 분석 중 오류가 발생했습니다."), h.AnalyzeEmotionHandler)
	api.GET("/emotion/history", guard(codeInternalError, "감정 기록 조회 중 오류가 발생했습니다."), h.EmotionHistoryHandler)
	api.GET("/emotion/weekly-insight", guard(codeInternalError, "주간 인사이트 조회 중 오류가 발생했습니다."), h.WeeklyInsightHandler)

	api.GET("/recommendations", guard(codeInternalError, "추천 조회 중 오류가 발생했습니다."), h.RecommendationsHandler)
	api.GET("/recommendations/by-color", guard(codeInternalError, "색상별 추천 조회 중 오류가 발생했습니다."), h.RecommendationsByColorHandler)

	api.POST("/feedback", guard(codeInternalError, "피드백 제출 중 오류가 발생했습니다."), h.FeedbackHandler)
	api.GET("/reports/weekly", guard(codeInternalError, "주간 리포트 데이터 조회 중 오류가 발생했습니다."), h.WeeklyReportHandler)

	return r
}
