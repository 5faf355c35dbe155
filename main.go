package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"healcolor-backend/internal/common"
	"healcolor-backend/internal/db"
	"healcolor-backend/internal/logic"
)

func main() {
	// 加载配置
	conf, err := common.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 初始化日志
	logger, err := common.NewLogger(conf)
	if err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	dialector, err := db.Dialector(conf)
	if err != nil {
		logger.Fatalw("invalid database config", "error", err)
	}
	conn, err := db.Open(dialector)
	if err != nil {
		logger.Fatalw("open database failed", "driver", conf.DBDriver, "error", err)
	}

	// 初始化大模型, 没有密钥时全部走规则引擎
	models, err := logic.NewModels(conf, logger)
	if err != nil {
		logger.Fatalw("init llm failed", "provider", conf.LLMProvider, "error", err)
	}
	analyzer := logic.NewAnalyzer(models, conf.LLMTimeout, logger)

	if conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := logic.NewHandler(db.NewStore(conn), analyzer, logger)
	router := logic.SetupRouter(handler, conf.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Infow("server listening", "port", conf.ServerPort, "provider", conf.LLMProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("server shutdown failed", "error", err)
	}

	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
