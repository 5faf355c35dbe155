package common

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 设置测试环境变量
func setupTestEnv() {
	os.Setenv("JWT_SECRET", "test_secret")
	os.Setenv("DB_DRIVER", "sqlite")
	os.Setenv("SQLITE_PATH", "file::memory:")
	os.Setenv("OPENAI_API_KEY", "test_key")
	os.Setenv("LLM_TIMEOUT", "5s")
}

// 清理测试环境变量
func cleanupTestEnv() {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("DB_DRIVER")
	os.Unsetenv("SQLITE_PATH")
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("LLM_TIMEOUT")
}

// TestMain 在所有测试开始前运行
func TestMain(m *testing.M) {
	setupTestEnv()
	code := m.Run()
	cleanupTestEnv()
	os.Exit(code)
}

// 测试从环境变量加载配置
func TestLoadConfigFromEnv(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "test_secret", cfg.JWTSecret)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:", cfg.SQLitePath)
	assert.Equal(t, "test_key", cfg.OpenAIAPIKey)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
}

// 测试默认值
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, DefaultOpenAIVisionModel, cfg.OpenAIVisionModel)
	assert.Equal(t, DefaultOpenAITextModel, cfg.OpenAITextModel)
	assert.Equal(t, DefaultHunyuanModel, cfg.HunyuanModel)
	assert.False(t, cfg.IsProduction())
}

// 测试 .env 文件, 环境变量优先
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nJWT_SECRET=file_secret\nLLM_PROVIDER=hunyuan\n"
	require.NoError(t, os.WriteFile(dir+"/.env", []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "test_secret", cfg.JWTSecret)
	assert.Equal(t, ProviderHunyuan, cfg.LLMProvider)
}

// 测试必填项校验
func TestConfigValidate(t *testing.T) {
	valid := Config{
		JWTSecret:   "s",
		DBDriver:    "mysql",
		MySQLDSN:    "dsn",
		LLMProvider: ProviderOpenAI,
		LLMTimeout:  time.Second,
	}
	assert.NoError(t, valid.Validate())

	noSecret := valid
	noSecret.JWTSecret = ""
	assert.Error(t, noSecret.Validate())

	noDSN := valid
	noDSN.MySQLDSN = ""
	assert.Error(t, noDSN.Validate())

	badDriver := valid
	badDriver.DBDriver = "postgres"
	assert.Error(t, badDriver.Validate())

	badProvider := valid
	badProvider.LLMProvider = "other"
	assert.Error(t, badProvider.Validate())

	noTimeout := valid
	noTimeout.LLMTimeout = 0
	assert.Error(t, noTimeout.Validate())
}

// 测试日志初始化
func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Config{LogLevel: "debug", LogDir: t.TempDir()})
	require.NoError(t, err)
	logger.Infow("test", "key", "value")

	_, err = NewLogger(Config{LogLevel: "loud"})
	assert.Error(t, err)
}
