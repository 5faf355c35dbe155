package common

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 服务配置, 来自 .env 文件或环境变量
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库
	DBDriver   string `mapstructure:"DB_DRIVER"`
	MySQLDSN   string `mapstructure:"MYSQL_DSN"`
	SQLitePath string `mapstructure:"SQLITE_PATH"`

	// 身份服务签发令牌用的密钥
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// 大模型
	LLMProvider       string        `mapstructure:"LLM_PROVIDER"`
	LLMTimeout        time.Duration `mapstructure:"LLM_TIMEOUT"`
	OpenAIAPIKey      string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `mapstructure:"OPENAI_BASE_URL"`
	OpenAIVisionModel string        `mapstructure:"OPENAI_VISION_MODEL"`
	OpenAITextModel   string        `mapstructure:"OPENAI_TEXT_MODEL"`
	TencentSecretID   string        `mapstructure:"TENCENTCLOUD_SECRETID"`
	TencentSecretKey  string        `mapstructure:"TENCENTCLOUD_SECRETKEY"`
	HunyuanModel      string        `mapstructure:"HUNYUAN_MODEL"`

	// 日志
	LogDir   string `mapstructure:"LOG_DIR"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"ENVIRONMENT":            "development",
	"SERVER_PORT":            "8080",
	"DB_DRIVER":              "mysql",
	"MYSQL_DSN":              "",
	"SQLITE_PATH":            "healcolor.db",
	"JWT_SECRET":             "",
	"LLM_PROVIDER":           ProviderOpenAI,
	"LLM_TIMEOUT":            DefaultLLMTimeout,
	"OPENAI_API_KEY":         "",
	"OPENAI_BASE_URL":        "",
	"OPENAI_VISION_MODEL":    DefaultOpenAIVisionModel,
	"OPENAI_TEXT_MODEL":      DefaultOpenAITextModel,
	"TENCENTCLOUD_SECRETID":  "",
	"TENCENTCLOUD_SECRETKEY": "",
	"HUNYUAN_MODEL":          DefaultHunyuanModel,
	"LOG_DIR":                "",
	"LOG_LEVEL":              "info",
}

// LoadConfig 从 path 目录下的 .env 与环境变量加载配置, 环境变量优先
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	// 只有注册过的 key 才会被 Unmarshal 从环境变量读取
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	return cfg, cfg.Validate()
}

// Validate 检查必填项
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("ENV OF JWT_SECRET IS EMPTY")
	}
	switch c.DBDriver {
	case "mysql":
		if c.MySQLDSN == "" {
			return errors.New("ENV OF MYSQL_DSN IS EMPTY")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("ENV OF SQLITE_PATH IS EMPTY")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderHunyuan:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.LLMTimeout <= 0 {
		return errors.New("LLM_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction 是否生产环境
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
