package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"healcolor-backend/internal/common"
)

// Dialector 根据 DB_DRIVER 选择数据库驱动, 生产用 MySQL, 本地开发可用 SQLite
func Dialector(cfg common.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("ENV OF MYSQL_DSN IS EMPTY")
		}
		return mysql.Open(cfg.MySQLDSN), nil
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("ENV OF SQLITE_PATH IS EMPTY")
		}
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
