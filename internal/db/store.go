package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 违反唯一约束, 通常是并发请求已经写入了同一天/同一周的记录
	ErrDuplicate = errors.New("duplicate record")
)

// Store 基于 gorm 的持久化实现, 所有查询都以调用方传入的 userID 过滤
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetColorResult 读取用户的个人色彩结果
func (s *Store) GetColorResult(ctx context.Context, userID string) (*ColorResult, error) {
	var result ColorResult
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&result).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

// UpsertColorResult 按 user_id 插入或整行覆盖
func (s *Store) UpsertColorResult(ctx context.Context, result *ColorResult) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(result).Error
	return translate(err)
}

// GetDailyHealingColor 读取某天的疗愈色
func (s *Store) GetDailyHealingColor(ctx context.Context, userID, date string) (*DailyHealingColor, error) {
	var row DailyHealingColor
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// InsertDailyHealingColor 当天已存在时返回 ErrDuplicate
func (s *Store) InsertDailyHealingColor(ctx context.Context, row *DailyHealingColor) error {
	return translate(s.db.WithContext(ctx).Create(row).Error)
}

// GetWeeklyInsight 读取某周的洞察
func (s *Store) GetWeeklyInsight(ctx context.Context, userID, weekStart string) (*WeeklyInsight, error) {
	var row WeeklyInsight
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// InsertWeeklyInsight 当周已存在时返回 ErrDuplicate
func (s *Store) InsertWeeklyInsight(ctx context.Context, row *WeeklyInsight) error {
	return translate(s.db.WithContext(ctx).Create(row).Error)
}

// InsertEmotionEntry 追加一条情绪记录
func (s *Store) InsertEmotionEntry(ctx context.Context, entry *EmotionEntry) error {
	return translate(s.db.WithContext(ctx).Create(entry).Error)
}

// ListEmotionEntries 返回 [from, to) 内的记录, 按时间升序
func (s *Store) ListEmotionEntries(ctx context.Context, userID string, from, to time.Time) ([]EmotionEntry, error) {
	var entries []EmotionEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at asc").
		Find(&entries).Error
	if err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

// RecentEmotionEntries 最近 limit 条记录, 新的在前
func (s *Store) RecentEmotionEntries(ctx context.Context, userID string, limit int) ([]EmotionEntry, error) {
	var entries []EmotionEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

// InsertFeedback 追加一条反馈
func (s *Store) InsertFeedback(ctx context.Context, feedback *Feedback) error {
	return translate(s.db.WithContext(ctx).Create(feedback).Error)
}

// translate 把驱动相关的错误统一成本包的哨兵错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicate(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// SQLite 驱动未翻译时的兜底
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
