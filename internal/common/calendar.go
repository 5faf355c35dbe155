package common

import "time"

// DateLayout 日期统一格式 yyyy-mm-dd
const DateLayout = "2006-01-02"

// StartOfDay 返回 t 所在 UTC 日的零点
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey UTC 日期字符串
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DayOfYear 一年中的第几天, 1 月 1 日为 1
func DayOfYear(t time.Time) int {
	return t.UTC().YearDay()
}

// Week 以周一为起点的 UTC 自然周, End 为下周一零点(不含)
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekOf 返回 t 所在的周
func WeekOf(t time.Time) Week {
	day := StartOfDay(t)
	// Sunday=0 时回退 6 天
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Week{Start: start, End: start.AddDate(0, 0, 7)}
}

// Previous 上一周
func (w Week) Previous() Week {
	return Week{Start: w.Start.AddDate(0, 0, -7), End: w.Start}
}

// Contains 是否落在 [Start, End)
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// StartKey 周一的日期字符串
func (w Week) StartKey() string {
	return DateKey(w.Start)
}

// EndKey 下周一的日期字符串
func (w Week) EndKey() string {
	return DateKey(w.End)
}
