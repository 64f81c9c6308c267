package usecase

import "time"

// kst is the canonical timezone for every due-date comparison, default,
// and formatted string the core produces. The original product mixed
// UTC and +09:00 representations; here UTC+9 is used throughout.
var kst = time.FixedZone("KST", 9*60*60)

// dueDateLayout renders a fixed-offset ISO-8601 timestamp,
// e.g. "2026-08-29T09:00:00+09:00".
const dueDateLayout = "2006-01-02T15:04:05-07:00"

func formatKST(t time.Time) string {
	return t.In(kst).Format(dueDateLayout)
}

// tomorrowMorning returns tomorrow at 09:00 KST relative to now.
func tomorrowMorning(now time.Time) time.Time {
	d := now.In(kst).AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, kst)
}

// defaultDueDate derives a due date from priority when the model emits
// none: high +1 day, medium +3 days, low +7 days, all at 09:00 KST.
func defaultDueDate(priority string, now time.Time) time.Time {
	days := 3
	switch priority {
	case "high":
		days = 1
	case "low":
		days = 7
	}
	d := now.In(kst).AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, kst)
}

var koreanWeekdays = [...]string{
	"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일",
}

func weekdayKorean(t time.Time) string {
	return koreanWeekdays[t.In(kst).Weekday()]
}
