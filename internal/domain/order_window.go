package domain

import "time"

type orderWindow struct {
	startHour, startMinute int
	endHour, endMinute     int
}

// Weekday windows are checked to the minute, boundaries inclusive.
var weekdayOrderWindows = []orderWindow{
	{6, 30, 8, 30},
	{10, 0, 11, 0},
	{15, 30, 16, 30},
}

// Weekend brunch and dinner windows. Note: these are matched on the hour
// only (a 07:00 order is admitted even though brunch nominally starts at
// 07:30, and 11:00 is already closed). The weekday windows are minute
// precise; the asymmetry is long-standing observable policy, so it is kept
// rather than unified.
var (
	brunchWindow = orderWindow{7, 30, 11, 0}
	dinnerWindow = orderWindow{14, 30, 15, 30}
)

// IsWithinOrderWindow reports whether new-order creation is admitted at the
// given instant. Pure; enforcement is the caller's decision.
func IsWithinOrderWindow(now time.Time) bool {
	minuteOfDay := now.Hour()*60 + now.Minute()

	switch now.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		for _, w := range weekdayOrderWindows {
			start := w.startHour*60 + w.startMinute
			end := w.endHour*60 + w.endMinute
			if minuteOfDay >= start && minuteOfDay <= end {
				return true
			}
		}
		return false
	case time.Saturday, time.Sunday:
		hour := now.Hour()
		isBrunch := hour >= brunchWindow.startHour && hour < brunchWindow.endHour
		isDinner := hour >= dinnerWindow.startHour && hour < dinnerWindow.endHour
		return isBrunch || isDinner
	default:
		return false
	}
}
