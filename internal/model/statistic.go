package model

import "time"

// Statistic is a day-bucketed counter record. Date is normalized to midnight
// in the configured timezone and is unique; rows are never deleted. A new day
// starts at zero implicitly because the key changes.
type Statistic struct {
	Date         time.Time `json:"date"`
	TodayVisit   int       `json:"today_visit"`
	TodayComment int       `json:"today_comment"`
	TodayMessage int       `json:"today_message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
