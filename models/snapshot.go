package models

import "time"

// LeaderboardSnapshot records one periodic leaderboard capture and where its
// CSV report was written (R2 URL or local export path).
type LeaderboardSnapshot struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	TakenAt    time.Time `gorm:"index" json:"takenAt"`
	EntryCount int       `json:"entryCount"`
	TopName    string    `json:"topName"`
	TopPoint   int64     `json:"topPoint"`
	ReportURL  string    `json:"reportUrl,omitempty"`
}
