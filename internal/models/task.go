package models

import "time"

// Task statuses form a closed set, checked on create and update.
var TaskStatuses = []string{"Pending", "In Progress", "Completed"}

// ValidStatus reports whether s is one of the canonical task statuses.
func ValidStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Task column names match the original schema (lowercase, no underscores)
// so existing databases keep working.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"size:20;not null" json:"status"`
	CreatedBy   string    `gorm:"column:createdby;size:255;default:'Unknown'" json:"createdby"`
	Assignee    string    `gorm:"size:255;default:'Unknown'" json:"assignee"`
	CreatedTime time.Time `gorm:"column:createdtime;autoCreateTime" json:"createdtime"`
}
