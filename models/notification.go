package models

import "time"

type NotificationType string

const (
	NotificationAnswer  NotificationType = "answer"
	NotificationComment NotificationType = "comment"
	NotificationVote    NotificationType = "vote"
	NotificationMention NotificationType = "mention"
	NotificationSystem  NotificationType = "system"
)

type Notification struct {
	ID        uint             `json:"id" gorm:"primarykey"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(16);not null"`
	Title     string           `json:"title" gorm:"not null"`
	Message   string           `json:"message,omitempty"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read" gorm:"not null;default:false;index"`
	CreatedAt time.Time        `json:"created_at"`
}
