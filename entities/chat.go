package entities

import "time"

type Panel string

const (
	PanelExpert   Panel = "expert"
	PanelVerified Panel = "verified"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"index" json:"-"`
	Panel     Panel     `gorm:"index" json:"panel"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Source    string    `json:"source,omitempty"`
	Topic     string    `json:"topic,omitempty"` // responder rule that produced the reply
	CreatedAt time.Time `json:"timestamp"`
}
