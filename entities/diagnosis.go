package entities

import "time"

type Diagnosis struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	SizeBytes   int       `json:"sizeBytes"`
	Disease     string    `json:"disease"`
	Confidence  float64   `json:"confidence"` // percent
	Severity    string    `json:"severity"`   // low|medium|high
	Treatment   string    `json:"treatment"`
	Prevention  string    `json:"prevention"`
	CreatedAt   time.Time `json:"createdAt"`
}
