package entities

import "time"

type Scheme struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Benefit     string `json:"benefit"`
	Deadline    string `json:"deadline,omitempty"` // YYYY-MM-DD
	ApplyURL    string `json:"applyUrl"`
	Category    string `json:"category" gorm:"index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
