package entities

import "time"

type SoilSample struct {
	Nitrogen    int       `json:"nitrogen"`   // kg/ha, 30-79
	Phosphorus  int       `json:"phosphorus"` // kg/ha, 15-44
	Potassium   int       `json:"potassium"`  // kg/ha, 100-159
	PH          float64   `json:"ph"`         // 5.5-7.5
	Moisture    int       `json:"moisture"`   // %, 40-69
	LastUpdated time.Time `json:"lastUpdated"`
}
