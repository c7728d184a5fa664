package entities

import "time"

type APIStatus string

const (
	APIOnline   APIStatus = "online"
	APIOffline  APIStatus = "offline"
	APIDegraded APIStatus = "degraded"
)

type SystemHealthSnapshot struct {
	DatabaseReady    bool      `json:"databaseReady"`
	VectorStoreReady bool      `json:"vectorStoreReady"`
	APIStatus        APIStatus `json:"apiStatus"`
	LastSync         time.Time `json:"lastSync"`
	RecordCount      int       `json:"recordCount"` // 10000-14999
}
