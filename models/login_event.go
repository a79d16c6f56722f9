package models

import "time"

// LoginEvent captures a single successful login. Records are append-only.
type LoginEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	LoginTime time.Time `json:"login_time"`
	IPAddress string    `json:"ip_address"`
}

// TableName returns the name of the database table
// associated with the LoginEvent model.
func (e LoginEvent) TableName() string {
	return "login_history"
}
