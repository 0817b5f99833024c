package tech

import "time"

type Profile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	BusinessName string    `json:"business_name"`
	City         string    `json:"city"`
	Instagram    string    `json:"instagram,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)
