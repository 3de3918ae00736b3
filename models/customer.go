package models

import "time"

type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Address     string     `json:"address,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	TotalVisits int        `json:"totalVisits"`
	TotalSpent  float64    `json:"totalSpent"`
	LastVisit   *time.Time `json:"lastVisit,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
