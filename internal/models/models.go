package models

import "time"

// Status task yang valid.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Prioritas task yang valid.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Kategori task yang valid.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryShopping = "shopping"
	CategoryHealth   = "health"
	CategoryOther    = "other"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Task struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidStatus melaporkan apakah status termasuk nilai yang diizinkan.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// ValidPriority melaporkan apakah prioritas termasuk nilai yang diizinkan.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ValidCategory melaporkan apakah kategori termasuk nilai yang diizinkan.
func ValidCategory(category string) bool {
	switch category {
	case CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryOther:
		return true
	default:
		return false
	}
}
