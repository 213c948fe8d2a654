package repository

import (
	"context"
	"errors"
	"time"

	"tugas-go/internal/models"
)

// Error yang dikembalikan repository, dipetakan ke status code di handler.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserPatch berisi field profil yang boleh diubah.
// Pointer nil berarti field tidak diubah.
type UserPatch struct {
	Name         *string
	PasswordHash *string
}

// TaskPatch berisi field task yang boleh diubah.
// Pointer nil berarti field tidak diubah.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Update(ctx context.Context, id int, patch UserPatch) (models.User, error)
}

// TaskRepository adalah akses data task. Semua operasi per-id memakai
// pasangan id+owner sehingga task milik user lain tidak pernah terlihat.
type TaskRepository interface {
	Create(ctx context.Context, task models.Task) (models.Task, error)
	Find(ctx context.Context, filter TaskFilter) ([]models.Task, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Task, error)
	Update(ctx context.Context, id, ownerID int, patch TaskPatch) (models.Task, error)
	Delete(ctx context.Context, id, ownerID int) error
}
