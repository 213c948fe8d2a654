package repository

import (
	"fmt"
	"strings"

	"tugas-go/internal/models"
)

// TaskFilter adalah predikat pencarian task. OwnerID selalu diisi;
// field lain yang kosong tidak ikut membatasi hasil.
// Kategori "all" diperlakukan sama dengan kosong.
type TaskFilter struct {
	OwnerID  int
	Search   string
	Category string
	Status   string
}

// Where menyusun klausa WHERE beserta argumen posisi untuk Postgres.
func (f TaskFilter) Where() (string, []interface{}) {
	conds := []string{"user_id = $1"}
	args := []interface{}{f.OwnerID}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if f.Category != "" && f.Category != "all" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// Matches mengevaluasi predikat yang sama terhadap satu task di memori.
// Dipakai oleh implementasi repository non-SQL dan oleh test.
func (f TaskFilter) Matches(task models.Task) bool {
	if task.UserID != f.OwnerID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(task.Title), needle) &&
			!strings.Contains(strings.ToLower(task.Description), needle) {
			return false
		}
	}
	if f.Category != "" && f.Category != "all" && task.Category != f.Category {
		return false
	}
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	return true
}
