package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tugas-go/internal/models"
)

const taskColumns = "id, user_id, title, description, category, priority, status, due_date, created_at, updated_at"

// PostgresTaskRepository menyimpan task di Postgres. Setiap query per-id
// selalu menyertakan user_id sehingga task user lain berlaku seperti
// tidak ada (owner scoping).
type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var dueDate sql.NullTime
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Category, &task.Priority, &task.Status, &dueDate,
		&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	return task, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task models.Task) (models.Task, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (user_id, title, description, category, priority, status, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		task.UserID, task.Title, task.Description, task.Category,
		task.Priority, task.Status, task.DueDate,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *PostgresTaskRepository) Find(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	where, args := filter.Where()
	// Urutan hasil mengikuti urutan pembuatan
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY created_at, id", taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id, ownerID int) (models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1 AND user_id = $2", taskColumns),
		id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *PostgresTaskRepository) Update(ctx context.Context, id, ownerID int, patch TaskPatch) (models.Task, error) {
	// Field dengan pointer nil dikirim sebagai NULL sehingga COALESCE
	// mempertahankan nilai lama
	task, err := scanTask(r.db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE tasks
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description),
		     category = COALESCE($3, category),
		     priority = COALESCE($4, priority),
		     status = COALESCE($5, status),
		     due_date = COALESCE($6, due_date),
		     updated_at = NOW()
		 WHERE id = $7 AND user_id = $8
		 RETURNING %s`, taskColumns),
		patch.Title, patch.Description, patch.Category,
		patch.Priority, patch.Status, patch.DueDate, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id, ownerID int) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
