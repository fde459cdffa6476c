package repository

import (
	"context"
	"errors"

	"taskvault/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTaskNotFound covers both a missing row and a row owned by someone
// else; callers cannot tell the two apart.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if t.Priority == "" {
		t.Priority = domain.PriorityLow
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (description, priority, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, completed, created_at, updated_at`,
		t.Description, t.Priority, t.UserID,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
}

// ListByUser returns the caller's tasks in ascending id order.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, description, priority, completed, completed_at, created_at, updated_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY id ASC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Priority, &t.Completed, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64, userID string) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, description, priority, completed, completed_at, created_at, updated_at
		 FROM tasks
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Priority, &t.Completed, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) UpdateDescription(ctx context.Context, id int64, userID, description string) error {
	res, err := r.db.Exec(ctx,
		`UPDATE tasks
		 SET description = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		description, id, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes the task if the caller owns it. Matching zero rows is
// not an error, delete is idempotent.
func (r *TaskRepository) Delete(ctx context.Context, id int64, userID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return err
}

func (r *TaskRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE user_id = $1`,
		userID,
	)
	return err
}

// Complete marks the task done and returns the updated row. completed_at
// is stamped on the first transition only; completing an already-completed
// task keeps the original timestamp.
func (r *TaskRepository) Complete(ctx context.Context, id int64, userID string) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET completed = TRUE, completed_at = COALESCE(completed_at, NOW()), updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, description, priority, completed, completed_at, created_at, updated_at`,
		id, userID,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Priority, &t.Completed, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) SetPriority(ctx context.Context, id int64, userID, priority string) error {
	res, err := r.db.Exec(ctx,
		`UPDATE tasks
		 SET priority = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		priority, id, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
