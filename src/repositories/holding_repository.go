package repositories

import (
	"context"
	"errors"

	"fundtracker/src/models"
	"fundtracker/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	GetAllByUserID(ctx context.Context, userID uint) ([]models.Holding, error)
	GetByUserIDAndCode(ctx context.Context, userID uint, code string) (*models.Holding, error)
	Create(ctx context.Context, h *models.Holding) error
	UpdatePosition(ctx context.Context, userID uint, code string, quantity, averageCost float64) error
	Delete(ctx context.Context, userID uint, code string) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

func (r *holdingRepo) GetAllByUserID(ctx context.Context, userID uint) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, code, average_cost, quantity, created_at, updated_at
		FROM holdings
		WHERE user_id = $1`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.UserID, &h.Code, &h.AverageCost, &h.Quantity, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// GetByUserIDAndCode returns the holding, or (nil, nil) when absent.
func (r *holdingRepo) GetByUserIDAndCode(ctx context.Context, userID uint, code string) (*models.Holding, error) {
	var h models.Holding
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, code, average_cost, quantity, created_at, updated_at
		FROM holdings
		WHERE user_id = $1 AND code = $2`,
		userID, code,
	).Scan(&h.ID, &h.UserID, &h.Code, &h.AverageCost, &h.Quantity, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts a new holding. The store's unique constraint on
// (user_id, code) is what rejects racing opens; its violation surfaces
// as a DuplicateError.
func (r *holdingRepo) Create(ctx context.Context, h *models.Holding) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO holdings (user_id, code, average_cost, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		h.UserID, h.Code, h.AverageCost, h.Quantity,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return utils.NewDuplicateError("position already exists for fund %s", h.Code)
		}
		return err
	}
	return nil
}

func (r *holdingRepo) UpdatePosition(ctx context.Context, userID uint, code string, quantity, averageCost float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE holdings
		SET quantity = $1, average_cost = $2, updated_at = NOW()
		WHERE user_id = $3 AND code = $4`,
		quantity, averageCost, userID, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.NewNotFoundError("no position for fund %s", code)
	}
	return nil
}

func (r *holdingRepo) Delete(ctx context.Context, userID uint, code string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM holdings WHERE user_id = $1 AND code = $2`,
		userID, code)
	return err
}
