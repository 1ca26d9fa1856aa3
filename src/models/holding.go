package models

import "time"

// Holding is one user's position in one fund: units held and the
// weighted-average purchase price per unit. A holding with quantity <= 0
// is never persisted; it is deleted instead.
type Holding struct {
	ID          int       `db:"id"`
	UserID      uint      `db:"user_id"`
	Code        string    `db:"code"`
	AverageCost float64   `db:"average_cost"`
	Quantity    float64   `db:"quantity"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
