package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog entry owned by exactly one shop.
type Product struct {
	ID        uuid.UUID
	ShopID    string
	Title     string
	ImageURL  string
	Category  *string // nil when the shop did not classify the product
	CreatedAt time.Time
}

// InitMeta initializes the server-owned metadata: a fresh ID and the creation time.
func (p *Product) InitMeta() {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
}
