package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lookai-app/backend/internal/model"
	"github.com/lookai-app/backend/internal/repository"
)

// ProductRepository implements the Repository interface for Product entities.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *sql.DB) repository.Repository {
	return &ProductRepository{db: db}
}

// Create inserts a new product into the database. Server-owned fields
// (id, created_at) are assigned here unless already set; a nil category is
// stored as NULL.
func (r *ProductRepository) Create(ctx context.Context, resource repository.Resource) (repository.Resource, error) {
	product, ok := resource.(*model.Product)
	if !ok {
		return nil, repository.ErrInvalidType
	}

	if product.ShopID == "" {
		return nil, &repository.ValidationError{Field: "shop_id"}
	}
	if product.Title == "" {
		return nil, &repository.ValidationError{Field: "title"}
	}
	if product.ImageURL == "" {
		return nil, &repository.ValidationError{Field: "image_url"}
	}

	// Only initialize metadata if not already set
	if product.ID == uuid.Nil {
		product.InitMeta()
	}

	query := `INSERT INTO products (id, shop_id, title, image_url, category, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, &repository.StorageError{Err: fmt.Errorf("failed to prepare insert statement: %w", err)}
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, product.ID, product.ShopID, product.Title, product.ImageURL, product.Category, product.CreatedAt)
	if err != nil {
		return nil, &repository.StorageError{Err: fmt.Errorf("failed to insert product: %w", err)}
	}

	return product, nil
}

// List retrieves the products of a single shop, newest first. A shop with no
// products yields an empty slice, not an error.
func (r *ProductRepository) List(ctx context.Context, query repository.Query) ([]repository.Resource, error) {
	shopID := query.Values[repository.ShopIDField]
	if shopID == "" {
		return nil, &repository.ValidationError{Field: "shop_id"}
	}

	stmtQuery := `SELECT id, shop_id, title, image_url, category, created_at FROM products
	              WHERE shop_id = $1 ORDER BY created_at DESC, id DESC`

	stmt, err := r.db.PrepareContext(ctx, stmtQuery)
	if err != nil {
		return nil, &repository.StorageError{Err: fmt.Errorf("failed to prepare select statement: %w", err)}
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, shopID)
	if err != nil {
		return nil, &repository.StorageError{Err: fmt.Errorf("failed to query products: %w", err)}
	}
	defer rows.Close()

	products := make([]repository.Resource, 0)
	for rows.Next() {
		var product model.Product
		var category sql.NullString
		err := rows.Scan(&product.ID, &product.ShopID, &product.Title, &product.ImageURL, &category, &product.CreatedAt)
		if err != nil {
			return nil, &repository.StorageError{Err: fmt.Errorf("failed to scan product: %w", err)}
		}
		if category.Valid {
			product.Category = &category.String
		}
		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, &repository.StorageError{Err: fmt.Errorf("error iterating rows: %w", err)}
	}

	return products, nil
}
