package service

import (
	"context"
	"log/slog"

	"github.com/lookai-app/backend/internal/metrics"
	"github.com/lookai-app/backend/internal/model"
	"github.com/lookai-app/backend/internal/repository"
	"github.com/lookai-app/backend/internal/sqs"
)

// Publisher sends catalog event messages to the notification queue.
type Publisher interface {
	PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error
}

type ProductService struct {
	repo      repository.Repository
	publisher Publisher
}

func NewProductService(repo repository.Repository, publisher Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct persists a new catalog entry for the given shop. An empty
// category is normalized to absent so it is stored as NULL, never as "".
func (ps *ProductService) CreateProduct(ctx context.Context, shopID, title, imageURL, category string) (*model.Product, error) {
	product := &model.Product{
		ShopID:   shopID,
		Title:    title,
		ImageURL: imageURL,
	}
	if category != "" {
		product.Category = &category
	}

	created, err := ps.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	createdProduct, ok := created.(*model.Product)
	if !ok {
		return nil, repository.ErrInvalidType
	}

	metrics.ProductsCreated.Inc()

	// Notify downstream consumers, fire-and-forget
	if ps.publisher != nil {
		msg := sqs.ProductMessage{
			Action:    "created",
			ProductID: createdProduct.ID.String(),
			ShopID:    createdProduct.ShopID,
			Title:     createdProduct.Title,
			ImageURL:  createdProduct.ImageURL,
		}
		if err := ps.publisher.PublishProductMessage(ctx, msg); err != nil {
			// Log error but don't fail the request
			slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", "created"), slog.String("product_id", createdProduct.ID.String()))
		}
	}

	return createdProduct, nil
}

// ListProducts returns the given shop's catalog, newest first.
func (ps *ProductService) ListProducts(ctx context.Context, shopID string) ([]*model.Product, error) {
	query := repository.NewQuery().With(repository.ShopIDField, shopID)

	resources, err := ps.repo.List(ctx, *query)
	if err != nil {
		return nil, err
	}

	products := make([]*model.Product, 0, len(resources))
	for _, resource := range resources {
		product, ok := resource.(*model.Product)
		if !ok {
			return nil, repository.ErrInvalidType
		}
		products = append(products, product)
	}

	return products, nil
}
