package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lookai-app/backend/internal/model"
	"github.com/lookai-app/backend/internal/service"
)

// ProductController handles HTTP requests for catalog operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	ShopID   string `json:"shop_id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID        string  `json:"id"`
	ShopID    string  `json:"shop_id"`
	Title     string  `json:"title"`
	ImageURL  string  `json:"image_url"`
	Category  *string `json:"category"`
	CreatedAt string  `json:"created_at"`
}

// CreateProduct handles the HTTP POST request for creating a new catalog entry.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.ShopID == "" || req.Title == "" || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	createdProduct, err := pc.productService.CreateProduct(c.Request.Context(), req.ShopID, req.Title, req.ImageURL, req.Category)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"product": toProductResponse(createdProduct),
	})
}

// ListProducts handles the HTTP GET request for listing a shop's catalog.
// The success shape is a bare array, not an envelope.
func (pc *ProductController) ListProducts(c *gin.Context) {
	shopID := c.Query("shop_id")
	if shopID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop_id is required"})
		return
	}

	products, err := pc.productService.ListProducts(c.Request.Context(), shopID)
	if err != nil {
		writeError(c, err)
		return
	}

	productResponses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, toProductResponse(product))
	}

	c.JSON(http.StatusOK, productResponses)
}

func toProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		ShopID:    product.ShopID,
		Title:     product.Title,
		ImageURL:  product.ImageURL,
		Category:  product.Category,
		CreatedAt: product.CreatedAt.Format(time.RFC3339),
	}
}
