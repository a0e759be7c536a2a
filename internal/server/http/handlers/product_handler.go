package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/server/http/dto"
)

// ProductHandler manages the catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/product/list.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		fail(c, err.Error())
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, dto.ProductListEnvelope{Success: true, Products: response})
}

// Get handles GET /api/product/id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, "Invalid product id")
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			fail(c, "Product not found")
			return
		}
		fail(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ProductEnvelope{Success: true, Product: toProductResponse(*product)})
}

// Add handles POST /api/product/add.
func (h *ProductHandler) Add(c *gin.Context) {
	var req dto.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid request")
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	product, err := h.facade.AddProduct(c.Request.Context(), &model.Product{
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		OfferPrice: req.OfferPrice,
		Images:     req.Images,
		InStock:    inStock,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidProduct) {
			fail(c, "Invalid product details")
			return
		}
		fail(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ProductEnvelope{Success: true, Product: toProductResponse(*product)})
}

// SetStock handles POST /api/product/stock.
func (h *ProductHandler) SetStock(c *gin.Context) {
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		fail(c, "Invalid request")
		return
	}

	if err := h.facade.SetProductStock(c.Request.Context(), req.ID, req.InStock); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			fail(c, "Product not found")
			return
		}
		fail(c, err.Error())
		return
	}
	succeed(c, "Stock Updated")
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Category:   product.Category,
		Price:      product.Price,
		OfferPrice: product.OfferPrice,
		Images:     product.Images,
		InStock:    product.InStock,
		CreatedAt:  product.CreatedAt,
	}
}
