package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/greencart/storefront/internal/server/http/dto"
)

// CartHandler persists the client cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Update handles POST /api/cart/update.
func (h *CartHandler) Update(c *gin.Context) {
	var req dto.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid request")
		return
	}

	if err := h.facade.UpdateCart(c.Request.Context(), CurrentUserID(c), req.CartItems); err != nil {
		fail(c, err.Error())
		return
	}
	succeed(c, "Cart Updated")
}
