package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/server/http/dto"
	"github.com/greencart/storefront/internal/server/http/middleware"
)

// SellerHandler processes seller login and session state.
type SellerHandler struct {
	facade AuthFacade
}

// NewSellerHandler constructs SellerHandler.
func NewSellerHandler(facade AuthFacade) *SellerHandler {
	return &SellerHandler{facade: facade}
}

// Login handles POST /api/seller/login.
func (h *SellerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid request")
		return
	}

	token, err := h.facade.AuthenticateSeller(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			fail(c, "Invalid credentials")
			return
		}
		fail(c, err.Error())
		return
	}

	middleware.SetAuthCookie(c, token)
	succeed(c, "Logged In")
}

// IsAuth handles GET /api/seller/is-auth.
func (h *SellerHandler) IsAuth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true})
}

// Logout handles GET /api/seller/logout.
func (h *SellerHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	succeed(c, "Logged Out")
}
