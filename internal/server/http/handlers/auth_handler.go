package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/server/http/dto"
	"github.com/greencart/storefront/internal/server/http/middleware"
)

// AuthHandler processes customer registration, login and session state.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid request")
		return
	}

	usr, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			fail(c, "Missing details")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			fail(c, "User already exists")
		default:
			fail(c, err.Error())
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: toUserResponse(usr)})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid request")
		return
	}

	usr, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			fail(c, "Invalid email or password")
			return
		}
		fail(c, err.Error())
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: toUserResponse(usr)})
}

// IsAuth handles GET /api/user/is-auth.
func (h *AuthHandler) IsAuth(c *gin.Context) {
	usr, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		fail(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: toUserResponse(usr)})
}

// Logout handles GET /api/user/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	succeed(c, "Logged Out")
}

func toUserResponse(usr *model.User) dto.UserResponse {
	cart := usr.CartItems
	if cart == nil {
		cart = map[string]int64{}
	}
	return dto.UserResponse{
		ID:        usr.ID,
		Name:      usr.Name,
		Email:     usr.Email,
		CartItems: cart,
	}
}
