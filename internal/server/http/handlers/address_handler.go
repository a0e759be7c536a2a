package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/server/http/dto"
)

// AddressHandler manages the user's address book.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// Add handles POST /api/address/add.
func (h *AddressHandler) Add(c *gin.Context) {
	var req dto.AddressPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid request")
		return
	}

	_, err := h.facade.AddAddress(c.Request.Context(), &model.Address{
		UserID:    CurrentUserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zipcode:   req.Zipcode,
		Country:   req.Country,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidAddress) {
			fail(c, "Missing address details")
			return
		}
		fail(c, err.Error())
		return
	}
	succeed(c, "Address added successfully")
}

// List handles GET /api/address/get.
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		fail(c, err.Error())
		return
	}

	response := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		response = append(response, toAddressResponse(a))
	}
	c.JSON(http.StatusOK, dto.AddressListEnvelope{Success: true, Addresses: response})
}

func toAddressResponse(address model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:        address.ID,
		FirstName: address.FirstName,
		LastName:  address.LastName,
		Email:     address.Email,
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Zipcode:   address.Zipcode,
		Country:   address.Country,
		Phone:     address.Phone,
	}
}
