package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/server/http/dto"
	"github.com/greencart/storefront/internal/usecase"
)

// OrderHandler manages checkout and payment endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// PlaceCOD handles POST /api/order/cod.
func (h *OrderHandler) PlaceCOD(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid data")
		return
	}

	_, err := h.facade.PlaceCODOrder(c.Request.Context(), CurrentUserID(c), toLineItems(req.Items), req.Address)
	if err != nil {
		failOrder(c, err)
		return
	}
	succeed(c, "Order Placed Successfully")
}

// PlaceOnline handles POST /api/order/razorpay.
func (h *OrderHandler) PlaceOnline(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid data")
		return
	}

	order, session, err := h.facade.PlaceOnlineOrder(c.Request.Context(), CurrentUserID(c), toLineItems(req.Items), req.Address)
	if err != nil {
		failOrder(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GatewayOrderEnvelope{Success: true, Order: dto.GatewayOrderResponse{
		ID:        session.ID,
		Amount:    session.Amount,
		Currency:  session.Currency,
		DBOrderID: order.ID,
	}})
}

// Verify handles POST /api/order/verify.
func (h *OrderHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Invalid data")
		return
	}

	_, err := h.facade.VerifyPayment(c.Request.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrVerificationFailed):
			fail(c, "Payment verification failed")
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, "Order not found")
		default:
			fail(c, err.Error())
		}
		return
	}
	succeed(c, "Payment Verified")
}

// UserOrders handles GET /api/order/user.
func (h *OrderHandler) UserOrders(c *gin.Context) {
	orders, err := h.facade.UserOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		fail(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.OrderListEnvelope{Success: true, Orders: toOrderResponses(orders)})
}

// SellerOrders handles GET /api/order/seller.
func (h *OrderHandler) SellerOrders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		fail(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.OrderListEnvelope{Success: true, Orders: toOrderResponses(orders)})
}

// GatewayKey handles GET /api/getkey.
func (h *OrderHandler) GatewayKey(c *gin.Context) {
	c.JSON(http.StatusOK, dto.KeyEnvelope{Success: true, Key: h.facade.GatewayKeyID()})
}

func failOrder(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidOrder):
		fail(c, "Invalid data")
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		fail(c, "No valid products in order")
	case errors.Is(err, domainErrors.ErrGatewayUnavailable):
		fail(c, "Payment gateway unavailable")
	default:
		fail(c, err.Error())
	}
}

func toLineItems(items []dto.OrderItemRequest) []usecase.LineItem {
	lines := make([]usecase.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, usecase.LineItem{ProductID: item.Product, Quantity: item.Quantity})
	}
	return lines
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		line := dto.OrderItemResponse{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
		if item.Product != nil {
			product := toProductResponse(*item.Product)
			line.Product = &product
		}
		items = append(items, line)
	}

	response := dto.OrderResponse{
		ID:          order.ID,
		Items:       items,
		Amount:      order.Amount,
		PaymentType: string(order.PaymentType),
		IsPaid:      order.IsPaid,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
	}
	if order.Address != nil {
		address := toAddressResponse(*order.Address)
		response.Address = &address
	}
	return response
}
