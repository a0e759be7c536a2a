package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greencart/storefront/internal/domain/model"
)

func TestNewOrderEvent(t *testing.T) {
	order := &model.Order{
		ID:          7,
		UserID:      3,
		Amount:      204,
		PaymentType: model.PaymentTypeOnline,
	}

	event := NewOrderEvent(TypeOrderPaid, order)
	assert.Equal(t, TypeOrderPaid, event.Type)
	assert.EqualValues(t, 7, event.OrderID)
	assert.EqualValues(t, 3, event.UserID)
	assert.EqualValues(t, 204, event.Amount)
	assert.Equal(t, "Online", event.PaymentType)
	assert.WithinDuration(t, time.Now().UTC(), event.OccurredAt, time.Minute)
}

func TestNopPublisher(t *testing.T) {
	p := NopPublisher{}
	assert.NoError(t, p.PublishOrderEvent(context.Background(), OrderEvent{}))
	assert.NoError(t, p.Close())
}
