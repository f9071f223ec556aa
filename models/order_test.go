package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(status), status)
	}

	assert.False(t, ValidOrderStatus("Pending"))
	assert.False(t, ValidOrderStatus("returned"))
	assert.False(t, ValidOrderStatus(""))
}
