package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderDetail is embedded in the order document; name and price are copied
// from the catalog when the order is placed.
type OrderDetail struct {
	OrchidID   primitive.ObjectID `bson:"orchidId" json:"orchid_id"`
	OrchidName string             `bson:"orchidName" json:"orchid_name"`
	UnitPrice  float64            `bson:"unitPrice" json:"unit_price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Subtotal   float64            `bson:"subtotal" json:"subtotal"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID       primitive.ObjectID `bson:"accountId" json:"account_id"`
	AccountName     string             `bson:"accountName" json:"account_name"`
	OrderDate       time.Time          `bson:"orderDate" json:"order_date"`
	OrderStatus     string             `bson:"orderStatus" json:"order_status"`
	TotalAmount     float64            `bson:"totalAmount" json:"total_amount"`
	ShippingAddress string             `bson:"shippingAddress,omitempty" json:"shipping_address,omitempty"`
	PaymentMethod   string             `bson:"paymentMethod,omitempty" json:"payment_method,omitempty"`
	OrderDetails    []OrderDetail      `bson:"orderDetails" json:"order_details"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
