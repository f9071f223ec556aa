package models

type RegisterRequest struct {
	AccountName string `json:"account_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type RegisterResponse struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Email       string `json:"email"`
	RoleName    string `json:"role_name"`
	Message     string `json:"message"`
}

// AccountRequest is the admin-side account create/update payload. Password is
// optional on update; Role must parse via ParseRole.
type AccountRequest struct {
	AccountName string `json:"account_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	Role        string `json:"role" binding:"required"`
}

type AccountDTO struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Email       string `json:"email"`
	RoleName    string `json:"role_name"`
}

type CategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}

type OrchidRequest struct {
	OrchidName  string  `json:"orchid_name" binding:"required"`
	Description string  `json:"description"`
	OrchidURL   string  `json:"orchid_url"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsNatural   bool    `json:"is_natural"`
	CategoryID  string  `json:"category_id" binding:"required"`
}

type OrderDetailRequest struct {
	OrchidID string `json:"orchid_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	OrderDetails    []OrderDetailRequest `json:"order_details" binding:"required,min=1,dive"`
	ShippingAddress string               `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
