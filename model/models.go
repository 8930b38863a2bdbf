package model

import "time"

type Role string
type OrderStatus string
type LocationType string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

const (
	LocationManual LocationType = "manual"
	LocationAuto   LocationType = "auto"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type UserCredential struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Roles Role   `json:"role"`
}

type Product struct {
	ProductId           string    `json:"productId" db:"id"`
	AdminUid            string    `json:"adminUid" db:"admin_uid"`
	AdminEmail          string    `json:"adminEmail" db:"admin_email"`
	Name                string    `json:"name" db:"name"`
	Description         string    `json:"description" db:"description"`
	Price               float64   `json:"price" db:"price"`
	DiscountedPrice     *float64  `json:"discountedPrice,omitempty" db:"discounted_price"`
	Rating              *float64  `json:"rating,omitempty" db:"rating"`
	Offers              *string   `json:"offers,omitempty" db:"offers"`
	HighlightedFeatures []string  `json:"highlightedFeatures" db:"-"`
	ImageRefs           []string  `json:"imageRefs" db:"-"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

type ProductRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	Price               float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice     *float64 `json:"discountedPrice" validate:"omitempty,gt=0"`
	Rating              *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Offers              *string  `json:"offers"`
	HighlightedFeatures []string `json:"highlightedFeatures"`
	ImageRefs           []string `json:"imageRefs"`
}

type Address struct {
	Id           string       `json:"id" db:"id"`
	UserId       string       `json:"userId" db:"user_id"`
	Name         string       `json:"name" db:"name"`
	Phone        string       `json:"phone" db:"phone"`
	AddressLine1 string       `json:"addressLine1" db:"address_line1"`
	AddressLine2 *string      `json:"addressLine2,omitempty" db:"address_line2"`
	City         string       `json:"city" db:"city"`
	State        string       `json:"state" db:"state"`
	Pincode      string       `json:"pincode" db:"pincode"`
	IsDefault    bool         `json:"isDefault" db:"is_default"`
	Latitude     *float64     `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64     `json:"longitude,omitempty" db:"longitude"`
	LocationType LocationType `json:"locationType" db:"location_type"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}

type AddressRequest struct {
	Name         string   `json:"name" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	AddressLine1 string   `json:"addressLine1" validate:"required"`
	AddressLine2 *string  `json:"addressLine2"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	Pincode      string   `json:"pincode" validate:"required"`
	IsDefault    bool     `json:"isDefault"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type CartLine struct {
	Id        string    `json:"id" db:"id"`
	UserId    string    `json:"userId" db:"user_id"`
	ProductId string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unitPrice" db:"unit_price"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CartAddRequest struct {
	ProductId string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is a cart line enriched with the current product snapshot.
type CartView struct {
	ProductId    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage *string `json:"productImage"`
	AdminUid     string  `json:"adminUid"`
	AdminEmail   string  `json:"adminEmail"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	LineTotal    float64 `json:"lineTotal"`
}

type Cart struct {
	Items    []CartView `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type Order struct {
	Id              string      `json:"id" db:"id"`
	UserId          string      `json:"userId" db:"user_id"`
	UserEmail       string      `json:"userEmail" db:"user_email"`
	ProductId       string      `json:"productId" db:"product_id"`
	AdminUid        string      `json:"adminUid" db:"admin_uid"`
	Quantity        int         `json:"quantity" db:"quantity"`
	TotalPrice      float64     `json:"totalPrice" db:"total_price"`
	Status          OrderStatus `json:"status" db:"status"`
	ShippingAddress *string     `json:"shippingAddress,omitempty" db:"shipping_address"`
	IdempotencyKey  string      `json:"-" db:"idempotency_key"`
	OrderDate       time.Time   `json:"orderDate" db:"order_date"`
}

// OrderRequest is the direct single-order create body.
type OrderRequest struct {
	ProductId       string  `json:"productId" validate:"required"`
	Quantity        int     `json:"quantity" validate:"required,gte=1"`
	TotalPrice      float64 `json:"totalPrice" validate:"required,gt=0"`
	ShippingAddress *string `json:"shippingAddress"`
}

type CheckoutRequest struct {
	AddressId      string `json:"addressId" validate:"required"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type CheckoutResult struct {
	OrderNumber      string   `json:"orderNumber"`
	OrderIds         []string `json:"orderIds"`
	Subtotal         float64  `json:"subtotal"`
	Delivery         float64  `json:"delivery"`
	Total            float64  `json:"total"`
	ExpectedDelivery string   `json:"expectedDelivery"`
}

type StatusUpdateRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// OrderView is an order enriched with product details for list screens.
// Placeholder fields are used when the product has been deleted.
type OrderView struct {
	Order
	ProductName  string  `json:"productName"`
	ProductImage *string `json:"productImage"`
	ProductPrice float64 `json:"productPrice"`
	AdminEmail   string  `json:"adminEmail"`
}

type StatusCounts struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

type UserOrderStats struct {
	TotalOrders  int          `json:"totalOrders"`
	TotalSpent   float64      `json:"totalSpent"`
	StatusCounts StatusCounts `json:"statusCounts"`
}

type AdminOrderStats struct {
	TotalOrders  int          `json:"totalOrders"`
	TotalRevenue float64      `json:"totalRevenue"`
	StatusCounts StatusCounts `json:"statusCounts"`
}

// AppointmentRequest is the public doctor-consult form body. Date is the
// preferred appointment date in YYYY-MM-DD.
type AppointmentRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Date    string  `json:"date" validate:"required"`
	Doctor  string  `json:"doctor" validate:"required"`
	Message *string `json:"message"`
}

// AppointmentDetails echoes the accepted request back to the caller.
type AppointmentDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Doctor string `json:"doctor"`
}

// AppointmentEmail carries everything the appointment templates render.
type AppointmentEmail struct {
	Name        string
	Email       string
	Date        string
	Doctor      string
	Message     *string
	RequestedAt string
}

type OrderEmailItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// OrderEmail carries everything the confirmation templates render.
type OrderEmail struct {
	OrderNumber      string
	CustomerName     string
	CustomerEmail    string
	OrderDate        string
	ExpectedDelivery string
	Items            []OrderEmailItem
	Address          Address
	Subtotal         float64
	Delivery         float64
	Total            float64
}
