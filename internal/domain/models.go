package domain

// Wire types for the remote store backend. Identifiers come back as
// id_key; zero means the backend did not assign one.

type Category struct {
	ID       int       `json:"id_key,omitempty"`
	Name     string    `json:"name"`
	Products []Product `json:"products,omitempty"`
}

type Product struct {
	ID         int       `json:"id_key"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	CategoryID int       `json:"category_id"`
	ImageURL   string    `json:"image_url,omitempty"`
	Category   *Category `json:"category,omitempty"`
}

type ProductCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"category_id"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type Client struct {
	ID        int    `json:"id_key,omitempty"`
	Name      string `json:"name,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
}

type ClientCreate struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Telephone string `json:"telephone,omitempty"`
}

type Order struct {
	ID             int     `json:"id_key,omitempty"`
	Date           string  `json:"date,omitempty"`
	Total          float64 `json:"total"`
	DeliveryMethod int     `json:"delivery_method"`
	Status         int     `json:"status,omitempty"`
	ClientID       int     `json:"client_id"`
	BillID         int     `json:"bill_id"`
}

type OrderCreate struct {
	Total          float64 `json:"total"`
	DeliveryMethod int     `json:"delivery_method"`
	ClientID       int     `json:"client_id"`
	BillID         int     `json:"bill_id"`
	Status         int     `json:"status,omitempty"`
}

type OrderDetail struct {
	ID        int     `json:"id_key,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price,omitempty"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
}

type OrderDetailCreate struct {
	Quantity  int     `json:"quantity"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
	Price     float64 `json:"price,omitempty"`
}

type Bill struct {
	ID          int     `json:"id_key,omitempty"`
	BillNumber  string  `json:"bill_number"`
	Discount    float64 `json:"discount,omitempty"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
	PaymentType int     `json:"payment_type"`
	ClientID    int     `json:"client_id"`
}

type BillCreate struct {
	ClientID    int     `json:"client_id"`
	Total       float64 `json:"total"`
	BillNumber  string  `json:"bill_number"`
	Date        string  `json:"date"`
	PaymentType int     `json:"payment_type"`
	Discount    float64 `json:"discount,omitempty"`
}

type Review struct {
	ID        int    `json:"id_key,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	ProductID int    `json:"product_id"`
}

// Backend enums. The REST service stores these as small integers.
const (
	PaymentTypeCash = 1

	OrderStatusPending   = 1
	OrderStatusPaid      = 2
	OrderStatusShipped   = 3
	OrderStatusDelivered = 4

	DeliveryPickup   = 1
	DeliveryStandard = 2
	DeliveryExpress  = 3
)

// OrderStatusName maps a status code to a display label.
func OrderStatusName(s int) string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusPaid:
		return "Paid"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	}
	return "Unknown"
}
