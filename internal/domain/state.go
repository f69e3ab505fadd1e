package domain

// CartLine is one (product snapshot, quantity) pair in the cart.
// At most one line exists per product id.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price at add time multiplied by quantity.
func (l CartLine) Subtotal() float64 { return l.Product.Price * float64(l.Quantity) }

// UserProfile is the locally persisted public profile of the logged-in
// client. IsAdmin is a UI hint only, never a security boundary.
type UserProfile struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}
