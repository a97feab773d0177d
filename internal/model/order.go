package model

// Order represents a sales order. TotalPrice is a snapshot of
// product price times quantity taken at creation; a later price change
// does not touch existing orders.
type Order struct {
	ID         int64   `db:"id"`
	ClientID   int64   `db:"client_id"`
	ProductID  int64   `db:"product_id"`
	Quantity   int     `db:"quantity"`
	TotalPrice float64 `db:"total_price"`
	OrderDate  string  `db:"order_date"`
}

// OrderRow is an order joined with the client and product names, as shown
// on the order list.
type OrderRow struct {
	ID          int64
	ClientName  string
	ProductName string
	Quantity    int
	TotalPrice  float64
	OrderDate   string
}

// OrderForm carries the raw add-order form submission.
type OrderForm struct {
	ClientID  string
	ProductID string
	Quantity  string
	OrderDate string
}

// OrderFormData holds the reference lists that populate the add-order
// selection inputs.
type OrderFormData struct {
	Clients  []Client
	Products []Product
}
