package model

// Product represents a stocked product or material.
type Product struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Quantity    int     `db:"quantity"`
	Price       float64 `db:"price"`
}

// ProductForm carries the raw add-product form submission. Numeric fields
// stay strings until the service parses them.
type ProductForm struct {
	Name        string
	Description string
	Quantity    string
	Price       string
}
