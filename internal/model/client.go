package model

// Client represents a customer the business sells to.
type Client struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Phone string `db:"phone"`
	Email string `db:"email"`
}

// ClientForm carries the raw add-client form submission.
type ClientForm struct {
	Name  string
	Phone string
	Email string
}
