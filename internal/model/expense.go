package model

// Expense represents a business expense.
type Expense struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Amount      float64 `db:"amount"`
	ExpenseDate string  `db:"expense_date"`
}

// ExpenseForm carries the raw add-expense form submission.
type ExpenseForm struct {
	Name        string
	Amount      string
	ExpenseDate string
}

// Report aggregates all orders and expenses into a profit summary.
type Report struct {
	TotalSales    float64
	TotalExpenses float64
	NetProfit     float64
}

// Dashboard holds the row counts shown on the landing page.
type Dashboard struct {
	Products int64
	Clients  int64
	Orders   int64
	Expenses int64
}
