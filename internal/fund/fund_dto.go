package fund

import "github.com/shopspring/decimal"

type RecordTransactionRequest struct {
	Date      string          `json:"date" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Content   string          `json:"content"`
	Performer string          `json:"performer"`
}

type TransactionResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Content      string          `json:"content,omitempty"`
	Performer    string          `json:"performer,omitempty"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// SummaryResponse pairs range-filtered totals with the global balance. The
// balance is always the last appended row's, never the last row in range.
type SummaryResponse struct {
	From           string                `json:"from"`
	To             string                `json:"to"`
	TotalIncome    decimal.Decimal       `json:"totalIncome"`
	TotalExpense   decimal.Decimal       `json:"totalExpense"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
	Transactions   []TransactionResponse `json:"transactions"`
}
