package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest is the body of POST /sales. Date is "YYYY-MM-DD".
type CreateSaleRequest struct {
	UserID uint            `json:"userId" binding:"required,min=1"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
}

type SaleResponse struct {
	ID     uint            `json:"id"`
	UserID uint            `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type SalesByUserQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
