package dto

// BankReportRequest defines the query parameters of the bank payment report.
type BankReportRequest struct {
	From      string `form:"from" binding:"required,datetime=2006-01-02"`
	To        string `form:"to" binding:"required,datetime=2006-01-02"`
	BankID    string `form:"bankID"`
	CashierID string `form:"cashierID"`
}

// StockLedgerRequest defines the query parameters of the fiche de stock.
type StockLedgerRequest struct {
	ArticleID string `form:"articleID" binding:"required"`
	StoreID   string `form:"storeID" binding:"required"`
	From      string `form:"from" binding:"required,datetime=2006-01-02"`
	To        string `form:"to" binding:"required,datetime=2006-01-02"`
}

// DayRequest defines the single-day query parameter shared by the cashier
// summary, closure and dashboard endpoints. An empty day means today.
type DayRequest struct {
	Day string `form:"day" binding:"omitempty,datetime=2006-01-02"`
}
