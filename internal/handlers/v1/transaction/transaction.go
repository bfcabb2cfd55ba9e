package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	UserID          string `json:"userID" doc:"Owner UUID"`
	Kind            string `json:"kind" doc:"expense or income"`
	Amount          string `json:"amount" doc:"Decimal amount with two places"`
	Category        string `json:"category" doc:"Free-text category label, may be empty"`
	Description     string `json:"description" doc:"Free-text description"`
	TransactionDate string `json:"transactionDate" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}
