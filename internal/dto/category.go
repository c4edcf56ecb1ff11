package dto

// CategoriesResponse lists the suggested category vocabulary per transaction
// type. These are suggestions for the client's pickers only; the server
// accepts any non-blank category string on create.
type CategoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}
