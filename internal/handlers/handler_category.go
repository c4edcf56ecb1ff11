package handlers

import (
	"net/http"

	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// Suggested category vocabulary per transaction type. The dashboard offers
// these in its pickers; create still accepts any non-blank category string.
var suggestedCategories = dto.CategoriesResponse{
	Income:  []string{"Salary", "Freelance", "Investment", "Business", "Other"},
	Expense: []string{"Rent", "Food", "Transport", "Entertainment", "Healthcare", "Shopping", "Other"},
}

// listCategories godoc
// @Summary List suggested categories
// @Description Retrieves the suggested category vocabulary per transaction type
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, suggestedCategories)
}

// registerCategoryRoutes registers the category vocabulary route.
func registerCategoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", listCategories)
}
