package server

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/categorize"
	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/llm"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/taxonomy"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type categorizeRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCategorize(c *fiber.Ctx) error {
	var req categorizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	result, err := s.categorizer.Categorize(c.Context(), req.Name)
	if err != nil {
		return s.categorizeError(c, err)
	}

	return c.JSON(result)
}

// categorizeError maps the pipeline's terminal failure kinds onto HTTP
// statuses. The message is relayed as-is; callers display it directly.
func (s *Server) categorizeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway

	switch {
	case errors.Is(err, categorize.ErrEmptyName),
		errors.Is(err, categorize.ErrMalformedResponse),
		errors.Is(err, categorize.ErrIncompleteResponse):
		status = fiber.StatusBadRequest
	case errors.Is(err, llm.ErrNotConfigured):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, llm.ErrEmptyResponse):
		status = fiber.StatusBadGateway
	default:
		s.logger.Error("categorization transport failure", "error", err)
	}

	return c.Status(status).JSON(errorResponse{Error: err.Error()})
}

type expenseRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	UsageMonths      int             `json:"usageMonths"`
	BrandColor       string          `json:"brandColor"`
	BrandAccentColor string          `json:"brandAccentColor"`
	BrandLogoURL     string          `json:"brandLogoUrl"`
	ImageURL         string          `json:"imageUrl"`
	PurchaseDate     string          `json:"purchaseDate"`
	Notes            string          `json:"notes"`
}

type expenseResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory,omitempty"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	MonthlyCost      decimal.Decimal `json:"monthlyCost"`
	UsageMonths      int             `json:"usageMonths"`
	BrandColor       string          `json:"brandColor,omitempty"`
	BrandAccentColor string          `json:"brandAccentColor,omitempty"`
	BrandLogoURL     string          `json:"brandLogoUrl,omitempty"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	PurchaseDate     string          `json:"purchaseDate"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func toExpenseResponse(e *model.Expense) expenseResponse {
	return expenseResponse{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		Subcategory:      e.Subcategory,
		TotalCost:        e.TotalCost,
		MonthlyCost:      e.MonthlyCost,
		UsageMonths:      e.UsageMonths,
		BrandColor:       e.BrandColor,
		BrandAccentColor: e.BrandAccentColor,
		BrandLogoURL:     e.BrandLogoURL,
		ImageURL:         e.ImageURL,
		PurchaseDate:     e.PurchaseDate.Format("2006-01-02"),
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (s *Server) handleCreateExpense(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "expense name is required"})
	}
	if !taxonomy.IsCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "unknown category: " + req.Category})
	}
	if req.Subcategory != "" && !taxonomy.IsSubcategory(req.Category, req.Subcategory) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid subcategory for category"})
	}
	if req.TotalCost.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "total cost cannot be negative"})
	}
	if req.UsageMonths < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "usage months must be at least 1"})
	}

	purchaseDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "purchase date must be YYYY-MM-DD"})
		}
		purchaseDate = parsed
	}

	expense := &model.Expense{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(req.Name),
		Category:         req.Category,
		Subcategory:      req.Subcategory,
		TotalCost:        req.TotalCost,
		MonthlyCost:      model.AmortizedMonthlyCost(req.TotalCost, req.UsageMonths),
		UsageMonths:      req.UsageMonths,
		BrandColor:       req.BrandColor,
		BrandAccentColor: req.BrandAccentColor,
		BrandLogoURL:     req.BrandLogoURL,
		ImageURL:         req.ImageURL,
		PurchaseDate:     purchaseDate,
		Notes:            req.Notes,
	}

	if err := s.store.SaveExpense(c.Context(), expense); err != nil {
		s.logger.Error("failed to save expense", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to save expense"})
	}

	return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(expense))
}

func (s *Server) handleListExpenses(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !taxonomy.IsCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "unknown category: " + category})
	}

	expenses, err := s.store.ListExpenses(c.Context(), category)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to list expenses"})
	}

	responses := make([]expenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(responses)
}

func (s *Server) handleDeleteExpense(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.store.DeleteExpense(c.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "expense not found"})
		}
		s.logger.Error("failed to delete expense", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to delete expense"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type summaryResponse struct {
	TotalMonthlyExpense decimal.Decimal            `json:"totalMonthlyExpense"`
	TotalInvestment     decimal.Decimal            `json:"totalInvestment"`
	ExpenseCount        int                        `json:"expenseCount"`
	CategoryBreakdown   map[string]decimal.Decimal `json:"categoryBreakdown"`
}

func (s *Server) handleSummary(c *fiber.Ctx) error {
	summary, err := s.store.GetSummary(c.Context())
	if err != nil {
		s.logger.Error("failed to compute summary", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to compute summary"})
	}

	return c.JSON(summaryResponse{
		TotalMonthlyExpense: summary.TotalMonthlyExpense,
		TotalInvestment:     summary.TotalInvestment,
		ExpenseCount:        summary.ExpenseCount,
		CategoryBreakdown:   summary.CategoryBreakdown,
	})
}
