package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/interest-tracker/internal/middleware"
	"github.com/interest-tracker/internal/service"
	"github.com/interest-tracker/pkg/response"
)

// InvestmentHandler handles investment API requests
type InvestmentHandler struct {
	investmentService *service.InvestmentService
	exportService     *service.ExportService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *service.InvestmentService, exportService *service.ExportService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		exportService:     exportService,
	}
}

// Calculate computes interest figures without persisting anything
// POST /api/v1/investments/calculate
func (h *InvestmentHandler) Calculate(c *gin.Context) {
	var req service.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.investmentService.Calculate(&req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to calculate interest")
		return
	}

	response.Success(c, res)
}

// List returns the authenticated user's investments
// GET /api/v1/investments
func (h *InvestmentHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	investments, err := h.investmentService.List(userID)
	if err != nil {
		response.InternalError(c, "failed to fetch investments")
		return
	}

	response.Success(c, investments)
}

// Create inserts a new investment record
// POST /api/v1/investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	investment, err := h.investmentService.Create(userID, &req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to add investment")
		return
	}

	response.Created(c, investment)
}

// Update applies a recalculation to an investment
// PUT /api/v1/investments/:id
func (h *InvestmentHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid investment id")
		return
	}

	var req service.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	investment, err := h.investmentService.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvestmentNotFound) {
			response.NotFound(c, "investment not found")
			return
		}
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update investment")
		return
	}

	response.Success(c, investment)
}

// Delete removes one investment
// DELETE /api/v1/investments/:id
func (h *InvestmentHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid investment id")
		return
	}

	if err := h.investmentService.Delete(userID, id); err != nil {
		if errors.Is(err, service.ErrInvestmentNotFound) {
			response.NotFound(c, "investment not found")
			return
		}
		response.InternalError(c, "failed to delete investment")
		return
	}

	response.Success(c, gin.H{"message": "investment deleted"})
}

// Clear removes every investment owned by the user
// DELETE /api/v1/investments
func (h *InvestmentHandler) Clear(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.investmentService.Clear(userID); err != nil {
		response.InternalError(c, "failed to clear investments")
		return
	}

	response.Success(c, gin.H{"message": "all investments cleared"})
}

// Export renders the user's investments as CSV
// GET /api/v1/investments/export
func (h *InvestmentHandler) Export(c *gin.Context) {
	userID := middleware.GetUserID(c)

	csvData, err := h.exportService.ExportCSV(userID)
	if err != nil {
		response.InternalError(c, "failed to export investments")
		return
	}

	response.Success(c, gin.H{"csv_data": csvData})
}

// RegisterRoutes registers investment routes. Calculate is public; everything
// touching stored records requires authentication.
func (h *InvestmentHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	investments := rg.Group("/investments")
	{
		investments.POST("/calculate", h.Calculate)

		protected := investments.Group("", authMiddleware)
		{
			protected.GET("", h.List)
			protected.POST("", h.Create)
			protected.PUT("/:id", h.Update)
			protected.DELETE("/:id", h.Delete)
			protected.DELETE("", h.Clear)
			protected.GET("/export", h.Export)
		}
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidPrincipal) ||
		errors.Is(err, service.ErrInvalidRate) ||
		errors.Is(err, service.ErrInvalidTime) ||
		errors.Is(err, service.ErrInvalidDate)
}
