package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/application/service"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/request"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/response"
	"github.com/okalang/dinebill-api/pkg/apperror"
)

// BillHandler handles finalized bill HTTP requests
type BillHandler struct {
	billingService *service.BillingService
	reportService  *service.ReportService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, reportService *service.ReportService) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		reportService:  reportService,
	}
}

// Finalize handles POST /bills. On success the cart is cleared here, after
// the bill is safely stored; a failed save leaves the cart intact so the
// cashier can retry.
func (h *BillHandler) Finalize(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.FinalizeBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.FinalizeBillInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	}
	if req.PaymentMethod != nil {
		method, err := enum.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			response.Error(c, apperror.NewValidationError([]apperror.FieldError{
				{Field: "payment_method", Message: "Payment method must be cash, card, upi or other"},
			}))
			return
		}
		input.PaymentMethod = &method
	}

	bill, err := h.billingService.FinalizeBill(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.billingService.Cart().Clear()

	response.Created(c, "Bill finalized", bill)
}

// Get handles GET /bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved", bill)
}

// List handles GET /bills?period=. The listing is capped; use the reports
// summary for totals over the full period.
func (h *BillHandler) List(c *gin.Context) {
	period, err := enum.ParsePeriod(c.DefaultQuery("period", "all"))
	if err != nil {
		response.BadRequest(c, "Period must be today, week, month or all")
		return
	}

	bills, err := h.reportService.GetListing(c.Request.Context(), period, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved", bills)
}

// ListUnsynced handles GET /bills/unsynced
func (h *BillHandler) ListUnsynced(c *gin.Context) {
	bills, err := h.billingService.ListUnsyncedBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Unsynced bills retrieved", bills)
}

// MarkSynced handles POST /bills/:id/synced
func (h *BillHandler) MarkSynced(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	if err := h.billingService.MarkBillSynced(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill marked as synced", nil)
}
