package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/application/service"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles GET /printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// PrintBill handles POST /printer/bills/:id. The composed receipt comes
// back in the response so the client can render it even without a printer.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	receipt, err := h.printerService.PrintBillReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			// The receipt composed fine; only the device write failed.
			response.OK(c, "Receipt composed but printing failed", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", receipt)
}

// TestPrint handles POST /printer/test
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint(c.Request.Context())
	if err != nil {
		if receipt != nil {
			response.OK(c, "Test page composed but printing failed", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page printed", receipt)
}
