package visitors

import (
	"fmt"

	"go_vms/api/v1/middleware"
	"go_vms/internal/httpx"
	"go_vms/internal/model"
	"go_vms/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FellowVisitorRequest represents one companion in the create request
type FellowVisitorRequest struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile" binding:"required"`
}

// CreateRequest represents create visitor entry request
type CreateRequest struct {
	Name                  string                 `json:"name" binding:"required"`
	Mobile                string                 `json:"mobile" binding:"required"`
	Email                 *string                `json:"email"`
	IDType                string                 `json:"id_type" binding:"required"`
	IDNumber              string                 `json:"id_number" binding:"required"`
	Representing          *string                `json:"representing"`
	Purpose               string                 `json:"purpose" binding:"required"`
	EmpMobileNo           string                 `json:"emp_mobile_no" binding:"required"`
	VisitorCategory       string                 `json:"visitor_category" binding:"required"`
	FellowVisitors        int                    `json:"fellow_visitors"`
	FellowVisitorsDetails []FellowVisitorRequest `json:"fellow_visitors_details"`
}

// ApprovalRequest represents approve/reject request
type ApprovalRequest struct {
	CardNo          string  `json:"card_no" binding:"required"`
	Action          string  `json:"action" binding:"required"`
	RejectionReason *string `json:"rejection_reason"`
}

// Handler handles visitor entry API
type Handler struct {
	visitors *service.VisitorService
}

// NewHandler creates a new visitors handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{visitors: service.NewVisitorService(db)}
}

// Create handles POST /api/visitors
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	details := make([]model.FellowVisitor, len(req.FellowVisitorsDetails))
	for i, fv := range req.FellowVisitorsDetails {
		details[i] = model.FellowVisitor{Name: fv.Name, Mobile: fv.Mobile}
	}

	actor := middleware.CurrentUser(c)
	entry, err := h.visitors.CreateEntry(actor.EmpID, service.CreateEntryParams{
		Name:                 req.Name,
		Mobile:               req.Mobile,
		Email:                req.Email,
		IDType:               req.IDType,
		IDNumber:             req.IDNumber,
		Representing:         req.Representing,
		Purpose:              req.Purpose,
		VisitorCategory:      req.VisitorCategory,
		EmpMobileNo:          req.EmpMobileNo,
		FellowVisitors:       req.FellowVisitors,
		FellowVisitorDetails: details,
	})
	if err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}

	httpx.OKMsg(c, fmt.Sprintf("visitor entry created successfully with card no %s", entry.CardNo),
		gin.H{"card_no": entry.CardNo})
}

// List handles GET /api/visitors
func (h *Handler) List(c *gin.Context) {
	entries, err := h.visitors.ListEntries(middleware.CurrentUser(c))
	if err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}
	httpx.OK(c, entries)
}

// Pending handles GET /api/visitors/pending
func (h *Handler) Pending(c *gin.Context) {
	entries, err := h.visitors.PendingApprovals(middleware.CurrentUser(c))
	if err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}
	httpx.OK(c, entries)
}

// Approve handles POST /api/visitors/approve
func (h *Handler) Approve(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.visitors.Approve(actor.EmpID, req.CardNo, req.Action, req.RejectionReason); err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}

	actionText := "approved"
	if req.Action == string(model.ApprovalRejected) {
		actionText = "rejected"
	}
	httpx.OKMsg(c, fmt.Sprintf("visitor entry %s successfully", actionText), nil)
}

// Checkout handles POST /api/visitors/:card_no/checkout
func (h *Handler) Checkout(c *gin.Context) {
	cardNo := c.Param("card_no")
	if cardNo == "" {
		httpx.FailErr(c, httpx.ErrParamMissing("card number is required"))
		return
	}

	actor := middleware.CurrentUser(c)
	entry, err := h.visitors.Checkout(actor.EmpID, cardNo)
	if err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}

	httpx.OKMsg(c, fmt.Sprintf("visitor %s checked out successfully", entry.Name), nil)
}

// Active handles GET /api/visitors/active
func (h *Handler) Active(c *gin.Context) {
	entries, err := h.visitors.ActiveVisitors()
	if err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}
	httpx.OK(c, entries)
}
