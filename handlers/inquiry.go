package handlers

import (
	"context"
	"errors"
	"net/http"

	"storabook/services/inquiry"
	"storabook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler serves the inquiry sub-API.
type InquiryHandler struct {
	Service inquiry.InquiryService
	Logger  *zap.Logger
}

// NewInquiryHandler returns an InquiryHandler wired to the given service.
func NewInquiryHandler(svc inquiry.InquiryService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{Service: svc, Logger: logger}
}

func (h *InquiryHandler) respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, inquiry.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
	case errors.Is(err, inquiry.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Inquiry not found", err.Error())
	default:
		h.Logger.Error("inquiry: "+action+" failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Inquiry operation failed", err.Error())
	}
}

// CreateInquiry opens a new inquiry for a customer.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req inquiry.CreateInquiryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	inq, err := h.Service.Create(ctx, req)
	if err != nil {
		h.respondServiceError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, inq)
}

// UpdateInquiryStatus transitions an inquiry's status.
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	inq, err := h.Service.UpdateStatus(ctx, id, req.Status, req.Message)
	if err != nil {
		h.respondServiceError(c, err, "status update")
		return
	}
	c.JSON(http.StatusOK, inq)
}

// AddInquiryResponse records a reply on an inquiry.
func (h *InquiryHandler) AddInquiryResponse(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Message   string `json:"message"`
		Responder string `json:"responder,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	ev, err := h.Service.AddResponse(ctx, id, req.Message, req.Responder)
	if err != nil {
		h.respondServiceError(c, err, "response")
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// GetCustomerInquiries lists a customer's inquiries, optionally filtered
// with ?status=.
func (h *InquiryHandler) GetCustomerInquiries(c *gin.Context) {
	customerID := c.Param("customerId")
	status := c.Query("status")

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	inquiries, err := h.Service.GetCustomerInquiries(ctx, customerID, status)
	if err != nil {
		h.respondServiceError(c, err, "customer listing")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

// GetInquiryHistory returns an inquiry's history trail.
func (h *InquiryHandler) GetInquiryHistory(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	history, err := h.Service.GetHistory(ctx, id)
	if err != nil {
		h.respondServiceError(c, err, "history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// SearchInquiries matches inquiries by subject or message. Expects ?q=.
func (h *InquiryHandler) SearchInquiries(c *gin.Context) {
	query := c.Query("q")

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	inquiries, err := h.Service.Search(ctx, query)
	if err != nil {
		h.respondServiceError(c, err, "search")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}
