package handler

import (
	"token-recovery-dapp/internal/adapter/http/dto"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/pkg/apperror"
	"token-recovery-dapp/pkg/response"

	"github.com/gin-gonic/gin"
)

// DappHandler handles account views and the transaction-submitting actions.
type DappHandler struct {
	dappSvc ports.DappService
}

// NewDappHandler creates a new DappHandler.
func NewDappHandler(dappSvc ports.DappService) *DappHandler {
	return &DappHandler{dappSvc: dappSvc}
}

// GetAccount handles GET /api/v1/account.
func (h *DappHandler) GetAccount(c *gin.Context) {
	overview, err := h.dappSvc.Account(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, overview)
}

// GetNetwork handles GET /api/v1/network.
func (h *DappHandler) GetNetwork(c *gin.Context) {
	overview, err := h.dappSvc.Network(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, overview)
}

// Transfer handles POST /api/v1/transfers.
func (h *DappHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.dappSvc.Transfer(c.Request.Context(), req.To, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewTransactionResponse(result))
}

// InitializeRecovery handles POST /api/v1/recovery/initialize.
func (h *DappHandler) InitializeRecovery(c *gin.Context) {
	result, err := h.dappSvc.InitializeRecovery(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.OK(c, dto.InitializeResponse{Initialized: true})
		return
	}

	tx := dto.NewTransactionResponse(result)
	response.Created(c, dto.InitializeResponse{Initialized: true, Transaction: &tx})
}

// RequestRecovery handles POST /api/v1/recovery/requests.
func (h *DappHandler) RequestRecovery(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.dappSvc.RequestRecovery(c.Request.Context(), req.To, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewTransactionResponse(result))
}

// GetMessage handles GET /api/v1/messages.
func (h *DappHandler) GetMessage(c *gin.Context) {
	content, err := h.dappSvc.Message(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.MessageResponse{Content: content})
}

// WriteMessage handles POST /api/v1/messages.
func (h *DappHandler) WriteMessage(c *gin.Context) {
	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.dappSvc.WriteMessage(c.Request.Context(), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewTransactionResponse(result))
}
