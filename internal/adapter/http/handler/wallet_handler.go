package handler

import (
	"token-recovery-dapp/internal/adapter/http/dto"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/pkg/apperror"
	"token-recovery-dapp/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the wallet session endpoints.
type WalletHandler struct {
	walletSvc     ports.WalletService
	defaultWallet string
}

// NewWalletHandler creates a new WalletHandler. defaultWallet is used when a
// connect request names no wallet.
func NewWalletHandler(walletSvc ports.WalletService, defaultWallet string) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, defaultWallet: defaultWallet}
}

// GetSession handles GET /api/v1/wallet.
func (h *WalletHandler) GetSession(c *gin.Context) {
	response.OK(c, dto.NewSessionResponse(h.walletSvc.Session()))
}

// Connect handles POST /api/v1/wallet/connect.
func (h *WalletHandler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	if req.WalletName == "" {
		req.WalletName = h.defaultWallet
	}

	session, err := h.walletSvc.Connect(c.Request.Context(), req.WalletName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewSessionResponse(session))
}

// Disconnect handles POST /api/v1/wallet/disconnect.
func (h *WalletHandler) Disconnect(c *gin.Context) {
	if err := h.walletSvc.Disconnect(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
