package handler

import (
	"token-recovery-dapp/internal/adapter/http/dto"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/pkg/apperror"
	"token-recovery-dapp/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoticeHandler exposes the notice board.
type NoticeHandler struct {
	noticeSvc ports.NoticeService
}

func NewNoticeHandler(noticeSvc ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

// List handles GET /api/v1/notices.
func (h *NoticeHandler) List(c *gin.Context) {
	items := h.noticeSvc.List()
	response.OK(c, dto.NoticeListResponse{Items: items, Total: len(items)})
}

// Dismiss handles DELETE /api/v1/notices/:id.
func (h *NoticeHandler) Dismiss(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid notice id"))
		return
	}
	if !h.noticeSvc.Dismiss(id) {
		response.Error(c, apperror.ErrNotFound("notice"))
		return
	}
	response.NoContent(c)
}
