package handler

import (
	"log"
	"strconv"

	"github.com/zygggggg/blog/internal/common/httpx"
	"github.com/zygggggg/blog/internal/model"

	"github.com/gin-gonic/gin"
)

type postMessageRequest struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
}

// PostMessage 发表留言
func (h *Handler) PostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, 400, "参数错误")
		return
	}

	message, err := h.boardService.Post(req.Nickname, req.Content)
	if err != nil {
		httpx.WriteServiceError(c, err, "发表留言失败")
		return
	}

	log.Printf("📝 Post message from: %s", message.Nickname)
	httpx.OK(c, message, "留言发表成功")
}

// GetMessageList 分页获取留言列表
func (h *Handler) GetMessageList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))

	messages, total, page, size, err := h.boardService.List(page, size)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取留言列表失败")
		return
	}

	if messages == nil {
		messages = []model.BoardMessage{}
	}

	httpx.OK(c, gin.H{
		"list":       messages,
		"total":      total,
		"page":       page,
		"size":       size,
		"totalPages": totalPages(total, size),
	}, "")
}

// DeleteMessage 删除留言（软删除）
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.Fail(c, 400, "id 参数错误")
		return
	}

	if err := h.boardService.Delete(uint(id)); err != nil {
		httpx.WriteServiceError(c, err, "删除留言失败")
		return
	}

	httpx.OK(c, nil, "删除成功")
}

// ClearMessages 清空全部留言
func (h *Handler) ClearMessages(c *gin.Context) {
	count, err := h.boardService.Clear()
	if err != nil {
		httpx.WriteServiceError(c, err, "清空留言失败")
		return
	}

	log.Printf("✅ Cleared %d messages", count)
	httpx.OK(c, gin.H{"count": count}, "清空成功")
}
