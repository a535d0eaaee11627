package http

import (
	"net/http"
	"strconv"

	"canteen-service/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Order and rating required")
		return
	}

	err := h.feedback.Submit(c.Request.Context(), req.OrderID, req.Rating, req.Comment, auth.UserID(c), req.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback submitted"})
}

func (h *Handler) ListFeedback(c *gin.Context) {
	excludeAdmin, _ := strconv.ParseBool(c.DefaultQuery("excludeAdmin", "false"))

	feedbacks, err := h.feedback.List(c.Request.Context(), excludeAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "feedbacks": feedbacks})
}
