package http

import (
	"errors"
	"net/http"

	"canteen-service/internal/auth"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	intent, err := h.payments.CreateIntent(c.Request.Context(), auth.UserID(c), req.Amount, req.Currency, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	intent, err := h.payments.Confirm(c.Request.Context(), auth.UserID(c), req.PaymentIntentID, req.OrderID, req.PaymentType == "rfcard")
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotCompleted) && intent != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":       false,
				"message":       "Payment not completed",
				"paymentStatus": intent.Status,
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Payment confirmed successfully",
		"paymentStatus": intent.Status,
	})
}

func (h *Handler) PaymentStatus(c *gin.Context) {
	intent, err := h.payments.Status(c.Request.Context(), c.Param("intentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"paymentStatus": intent.Status,
		"amount":        intent.Amount,
		"currency":      intent.Currency,
	})
}
