package http

import (
	"net/http"

	"canteen-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFood(c *gin.Context) {
	foods, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": foods})
}

func (h *Handler) TodaysMenu(c *gin.Context) {
	foods, err := h.catalog.TodaysMenu(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": foods})
}

func (h *Handler) AddFood(c *gin.Context) {
	var req AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	food := &domain.Food{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Image:             req.Image,
		Category:          req.Category,
		TodaysMenu:        req.TodaysMenu,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	}
	if err := h.catalog.Add(c.Request.Context(), food); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food Added", "data": food})
}

func (h *Handler) RemoveFood(c *gin.Context) {
	var req FoodIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.catalog.Remove(c.Request.Context(), req.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food Removed"})
}

func (h *Handler) ToggleTodaysMenu(c *gin.Context) {
	var req FoodIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	food, err := h.catalog.ToggleTodaysMenu(c.Request.Context(), req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Removed from Today's Menu"
	if food.TodaysMenu {
		message = "Added to Today's Menu"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"todaysMenu": food.TodaysMenu,
		"itemName":   food.Name,
	})
}

func (h *Handler) UpdateStock(c *gin.Context) {
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid food ID or stock value")
		return
	}
	if err := h.catalog.SetStock(c.Request.Context(), req.ID, *req.Stock); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stock updated", "stock": *req.Stock})
}

func (h *Handler) LowStock(c *gin.Context) {
	foods, err := h.catalog.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": foods})
}
