package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"canteen-service/internal/auth"
	"canteen-service/internal/domain"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders   *services.OrderService
	catalog  *services.CatalogService
	ledger   *services.LedgerService
	payments *services.PaymentService
	feedback *services.FeedbackService
	gate     *auth.Gate
}

func NewHandler(
	orders *services.OrderService,
	catalog *services.CatalogService,
	ledger *services.LedgerService,
	payments *services.PaymentService,
	feedback *services.FeedbackService,
	gate *auth.Gate,
) *Handler {
	return &Handler{
		orders:   orders,
		catalog:  catalog,
		ledger:   ledger,
		payments: payments,
		feedback: feedback,
		gate:     gate,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})

	api := r.Group("/api")

	order := api.Group("/order")
	order.POST("/create", h.gate.RequireUser(), h.CreateOrder)
	order.POST("/place", h.gate.RequireUser(), h.CreateOrder)
	order.GET("/user-orders", h.gate.RequireUser(), h.UserOrders)
	order.GET("/admin/all", h.gate.RequireAdmin(), h.AdminAllOrders)
	order.GET("/admin/stats", h.gate.RequireAdmin(), h.AdminStats)
	order.GET("/admin/:orderId", h.gate.RequireAdmin(), h.AdminGetOrder)
	order.PUT("/admin/:orderId/status", h.gate.RequireAdmin(), h.AdminUpdateStatus)
	order.GET("/:orderId", h.gate.RequireUser(), h.GetOrder)
	order.POST("/:orderId/cancel", h.gate.RequireUser(), h.CancelOrder)

	food := api.Group("/food")
	food.GET("/list", h.ListFood)
	food.GET("/todays-menu", h.TodaysMenu)
	food.POST("/add", h.gate.RequireAdmin(), h.AddFood)
	food.POST("/remove", h.gate.RequireAdmin(), h.RemoveFood)
	food.POST("/toggle-todays-menu", h.gate.RequireAdmin(), h.ToggleTodaysMenu)
	food.POST("/update-stock", h.gate.RequireAdmin(), h.UpdateStock)
	food.GET("/low-stock", h.gate.RequireAdmin(), h.LowStock)

	api.GET("/card/balance/:cardNumber", h.gate.RequireUser(), h.CardBalance)

	payment := api.Group("/payment")
	payment.POST("/create-intent", h.gate.RequireUser(), h.CreateIntent)
	payment.POST("/confirm", h.gate.RequireUser(), h.ConfirmPayment)
	payment.GET("/status/:intentId", h.gate.RequireUser(), h.PaymentStatus)

	feedback := api.Group("/feedback")
	feedback.POST("/submit", h.gate.RequireUser(), h.SubmitFeedback)
	feedback.GET("", h.gate.RequireAdmin(), h.ListFeedback)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	items := make([]services.CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.CheckoutLine{FoodID: item.FoodID, Quantity: item.Quantity})
	}

	order, err := h.orders.Checkout(c.Request.Context(), services.CheckoutInput{
		UserID:              auth.UserID(c),
		Items:               items,
		Address:             req.DeliveryAddress.resolve(),
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       domain.PaymentMethod(req.PaymentMethod),
		RFCardNumber:        req.RFCardNumber,
		PaymentIntentID:     req.PaymentIntentID,
	})
	if err != nil {
		if isBusinessError(err) {
			badRequest(c, err.Error())
		} else {
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order":   projectOrder(order),
	})
}

func (h *Handler) UserOrders(c *gin.Context) {
	page, limit := pagination(c, 10)
	orders, total, err := h.orders.UserOrders(c.Request.Context(), auth.UserID(c), c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	pagedResponse(c, orders, total, page, limit)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("orderId"), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) CancelOrder(c *gin.Context) {
	order, err := h.orders.Cancel(c.Request.Context(), c.Param("orderId"), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled successfully",
		"order":   projectOrder(order),
	})
}

func (h *Handler) AdminAllOrders(c *gin.Context) {
	page, limit := pagination(c, 20)
	orders, total, err := h.orders.AllOrders(c.Request.Context(), c.Query("status"), c.Query("date"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	pagedResponse(c, orders, total, page, limit)
}

func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.orders.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.orders.GetAdmin(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var estimated *time.Time
	if req.EstimatedDeliveryTime != "" {
		t, err := time.Parse(time.RFC3339, req.EstimatedDeliveryTime)
		if err != nil {
			badRequest(c, "invalid estimatedDeliveryTime")
			return
		}
		estimated = &t
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), domain.OrderStatus(req.Status), estimated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"order":   order,
	})
}

func (h *Handler) CardBalance(c *gin.Context) {
	card, err := h.ledger.Balance(c.Request.Context(), c.Param("cardNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"cardNumber": card.CardNumber,
		"balance":    card.Balance,
		"ownerName":  card.OwnerName,
	})
}

func pagination(c *gin.Context, defaultLimit int64) (int64, int64) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", strconv.FormatInt(defaultLimit, 10)), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func pagedResponse(c *gin.Context, orders []domain.Order, total, page, limit int64) {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orders":      orders,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// isBusinessError reports whether err is one of the checkout-rule failures
// that surface as 400 regardless of which step produced them.
func isBusinessError(err error) bool {
	for _, sentinel := range []error{
		services.ErrEmptyOrder,
		services.ErrInvalidQuantity,
		services.ErrInvalidPaymentMethod,
		services.ErrItemNotFound,
		services.ErrInsufficientStock,
		services.ErrCardRequired,
		services.ErrCardNotFound,
		services.ErrInsufficientFunds,
		services.ErrPaymentNotCompleted,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// respondError maps service sentinels onto status codes. Anything
// unrecognized is an internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrIntentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrOrderNotCancellable),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrTerminalStatus),
		errors.Is(err, services.ErrInvalidStock),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrOrderIDRequired),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrIntentRequired),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrPaymentNotCompleted):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}
