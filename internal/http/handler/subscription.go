package handler

import (
	"errors"
	"net/http"

	"chatdeck.app/backend/internal/http/dto"
	"chatdeck.app/backend/internal/http/middleware"
	"chatdeck.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) SubscribePro(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)

	result, err := h.subscriptionService.SubscribePro(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start checkout"})
		return
	}

	c.JSON(http.StatusOK, dto.SubscribeResponse{
		CheckoutURL:   result.CheckoutURL,
		TransactionID: result.TransactionID,
	})
}

func (h *SubscriptionHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)

	plan, err := h.subscriptionService.Status(ctx, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plan"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

func (h *SubscriptionHandler) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "payment successful"})
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "payment cancelled"})
}
