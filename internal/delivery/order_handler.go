package delivery

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase usecase.OrderUseCase
	render  *renderer
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, r *renderer, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		render:  r,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:orderId", h.OrderDetail)
	}
}

type orderDetailPage struct {
	ID     string
	Orders []domain.Order
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListOrders")
	page := h.render.page(c, "Liste des Commandes")

	orders, err := h.useCase.ListOrders(c.Request.Context())
	if err != nil {
		handlerLogger.Warnf("Failed to fetch orders: %v", err)
		page.Error = "Erreur lors de la récupération des commandes."
		c.HTML(statusFor(err), "order_list.gohtml", page)
		return
	}
	page.Data = orders
	c.HTML(http.StatusOK, "order_list.gohtml", page)
}

// OrderDetail renders one order, or every order of a user when the id is a user id.
func (h *OrderHandler) OrderDetail(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "OrderDetail")
	id := c.Param("orderId")
	page := h.render.page(c, "Détails de la commande")
	data := orderDetailPage{ID: id}

	lookup, err := h.useCase.LookupOrders(c.Request.Context(), id)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch orders for %s: %v", id, err)
		page.Error = "Erreur lors de la récupération des détails de la commande."
		page.Data = data
		c.HTML(statusFor(err), "order_detail.gohtml", page)
		return
	}
	if lookup.Order != nil {
		data.Orders = []domain.Order{*lookup.Order}
	} else {
		page.Title = "Commandes de l'utilisateur"
		data.Orders = lookup.Orders
	}
	page.Data = data
	c.HTML(http.StatusOK, "order_detail.gohtml", page)
}
