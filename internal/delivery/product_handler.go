package delivery

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const productsRoute = "/produit"

type ProductHandler struct {
	useCase usecase.ProductUseCase
	render  *renderer
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, r *renderer, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		render:  r,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group(productsRoute)
	{
		products.GET("", h.ListProducts)
		products.GET("/add", h.NewProduct)
		products.POST("/add", h.CreateProduct)
		products.GET("/update/:id", h.EditProduct)
		products.POST("/update/:id", h.UpdateProduct)
		products.GET("/details/:productId", h.ProductDetails)
		products.POST("/delete/:id", h.DeleteProduct)
	}
}

type productFormPage struct {
	Form       domain.ProductForm
	Categories []domain.Category
	Action     string
	Update     bool
	Ready      bool
}

type productDetailsPage struct {
	Product       *domain.Product
	ConfirmDelete bool
}

func productID(p domain.Product) string { return p.ID }

func (h *ProductHandler) ListProducts(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListProducts")
	q := listQuery(c)
	page := h.render.page(c, "Liste des Produits")
	status := http.StatusOK

	view, err := h.useCase.ListProducts(c.Request.Context(), q)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch products page %d: %v", q.Page, err)
		view.Error = "Erreur lors de la récupération des produits."
		status = statusFor(err)
	}
	page.Data = listPage[domain.Product]{
		View:       view,
		Links:      listLinks{base: productsRoute, term: q.Term, menu: q.Menu, page: view.Pager.CurrentPage},
		Confirming: find(view.Source, q.Confirm, productID),
	}
	c.HTML(status, "product_list.gohtml", page)
}

func (h *ProductHandler) categoryOptions(c *gin.Context, handlerLogger logrus.FieldLogger) []domain.Category {
	categories, err := h.useCase.CategoryOptions(c.Request.Context())
	if err != nil {
		handlerLogger.Warnf("Erreur lors de la récupération des catégories: %v", err)
		return nil
	}
	return categories
}

func (h *ProductHandler) NewProduct(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "NewProduct")
	page := h.render.page(c, "Ajouter un produit")
	page.Data = productFormPage{
		Form:       domain.NewProductForm(),
		Categories: h.categoryOptions(c, handlerLogger),
		Action:     productsRoute + "/add",
		Ready:      true,
	}
	c.HTML(http.StatusOK, "product_form.gohtml", page)
}

// growForm handles the "add another" buttons. It reports whether the request was one of them.
func growForm(c *gin.Context, form *domain.ProductForm) bool {
	switch c.PostForm("action") {
	case "add_image":
		form.AddImage()
		return true
	case "add_customization":
		form.AddCustomization()
		return true
	}
	return false
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "CreateProduct")
	page := h.render.page(c, "Ajouter un produit")
	data := productFormPage{Action: productsRoute + "/add", Ready: true}

	var form domain.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		handlerLogger.Warnf("Failed to bind form: %v", err)
	}
	data.Categories = h.categoryOptions(c, handlerLogger)

	if growForm(c, &form) {
		data.Form = form
		page.Data = data
		c.HTML(http.StatusOK, "product_form.gohtml", page)
		return
	}

	if _, err := h.useCase.CreateProduct(c.Request.Context(), form); err != nil {
		data.Form = form
		if verrs, ok := validationErrors(err); ok {
			page.Errors = verrs
		} else {
			handlerLogger.Errorf("Failed to create product: %v", err)
			page.Error = "Erreur lors de l'ajout du produit."
		}
		page.Data = data
		c.HTML(statusFor(err), "product_form.gohtml", page)
		return
	}

	h.render.notify(&page, "success", "Produit ajouté avec succès")
	h.render.redirectLater(&page, productsRoute)
	data.Form = domain.NewProductForm()
	page.Data = data
	c.HTML(http.StatusOK, "product_form.gohtml", page)
}

func (h *ProductHandler) EditProduct(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "EditProduct")
	id := c.Param("id")
	page := h.render.page(c, "Mettre à jour le produit")
	data := productFormPage{Action: productsRoute + "/update/" + id, Update: true}

	product, err := h.useCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch product %s: %v", id, err)
		page.Error = "Erreur lors de la récupération du produit."
		page.Data = data
		c.HTML(statusFor(err), "product_form.gohtml", page)
		return
	}

	data.Form = domain.ProductFormFrom(product)
	data.Categories = h.categoryOptions(c, handlerLogger)
	data.Ready = true
	page.Data = data
	c.HTML(http.StatusOK, "product_form.gohtml", page)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "UpdateProduct")
	id := c.Param("id")
	page := h.render.page(c, "Mettre à jour le produit")
	data := productFormPage{Action: productsRoute + "/update/" + id, Update: true, Ready: true}

	var form domain.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		handlerLogger.Warnf("Failed to bind form: %v", err)
	}
	data.Categories = h.categoryOptions(c, handlerLogger)

	if growForm(c, &form) {
		data.Form = form
		page.Data = data
		c.HTML(http.StatusOK, "product_form.gohtml", page)
		return
	}

	data.Form = form
	if _, err := h.useCase.UpdateProduct(c.Request.Context(), id, form); err != nil {
		if verrs, ok := validationErrors(err); ok {
			page.Errors = verrs
		} else {
			handlerLogger.Errorf("Failed to update product %s: %v", id, err)
			page.Error = "Erreur lors de la mise à jour du produit"
		}
		page.Data = data
		c.HTML(statusFor(err), "product_form.gohtml", page)
		return
	}

	h.render.notify(&page, "success", "Le produit a été mis à jour avec succès")
	h.render.redirectLater(&page, productsRoute)
	page.Data = data
	c.HTML(http.StatusOK, "product_form.gohtml", page)
}

func (h *ProductHandler) ProductDetails(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ProductDetails")
	id := c.Param("productId")
	page := h.render.page(c, "Détails du produit")

	product, err := h.useCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch product %s: %v", id, err)
		page.Error = "Erreur lors de la récupération du produit."
		page.Data = productDetailsPage{}
		c.HTML(statusFor(err), "product_details.gohtml", page)
		return
	}
	page.Data = productDetailsPage{
		Product:       product,
		ConfirmDelete: c.Query("confirm") != "",
	}
	c.HTML(http.StatusOK, "product_details.gohtml", page)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "DeleteProduct")
	id := c.Param("id")
	back := localPath(c.PostForm("return"), productsRoute)

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		handlerLogger.Errorf("Failed to delete product %s: %v", id, err)
		setFlash(c, "error", "Erreur lors de la suppression du produit.")
	} else {
		setFlash(c, "success", "Le produit a été supprimé.")
	}
	c.Redirect(http.StatusSeeOther, back)
}
