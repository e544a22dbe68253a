package delivery

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const categoriesRoute = "/categories"

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	render  *renderer
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, r *renderer, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		render:  r,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group(categoriesRoute)
	{
		categories.GET("", h.ListCategories)
		categories.GET("/add", h.NewCategory)
		categories.POST("/add", h.CreateCategory)
		categories.GET("/update/:id", h.EditCategory)
		categories.POST("/update/:id", h.UpdateCategory)
		categories.GET("/delete", h.DeletePage)
		categories.POST("/delete/:id", h.DeleteCategory)
	}
}

type categoryFormPage struct {
	Form   domain.CategoryForm
	Action string
	Update bool
	Ready  bool
}

func categoryID(c domain.Category) string { return c.ID }

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	h.renderList(c, "ListCategories", categoriesRoute, "Liste des Catégories", "category_list.gohtml")
}

// DeletePage lists every category with a delete action only.
func (h *CategoryHandler) DeletePage(c *gin.Context) {
	h.renderList(c, "DeletePage", categoriesRoute+"/delete", "Supprimer une Catégorie", "category_delete.gohtml")
}

func (h *CategoryHandler) renderList(c *gin.Context, handler, base, title, tmpl string) {
	handlerLogger := h.log.WithField("handler", handler)
	q := listQuery(c)
	page := h.render.page(c, title)
	status := http.StatusOK

	view, err := h.useCase.ListCategories(c.Request.Context(), q)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch categories: %v", err)
		view.Error = "Erreur lors de la récupération des catégories."
		status = statusFor(err)
	}
	page.Data = listPage[domain.Category]{
		View:       view,
		Links:      listLinks{base: base, term: q.Term, menu: q.Menu},
		Confirming: find(view.Source, q.Confirm, categoryID),
	}
	c.HTML(status, tmpl, page)
}

func (h *CategoryHandler) NewCategory(c *gin.Context) {
	page := h.render.page(c, "Créer une catégorie")
	page.Data = categoryFormPage{Action: categoriesRoute + "/add", Ready: true}
	c.HTML(http.StatusOK, "category_form.gohtml", page)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "CreateCategory")
	page := h.render.page(c, "Créer une catégorie")
	data := categoryFormPage{Action: categoriesRoute + "/add", Ready: true}

	var form domain.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		handlerLogger.Warnf("Failed to bind form: %v", err)
	}

	_, err := h.useCase.CreateCategory(c.Request.Context(), form)
	if err != nil {
		data.Form = form
		if verrs, ok := validationErrors(err); ok {
			page.Errors = verrs
		} else {
			handlerLogger.Errorf("Failed to create category: %v", err)
			page.Error = apiMessage(err, "Erreur lors de la création de la catégorie. Veuillez réessayer.")
		}
		page.Data = data
		c.HTML(statusFor(err), "category_form.gohtml", page)
		return
	}

	h.render.notify(&page, "success", "Catégorie créée avec succès")
	h.render.redirectLater(&page, categoriesRoute)
	page.Data = data
	c.HTML(http.StatusOK, "category_form.gohtml", page)
}

func (h *CategoryHandler) EditCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "EditCategory")
	id := c.Param("id")
	page := h.render.page(c, "Mettre à jour la catégorie")
	data := categoryFormPage{Action: categoriesRoute + "/update/" + id, Update: true}

	category, err := h.useCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch category %s: %v", id, err)
		page.Error = "Erreur lors de la récupération de la catégorie"
		page.Data = data
		c.HTML(statusFor(err), "category_form.gohtml", page)
		return
	}

	data.Form = domain.CategoryFormFrom(category)
	data.Ready = true
	page.Data = data
	c.HTML(http.StatusOK, "category_form.gohtml", page)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "UpdateCategory")
	id := c.Param("id")
	page := h.render.page(c, "Mettre à jour la catégorie")
	data := categoryFormPage{Action: categoriesRoute + "/update/" + id, Update: true, Ready: true}

	var form domain.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		handlerLogger.Warnf("Failed to bind form: %v", err)
	}
	data.Form = form

	if _, err := h.useCase.UpdateCategory(c.Request.Context(), id, form); err != nil {
		if verrs, ok := validationErrors(err); ok {
			page.Errors = verrs
		} else {
			handlerLogger.Errorf("Failed to update category %s: %v", id, err)
			page.Error = "Erreur lors de la mise à jour de la catégorie"
		}
		page.Data = data
		c.HTML(statusFor(err), "category_form.gohtml", page)
		return
	}

	h.render.notify(&page, "success", "Catégorie mise à jour avec succès")
	h.render.redirectLater(&page, categoriesRoute)
	page.Data = data
	c.HTML(http.StatusOK, "category_form.gohtml", page)
}

// DeleteCategory runs only from the confirmation dialog. The list is re-fetched after the redirect.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "DeleteCategory")
	id := c.Param("id")
	back := localPath(c.PostForm("return"), categoriesRoute)

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		handlerLogger.Errorf("Failed to delete category %s: %v", id, err)
		setFlash(c, "error", "Erreur lors de la suppression de la catégorie.")
	} else {
		setFlash(c, "success", "La catégorie a été supprimée.")
	}
	c.Redirect(http.StatusSeeOther, back)
}
