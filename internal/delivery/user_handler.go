package delivery

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const usersRoute = "/users"

type UserHandler struct {
	useCase usecase.UserUseCase
	render  *renderer
	log     *logrus.Logger
}

func NewUserHandler(uc usecase.UserUseCase, r *renderer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		useCase: uc,
		render:  r,
		log:     logger,
	}
}

func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group(usersRoute)
	{
		users.GET("", h.ListUsers)
		users.GET("/add", h.NewUser)
		users.POST("/add", h.CreateUser)
		users.GET("/update/:id", h.EditUser)
		users.POST("/update/:id", h.UpdateUser)
		users.GET("/delete/:id", h.ConfirmDelete)
		users.POST("/delete/:id", h.DeleteUser)
	}
}

type userListPage struct {
	listPage[domain.User]
	Selected *domain.User
}

type userFormPage struct {
	Form   domain.UserForm
	Action string
	Update bool
	Ready  bool
}

func userID(u domain.User) string { return u.ID }

// ListUsers renders the users table. ?user=<id> expands the details panel of one user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListUsers")
	q := listQuery(c)
	page := h.render.page(c, "Liste des Utilisateurs")
	status := http.StatusOK

	view, err := h.useCase.ListUsers(c.Request.Context(), q)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch users: %v", err)
		view.Error = "Erreur lors de la récupération des utilisateurs."
		status = statusFor(err)
	}
	page.Data = userListPage{
		listPage: listPage[domain.User]{
			View:       view,
			Links:      listLinks{base: usersRoute, term: q.Term, menu: q.Menu},
			Confirming: find(view.Source, q.Confirm, userID),
		},
		Selected: find(view.Displayed, c.Query("user"), userID),
	}
	c.HTML(status, "user_list.gohtml", page)
}

func (h *UserHandler) NewUser(c *gin.Context) {
	page := h.render.page(c, "Ajouter un utilisateur")
	page.Data = userFormPage{Action: usersRoute + "/add", Ready: true}
	c.HTML(http.StatusOK, "user_form.gohtml", page)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "CreateUser")
	page := h.render.page(c, "Ajouter un utilisateur")
	data := userFormPage{Action: usersRoute + "/add", Ready: true}

	var form domain.UserForm
	if err := c.ShouldBind(&form); err != nil {
		handlerLogger.Warnf("Failed to bind form: %v", err)
	}

	if _, err := h.useCase.CreateUser(c.Request.Context(), form); err != nil {
		data.Form = form
		if verrs, ok := validationErrors(err); ok {
			page.Errors = verrs
		} else {
			handlerLogger.Errorf("Failed to create user: %v", err)
			page.Error = apiMessage(err, "Erreur lors de la création de l'utilisateur.")
		}
		page.Data = data
		c.HTML(statusFor(err), "user_form.gohtml", page)
		return
	}

	h.render.notify(&page, "success", "Utilisateur créé avec succès")
	h.render.redirectLater(&page, usersRoute)
	page.Data = data
	c.HTML(http.StatusOK, "user_form.gohtml", page)
}

func (h *UserHandler) EditUser(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "EditUser")
	id := c.Param("id")
	page := h.render.page(c, "Modifier les informations de l'utilisateur")
	data := userFormPage{Action: usersRoute + "/update/" + id, Update: true}

	user, err := h.useCase.GetUser(c.Request.Context(), id)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch user %s: %v", id, err)
		if isNotFound(err) {
			page.Error = "Utilisateur non trouvé"
		} else {
			page.Error = "Erreur lors de la récupération des données utilisateur"
		}
		page.Data = data
		c.HTML(statusFor(err), "user_form.gohtml", page)
		return
	}

	data.Form = domain.UserFormFrom(user)
	data.Ready = true
	page.Data = data
	c.HTML(http.StatusOK, "user_form.gohtml", page)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "UpdateUser")
	id := c.Param("id")
	page := h.render.page(c, "Modifier les informations de l'utilisateur")
	data := userFormPage{Action: usersRoute + "/update/" + id, Update: true, Ready: true}

	var form domain.UserForm
	if err := c.ShouldBind(&form); err != nil {
		handlerLogger.Warnf("Failed to bind form: %v", err)
	}
	data.Form = form

	if _, err := h.useCase.UpdateUser(c.Request.Context(), id, form); err != nil {
		if verrs, ok := validationErrors(err); ok {
			page.Errors = verrs
		} else {
			handlerLogger.Errorf("Failed to update user %s: %v", id, err)
			page.Error = "Erreur lors de la mise à jour de l'utilisateur"
		}
		page.Data = data
		c.HTML(statusFor(err), "user_form.gohtml", page)
		return
	}

	h.render.notify(&page, "success", "Utilisateur mis à jour avec succès")
	h.render.redirectLater(&page, usersRoute)
	data.Form.Password = ""
	page.Data = data
	c.HTML(http.StatusOK, "user_form.gohtml", page)
}

// ConfirmDelete is the standalone confirmation page of /users/delete/:id.
func (h *UserHandler) ConfirmDelete(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ConfirmDelete")
	id := c.Param("id")
	page := h.render.page(c, "Supprimer un utilisateur")

	user, err := h.useCase.GetUser(c.Request.Context(), id)
	if err != nil {
		handlerLogger.Warnf("Failed to fetch user %s: %v", id, err)
		page.Error = "Erreur lors de la récupération des données utilisateur"
		c.HTML(statusFor(err), "user_delete.gohtml", page)
		return
	}
	page.Data = user
	c.HTML(http.StatusOK, "user_delete.gohtml", page)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "DeleteUser")
	id := c.Param("id")
	back := localPath(c.PostForm("return"), usersRoute)

	if err := h.useCase.DeleteUser(c.Request.Context(), id); err != nil {
		handlerLogger.Errorf("Failed to delete user %s: %v", id, err)
		setFlash(c, "error", "Erreur lors de la suppression de l'utilisateur.")
	} else {
		setFlash(c, "success", "L'utilisateur a été supprimé.")
	}
	c.Redirect(http.StatusSeeOther, back)
}
