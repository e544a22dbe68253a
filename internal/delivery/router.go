package delivery

import (
	"fmt"
	"time"

	"backoffice/internal/middleware"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterOptions carries what the page handlers need besides the use cases.
type RouterOptions struct {
	RedirectDelay time.Duration
	SessionCookie string
	SessionSecret string
}

type UseCases struct {
	Categories usecase.CategoryUseCase
	Products   usecase.ProductUseCase
	Users      usecase.UserUseCase
	Orders     usecase.OrderUseCase
}

func NewRouter(uc UseCases, opts RouterOptions, logger *logrus.Logger) (*gin.Engine, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.SetHTMLTemplate(tmpl)
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.SessionMiddleware(opts.SessionCookie, opts.SessionSecret, logger),
	)

	r := &renderer{redirectDelay: opts.RedirectDelay}
	NewShellHandler(r).RegisterRoutes(router)
	NewCategoryHandler(uc.Categories, r, logger).RegisterRoutes(router)
	NewProductHandler(uc.Products, r, logger).RegisterRoutes(router)
	NewUserHandler(uc.Users, r, logger).RegisterRoutes(router)
	NewOrderHandler(uc.Orders, r, logger).RegisterRoutes(router)

	return router, nil
}
