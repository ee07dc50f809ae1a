package app

import (
	"context"
	"html/template"
	"net/http"

	"dms/internal/config"
	"dms/internal/domain/document"
	"dms/internal/domain/download"
	"dms/internal/domain/report"
	"dms/internal/domain/upload"
	"dms/internal/domain/user"
	"dms/internal/middleware"
	"dms/internal/session"
	"dms/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Migrate creates or updates the four tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&document.Line{},
		&upload.Record{},
		&download.Event{},
	)
}

// New assembles the router: migrations, admin seed, session store,
// middleware, and every route group. Shared by cmd/api and the tests.
func New(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if err := Migrate(db); err != nil {
		return nil, err
	}

	userRepo := user.NewRepository(db)
	documentRepo := document.NewRepository(db)
	uploadRepo := upload.NewRepository(db)
	downloadRepo := download.NewRepository(db)

	userService := user.NewService(userRepo)
	documentService := document.NewService(documentRepo)
	uploadService := upload.NewService(uploadRepo, cfg.UploadDir)
	downloadService := download.NewService(downloadRepo, uploadRepo)
	reportService := report.NewService(documentRepo, uploadRepo, downloadRepo)

	userHandler := user.NewHandler(userService)
	documentHandler := document.NewHandler(documentService)
	uploadHandler := upload.NewHandler(uploadService)
	downloadHandler := download.NewHandler(downloadService)
	reportHandler := report.NewHandler(reportService)

	if err := userService.EnsureAdmin(context.Background()); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.LimitBody(cfg.MaxUploadBytes))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("dms_session", store))

	tpl := template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tpl)

	r.GET("/", func(c *gin.Context) {
		if session.IsLoggedIn(c) {
			c.Redirect(http.StatusFound, "/menu")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	// public surface: login flow and the autocomplete endpoint
	user.RegisterPublicRoutes(r, userHandler)
	document.RegisterPublicRoutes(r, documentHandler)

	protected := r.Group("/")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/menu", func(c *gin.Context) {
			c.HTML(http.StatusOK, "menu.html", gin.H{"user": middleware.CurrentUser(c)})
		})

		user.RegisterRoutes(protected, userHandler)
		document.RegisterRoutes(protected, documentHandler)
		upload.RegisterRoutes(protected, uploadHandler)
		download.RegisterRoutes(protected, downloadHandler)
		report.RegisterRoutes(protected, reportHandler)
	}

	return r, nil
}
