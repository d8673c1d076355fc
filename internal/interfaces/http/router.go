package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authhelpers "wicket/internal/application/auth/helpers"
	authusecases "wicket/internal/application/auth/usecases"
	noteusecases "wicket/internal/application/note/usecases"
	domainauth "wicket/internal/domain/auth"
	infraauth "wicket/internal/infrastructure/auth"
	"wicket/internal/infrastructure/config"
	"wicket/internal/infrastructure/email"
	"wicket/internal/infrastructure/repository"
	"wicket/internal/interfaces/http/handlers"
	"wicket/internal/interfaces/http/middleware"
	"wicket/internal/shared/logger"
	"wicket/internal/shared/services/markdown"
)

// Router wires the application together and owns the gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	noteHandler    *handlers.NoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	sessionRepo := repository.NewSessionRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	tokenService, err := infraauth.NewTokenService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.MagicLinkExpMinutes,
		cfg.Auth.JWT.SessionExpDays,
	)
	if err != nil {
		return nil, err
	}

	allowlist := domainauth.NewAllowlist(cfg.Auth.AllowedEmailList())

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	markdownService := markdown.NewService()

	sessionManager := authhelpers.NewSessionManager(sessionRepo, tokenService, log)

	requestLoginUC := authusecases.NewRequestLoginUseCase(allowlist, tokenService, emailService, cfg.Server.BaseURL, log)
	redeemUC := authusecases.NewRedeemMagicLinkUseCase(tokenService, allowlist, sessionManager, emailService, cfg.Auth.AdminEmail, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionManager, log)
	authenticateUC := authusecases.NewAuthenticateUseCase(tokenService, allowlist, sessionRepo, log)

	createNoteUC := noteusecases.NewCreateNoteUseCase(noteRepo, log)
	listNotesUC := noteusecases.NewListNotesUseCase(noteRepo, markdownService, log)

	authHandler := handlers.NewAuthHandler(requestLoginUC, redeemUC, logoutUC, cfg.Auth, log)
	noteHandler := handlers.NewNoteHandler(createNoteUC, listNotesUC, log)

	authMiddleware := middleware.NewAuthMiddleware(authenticateUC, log)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		noteHandler:    noteHandler,
		authMiddleware: authMiddleware,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())

	// Perimeter gate: every route goes through it, public paths excepted.
	r.engine.Use(r.authMiddleware.RequireAuth())

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.GET("/login", r.authHandler.LoginPage)

	auth := r.engine.Group("/api/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/verify", r.authHandler.Verify)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/logout", r.authHandler.Logout)
	}

	r.engine.GET("/", r.noteHandler.Home)

	// The API guard runs the same authentication decision as the
	// perimeter; only the denial shape differs.
	notes := r.engine.Group("/api/notes")
	notes.Use(r.authMiddleware.RequireAuthAPI())
	{
		notes.GET("", r.noteHandler.ListNotes)
		notes.POST("", r.noteHandler.CreateNote)
	}
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
