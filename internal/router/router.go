package router

import (
	"io/fs"
	"net/http"
	"valhalla/internal/handlers"
	"valhalla/internal/middleware"
	"valhalla/internal/services"
	"valhalla/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

type Config struct {
	SessionSecret string
	// Verifier decides gate submissions. Nil means the local Secret.
	Verifier services.PasskeyVerifier
	// Secret backs the /api/verify-passkey endpoint.
	Secret services.PasskeySecret
}

// New builds the engine: sessions, templates, static assets and routes.
func New(cfg Config) *gin.Engine {
	r := gin.Default()

	secret := cfg.SessionSecret
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("valhalla_session", store))

	templates, err := fs.Sub(web.FS, "templates")
	if err != nil {
		panic(err)
	}
	r.HTMLRender = loadTemplates(templates)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	verifier := cfg.Verifier
	if verifier == nil {
		verifier = &services.LocalVerifier{Secret: cfg.Secret}
	}

	RegisterRoutes(r, verifier, cfg.Secret)
	return r
}

func RegisterRoutes(r *gin.Engine, verifier services.PasskeyVerifier, secret services.PasskeySecret) {
	gateHandler := handlers.NewGateHandler(verifier)
	verifyHandler := handlers.NewVerifyHandler(secret)
	homeHandler := handlers.NewHomeHandler()
	wallHandler := handlers.NewWallHandler()
	programHandler := handlers.NewProgramHandler()
	forumHandler := handlers.NewForumHandler()
	seoHandler := handlers.NewSEOHandler()

	// Public Routes
	r.GET("/gate", gateHandler.Show)
	r.POST("/gate", gateHandler.Submit)
	r.GET("/robots.txt", seoHandler.RobotsTxt)

	api := r.Group("/api")
	{
		api.OPTIONS("/verify-passkey", verifyHandler.Preflight)
		api.POST("/verify-passkey", verifyHandler.Verify)
	}

	// Everything else sits behind the gate.
	gated := r.Group("/")
	gated.Use(middleware.GateRequired())
	{
		gated.GET("/", homeHandler.Index)
		gated.POST("/wall", wallHandler.Create)
		gated.GET("/programs/:slug", programHandler.Show)

		gated.GET("/forum", forumHandler.List)
		gated.POST("/forum", forumHandler.Create)
		gated.GET("/forum/new", forumHandler.ShowCreate)
		gated.GET("/forum/t/:tid", forumHandler.Detail)
		gated.POST("/forum/t/:tid/replies", forumHandler.CreateReply)
	}

	r.NoRoute(handlers.NotFound)
}
