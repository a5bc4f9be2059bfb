package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/auth"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/cocktail"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/db"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/eightysix"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/gitcommit"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/llm"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/menu"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/middleware"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/nlp"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/ocr"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/special"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/storage"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/wine"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"GITHUB_TOKEN",
	}
	if os.Getenv("STORAGE_BACKEND") == "r2" {
		required = append(required,
			"R2_ACCESS_KEY",
			"R2_SECRET_KEY",
			"R2_BUCKET_NAME",
			"R2_ENDPOINT",
			"R2_PUBLIC_BASE_URL",
		)
	} else {
		required = append(required, "CLOUDINARY_URL")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	mustHaveBinary("tesseract")

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerMethodNotAllowed(r)

	// ───────────────────────── STORAGE ─────────────────────────
	uploader, err := newUploader()
	if err != nil {
		log.Fatal("❌ Storage init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	wineRepo := wine.NewPostgresRepository(pgDB)
	cocktailRepo := cocktail.NewPostgresRepository(pgDB)
	specialRepo := special.NewPostgresRepository(pgDB)
	eightySixRepo := eightysix.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	llmClient := llm.NewGeminiClient()

	wineService := wine.NewService(wineRepo)
	cocktailService := cocktail.NewService(cocktailRepo)
	specialService := special.NewService(specialRepo)

	menuService := menu.NewService(menuRepo, uploader, llmClient, func() (menu.Recognizer, error) {
		return ocr.NewEngine()
	})

	nlpService := nlp.NewService(llmClient, wineRepo, cocktailRepo, specialRepo, eightySixRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	wineHandler := wine.NewHandler(wineService)
	cocktailHandler := cocktail.NewHandler(cocktailService)
	specialHandler := special.NewHandler(specialService)
	eightySixHandler := eightysix.NewHandler(eightySixRepo)
	menuHandler := menu.NewHandler(menuService)
	nlpHandler := nlp.NewHandler(nlpService)
	gitHandler := gitcommit.NewHandler(gitcommit.NewClient())

	// ───────────────────────── API ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/wines", wineHandler.List)
		api.POST("/wines", wineHandler.Create)
		api.PUT("/wines", wineHandler.Update)
		api.DELETE("/wines", wineHandler.Delete)

		api.GET("/cocktails", cocktailHandler.List)
		api.POST("/cocktails", cocktailHandler.Create)
		api.PUT("/cocktails", cocktailHandler.Update)
		api.DELETE("/cocktails", cocktailHandler.Delete)

		api.GET("/specials", specialHandler.List)
		api.POST("/specials", specialHandler.Create)
		api.PUT("/specials", specialHandler.Update)
		api.DELETE("/specials", specialHandler.Delete)

		api.POST("/ocr-process", menuHandler.Process)
		api.GET("/menus", menuHandler.List)

		api.POST("/parse-nlp-command", nlpHandler.Parse)

		api.GET("/eighty-sixed", middleware.RequireAuth(), eightySixHandler.List)
		api.POST("/github-commit", middleware.RequireAuth(), gitHandler.Commit)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	addr := ":8000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Println("🚀 API running at http://localhost" + addr)
	r.Run(addr)
}

func newUploader() (storage.Uploader, error) {
	if os.Getenv("STORAGE_BACKEND") == "r2" {
		return storage.NewR2Uploader(context.Background())
	}
	return storage.NewCloudinaryUploader()
}

// registerMethodNotAllowed answers unsupported verbs on known
// collection routes with a 405 and an Allow header instead of
// gin's default 404.
func registerMethodNotAllowed(r *gin.Engine) {
	allowed := map[string]string{
		"/api/wines":     "GET, POST, PUT, DELETE",
		"/api/cocktails": "GET, POST, PUT, DELETE",
		"/api/specials":  "GET, POST, PUT, DELETE",
	}

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		path := strings.TrimSuffix(c.Request.URL.Path, "/")
		if verbs, ok := allowed[path]; ok {
			c.Header("Allow", verbs)
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
}

// --------------------------------------------------
func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}
