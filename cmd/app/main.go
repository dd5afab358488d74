package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagate/cmd/fx/account_fx"
	"alphagate/cmd/fx/controllers_fx"
	"alphagate/cmd/fx/db_fx"
	"alphagate/cmd/fx/memcache_fx"
	"alphagate/cmd/fx/protocol_fx"
	"alphagate/cmd/fx/roster_fx"
	"alphagate/cmd/fx/stats_fx"
	"alphagate/internal/api/controllers"
	"alphagate/internal/config"
	"alphagate/internal/infra"
	"alphagate/internal/services"
	"alphagate/pkg/middleware"
	"alphagate/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		protocol_fx.Module,
		roster_fx.Module,
		stats_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(ConfigureAuth),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// ConfigureAuth hands the loaded secret to the token helpers before the
// server starts accepting requests.
func ConfigureAuth(cfg config.Config) {
	utils.ConfigureJWT(cfg.Auth.JWTSecret)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	db *gorm.DB,
	gate services.AccessGate,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	editorController *controllers.EditorController,
	rosterController *controllers.RosterController,
	statsController *controllers.StatsController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"store_configured": cfg.StoreConfigured()}, "ok")
	})

	RegisterRoutes(r, db, gate,
		accountController, catalogController, editorController, rosterController, statsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	db *gorm.DB,
	gate services.AccessGate,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	editorController *controllers.EditorController,
	rosterController *controllers.RosterController,
	statsController *controllers.StatsController) {

	accounts := r.Group("/accounts", middleware.StoreGuard(db))
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	protocols := r.Group("/protocols", middleware.StoreGuard(db), middleware.AccessContext(gate))
	protocols.GET("", catalogController.ListProtocols)
	protocols.GET("/:id", catalogController.GetProtocol)

	admin := r.Group("/admin",
		middleware.StoreGuard(db),
		middleware.AccessContext(gate),
		middleware.RequireLevel(services.LevelAdmin))
	admin.GET("/protocols", editorController.ListProtocols)
	admin.POST("/protocols", editorController.CreateProtocol)
	admin.GET("/protocols/:id", editorController.GetProtocol)
	admin.PUT("/protocols/:id", editorController.UpdateProtocol)
	admin.DELETE("/protocols/:id", editorController.DeleteProtocol)

	admin.GET("/users", rosterController.ListUsers)
	admin.PUT("/users/:id", rosterController.UpdateUser)

	admin.GET("/stats", statsController.GetStats)
}
