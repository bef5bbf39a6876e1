package router

import (
	"time"

	"github.com/gameshelf-dev/gameshelf/internal/config"
	"github.com/gameshelf-dev/gameshelf/internal/handlers"
	"github.com/gameshelf-dev/gameshelf/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger(zap.L()))
	r.Use(gin.Recovery())
	r.Use(middleware.Telemetry())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("/register", handlers.Register)
		users.POST("/token", handlers.Token)

		authenticated := users.Group("", middleware.AuthMiddleware())
		{
			authenticated.GET("/me", handlers.Me)
			authenticated.PUT("/me", handlers.RenameMe)
			authenticated.DELETE("/me", handlers.DeleteMe)
			authenticated.GET("", handlers.ListUsers)
			authenticated.GET("/:username", handlers.GetUser)
		}
	}

	games := r.Group("/games", middleware.AuthMiddleware())
	{
		games.POST("", handlers.CreateGame)
		games.GET("", handlers.ListGames)
		games.GET("/:game_id", handlers.GetGame)
		games.PUT("/:game_id", handlers.UpdateGame)
		games.PATCH("/:game_id/image", handlers.UpdateGameImage)
		games.DELETE("/:game_id", handlers.DeleteGame)
		games.POST("/:game_id/genres/:genre_id", handlers.AddGenreToGame)
		games.DELETE("/:game_id/genres/:genre_id", handlers.RemoveGenreFromGame)
	}

	genres := r.Group("/genres", middleware.AuthMiddleware())
	{
		genres.POST("", handlers.CreateGenre)
		genres.GET("", handlers.ListGenres)
		genres.GET("/:genre_id", handlers.GetGenre)
		genres.PUT("/:genre_id", handlers.UpdateGenre)
		genres.DELETE("/:genre_id", handlers.DeleteGenre)
	}

	backlogs := r.Group("/backlogs", middleware.AuthMiddleware())
	{
		backlogs.POST("", handlers.CreateBacklog)
		backlogs.GET("", handlers.ListBacklogs)
		backlogs.GET("/:backlog_id", handlers.GetBacklog)
		backlogs.DELETE("", handlers.DeleteBacklog)
		backlogs.PUT("", handlers.AddGameToBacklog)
		backlogs.PUT("/remove_game", handlers.RemoveGameFromBacklog)
	}

	completeGames := r.Group("/complete_games", middleware.AuthMiddleware())
	{
		completeGames.POST("", handlers.CreateCompleteGame)
		completeGames.GET("", handlers.ListCompleteGames)
		completeGames.GET("/:complete_game_id", handlers.GetCompleteGame)
		completeGames.DELETE("", handlers.DeleteCompleteGame)
		completeGames.PUT("", handlers.AddGameToCompleteGame)
		completeGames.PUT("/remove_game", handlers.RemoveGameFromCompleteGame)
	}

	return r
}
