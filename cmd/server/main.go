package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/westal/clickup-bridge/internal/api/handlers"
	"github.com/westal/clickup-bridge/internal/api/middleware"
	"github.com/westal/clickup-bridge/internal/clickup"
	"github.com/westal/clickup-bridge/internal/config"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config:", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "clickup-bridge",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	// CLICKUP CLIENT
	opts := []clickup.Option{
		clickup.WithLogger(logger),
		clickup.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		}),
	}
	if cfg.ClickUpBaseURL != "" {
		opts = append(opts, clickup.WithBaseURL(cfg.ClickUpBaseURL))
	}
	click, err := clickup.New(cfg.ClickUpToken, opts...)
	if err != nil {
		log.Fatal("failed init clickup client:", err)
	}

	// HANDLERS
	authHandler, err := handlers.NewAuthHandler(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatal("failed init auth handler:", err)
	}
	clickupHandler := handlers.NewClickUpHandler(click)
	additionalHandler := handlers.NewAdditionalHandler(click)

	// ROUTER
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api := r.Group("/api/v1")

	// AUTH ROUTES
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// CLICKUP PASSTHROUGH ROUTES
	cu := api.Group("/clickup", middleware.Auth(cfg.JWTSecret))
	{
		cu.GET("/user", clickupHandler.GetAuthorizedUser)
		cu.GET("/teams", clickupHandler.GetAuthorizedTeams)
		cu.GET("/group", clickupHandler.GetTeams)

		cu.GET("/team/:team_id/space", clickupHandler.GetSpaces)
		cu.GET("/team/:team_id/task", clickupHandler.GetTeamTasks)
		cu.GET("/team/:team_id/user/:user_id", clickupHandler.GetUser)
		cu.GET("/team/:team_id/time_entries", clickupHandler.GetTimeEntries)
		cu.GET("/team/:team_id/custom_item", clickupHandler.GetCustomTaskTypes)

		cu.GET("/space/:space_id", clickupHandler.GetSpace)
		cu.GET("/space/:space_id/folder", clickupHandler.GetFolders)
		cu.GET("/space/:space_id/list", clickupHandler.GetFolderlessLists)

		cu.GET("/folder/:folder_id", clickupHandler.GetFolder)
		cu.GET("/folder/:folder_id/list", clickupHandler.GetLists)

		cu.GET("/list/:list_id", clickupHandler.GetList)
		cu.GET("/list/:list_id/task", clickupHandler.GetTasks)
		cu.GET("/list/:list_id/comment", clickupHandler.GetListComments)
		cu.GET("/list/:list_id/field", clickupHandler.GetAccessibleCustomFields)

		cu.GET("/task/:task_id", clickupHandler.GetTask)
		cu.GET("/task/:task_id/comment", clickupHandler.GetTaskComments)
		cu.GET("/view/:view_id/comment", clickupHandler.GetChatViewComments)

		cu.POST("/list/:list_id/task", clickupHandler.CreateTask)
		cu.PUT("/task/:task_id", clickupHandler.EditTask)
		cu.POST("/task/:task_id/checklist", clickupHandler.CreateChecklist)
		cu.PUT("/checklist/:checklist_id", clickupHandler.EditChecklist)
		cu.POST("/checklist/:checklist_id/checklist_item", clickupHandler.CreateChecklistItem)
		cu.PUT("/checklist/:checklist_id/checklist_item/:checklist_item_id", clickupHandler.EditChecklistItem)
		cu.POST("/task/:task_id/comment", clickupHandler.CreateTaskComment)
		cu.POST("/list/:list_id/comment", clickupHandler.CreateListComment)
		cu.POST("/view/:view_id/comment", clickupHandler.CreateChatViewComment)
		cu.PUT("/comment/:comment_id", clickupHandler.UpdateComment)
		cu.POST("/task/:task_id/link/:links_to", clickupHandler.AddTaskLink)
		cu.POST("/task/:task_id/dependency", clickupHandler.AddTaskDependency)

		cu.DELETE("/comment/:comment_id", clickupHandler.DeleteComment)
		cu.DELETE("/list/:list_id/task/:task_id", clickupHandler.RemoveTaskFromList)
		cu.DELETE("/task/:task_id", clickupHandler.DeleteTask)
		cu.DELETE("/checklist/:checklist_id", clickupHandler.DeleteChecklist)
		cu.DELETE("/checklist/:checklist_id/checklist_item/:checklist_item_id", clickupHandler.DeleteChecklistItem)
		cu.DELETE("/task/:task_id/link/:links_to", clickupHandler.DeleteTaskLink)
		cu.DELETE("/task/:task_id/dependency", clickupHandler.DeleteTaskDependency)
	}

	// AGGREGATION + COMPOUND ROUTES
	additional := api.Group("/additional", middleware.Auth(cfg.JWTSecret))
	{
		additional.GET("/user_worktime", additionalHandler.UserWorktime)
		additional.GET("/user_tasks", additionalHandler.UserTasks)
		additional.POST("/checklist_items", additionalHandler.CreateChecklistItems)
		additional.POST("/task_comprehensive", additionalHandler.CreateTaskComprehensive)
	}

	// START SERVER
	logger.Info("server running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
