package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"hoaportal_backend/internals/configs"
	database "hoaportal_backend/internals/databases"
	"hoaportal_backend/internals/middlewares"
	"hoaportal_backend/internals/revalidate"
	routes "hoaportal_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "HOA Portal Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	// request ID + per-request timeout
	app.Use(func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("X-Request-ID", reqID)
		c.Locals("request_id", reqID)

		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		if d := time.Since(start); d > 2*time.Second {
			log.Printf("[WARNING] slow request %s %s took %s (id=%s)", c.Method(), c.Path(), d, reqID)
		}
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	revalidate.Configure(configs.RevalidateURL, configs.RevalidateToken)

	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnvOr("PORT", "8080")
	go func() {
		log.Printf("[INFO] 🚀 Server listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("[ERROR] server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down gracefully...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("[SUCCESS] Server stopped ✅")
}
