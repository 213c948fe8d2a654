package v1

import (
	"tugas-go/internal/api/v1/handlers"
	"tugas-go/internal/auth"
	"tugas-go/internal/events"
	"tugas-go/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Dependencies membawa semua handler dan dependensi yang
// dibutuhkan untuk mendaftarkan route.
type Dependencies struct {
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
	Users  *handlers.UserHandler
	Tokens *auth.Manager
	Hub    *events.Hub
}

func RegisterRoutes(app *fiber.App, deps Dependencies) {
	requireAuth := middleware.RequireAuth(deps.Tokens)

	// Auth
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", deps.Auth.Register)
	authRoutes.Post("/login", deps.Auth.Login)
	authRoutes.Post("/logout", deps.Auth.Logout)
	authRoutes.Get("/me", requireAuth, deps.Auth.Me)

	// Task
	taskRoutes := app.Group("/tasks", requireAuth)
	taskRoutes.Get("/", deps.Tasks.List)
	taskRoutes.Post("/", deps.Tasks.Create)
	taskRoutes.Get("/:id", deps.Tasks.Get)
	taskRoutes.Put("/:id", deps.Tasks.Update)
	taskRoutes.Delete("/:id", deps.Tasks.Delete)

	// User
	userRoutes := app.Group("/users", requireAuth)
	userRoutes.Get("/:id", deps.Users.Get)
	userRoutes.Put("/:id", deps.Users.Update)

	// WebSocket feed untuk event task
	if deps.Hub != nil {
		app.Use("/ws", requireAuth, func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
			client := &events.Client{Conn: conn}
			deps.Hub.Register <- client
			defer func() {
				deps.Hub.Unregister <- client
			}()
			// Klien hanya menerima; koneksi ditutup saat read gagal
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}
}
