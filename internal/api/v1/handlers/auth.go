package handlers

import (
	"errors"
	"time"

	"tugas-go/internal/auth"
	"tugas-go/internal/middleware"
	"tugas-go/internal/models"
	"tugas-go/internal/repository"
	"tugas-go/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler menangani register, login, logout, dan profil sesi.
// Semua dependensi di-inject dari composition root.
type AuthHandler struct {
	users    repository.UserRepository
	tokens   *auth.Manager
	validate *validator.Validate
}

func NewAuthHandler(users repository.UserRepository, tokens *auth.Manager, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, validate: validate}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	// struct RegisterRequest menerima inputan dari user
	type RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "bad request")
	}

	// Validasi dengan validator
	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	// Hash the password using bcrypt with default cost
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	user, err := h.users.Create(c.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		// email sudah terdaftar dianggap kesalahan input, bukan kesalahan server
		if errors.Is(err, repository.ErrDuplicateEmail) {
			logger.SecurityLogger.Warn("Duplicate email", zap.String("email", req.Email))
			return respondError(c, fiber.StatusBadRequest, "email already registered")
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	logger.AuditLogger.Info("User registered successfully", zap.Int("user_id", user.ID))
	return respondData(c, fiber.StatusCreated, "user created successfully", fiber.Map{
		"id": user.ID,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// struct LoginRequest menerima inputan dari user
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "bad request")
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		// user tidak ditemukan dan password salah dijawab sama
		// supaya email terdaftar tidak bisa ditebak
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.SecurityLogger.Warn("Login with unknown email", zap.String("email", req.Email))
			return respondError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.SecurityLogger.Warn("Invalid password", zap.Int("user_id", user.ID))
		return respondError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	tokenString, err := h.tokens.Sign(user.ID)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	// Token dikirim lewat cookie HTTP-only, bukan di body response
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    tokenString,
		Expires:  time.Now().Add(auth.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	logger.AuditLogger.Info("Login success", zap.Int("user_id", user.ID))
	return respondData(c, fiber.StatusOK, "login success", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Hapus cookie dengan masa berlaku di masa lalu
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	logger.AuditLogger.Info("Logout")
	return respondMessage(c, fiber.StatusOK, "logout success")
}

// Me mengembalikan profil user yang sedang login.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	user, err := h.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "user not found")
		}
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return respondData(c, fiber.StatusOK, "user found", user)
}
