package handlers

import (
	"errors"

	"tugas-go/internal/repository"
	"tugas-go/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler menangani profil user. Setiap user hanya bisa melihat dan
// mengubah profilnya sendiri; id user lain dijawab 404.
type UserHandler struct {
	users    repository.UserRepository
	validate *validator.Validate
}

func NewUserHandler(users repository.UserRepository, validate *validator.Validate) *UserHandler {
	return &UserHandler{users: users, validate: validate}
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	targetID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid user ID", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "invalid user id")
	}

	// Profil user lain tidak terlihat
	if userID != targetID {
		logger.SecurityLogger.Warn("Cross-user profile access",
			zap.Int("user_id", userID), zap.Int("target_id", targetID))
		return respondError(c, fiber.StatusNotFound, "user not found")
	}

	user, err := h.users.GetByID(c.Context(), targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "user not found")
		}
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	logger.AuditLogger.Info("User found", zap.Int("user_id", targetID))
	return respondData(c, fiber.StatusOK, "user found", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	targetID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid user ID", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if userID != targetID {
		logger.SecurityLogger.Warn("Cross-user profile update",
			zap.Int("user_id", userID), zap.Int("target_id", targetID))
		return respondError(c, fiber.StatusNotFound, "user not found")
	}

	// pointer (*) untuk menandakan bahwa field bisa kosong
	type UpdateUserRequest struct {
		Name     *string `json:"name"`
		Password *string `json:"password" validate:"omitempty,min=6"`
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update user", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "bad request")
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in update user", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Name != nil && *req.Name == "" {
		return respondError(c, fiber.StatusBadRequest, "name cannot be empty")
	}

	patch := repository.UserPatch{Name: req.Name}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
			return respondError(c, fiber.StatusInternalServerError, "internal server error")
		}
		hashed := string(hashedPassword)
		patch.PasswordHash = &hashed
	}

	user, err := h.users.Update(c.Context(), targetID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "user not found")
		}
		logger.ErrorLogger.Error("Error updating user", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	logger.AuditLogger.Info("User updated successfully", zap.Int("user_id", targetID))
	return respondData(c, fiber.StatusOK, "user updated successfully", user)
}
