package handlers

import (
	"errors"
	"time"

	"tugas-go/internal/events"
	"tugas-go/internal/models"
	"tugas-go/internal/repository"
	"tugas-go/pkg/cache"
	"tugas-go/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TaskHandler menangani CRUD task. Semua operasi dibatasi ke task milik
// user yang sedang login; task user lain dijawab 404, bukan 403,
// supaya keberadaannya tidak bocor.
type TaskHandler struct {
	tasks     repository.TaskRepository
	taskCache *cache.TaskCache
	hub       *events.Hub
	validate  *validator.Validate
}

func NewTaskHandler(tasks repository.TaskRepository, taskCache *cache.TaskCache, hub *events.Hub, validate *validator.Validate) *TaskHandler {
	return &TaskHandler{tasks: tasks, taskCache: taskCache, hub: hub, validate: validate}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	// struct TaskRequest menerima inputan dari user
	type TaskRequest struct {
		Title       string     `json:"title" validate:"required"`
		Description string     `json:"description"`
		Category    string     `json:"category" validate:"omitempty,oneof=work personal shopping health other"`
		Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
		Status      string     `json:"status" validate:"omitempty,oneof=pending completed"`
		DueDate     *time.Time `json:"due_date"`
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "bad request")
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in create task", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	// Field enum yang kosong diisi nilai default
	if req.Category == "" {
		req.Category = models.CategoryOther
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}

	task, err := h.tasks.Create(c.Context(), models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	h.hub.Publish(events.ActionCreated, task)

	logger.AuditLogger.Info("Task created successfully", zap.Int("task_id", task.ID), zap.Int("user_id", userID))
	return respondData(c, fiber.StatusCreated, "task created successfully", task)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	// Parameter query yang kosong tidak ikut membatasi hasil
	filter := repository.TaskFilter{
		OwnerID:  userID,
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	tasks, err := h.tasks.Find(c.Context(), filter)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	logger.AuditLogger.Info("Tasks fetched successfully", zap.Int("user_id", userID), zap.Int("count", len(tasks)))
	return respondData(c, fiber.StatusOK, "tasks fetched successfully", tasks)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "invalid task id")
	}

	// Coba ambil dari cache Redis dulu
	if task, ok := h.taskCache.Get(c.Context(), taskID); ok {
		// Entri cache tidak membawa owner scoping dari query,
		// jadi kepemilikan dicek di sini
		if task.UserID != userID {
			return respondError(c, fiber.StatusNotFound, "task not found")
		}
		logger.AuditLogger.Info("Task found (from cache)", zap.Int("task_id", taskID))
		return respondData(c, fiber.StatusOK, "task found", task)
	}

	task, err := h.tasks.GetByID(c.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "task not found")
		}
		logger.ErrorLogger.Error("Error fetching task", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	h.taskCache.Set(c.Context(), task)

	logger.AuditLogger.Info("Task found", zap.Int("task_id", taskID))
	return respondData(c, fiber.StatusOK, "task found", task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "invalid task id")
	}

	// pointer (*) untuk menandakan bahwa field bisa kosong
	type UpdateTaskRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Category    *string    `json:"category"`
		Priority    *string    `json:"priority"`
		Status      *string    `json:"status"`
		DueDate     *time.Time `json:"due_date"`
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "bad request")
	}

	// Field enum hanya divalidasi jika dikirim
	if req.Title != nil && *req.Title == "" {
		return respondError(c, fiber.StatusBadRequest, "title cannot be empty")
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return respondError(c, fiber.StatusBadRequest, "invalid category")
	}
	if req.Priority != nil && !models.ValidPriority(*req.Priority) {
		return respondError(c, fiber.StatusBadRequest, "invalid priority")
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return respondError(c, fiber.StatusBadRequest, "invalid status")
	}

	task, err := h.tasks.Update(c.Context(), taskID, userID, repository.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "task not found")
		}
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	// Perbarui cache Redis untuk task ini
	h.taskCache.Invalidate(c.Context(), taskID)
	h.taskCache.Set(c.Context(), task)

	h.hub.Publish(events.ActionUpdated, task)

	logger.AuditLogger.Info("Task updated", zap.Int("task_id", taskID))
	return respondData(c, fiber.StatusOK, "task updated successfully", task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return respondError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := h.tasks.Delete(c.Context(), taskID, userID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "task not found")
		}
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	// Hapus cache Redis untuk task ini
	h.taskCache.Invalidate(c.Context(), taskID)

	h.hub.Publish(events.ActionDeleted, models.Task{ID: taskID, UserID: userID})

	logger.AuditLogger.Info("Task deleted", zap.Int("task_id", taskID))
	return respondMessage(c, fiber.StatusOK, "task deleted successfully")
}
