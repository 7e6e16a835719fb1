package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskmanager/backend/internal/dto"
	"github.com/taskmanager/backend/internal/middleware"
	"github.com/taskmanager/backend/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /tasks. The full set is returned in ascending id order;
// sorting, filtering, and pagination happen in the client.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.taskService.List()
	if err != nil {
		return serviceError(c, err, "Failed to fetch tasks")
	}
	return c.JSON(tasks)
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return taskNotFound(c)
		}
		return serviceError(c, err, "Failed to retrieve task")
	}
	return c.JSON(task)
}

// Create handles POST /tasks. Creation is the only guarded task route; the
// creator's userid comes from the verified token claims.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	createdBy := ""
	if user, err := middleware.CurrentUser(c); err == nil {
		createdBy = user.Userid
	}

	task, err := h.taskService.Create(&req, createdBy)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return invalidStatus(c)
		}
		return serviceError(c, err, "Failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update handles PUT /tasks/:id. All fields are replaced; the status check
// runs before the existence lookup (see TaskService.Update).
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return invalidStatus(c)
		}
		if errors.Is(err, services.ErrTaskNotFound) {
			return taskNotFound(c)
		}
		return serviceError(c, err, "Failed to update task")
	}
	return c.JSON(task)
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	if err := h.taskService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return taskNotFound(c)
		}
		return serviceError(c, err, "Failed to delete task")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV handles GET /tasks/export and streams the full task list as a
// CSV attachment.
func (h *TaskHandler) ExportCSV(c *fiber.Ctx) error {
	tasks, err := h.taskService.List()
	if err != nil {
		return serviceError(c, err, "Failed to fetch tasks")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "title", "description", "status", "createdby", "assignee", "createdtime"})
	for _, t := range tasks {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Title,
			t.Description,
			t.Status,
			t.CreatedBy,
			t.Assignee,
			t.CreatedTime.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return serviceError(c, err, "Failed to export tasks")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tasks.csv"`)
	return c.Send(buf.Bytes())
}

func taskID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func invalidTaskID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid task id",
	})
}

func invalidStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid status",
	})
}

func taskNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "Task not found",
	})
}
