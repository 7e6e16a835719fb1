package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/taskmanager/backend/internal/dto"
	"github.com/taskmanager/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigHandler serves client defaults (status set, signup role choices,
// page size) from the ui_configs table so the UI and API stay consistent.
type ConfigHandler struct {
	db *gorm.DB
}

func NewConfigHandler(db *gorm.DB) *ConfigHandler {
	return &ConfigHandler{db: db}
}

// SeedDefaults inserts any missing config keys. Existing values are left
// alone so admin edits survive restarts.
func (h *ConfigHandler) SeedDefaults() {
	defaults := map[string]any{
		"task_statuses": models.TaskStatuses,
		"signup_roles": []string{
			"admin", "user", "zookeeper", "veterinarian",
			"guide", "maintenance", "security", "receptionist",
		},
		"page_size": 10,
	}

	for key, value := range defaults {
		raw, err := json.Marshal(value)
		if err != nil {
			continue
		}
		entry := models.UIConfig{Key: key, Value: datatypes.JSON(raw)}
		if err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			slog.Error("config seed failed", "key", key, "error", err)
		}
	}
}

// GetConfig handles GET /config and returns all keys as one JSON object.
func (h *ConfigHandler) GetConfig(c *fiber.Ctx) error {
	var entries []models.UIConfig
	if err := h.db.Find(&entries).Error; err != nil {
		return serviceError(c, err, "Failed to fetch configuration")
	}

	result := make(map[string]json.RawMessage, len(entries))
	for _, e := range entries {
		result[e.Key] = json.RawMessage(e.Value)
	}
	return c.JSON(result)
}

// SetConfigKey handles PUT /config/:key (admin only).
func (h *ConfigHandler) SetConfigKey(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	var req dto.SetConfigRequest
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	raw, err := json.Marshal(req.Value)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Value is not valid JSON",
		})
	}

	entry := models.UIConfig{Key: key, Value: datatypes.JSON(raw)}
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return serviceError(c, err, "Failed to store configuration")
	}

	return c.JSON(fiber.Map{"key": key, "value": json.RawMessage(raw)})
}
