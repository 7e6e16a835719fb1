package services

import (
	"errors"
	"fmt"

	"github.com/taskmanager/backend/internal/dto"
	"github.com/taskmanager/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus = errors.New("Invalid status")
	ErrTaskNotFound  = errors.New("Task not found")
)

const unknownActor = "Unknown"

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// List returns every task in ascending id order. Pagination is a client
// concern; this layer always returns the full set.
func (s *TaskService) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to fetch task %d: %w", id, err)
	}
	return &task, nil
}

// Create persists a new task. Status must already be one of the canonical
// values; no default is substituted here. createdBy comes from the
// authenticated identity and falls back to "Unknown".
func (s *TaskService) Create(req *dto.CreateTaskRequest, createdBy string) (*models.Task, error) {
	if req.Title == "" || req.Description == "" {
		return nil, invalid("Title and description are required")
	}
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	if createdBy == "" {
		createdBy = unknownActor
	}
	assignee := req.Assignee
	if assignee == "" {
		assignee = unknownActor
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   createdBy,
		Assignee:    assignee,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// Update fully replaces a task's mutable fields. The status check runs
// before the existence lookup, so an invalid status on a nonexistent id
// reports ErrInvalidStatus, not ErrTaskNotFound. Existing clients depend
// on that ordering.
func (s *TaskService) Update(id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to fetch task %d: %w", id, err)
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.Status
	task.Assignee = req.Assignee
	if task.Assignee == "" {
		task.Assignee = unknownActor
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return &task, nil
}

// Delete removes a task unconditionally; two concurrent deletes of the
// same id resolve to one success and one ErrTaskNotFound.
func (s *TaskService) Delete(id uint) error {
	result := s.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
