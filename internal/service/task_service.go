package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Tomlord1122/task-backend/internal/domain"
	"github.com/Tomlord1122/task-backend/internal/repository"
)

// CreateTaskRequest carries the raw form values of a create call. UserID stays
// a string so an empty value can be told apart from a malformed one.
type CreateTaskRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	UserID      string `validate:"required"`
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	UserID      uint   `json:"user_id"`
}

func newTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
	}
}

// TaskService defines the operations for managing tasks.
type TaskService interface {
	// CreateTask validates the request and stores a new pending task.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error)

	GetTaskByID(ctx context.Context, id uint) (*TaskResponse, error)

	// GetAllTasks returns every stored task. The result is never nil.
	GetAllTasks(ctx context.Context) ([]TaskResponse, error)

	// ToggleTaskStatus flips a task between pending and done.
	ToggleTaskStatus(ctx context.Context, id uint) error

	DeleteTask(ctx context.Context, id uint) error
}

type taskService struct {
	repo     repository.TaskRepository
	validate *validator.Validate
}

// NewTaskService creates a TaskService backed by repo.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *taskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	log := zerolog.Ctx(ctx)

	if err := s.validate.Struct(req); err != nil {
		log.Debug().Err(err).Msg("rejected create task request")
		return nil, domain.ErrMissingFields
	}

	// 63 bits keeps the id inside a signed BIGINT/INTEGER column.
	userID, err := strconv.ParseUint(req.UserID, 10, 63)
	if err != nil || userID == 0 {
		log.Debug().Str("user_id", req.UserID).Msg("rejected create task request")
		return nil, domain.ErrInvalidUserID
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusPending,
		UserID:      uint(userID),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to insert task")
		return nil, err
	}

	log.Info().Uint("task_id", task.ID).Msg("created task")
	resp := newTaskResponse(task)
	return &resp, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id uint) (*TaskResponse, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := newTaskResponse(task)
	return &resp, nil
}

func (s *taskService) GetAllTasks(ctx context.Context) ([]TaskResponse, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to select tasks")
		return nil, err
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, newTaskResponse(&tasks[i]))
	}
	return responses, nil
}

func (s *taskService) ToggleTaskStatus(ctx context.Context, id uint) error {
	if err := s.repo.ToggleStatus(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Uint("task_id", id).Msg("toggled task status")
	return nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Uint("task_id", id).Msg("deleted task")
	return nil
}
