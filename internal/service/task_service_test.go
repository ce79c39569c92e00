package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/task-backend/internal/domain"
)

func TestCreateTask(t *testing.T) {
	valid := CreateTaskRequest{Title: "Comprar leite", Description: "Ir ao mercado", UserID: "1"}

	tests := []struct {
		name      string
		request   CreateTaskRequest
		repoErr   error
		callsRepo bool
		wantErr   error
	}{
		{name: "valid request", request: valid, callsRepo: true},
		{name: "missing title", request: CreateTaskRequest{Description: "d", UserID: "1"}, wantErr: domain.ErrMissingFields},
		{name: "missing description", request: CreateTaskRequest{Title: "t", UserID: "1"}, wantErr: domain.ErrMissingFields},
		{name: "missing user id", request: CreateTaskRequest{Title: "t", Description: "d"}, wantErr: domain.ErrMissingFields},
		{name: "all fields missing", request: CreateTaskRequest{}, wantErr: domain.ErrMissingFields},
		{name: "non numeric user id", request: CreateTaskRequest{Title: "t", Description: "d", UserID: "abc"}, wantErr: domain.ErrInvalidUserID},
		{name: "zero user id", request: CreateTaskRequest{Title: "t", Description: "d", UserID: "0"}, wantErr: domain.ErrInvalidUserID},
		{name: "negative user id", request: CreateTaskRequest{Title: "t", Description: "d", UserID: "-3"}, wantErr: domain.ErrInvalidUserID},
		{name: "user id overflows int64", request: CreateTaskRequest{Title: "t", Description: "d", UserID: "18446744073709551615"}, wantErr: domain.ErrInvalidUserID},
		{name: "user id just past int64 max", request: CreateTaskRequest{Title: "t", Description: "d", UserID: "9223372036854775808"}, wantErr: domain.ErrInvalidUserID},
		{name: "repository failure", request: valid, callsRepo: true, repoErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			if tt.callsRepo {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Task).ID = 42
					}).
					Return(tt.repoErr)
			}

			resp, err := NewTaskService(repo).CreateTask(context.Background(), tt.request)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			case tt.repoErr != nil:
				assert.EqualError(t, err, tt.repoErr.Error())
				assert.Nil(t, resp)
			default:
				require.NoError(t, err)
				assert.Equal(t, uint(42), resp.ID)
				assert.Equal(t, domain.StatusPending, resp.Status)
				assert.Equal(t, uint(1), resp.UserID)
			}
			repo.AssertExpectations(t)
			if !tt.callsRepo {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCreateTaskAcceptsInt64MaxUserID(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return uint64(task.UserID) == math.MaxInt64
	})).Return(nil)

	_, err := NewTaskService(repo).CreateTask(context.Background(),
		CreateTaskRequest{Title: "t", Description: "d", UserID: "9223372036854775807"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateTaskForcesPendingStatus(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Status == domain.StatusPending &&
			task.Title == "t" && task.Description == "d" && task.UserID == 9
	})).Return(nil)

	_, err := NewTaskService(repo).CreateTask(context.Background(),
		CreateTaskRequest{Title: "t", Description: "d", UserID: "9"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetAllTasks(t *testing.T) {
	t.Run("maps every task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("GetAll", mock.Anything).Return([]domain.Task{
			{ID: 1, Title: "a", Description: "da", Status: domain.StatusPending, UserID: 1},
			{ID: 2, Title: "b", Description: "db", Status: domain.StatusDone, UserID: 2},
		}, nil)

		tasks, err := NewTaskService(repo).GetAllTasks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []TaskResponse{
			{ID: 1, Title: "a", Description: "da", Status: domain.StatusPending, UserID: 1},
			{ID: 2, Title: "b", Description: "db", Status: domain.StatusDone, UserID: 2},
		}, tasks)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("GetAll", mock.Anything).Return([]domain.Task{}, nil)

		tasks, err := NewTaskService(repo).GetAllTasks(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("GetAll", mock.Anything).Return(nil, errors.New("no such table: tasks"))

		tasks, err := NewTaskService(repo).GetAllTasks(context.Background())
		assert.EqualError(t, err, "no such table: tasks")
		assert.Nil(t, tasks)
	})
}

func TestGetTaskByID(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("FindByID", mock.Anything, uint(5)).
		Return(&domain.Task{ID: 5, Title: "t", Description: "d", Status: domain.StatusDone, UserID: 3}, nil)
	repo.On("FindByID", mock.Anything, uint(6)).Return(nil, domain.ErrTaskNotFound)

	svc := NewTaskService(repo)

	task, err := svc.GetTaskByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &TaskResponse{ID: 5, Title: "t", Description: "d", Status: domain.StatusDone, UserID: 3}, task)

	task, err = svc.GetTaskByID(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Nil(t, task)
}

func TestToggleAndDeletePassErrorsThrough(t *testing.T) {
	storeErr := errors.New("database is locked")

	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "success", repoErr: nil},
		{name: "not found", repoErr: domain.ErrTaskNotFound},
		{name: "store failure", repoErr: storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			repo.On("ToggleStatus", mock.Anything, uint(1)).Return(tt.repoErr)
			repo.On("Delete", mock.Anything, uint(1)).Return(tt.repoErr)
			svc := NewTaskService(repo)

			toggleErr := svc.ToggleTaskStatus(context.Background(), 1)
			deleteErr := svc.DeleteTask(context.Background(), 1)

			if tt.repoErr == nil {
				assert.NoError(t, toggleErr)
				assert.NoError(t, deleteErr)
			} else {
				assert.ErrorIs(t, toggleErr, tt.repoErr)
				assert.ErrorIs(t, deleteErr, tt.repoErr)
			}
			repo.AssertExpectations(t)
		})
	}
}
