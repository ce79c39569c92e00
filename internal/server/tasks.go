package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Tomlord1122/task-backend/internal/domain"
	"github.com/Tomlord1122/task-backend/internal/service"
)

const (
	msgTaskCreated = "Tarefa criada com sucesso!"
	msgTaskUpdated = "Atualização realizada com sucesso!"
	msgTaskDeleted = "Tarefa deletada com sucesso!"
)

func (s *Server) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.taskService.GetAllTasks(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, r, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// createTaskHandler reads form fields (urlencoded or multipart). Any status
// field sent by the caller is ignored.
func (s *Server) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	req := service.CreateTaskRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		UserID:      r.PostFormValue("user_id"),
	}

	task, err := s.taskService.CreateTask(r.Context(), req)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": msgTaskCreated,
		"task_id": task.ID,
	})
}

func (s *Server) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(r)
	if !ok {
		respondWithServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	task, err := s.taskService.GetTaskByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, r, http.StatusOK, map[string]interface{}{"task": task})
}

// toggleTaskStatusHandler ignores the request body: the endpoint only ever
// flips the status between its two values.
func (s *Server) toggleTaskStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(r)
	if !ok {
		respondWithServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	if err := s.taskService.ToggleTaskStatus(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, r, http.StatusOK, map[string]string{"message": msgTaskUpdated})
}

func (s *Server) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(r)
	if !ok {
		respondWithServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	if err := s.taskService.DeleteTask(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, r, http.StatusOK, map[string]string{"message": msgTaskDeleted})
}

// taskIDParam reports false for anything but a positive integer, which can
// never name a stored task.
func taskIDParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "task_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
