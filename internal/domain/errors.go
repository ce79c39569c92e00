package domain

import "errors"

// Error texts are part of the HTTP contract and are returned verbatim to clients.
var (
	ErrTaskNotFound   = errors.New("Tarefa não encontrada")
	ErrMissingFields  = errors.New("Missing required fields")
	ErrInvalidUserID  = errors.New("Invalid user_id")
	ErrInvalidContact = errors.New("Nome e email válidos são obrigatórios")
)
