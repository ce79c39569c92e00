package server

import (
	"net/http"

	"github.com/Tomlord1122/task-backend/internal/service"
)

const msgContactReceived = "Contato recebido com sucesso!"

func (s *Server) contactFormHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"message": "Envie nome e email para entrar em contato",
		"fields":  []string{"name", "email"},
	})
}

func (s *Server) contactHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userService.Contact(r.Context(), service.ContactRequest{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": msgContactReceived,
		"user_id": userID,
	})
}
