package mock

import (
	"encoding/json"
	"net/http"

	"github.com/viant/storefront/schema"
)

func (s *Service) loginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials schema.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	anAccount, ok := s.accounts[credentials.Username]
	s.mu.Unlock()
	if !ok || anAccount.Password != credentials.Password {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	access, refresh, err := s.issue(anAccount.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, &schema.LoginResponse{Token: access, RefreshToken: refresh})
}

func (s *Service) registerHandler(w http.ResponseWriter, r *http.Request) {
	var registration schema.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(registration.Password) < 8 {
		http.Error(w, "password must be at least 8 characters long", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	_, exists := s.accounts[registration.Username]
	s.mu.Unlock()
	if exists {
		http.Error(w, "username or email already in use", http.StatusBadRequest)
		return
	}
	id := s.AddAccount(registration.Username, registration.Password, registration.Email)
	writeJSON(w, http.StatusCreated, &schema.RegisterResponse{
		Message: "User successfully registered",
		User:    &schema.User{ID: schema.ID(formatInt(id)), Username: registration.Username, Email: registration.Email},
	})
}

func (s *Service) refreshHandler(w http.ResponseWriter, r *http.Request) {
	if s.RefreshHandler != nil {
		s.RefreshHandler(w, r)
		return
	}
	var request schema.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_, refreshGen := s.generations()
	id, err := s.verify(request.RefreshToken, refreshType, refreshGen)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	access, _, err := s.issue(id)
	if err != nil {
		http.Error(w, "Failed to generate tokens", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, &schema.RefreshResponse{AccessToken: access})
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set(schema.ContentTypeKey, schema.ContentJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
