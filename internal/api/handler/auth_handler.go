package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessageError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := a.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeMessageError(w, http.StatusBadRequest, "Username and password required")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeMessageError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.FromUser(user),
	})
}

func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessageError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := a.authService.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeMessageError(w, http.StatusBadRequest, "Username and password required")
		case errors.Is(err, service.ErrUserExists):
			writeMessageError(w, http.StatusBadRequest, "User already exists")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User created successfully",
		User:    dto.FromUser(user),
	})
}

func (a *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.authService.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := dto.UsersResponse{Users: make([]dto.UserDTO, 0, len(users))}
	for i := range users {
		out.Users = append(out.Users, dto.FromUser(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
