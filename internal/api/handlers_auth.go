package api

import (
	"net/http"

	"github.com/sravanipallapu19/healthComp/internal/api/respond"
	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/services"
)

type AuthHandler struct {
	svc *services.UserService
}

func NewAuthHandler(svc *services.UserService) *AuthHandler { return &AuthHandler{svc: svc} }

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email       string  `json:"email"`
		Password    string  `json:"password"`
		DisplayName *string `json:"displayName,omitempty"`
		TimeZone    string  `json:"timeZone"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	u, err := h.svc.Register(r.Context(), services.RegisterRequest{
		Email:       in.Email,
		Password:    in.Password,
		DisplayName: in.DisplayName,
		TimeZone:    in.TimeZone,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, User: u})
}
