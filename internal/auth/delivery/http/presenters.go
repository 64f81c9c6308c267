package http

import (
	"time"

	"ai-todo-manager/internal/auth"
	"ai-todo-manager/internal/model"
)

// --- Request DTOs ---

type signUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r signUpReq) toInput() auth.SignUpInput {
	return auth.SignUpInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newAuthResp(out auth.AuthOutput) authResp {
	return authResp{
		Token: out.Token,
		User:  newUserResp(out.User),
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out auth.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
