package http

import (
	"net/http"

	"ai-todo-manager/internal/auth"
	pkgErrors "ai-todo-manager/pkg/errors"
)

// mapError translates domain errors into HTTP errors with the
// product's user-facing messages.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(http.StatusConflict, "이미 가입된 이메일이야")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않아")
	case auth.ErrWeakPassword:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "비밀번호는 8자 이상이어야 해")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "사용자를 찾을 수 없어")
	case auth.ErrGoogleAuthFailed:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "구글 로그인에 실패했어. 다시 시도해줘.")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "요청을 처리하지 못했어. 잠시 후 다시 시도해줘.")
	}
}
