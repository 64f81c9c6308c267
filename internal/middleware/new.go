package middleware

import (
	"ai-todo-manager/pkg/log"
	"ai-todo-manager/pkg/scope"
)

type Middleware struct {
	l             log.Logger
	jwtManager    scope.Manager
	aiRateLimiter *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, aiRateLimitPerMin int) Middleware {
	return Middleware{
		l:             l,
		jwtManager:    jwtManager,
		aiRateLimiter: newRateLimiter(aiRateLimitPerMin),
	}
}
