package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Conflict("dup"), http.StatusConflict},
		{Unauthenticated("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusBadRequest},
		{NotFound("gone"), http.StatusNotFound},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound("gone")), http.StatusNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func TestForbiddenStatusIsSwitchable(t *testing.T) {
	prev := ForbiddenStatus
	t.Cleanup(func() { ForbiddenStatus = prev })

	ForbiddenStatus = http.StatusForbidden
	assert.Equal(t, http.StatusForbidden, StatusOf(Forbidden("You are not an admin")))
}

func TestMessageOfHidesInternalCause(t *testing.T) {
	err := Internal("failed to load user", errors.New("pq: connection refused"))

	assert.Equal(t, "failed to load user", MessageOf(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "internal server error", MessageOf(errors.New("raw")))
}

func TestAppErrorIs(t *testing.T) {
	err := fmt.Errorf("ctx: %w", Conflict("username already exists"))

	assert.True(t, errors.Is(err, &AppError{Kind: KindConflict}))
	assert.True(t, errors.Is(err, Conflict("username already exists")))
	assert.False(t, errors.Is(err, Conflict("email already registered")))
	assert.False(t, errors.Is(err, &AppError{Kind: KindNotFound}))
}
