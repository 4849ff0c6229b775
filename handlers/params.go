// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/voting-registry/middleware"
)

// pathID reads an integer path value. Ids that match no row are left
// for the store to report as not found.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return id, nil
}

// pagination reads skip and limit query parameters.
// Missing values default to 0 and defaultLimit.
func pagination(r *http.Request, defaultLimit int) (skip, limit int, err error) {
	query := r.URL.Query()

	skip, err = nonNegativeParam(query.Get("skip"), 0)
	if err != nil {
		return 0, 0, errors.New("skip must be a non-negative integer")
	}
	limit, err = nonNegativeParam(query.Get("limit"), defaultLimit)
	if err != nil {
		return 0, 0, errors.New("limit must be a non-negative integer")
	}
	return skip, limit, nil
}

func nonNegativeParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative value")
	}
	return n, nil
}

// databaseError logs an unexpected store failure and answers 500
func databaseError(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	args = append([]any{"error", err, "request_id", middleware.RequestID(r.Context())}, args...)
	slog.Error(msg, args...)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}
