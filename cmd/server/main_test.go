package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: "http://localhost:4200"}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return buildHandler(sqlx.NewDb(sqlDB, "sqlmock"), cfg, log), mock
}

func TestBuildHandler_Health(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestBuildHandler_ParseRoundTrip(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vocabulary/OrderStatus/parse", strings.NewReader(`{"value":"COMPLETED"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "COMPLETED", body["value"])

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/vocabulary/OrderStatus/parse", strings.NewReader(`{"value":"SHIPPED"}`))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBuildHandler_DriftUsesDatabase(t *testing.T) {
	h, mock := newTestHandler(t)

	rows := sqlmock.NewRows([]string{"type_name", "label"})
	for _, e := range domain.Enumerations() {
		for _, m := range e.Members {
			rows.AddRow(e.PGType, m)
		}
	}
	mock.ExpectQuery(`FROM pg_type t`).WillReturnRows(rows)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vocabulary/drift", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
