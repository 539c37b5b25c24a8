package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/saransh1220/storefront-vocabulary/internal/dto"
	"github.com/saransh1220/storefront-vocabulary/internal/handler"
	"github.com/saransh1220/storefront-vocabulary/internal/mocks"
	"github.com/saransh1220/storefront-vocabulary/internal/service"
	"github.com/saransh1220/storefront-vocabulary/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRealHandler() *handler.VocabularyHandler {
	return handler.NewVocabularyHandler(service.NewVocabularyService(new(mocks.MockEnumLabelRepository), nil), nil)
}

func TestVocabularyHandler_List(t *testing.T) {
	h := newRealHandler()

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/vocabulary", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Enumerations []struct {
			Name    string   `json:"name"`
			PGType  string   `json:"pg_type"`
			Members []string `json:"members"`
		} `json:"enumerations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Enumerations, 7)
	assert.Equal(t, "OrderStatus", body.Enumerations[3].Name)
	assert.Equal(t, "order_status", body.Enumerations[3].PGType)
	assert.Contains(t, body.Enumerations[3].Members, "SHIPPING")
}

func TestVocabularyHandler_Get(t *testing.T) {
	h := newRealHandler()

	req := httptest.NewRequest(http.MethodGet, "/vocabulary/PaymentStatus", nil)
	req.SetPathValue("name", "PaymentStatus")
	w := httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"PaymentStatus","pg_type":"payment_status","members":["UNPAID","PAID","REFUNDED"]}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/vocabulary/Refund", nil)
	req.SetPathValue("name", "Refund")
	w = httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func parseRequest(name, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/vocabulary/"+name+"/parse", bytes.NewBufferString(body))
	req.SetPathValue("name", name)
	return req
}

func TestVocabularyHandler_Parse(t *testing.T) {
	h := newRealHandler()

	testCases := []struct {
		name       string
		enum       string
		body       string
		wantStatus int
	}{
		{"member", "OrderStatus", `{"value":"COMPLETED"}`, http.StatusOK},
		{"near miss", "OrderStatus", `{"value":"SHIPPED"}`, http.StatusUnprocessableEntity},
		{"wrong case", "OrderStatus", `{"value":"completed"}`, http.StatusUnprocessableEntity},
		{"empty token", "ContactStatus", `{"value":""}`, http.StatusUnprocessableEntity},
		{"unknown enumeration", "CartStatus", `{"value":"OPEN"}`, http.StatusNotFound},
		{"missing value", "OrderStatus", `{}`, http.StatusBadRequest},
		{"malformed body", "OrderStatus", `{"value":`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Parse(w, parseRequest(tc.enum, tc.body))
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestVocabularyHandler_Parse_Bodies(t *testing.T) {
	h := newRealHandler()

	w := httptest.NewRecorder()
	h.Parse(w, parseRequest("AdjustmentType", `{"value":"DAMAGED"}`))
	require.Equal(t, http.StatusOK, w.Code)
	var ok dto.ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.Equal(t, dto.ParseResponse{Enumeration: "AdjustmentType", Value: "DAMAGED"}, ok)

	w = httptest.NewRecorder()
	h.Parse(w, parseRequest("AdjustmentType", `{"value":"BROKEN"}`))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var fail utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fail))
	assert.Equal(t, "unknown enumeration value", fail.Error)
	assert.Contains(t, fail.Details, `"BROKEN" is not a valid AdjustmentType`)
}

func TestVocabularyHandler_Parse_UnexpectedError(t *testing.T) {
	svc := new(mockVocabularyService)
	h := handler.NewVocabularyHandler(svc, nil)
	svc.On("Parse", "OrderStatus", "PENDING").Return("", errors.New("boom")).Once()

	w := httptest.NewRecorder()
	h.Parse(w, parseRequest("OrderStatus", `{"value":"PENDING"}`))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}

func TestVocabularyHandler_Drift(t *testing.T) {
	svc := new(mockVocabularyService)
	h := handler.NewVocabularyHandler(svc, nil)

	svc.On("CheckDrift", mock.Anything).Return(&domain.DriftReport{InSync: true}, nil).Once()
	w := httptest.NewRecorder()
	h.Drift(w, httptest.NewRequest(http.MethodGet, "/vocabulary/drift", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	svc.On("CheckDrift", mock.Anything).Return(&domain.DriftReport{
		InSync: false,
		Enumerations: []domain.EnumerationDrift{
			{Name: "OrderStatus", PGType: "order_status", Extra: []string{"SHIPPED"}},
		},
	}, nil).Once()
	w = httptest.NewRecorder()
	h.Drift(w, httptest.NewRequest(http.MethodGet, "/vocabulary/drift", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"extra":["SHIPPED"]`)

	svc.On("CheckDrift", mock.Anything).Return(nil, errors.New("db down")).Once()
	w = httptest.NewRecorder()
	h.Drift(w, httptest.NewRequest(http.MethodGet, "/vocabulary/drift", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	svc.AssertExpectations(t)
}
