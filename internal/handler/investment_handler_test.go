package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/interest-tracker/internal/handler"
	"github.com/interest-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newCalculateRouter wires only the public calculate route; it needs no
// database or auth.
func newCalculateRouter() *gin.Engine {
	investmentService := service.NewInvestmentService(nil)
	h := handler.NewInvestmentHandler(investmentService, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/investments/calculate", h.Calculate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestCalculateEndpoint(t *testing.T) {
	router := newCalculateRouter()

	w := postJSON(t, router, "/api/v1/investments/calculate", gin.H{
		"principal":        10000,
		"rate":             5,
		"time":             3,
		"unit":             "years",
		"calculation_date": "2025-12-08T12:29:58Z",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Code)

	var data struct {
		SimpleInterest   float64 `json:"simple_interest"`
		CompoundInterest float64 `json:"compound_interest"`
		TotalSimple      float64 `json:"total_simple"`
		TotalCompound    float64 `json:"total_compound"`
		CalculationDate  *string `json:"calculation_date"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.InDelta(t, 1500.00, data.SimpleInterest, 0.001)
	assert.InDelta(t, 1576.25, data.CompoundInterest, 0.01)
	assert.InDelta(t, 11500.00, data.TotalSimple, 0.001)
	assert.InDelta(t, 11576.25, data.TotalCompound, 0.01)
	require.NotNil(t, data.CalculationDate)
	assert.Equal(t, "2025-12-08 12:29:58", *data.CalculationDate)
}

func TestCalculateEndpointRejectsBadInput(t *testing.T) {
	router := newCalculateRouter()

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing principal", gin.H{"rate": 5, "time": 3}},
		{"negative rate", gin.H{"principal": 100, "rate": -1, "time": 3}},
		{"excessive time", gin.H{"principal": 100, "rate": 5, "time": 5000}},
		{"non-numeric principal", gin.H{"principal": "ten", "rate": 5, "time": 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/investments/calculate", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.NotZero(t, env.Code)
		})
	}
}

func TestCalculateEndpointGarbageTimestamp(t *testing.T) {
	router := newCalculateRouter()

	w := postJSON(t, router, "/api/v1/investments/calculate", gin.H{
		"principal":        1000,
		"rate":             2.5,
		"time":             90,
		"unit":             "days",
		"calculation_date": "not-a-date",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data struct {
		CalculationDate *string `json:"calculation_date"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Nil(t, data.CalculationDate)
}
