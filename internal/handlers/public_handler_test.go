package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
)

func TestGetCalendarEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Timezone:            "America/Sao_Paulo",
		CalendarHorizonDays: 15,
	}
	h := NewPublicHandler(nil, cfg, nil, nil, nil, nil, nil)

	r := gin.New()
	r.GET("/api/public/calendar", h.GetCalendar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/calendar", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []domain.CalendarDay `json:"data"`
		Total int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Equal(t, 15, body.Total)
	require.Len(t, body.Data, 15)
	assert.True(t, body.Data[0].IsToday)
	for _, d := range body.Data[1:] {
		assert.False(t, d.IsToday)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11999990000", normalizePhone("(11) 99999-0000"))
	assert.Equal(t, "5511999990000", normalizePhone("+55 11 99999-0000"))
	assert.Equal(t, "", normalizePhone("sem número"))
}
