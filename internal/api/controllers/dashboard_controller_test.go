package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uobsurvey/internal/models/response_models"
)

type capturingDashboard struct {
	got *response_models.TimeRange
}

func (d *capturingDashboard) BuildDashboard(_ context.Context, rng response_models.TimeRange) (*response_models.DashboardReport, error) {
	d.got = &rng
	return &response_models.DashboardReport{Range: rng}, nil
}

func TestGetDashboardParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{"defaults", "tz=UTC", http.StatusOK},
		{"last days", "tz=UTC&last_days=7&interval=week", http.StatusOK},
		{"explicit range", "tz=UTC&start=2025-10-01T00:00:00Z&end=2025-10-19T23:59:59Z", http.StatusOK},
		{"bad interval", "tz=UTC&interval=year", http.StatusBadRequest},
		{"bad tz", "tz=Not/AZone", http.StatusBadRequest},
		{"both windows", "tz=UTC&last_days=7&start=2025-10-01T00:00:00Z", http.StatusBadRequest},
		{"negative days", "tz=UTC&last_days=-1", http.StatusBadRequest},
		{"bad start", "tz=UTC&start=yesterday", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &capturingDashboard{}
			r := gin.New()
			r.GET("/admin/dashboard", NewDashboardController(svc).GetDashboard)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard?"+tt.query, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				require.NotNil(t, svc.got)
				assert.False(t, svc.got.Start.After(svc.got.End))
			} else {
				assert.Nil(t, svc.got)
			}
		})
	}
}

func TestGetDashboardSwapsReversedRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &capturingDashboard{}
	r := gin.New()
	r.GET("/admin/dashboard", NewDashboardController(svc).GetDashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/admin/dashboard?tz=UTC&start=2025-10-19T00:00:00Z&end=2025-10-01T00:00:00Z", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.got.Start.Day())
	assert.Equal(t, 19, svc.got.End.Day())
}
