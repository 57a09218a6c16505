package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type TestSuite struct {
	suite.Suite
}

func (s *TestSuite) SetupSuite() {
	registerValidators()
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestEventValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	eventHandlers(apiv1)

	s.Run("Should reject an event without required fields", func() {
		w := httptest.NewRecorder()
		jbody := map[string]any{
			"title": "test event",
		}
		sbody, _ := json.Marshal(&jbody)
		req, _ := http.NewRequest("POST", "/api/v1/events", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		errMsg := gjson.Get(string(rbytes), "error").String()
		assert.NotEmpty(s.T(), errMsg)
	})

	s.Run("Should reject an event with a malformed date", func() {
		w := httptest.NewRecorder()
		jbody := map[string]any{
			"title": "test event",
			"date":  "31-12-2026",
			"organizer": map[string]any{
				"organizerId": "org-1",
			},
		}
		sbody, _ := json.Marshal(&jbody)
		req, _ := http.NewRequest("POST", "/api/v1/events", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestTicketValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	ticketHandlers(apiv1)

	s.Run("Should reject a purchase without a quantity", func() {
		w := httptest.NewRecorder()
		jbody := map[string]any{
			"eventId": "e1",
			"userId":  "u1",
		}
		sbody, _ := json.Marshal(&jbody)
		req, _ := http.NewRequest("POST", "/api/v1/tickets", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.False(s.T(), gjson.Get(sjson, "success").Bool())
		assert.NotEmpty(s.T(), gjson.Get(sjson, "message").String())
	})

	s.Run("Should reject an out-of-range ticket status", func() {
		w := httptest.NewRecorder()
		jbody := map[string]any{
			"status": "expired",
		}
		sbody, _ := json.Marshal(&jbody)
		req, _ := http.NewRequest("PATCH", "/api/v1/tickets/t1/status", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestFavoriteToggleValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	favoriteHandlers(apiv1)

	w := httptest.NewRecorder()
	jbody := map[string]any{
		"userId": "u1",
	}
	sbody, _ := json.Marshal(&jbody)
	req, _ := http.NewRequest("POST", "/api/v1/favorites/toggle", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)

	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	assert.Contains(s.T(), gjson.Get(string(rbytes), "error").String(), "EventID")
}

func (s *TestSuite) TestUserValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	userHandlers(apiv1)

	s.Run("Should reject a user with an invalid email", func() {
		w := httptest.NewRecorder()
		jbody := map[string]any{
			"name":  "Test User",
			"email": "not-an-email",
		}
		sbody, _ := json.Marshal(&jbody)
		req, _ := http.NewRequest("POST", "/api/v1/users", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject an empty batch", func() {
		w := httptest.NewRecorder()
		jbody := map[string]any{
			"users": []any{},
		}
		sbody, _ := json.Marshal(&jbody)
		req, _ := http.NewRequest("POST", "/api/v1/users/batch", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestAttendancePairQuery() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	attendanceHandlers(apiv1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/attendance?userId=u1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)

	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	assert.Contains(s.T(), gjson.Get(string(rbytes), "error").String(), "eventId")
}

func (s *TestSuite) TestNotificationValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	notificationHandlers(apiv1)

	w := httptest.NewRecorder()
	jbody := map[string]any{
		"body": "missing title",
	}
	sbody, _ := json.Marshal(&jbody)
	req, _ := http.NewRequest("POST", "/api/v1/notifications", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
}

func (s *TestSuite) TestPaymentValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	paymentHandlers(apiv1)

	w := httptest.NewRecorder()
	jbody := map[string]any{
		"userId":  "u1",
		"eventId": "e1",
	}
	sbody, _ := json.Marshal(&jbody)
	req, _ := http.NewRequest("POST", "/api/v1/payments", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
