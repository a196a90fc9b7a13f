// AngelaMos | 2026
// handler_test.go

package lead

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) chi.Router {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r
}

func TestHandler_Export_CSVHeaders(t *testing.T) {
	repo := newMemoryRepo()
	repo.leads = []Lead{
		{
			ID:         "l1",
			LinkID:     "link_1",
			Name:       "John Doe",
			Email:      "john@test.com",
			Phone:      "555-0101",
			CapturedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))

	disposition := rec.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="leads_export_`))
	assert.True(t, strings.HasSuffix(disposition, `.csv"`))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "Name,Email,Phone,Source Link,Date\n"))
	assert.Contains(t, body, `"John Doe","john@test.com","555-0101"`)
}

func TestHandler_Export_SearchFilterApplies(t *testing.T) {
	repo := newMemoryRepo()
	repo.leads = []Lead{
		{ID: "l1", Name: "John Doe", Email: "john@test.com", Phone: "1"},
		{ID: "l2", Name: "Jane Smith", Email: "jane@test.com", Phone: "2"},
	}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/leads/export?search=jane", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Jane Smith")
	assert.NotContains(t, body, "John Doe")
}

func TestHandler_List_ReturnsEnvelope(t *testing.T) {
	repo := newMemoryRepo()
	repo.leads = []Lead{
		{ID: "l1", Name: "John Doe", Email: "john@test.com", Phone: "1"},
	}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, `"source_title"`)
}
