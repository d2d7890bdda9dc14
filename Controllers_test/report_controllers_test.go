package Controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/services"
)

func TestGenerateSalesReport(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	session := createSessionFixture(t, r, token)
	today := time.Now().Format("2006-01-02")
	for i := 0; i < 3; i++ {
		body := bookingBody(session.ID, "Guest", today)
		w := doJSON(t, r, http.MethodPost, "/bookings", token, body)
		mustStatus(t, w, http.StatusCreated)
		var created models.BookingView
		decodeData(t, w, &created)
		mustStatus(t, doJSON(t, r, http.MethodPatch, "/bookings/"+created.ID+"/payment", token,
			map[string]string{"paymentStatus": "paid"}), http.StatusOK)
	}

	w := doJSON(t, r, http.MethodGet, "/admin/reports?report_type=sales&date_range=today", token, nil)
	mustStatus(t, w, http.StatusOK)

	var report struct {
		ReportType string               `json:"reportType"`
		RowCount   int                  `json:"rowCount"`
		Rows       []services.ReportRow `json:"rows"`
	}
	decodeData(t, w, &report)
	assert.Equal(t, "sales", report.ReportType)
	require.NotEmpty(t, report.Rows)

	summary := report.Rows[len(report.Rows)-1]
	assert.Equal(t, "summary", summary.Group)
	assert.Equal(t, int64(3), summary.Count)
	assert.InDelta(t, 360.0, summary.Amount, 0.01)
}

func TestGenerateReportValidation(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodGet, "/admin/reports?report_type=margins&date_range=today", token, nil)
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodGet, "/admin/reports?report_type=sales&date_range=fortnight", token, nil)
	mustStatus(t, w, http.StatusBadRequest)
}

func TestReportsRequireElevatedRole(t *testing.T) {
	_, r := setupTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/admin/reports?report_type=sales&date_range=today", staffToken(t), nil)
	mustStatus(t, w, http.StatusForbidden)
}

func TestExportEndpoints(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodGet, "/admin/reports/export?report_type=sales&date_range=today", token, nil)
	mustStatus(t, w, http.StatusOK)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales_report.xlsx")
	assert.NotZero(t, w.Body.Len())

	w = doJSON(t, r, http.MethodGet, "/admin/reports/export-pdf?report_type=sales&date_range=today", token, nil)
	mustStatus(t, w, http.StatusOK)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestReportHistoryEndpoint(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	mustStatus(t, doJSON(t, r, http.MethodGet,
		"/admin/reports?report_type=guests&date_range=month", token, nil), http.StatusOK)
	mustStatus(t, doJSON(t, r, http.MethodGet,
		"/admin/reports/export?report_type=sales&date_range=today", token, nil), http.StatusOK)

	w := doJSON(t, r, http.MethodGet, "/admin/reports/history", token, nil)
	mustStatus(t, w, http.StatusOK)

	var entries []models.ReportHistory
	decodeData(t, w, &entries)
	// The export run logs both its generation and the export itself.
	require.Len(t, entries, 3)
	assert.Equal(t, models.ReportExportedXLSX, entries[0].Action)
	assert.Equal(t, models.ReportGenerated, entries[1].Action)
	assert.Equal(t, "guests", entries[2].ReportType)
}
