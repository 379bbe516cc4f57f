package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"devicetrack/internal/domain"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportDevicesWorkbook(t *testing.T) {
	router := newTestRouter(t)

	var created domain.Device
	doJSON(t, router, http.MethodPost, "/api/devices",
		`{"name":"Ward Laptop 1","serialNumber":"SN-0001","assetId":"ASSET-0001"}`, &created)

	req := httptest.NewRequest(http.MethodGet, "/api/devices/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "devices-export.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Devices")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	require.Equal(t, DeviceExportHeader, rows[0])
	require.Equal(t, "Ward Laptop 1", rows[1][0])
	require.Equal(t, "SN-0001", rows[1][1])
	require.Equal(t, "ASSET-0001", rows[1][2])
	require.Equal(t, domain.DeviceStatusAvailable, rows[1][3])
}

func TestExportEmptyInventoryHasHeaderOnly(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/devices/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Devices")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, DeviceExportHeader, rows[0])
}
