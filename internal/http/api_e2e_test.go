package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devicetrack/internal/domain"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

// Full checkout workflow over a real HTTP server.
func TestCheckoutWorkflowEndToEnd(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	client := resty.New().SetBaseURL(srv.URL)

	var ward domain.Ward
	resp, err := client.R().
		SetBody(map[string]string{"name": "Ward A"}).
		SetResult(&ward).
		Post("/api/wards")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var member domain.StaffMember
	resp, err = client.R().
		SetBody(map[string]string{"name": "Alice Hartley", "role": "Nurse"}).
		SetResult(&member).
		Post("/api/staff")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var device domain.Device
	resp, err = client.R().
		SetBody(map[string]string{"name": "Laptop 1", "serialNumber": "SN-1", "assetId": "A-1"}).
		SetResult(&device).
		Post("/api/devices")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	require.Equal(t, domain.DeviceStatusAvailable, device.Status)

	// checkout
	var ack successResponse
	resp, err = client.R().
		SetBody(map[string]string{
			"status":        domain.DeviceStatusCheckedOut,
			"assignedTo":    "Tommy P",
			"staffMember":   member.Name,
			"ward":          ward.Name,
			"checkoutNotes": "spare charger",
		}).
		SetResult(&ack).
		Put("/api/devices/" + device.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.True(t, ack.Success)

	var devices []domain.Device
	resp, err = client.R().SetResult(&devices).Get("/api/devices")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, devices, 1)
	require.Equal(t, domain.DeviceStatusCheckedOut, devices[0].Status)
	require.Equal(t, "Tommy P", devices[0].AssignedTo)
	require.NotEmpty(t, devices[0].CheckoutTime)

	// check-in
	resp, err = client.R().
		SetBody(map[string]string{"status": domain.DeviceStatusAvailable}).
		SetResult(&ack).
		Put("/api/devices/" + device.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var entries []domain.DeviceHistoryEntry
	resp, err = client.R().SetResult(&entries).Get("/api/devices/" + device.ID + "/history")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, entries, 2)
	require.Equal(t, domain.HistoryTypeCheckin, entries[0].Type)
	require.Equal(t, domain.HistoryTypeCheckout, entries[1].Type)
	require.Equal(t, "spare charger", entries[1].Notes)

	// device deletion keeps the audit trail readable
	resp, err = client.R().SetResult(&ack).Delete("/api/devices/" + device.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.True(t, ack.Success)

	resp, err = client.R().SetResult(&entries).Get("/api/devices/" + device.ID + "/history")
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
