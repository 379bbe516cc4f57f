package domain

// Device status values. Status is free text at the storage layer; these are
// the two values the service writes itself.
const (
	DeviceStatusAvailable  = "available"
	DeviceStatusCheckedOut = "checked-out"
)

// History event types. Every device update appends exactly one entry.
const (
	HistoryTypeCheckout = "checkout"
	HistoryTypeCheckin  = "checkin"
)

// Device is a trackable physical asset with a checkout lifecycle.
// The checkout fields stay empty until the device has been checked out
// at least once.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SerialNumber  string `json:"serialNumber"`
	AssetID       string `json:"assetId"`
	Status        string `json:"status"`
	AssignedTo    string `json:"assignedTo"`
	StaffMember   string `json:"staffMember"`
	Ward          string `json:"ward"`
	CheckoutTime  string `json:"checkoutTime"`
	CheckoutNotes string `json:"checkoutNotes"`
	DateAdded     string `json:"dateAdded"`
}

// DeviceHistoryEntry is an immutable audit record of one checkout or
// check-in event. Entries are append-only and survive device deletion.
type DeviceHistoryEntry struct {
	ID        int64  `json:"id"`
	DeviceID  string `json:"deviceId"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Pupil     string `json:"pupil"`
	Staff     string `json:"staff"`
	Ward      string `json:"ward"`
	Notes     string `json:"notes"`
}
