package domain

// Ward is a named location/unit a device or staff member can be
// associated with.
type Ward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
