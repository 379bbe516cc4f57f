package domain

// StaffMember is an independent entity; deleting one does not touch
// devices currently assigned to it.
type StaffMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
