package entity

// Principal is the pre-validated identity of an API caller.
type Principal struct {
	UserID       string
	RestaurantID string // Restaurant the caller works for; empty for diners.
	Roles        Roles
}

// IsStaffOf reports whether the caller may act as staff for restaurantID.
func (p *Principal) IsStaffOf(restaurantID string) bool {
	if p == nil || restaurantID == "" || p.RestaurantID != restaurantID {
		return false
	}

	return p.Roles.Contains(RoleStaff) || p.Roles.Contains(RoleOwner)
}

// CanView reports whether the caller may read or administer pass.
func (p *Principal) CanView(pass *Pass) bool {
	if p == nil || pass == nil {
		return false
	}

	return pass.IsOwnedBy(p.UserID) || p.IsStaffOf(pass.RestaurantID)
}
