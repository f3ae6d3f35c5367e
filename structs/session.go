package structs

// Session is the server-side session payload kept in Redis. The browser only
// carries the session ID; the pending order ID is a pointer into the order
// table, never a copy of its state.
type Session struct {
	ID             string `json:"-"`
	UserID         int64  `json:"user_id"`
	UserRole       string `json:"user_role"`
	PendingOrderID *int64 `json:"pending_order_id,omitempty"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.UserRole == RoleAdmin
}

func (s *Session) IsCustomer() bool {
	return s != nil && s.UserRole == RoleCustomer
}
