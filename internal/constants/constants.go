package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	CallerKey    ContextKey = "caller"
)

const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"

	// GuestUserID is assumed when a request carries no X-User-ID header, so
	// anonymous visitors still get a working cart.
	GuestUserID = "user1"
)

const (
	// LowStockThreshold marks products the dashboard reports as running out.
	LowStockThreshold = 5
	// DashboardRecentOrders bounds the recent-orders list on the dashboard.
	DashboardRecentOrders = 5
)
