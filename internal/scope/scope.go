package scope

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Roles understood by the query scoper. Anything else is treated as a
// regular tenant member.
const (
	RoleGlobalAdmin = "global_admin"
	RoleTenantAdmin = "tenant_admin"
	RoleMember      = "member"
)

const (
	DefaultLookbackDays = 30
	MaxLookbackDays     = 365
)

var (
	ErrTenantRequired = errors.New("tenant id is required for non-admin roles")
	ErrInvalidWindow  = errors.New("lookback window must be positive")
)

// Scope is the single authorization input every store query accepts.
// It carries the tenant filter and the date range together so no
// aggregator can forget to apply either one.
type Scope struct {
	tenantID *uuid.UUID
	Start    time.Time
	End      time.Time
}

// New builds a Scope for the given caller. Non-admin callers must name
// exactly one tenant; a global admin with a nil tenant id queries
// across all tenants. The window is [now-days, now].
func New(role string, tenantID uuid.UUID, days int) (Scope, error) {
	return NewAt(role, tenantID, days, time.Now().UTC())
}

// NewAt is New with an explicit reference time. The reference time
// becomes Scope.End and anchors all calendar arithmetic downstream.
func NewAt(role string, tenantID uuid.UUID, days int, now time.Time) (Scope, error) {
	if days <= 0 {
		days = DefaultLookbackDays
	}
	if days > MaxLookbackDays {
		days = MaxLookbackDays
	}

	s := Scope{
		Start: now.UTC().AddDate(0, 0, -days),
		End:   now.UTC(),
	}

	if role == RoleGlobalAdmin {
		if tenantID != uuid.Nil {
			id := tenantID
			s.tenantID = &id
		}
		return s, nil
	}

	if tenantID == uuid.Nil {
		return Scope{}, ErrTenantRequired
	}
	id := tenantID
	s.tenantID = &id
	return s, nil
}

// NewForRange builds a Scope over an explicit [start, end] window.
func NewForRange(role string, tenantID uuid.UUID, start, end time.Time) (Scope, error) {
	if end.Before(start) {
		return Scope{}, ErrInvalidWindow
	}
	days := int(end.Sub(start).Hours()/24) + 1
	s, err := NewAt(role, tenantID, days, end)
	if err != nil {
		return Scope{}, err
	}
	s.Start = start.UTC()
	return s, nil
}

// TenantID returns the tenant filter, nil meaning cross-tenant
// (global admin only — New refuses to build a nil filter otherwise).
func (s Scope) TenantID() *uuid.UUID {
	return s.tenantID
}

// Window returns a copy of the scope narrowed to the trailing number
// of days, ending at the scope's reference time. Used by aggregators
// that report several rolling windows (7/30/90 day response times)
// without widening tenant visibility.
func (s Scope) Window(days int) Scope {
	narrowed := s
	narrowed.Start = s.End.AddDate(0, 0, -days)
	return narrowed
}

// Between returns a copy of the scope over an explicit [start, end]
// range, preserving the tenant filter. Calendar-month aggregators use
// this to widen past the request window without touching visibility.
func (s Scope) Between(start, end time.Time) Scope {
	ranged := s
	ranged.Start = start.UTC()
	ranged.End = end.UTC()
	return ranged
}
