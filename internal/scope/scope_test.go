package scope

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew_MemberRequiresTenant(t *testing.T) {
	_, err := New(RoleMember, uuid.Nil, 30)
	assert.ErrorIs(t, err, ErrTenantRequired)

	_, err = New(RoleTenantAdmin, uuid.Nil, 30)
	assert.ErrorIs(t, err, ErrTenantRequired)
}

func TestNew_MemberScopedToOwnTenant(t *testing.T) {
	tenantA := uuid.New()

	s, err := New(RoleMember, tenantA, 30)
	assert.NoError(t, err)
	assert.NotNil(t, s.TenantID())
	assert.Equal(t, tenantA, *s.TenantID())
}

func TestNew_GlobalAdminCrossTenant(t *testing.T) {
	s, err := New(RoleGlobalAdmin, uuid.Nil, 30)
	assert.NoError(t, err)
	assert.Nil(t, s.TenantID())
}

func TestNew_GlobalAdminCanNarrowToTenant(t *testing.T) {
	tenantB := uuid.New()

	s, err := New(RoleGlobalAdmin, tenantB, 30)
	assert.NoError(t, err)
	assert.NotNil(t, s.TenantID())
	assert.Equal(t, tenantB, *s.TenantID())
}

func TestNewAt_WindowBounds(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tenant := uuid.New()

	s, err := NewAt(RoleMember, tenant, 30, now)
	assert.NoError(t, err)
	assert.Equal(t, now, s.End)
	assert.Equal(t, now.AddDate(0, 0, -30), s.Start)
}

func TestNewAt_DefaultsAndCaps(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tenant := uuid.New()

	s, _ := NewAt(RoleMember, tenant, 0, now)
	assert.Equal(t, now.AddDate(0, 0, -DefaultLookbackDays), s.Start)

	s, _ = NewAt(RoleMember, tenant, -5, now)
	assert.Equal(t, now.AddDate(0, 0, -DefaultLookbackDays), s.Start)

	s, _ = NewAt(RoleMember, tenant, 10000, now)
	assert.Equal(t, now.AddDate(0, 0, -MaxLookbackDays), s.Start)
}

func TestWindow_PreservesTenantFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tenant := uuid.New()

	s, _ := NewAt(RoleMember, tenant, 90, now)
	w := s.Window(7)

	assert.Equal(t, now.AddDate(0, 0, -7), w.Start)
	assert.Equal(t, now, w.End)
	assert.NotNil(t, w.TenantID())
	assert.Equal(t, tenant, *w.TenantID())
}

func TestBetween_PreservesTenantFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tenant := uuid.New()

	s, _ := NewAt(RoleMember, tenant, 30, now)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := s.Between(start, now)

	assert.Equal(t, start, r.Start)
	assert.Equal(t, now, r.End)
	assert.Equal(t, tenant, *r.TenantID())
}

func TestNewForRange_RejectsInvertedRange(t *testing.T) {
	tenant := uuid.New()
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, 5)

	_, err := NewForRange(RoleMember, tenant, start, end)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
