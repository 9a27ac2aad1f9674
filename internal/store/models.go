package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Lead lifecycle statuses. Leads are soft-archived, never deleted, so
// status transitions are the only lifecycle signal.
const (
	LeadStatusNew          = "New"
	LeadStatusHot          = "Hot Lead"
	LeadStatusCold         = "Cold"
	LeadStatusDisqualified = "Disqualified"
	LeadStatusConverted    = "Converted"
)

// Message directions in the append-only message log.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Lead represents a sales lead owned by a tenant
type Lead struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	TenantID    uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	CampaignID  *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Status      string     `db:"status" json:"status"`
	MarkedHotAt *time.Time `db:"marked_hot_at" json:"marked_hot_at"`
	AssignedTo  *uuid.UUID `db:"assigned_to" json:"assigned_to"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ArchivedAt  *time.Time `db:"archived_at" json:"archived_at"`
}

// Message is one row of the immutable per-lead message log
type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	LeadID    uuid.UUID `db:"lead_id" json:"lead_id"`
	Direction string    `db:"direction" json:"direction"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Campaign represents an outreach campaign
type Campaign struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	TenantID  uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	Name      string     `db:"name" json:"name"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	Archived  bool       `db:"archived" json:"archived"`
	StartDate *time.Time `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date"`
}

// SalesMetric is one row of the externally maintained daily rollup
type SalesMetric struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	TenantID            uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	PeriodType          string     `db:"period_type" json:"period_type"`
	MetricDate          time.Time  `db:"metric_date" json:"metric_date"`
	UserProfileID       *uuid.UUID `db:"user_profile_id" json:"user_profile_id"`
	HotLeads            int        `db:"hot_leads" json:"hot_leads"`
	ContactedLeads      int        `db:"contacted_leads" json:"contacted_leads"`
	Conversions         int        `db:"conversions" json:"conversions"`
	Disqualifications   int        `db:"disqualifications" json:"disqualifications"`
	AvgResponseInterval *string    `db:"avg_response_interval" json:"avg_response_interval"`
	PipelineValue       float64    `db:"pipeline_value" json:"pipeline_value"`
}

// ConversationRecord holds AI-derived analysis for one conversation
type ConversationRecord struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	LeadID          uuid.UUID       `db:"lead_id" json:"lead_id"`
	ConfidenceScore *float64        `db:"confidence_score" json:"confidence_score"`
	ContentAnalysis json.RawMessage `db:"content_analysis" json:"content_analysis"`
	CallLogged      bool            `db:"call_logged" json:"call_logged"`
	MarkedHotAt     *time.Time      `db:"marked_hot_at" json:"marked_hot_at"`
}

// SalesOutcome is a deal-level record linked to a lead and rep
type SalesOutcome struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TenantID   uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	LeadID     uuid.UUID  `db:"lead_id" json:"lead_id"`
	CampaignID *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	DealAmount float64    `db:"deal_amount" json:"deal_amount"`
	DealStage  string     `db:"deal_stage" json:"deal_stage"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// ReportSubscription maps a recipient to a tenant's weekly digest
type ReportSubscription struct {
	ID       uuid.UUID `db:"id" json:"id"`
	TenantID uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email    string    `db:"email" json:"email"`
	Name     string    `db:"name" json:"name"`
}
