package reports

import (
	"context"

	"insights-server/internal/analytics/processor"
	"insights-server/internal/email"
	"insights-server/internal/observability"
	"insights-server/internal/scope"
	"insights-server/internal/store"
)

// ReportProcessor builds and sends the weekly metrics digest for every
// subscribed recipient.
type ReportProcessor struct {
	store        *store.Store
	analytics    processor.AnalyticsProcessor
	emailService *email.EmailService
	webAppURI    string
	logger       *observability.Logger
}

func New(store *store.Store, analytics processor.AnalyticsProcessor, emailService *email.EmailService, webAppURI string, logger *observability.Logger) *ReportProcessor {
	return &ReportProcessor{
		store:        store,
		analytics:    analytics,
		emailService: emailService,
		webAppURI:    webAppURI,
		logger:       logger,
	}
}

// SendWeeklyDigests sends the past week's metrics to every subscriber.
// One failed recipient is logged and skipped; the rest still get their
// digest.
func (p *ReportProcessor) SendWeeklyDigests(ctx context.Context) error {
	subscriptions, err := p.store.GetReportSubscriptions(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get report subscriptions", err)
		return err
	}

	for _, sub := range subscriptions {
		subCtx := observability.WithFields(ctx,
			observability.Field{Key: "tenant_id", Value: sub.TenantID.String()},
			observability.Field{Key: "recipient", Value: sub.Email},
		)

		if err := p.sendDigest(subCtx, sub); err != nil {
			p.logger.Error(subCtx, "failed to send weekly digest", err)
			continue
		}
	}

	return nil
}

func (p *ReportProcessor) sendDigest(ctx context.Context, sub store.ReportSubscription) error {
	sc, err := scope.New(scope.RoleTenantAdmin, sub.TenantID, 7)
	if err != nil {
		return err
	}

	overview, err := p.analytics.GetFunnelOverview(ctx, sc)
	if err != nil {
		return err
	}

	responseTimes, err := p.analytics.GetResponseTimes(ctx, sc)
	if err != nil {
		return err
	}

	data := email.DigestData{
		RecipientName:  sub.Name,
		WeekOf:         sc.Start.Format("Jan 2, 2006"),
		TotalLeads:     overview.TotalLeads,
		HotLeads:       overview.HotLeads,
		ConversionRate: overview.ConversionRate,
		MessagesSent:   overview.MessagesSent,
		Responses:      overview.Responses,
		AvgResponse:    responseTimes.Last7Days.AvgResponse,
		DashboardLink:  p.webAppURI + "/analytics",
	}

	return p.emailService.SendWeeklyDigest(ctx, sub.Email, data)
}
