package notify

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"
	_ "time/tzdata" // NOTIFY_TIMEZONE must resolve on minimal container images

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wolfman30/cashoffer-leads/internal/observability/metrics"
	"github.com/wolfman30/cashoffer-leads/internal/submissions"
	"github.com/wolfman30/cashoffer-leads/pkg/logging"
)

var notifyTracer = otel.Tracer("cashoffer.internal.notify")

// ErrNotConfigured is returned when there is no sender or no recipient.
var ErrNotConfigured = errors.New("notify: email notification not configured")

// SubmittedAtLayout formats the submission time in owner emails.
const SubmittedAtLayout = "Monday, January 2, 2006 at 03:04 PM MST"

// LeadNotifierConfig holds settings for owner notifications.
type LeadNotifierConfig struct {
	Recipients []string
	Timezone   string
	Timeout    time.Duration
	SiteName   string
}

// LeadNotifier emails the business owner about every new submission.
// Delivery is best-effort: callers on the request path use Dispatch and never
// see the outcome.
type LeadNotifier struct {
	sender     EmailSender
	recipients []string
	loc        *time.Location
	timeout    time.Duration
	siteName   string
	metrics    *metrics.LeadMetrics
	logger     *logging.Logger
	wg         sync.WaitGroup
}

// NewLeadNotifier creates a notifier. A nil sender or an empty recipient list
// yields a notifier that skips every lead.
func NewLeadNotifier(sender EmailSender, cfg LeadNotifierConfig, m *metrics.LeadMetrics, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	loc := time.UTC
	if cfg.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l
		} else {
			logger.Warn("notify: unknown timezone, using UTC", "timezone", cfg.Timezone, "error", err)
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.SiteName == "" {
		cfg.SiteName = DefaultFromName
	}
	return &LeadNotifier{
		sender:     sender,
		recipients: cfg.Recipients,
		loc:        loc,
		timeout:    cfg.Timeout,
		siteName:   cfg.SiteName,
		metrics:    m,
		logger:     logger,
	}
}

// Dispatch sends the notification on its own goroutine with a detached,
// time-bounded context. Failures are logged and counted only.
func (n *LeadNotifier) Dispatch(sub submissions.Submission) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		err := n.NotifyNewSubmission(ctx, sub)
		switch {
		case err == nil:
			n.metrics.ObserveNotification(metrics.NotifySent)
		case errors.Is(err, ErrNotConfigured):
			n.metrics.ObserveNotification(metrics.NotifySkipped)
			n.logger.Debug("email notification not configured - skipping", "id", sub.ID)
		default:
			n.metrics.ObserveNotification(metrics.NotifyFailed)
			n.logger.Error("lead notification failed", "id", sub.ID, "error", err)
		}
	}()
}

// Wait blocks until every dispatched notification has finished.
func (n *LeadNotifier) Wait() {
	n.wg.Wait()
}

// NotifyNewSubmission renders and sends the owner email to each recipient.
// Only the finalized address, phone, email and timestamp are used.
func (n *LeadNotifier) NotifyNewSubmission(ctx context.Context, sub submissions.Submission) error {
	if n.sender == nil || len(n.recipients) == 0 {
		return ErrNotConfigured
	}

	ctx, span := notifyTracer.Start(ctx, "notify.new_submission")
	defer span.End()
	span.SetAttributes(
		attribute.String("cashoffer.submission_id", sub.ID),
		attribute.Int("cashoffer.notify.recipients", len(n.recipients)),
	)

	text, html, err := renderLeadEmail(leadEmailData{
		SiteName:    n.siteName,
		Address:     sub.Address,
		Phone:       orNotProvided(sub.Phone),
		Email:       orNotProvided(sub.Email),
		SubmittedAt: sub.Timestamp.In(n.loc).Format(SubmittedAtLayout),
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	var errs []error
	for _, recipient := range n.recipients {
		msg := EmailMessage{
			To:      recipient,
			Subject: fmt.Sprintf("New Cash Offer Request - %s", sub.Address),
			Body:    text,
			HTML:    html,
			ReplyTo: replyTo(sub.Email),
		}
		if err := n.sender.Send(ctx, msg); err != nil {
			span.RecordError(err)
			errs = append(errs, fmt.Errorf("notify: send to %s: %w", recipient, err))
			continue
		}
		n.logger.Info("lead notification sent", "to", recipient, "id", sub.ID)
	}
	return errors.Join(errs...)
}

// replyTo returns the lead's email when it parses as an address. The form
// accepts free text, so anything else is dropped rather than failing the send.
func replyTo(email string) string {
	if email == "" {
		return ""
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return ""
	}
	return addr.Address
}
