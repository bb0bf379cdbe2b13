package submissions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wolfman30/cashoffer-leads/internal/http/middleware"
	"github.com/wolfman30/cashoffer-leads/internal/observability/metrics"
	"github.com/wolfman30/cashoffer-leads/pkg/logging"
)

var intakeTracer = otel.Tracer("cashoffer.internal.submissions")

// Notifier receives every accepted submission. Dispatch must not block the
// request; delivery outcome is the notifier's own concern.
type Notifier interface {
	Dispatch(sub Submission)
}

// Handler handles HTTP requests for lead submissions
type Handler struct {
	store    Repository
	notifier Notifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
	delay    time.Duration
	now      func() time.Time
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithNotifier hands accepted submissions to n.
func WithNotifier(n Notifier) HandlerOption {
	return func(h *Handler) { h.notifier = n }
}

// WithMetrics records intake outcomes on m.
func WithMetrics(m *metrics.LeadMetrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// WithIntakeDelay pauses for d before acknowledging an accepted submission.
// The pause keeps the form's loading state visible; it has no effect on
// what is stored.
func WithIntakeDelay(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.delay = d
		}
	}
}

// WithClock overrides the source of server-side timestamps.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler creates a new submissions handler
func NewHandler(store Repository, logger *logging.Logger, opts ...HandlerOption) *Handler {
	if store == nil {
		panic("submissions: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	h := &Handler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CreateSubmission handles POST /api/submit-form requests
func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := intakeTracer.Start(r.Context(), "submissions.intake")
	defer span.End()

	outcome := metrics.OutcomeAccepted
	// Latency covers decode, validation and storage; the intake delay is not
	// part of it.
	observed := false
	observe := func() {
		if observed {
			return
		}
		observed = true
		span.SetAttributes(attribute.String("cashoffer.intake.outcome", outcome))
		h.metrics.ObserveIntake(outcome, time.Since(start).Seconds())
	}
	defer observe()

	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		outcome = metrics.OutcomeFailed
		span.RecordError(err)
		h.logger.Warn("failed to decode submission", "error", err)
		jsonError(w, msgIntakeFailed, http.StatusInternalServerError)
		return
	}
	if err := req.Validate(); err != nil {
		outcome = metrics.OutcomeInvalid
		h.logger.Info("submission rejected", "reason", err.Error())
		jsonError(w, clientMessage(err), http.StatusBadRequest)
		return
	}

	sub, err := h.store.Add(ctx, NewSubmission{
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Timestamp: h.now().UTC().Truncate(time.Millisecond),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		outcome = metrics.OutcomeFailed
		span.RecordError(err)
		h.logger.Error("failed to store submission", "error", err)
		jsonError(w, msgIntakeFailed, http.StatusInternalServerError)
		return
	}

	h.logger.Info("new cash offer request",
		"id", sub.ID,
		"address", sub.Address,
		"phone", sub.Phone,
		"email", sub.Email,
		"timestamp", sub.Timestamp,
		"user_agent", sub.UserAgent,
	)
	span.SetAttributes(attribute.String("cashoffer.submission_id", sub.ID))

	if count, err := h.store.Count(ctx); err == nil {
		h.metrics.SetStoreSize(count)
	}
	if h.notifier != nil {
		h.notifier.Dispatch(*sub)
	}
	observe()

	if err := sleepCtx(ctx, h.delay); err != nil {
		h.logger.Debug("client went away during intake delay", "id", sub.ID, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, CreateSubmissionResponse{
		Success: true,
		Message: msgAccepted,
	})
}

// ListSubmissions handles GET /api/admin/submissions requests
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list submissions", "error", err)
		jsonError(w, msgListFailed, http.StatusInternalServerError)
		return
	}

	if claims, ok := middleware.AdminClaimsFromContext(r.Context()); ok {
		h.logger.Info("admin listed submissions", "subject", claims.Subject, "count", len(subs))
	}
	writeJSON(w, http.StatusOK, NewListResponse(subs))
}

// NewListResponse builds the admin payload. The count is taken from the same
// snapshot as the list so the two never disagree.
func NewListResponse(subs []Submission) ListSubmissionsResponse {
	if subs == nil {
		subs = []Submission{}
	}
	return ListSubmissionsResponse{
		Submissions: subs,
		Count:       len(subs),
		Message:     fmt.Sprintf("Found %d submissions", len(subs)),
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
