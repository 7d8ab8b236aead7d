package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

// CommandHandler accepts keyboard commands and hands them to the dispatcher.
type CommandHandler struct {
	dispatcher ports.CommandDispatcher
	tracker    ports.TrackerService
	limiter    *rate.Limiter
}

// CommandOption configures a CommandHandler.
type CommandOption func(*CommandHandler)

// WithCommandRate throttles dispatch to perSecond commands with the given
// burst. A non-positive rate leaves dispatch unthrottled.
func WithCommandRate(perSecond float64, burst int) CommandOption {
	return func(h *CommandHandler) {
		if perSecond > 0 {
			h.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
		}
	}
}

// NewCommandHandler creates a CommandHandler. The tracker is only read, to
// return the roster after the command ran.
func NewCommandHandler(dispatcher ports.CommandDispatcher, tracker ports.TrackerService, opts ...CommandOption) *CommandHandler {
	h := &CommandHandler{dispatcher: dispatcher, tracker: tracker}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Dispatch handles POST /api/v1/commands. Unrecognized input is not an
// error: the response reports recognized=false and nothing changes.
// Keystrokes typed into a text field are acknowledged but not dispatched.
// Past the configured rate the request is refused with 429 and Retry-After.
func (h *CommandHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow() {
		w.Header().Set("Retry-After", retryAfter(h.limiter))
		dto.WriteErrorResponse(w, r, domain.ErrRateLimited)
		return
	}

	var req dto.CommandRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cmd := req.Decode()
	resp := dto.CommandResponse{
		Command:    cmd.String(),
		Recognized: cmd.IsValid(),
	}

	if req.FromTextInput() {
		resp.Ignored = true
		logging.FromContext(r.Context()).DebugContext(r.Context(), "command from text input ignored",
			slog.String("command", cmd.String()),
			slog.String("source", req.Source),
		)
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	resp.Recognized = h.dispatcher.Dispatch(r.Context(), cmd)

	roster := dto.ToRosterResponse(h.tracker.Snapshot(r.Context()))
	resp.Roster = &roster

	writeJSON(w, r, http.StatusOK, resp)
}

// retryAfter is the whole number of seconds until the limiter has a token.
func retryAfter(l *rate.Limiter) string {
	wait := time.Duration(float64(time.Second) / float64(l.Limit()))
	return strconv.Itoa(int(math.Ceil(wait.Seconds())))
}
