package notifications

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/orderdesk/handler"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/notifications"
)

// Selector is the DOM id of the toast container patched by the stream.
const Selector = "#" + ContainerID

// Module exposes a notification center over HTTP.
type Module struct {
	center *notifications.Center
	logger *slog.Logger
}

// New creates the module. A nil logger discards output.
func New(center *notifications.Center, log *slog.Logger) *Module {
	if log == nil {
		log = logger.Discard()
	}
	return &Module{center: center, logger: log.With(logger.Component("notifications"))}
}

// Handle returns the module router:
//
//	GET    /         current list
//	POST   /         add a notification
//	DELETE /         clear all
//	DELETE /{id}     dismiss one
//	GET    /stream   DataStar SSE feed of the toast list
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", m.list)
	r.Post("/", m.create)
	r.Delete("/", m.clear)
	r.Delete("/{id}", m.remove)
	r.Get("/stream", m.stream)
	return r
}

// createRequest mirrors Spec. A missing timeout_ms applies the kind
// default; zero or negative disables expiry.
type createRequest struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	TimeoutMS *int64 `json:"timeout_ms"`
}

func (req createRequest) spec() (notifications.Spec, map[string][]string) {
	problems := map[string][]string{}

	kind, err := notifications.ParseKind(req.Kind)
	if err != nil {
		problems["kind"] = append(problems["kind"], "must be one of success, error, warning, info")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		problems["title"] = append(problems["title"], "is required")
	}
	if len(problems) > 0 {
		return notifications.Spec{}, problems
	}

	spec := notifications.Spec{Kind: kind, Title: title, Message: req.Message}
	if req.TimeoutMS != nil {
		if *req.TimeoutMS <= 0 {
			spec.Timeout = notifications.NoExpiry
		} else {
			spec.Timeout = time.Duration(*req.TimeoutMS) * time.Millisecond
		}
	}
	return spec, nil
}

func (m *Module) list(w http.ResponseWriter, r *http.Request) {
	items := m.center.Notifications()
	if items == nil {
		items = []notifications.Notification{}
	}
	m.respond(r, handler.JSON(w, http.StatusOK, items))
}

func (m *Module) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		m.respond(r, handler.Error(w, http.StatusBadRequest, "invalid_json", "Request body must be a JSON object"))
		return
	}

	spec, problems := req.spec()
	if problems != nil {
		m.respond(r, handler.ValidationError(w, problems))
		return
	}

	id := m.center.Add(spec)
	m.respond(r, handler.JSON(w, http.StatusCreated, map[string]string{"id": id}))
}

func (m *Module) remove(w http.ResponseWriter, r *http.Request) {
	m.center.Remove(chi.URLParam(r, "id"))
	handler.NoContent(w)
}

func (m *Module) clear(w http.ResponseWriter, _ *http.Request) {
	m.center.ClearAll()
	handler.NoContent(w)
}

// stream patches the toast list once on connect and again after every
// change, until the client leaves or the center closes.
func (m *Module) stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sub := m.center.Subscribe(ctx)
	defer sub.Close()

	s := handler.NewStream(w, r)
	if err := s.Patch(ToastList(m.center.Notifications()), Selector, handler.PatchOuter); err != nil {
		m.logger.DebugContext(ctx, "notification stream closed", logger.Error(err))
		return
	}

	for {
		select {
		case <-s.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := s.Patch(ToastList(ev.Snapshot), Selector, handler.PatchOuter); err != nil {
				m.logger.DebugContext(ctx, "notification stream closed", logger.Error(err))
				return
			}
		}
	}
}

func (m *Module) respond(r *http.Request, err error) {
	if err == nil || errors.Is(err, r.Context().Err()) {
		return
	}
	m.logger.WarnContext(r.Context(), "failed to write response", logger.Error(err))
}
