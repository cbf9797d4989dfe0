package controllers

import (
	"errors"
	"formpick/internal/models"
	"formpick/internal/providers"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type noticeResponse struct {
	Notice string `json:"notice"`
	Code   string `json:"code"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Responder holds what every controller needs to turn service results into
// HTTP responses.
type Responder struct {
	logger  providers.Logger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	store   providers.DocumentCounter
}

func NewResponder(logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, store providers.DocumentCounter) *Responder {
	return &Responder{
		logger:  logger,
		cache:   cache,
		metrics: metrics,
		store:   store,
	}
}

func (rs *Responder) writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	rs.writeRaw(w, status, gson)
}

func (rs *Responder) writeRaw(w http.ResponseWriter, status int, gson []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeError answers notices with 422 and their message. Anything else is
// logged and hidden behind a 500.
func (rs *Responder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if notice, ok := models.AsNotice(err); ok {
		rs.metrics.IncNotices(notice.Code)
		rs.writeJSON(w, http.StatusUnprocessableEntity, noticeResponse{Notice: notice.Message, Code: notice.Code})
		return
	}
	rs.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %v", r.Method, r.URL.Path, err)
	rs.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

func (rs *Responder) badRequest(w http.ResponseWriter, msg string) {
	rs.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// decode reads a JSON body into dst and checks its validate tags. It writes
// the 400 itself and reports false when the payload is unusable.
func (rs *Responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rs.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Request Entity Too Large"})
			return false
		}
		rs.badRequest(w, "Bad Request")
		return false
	}
	return rs.check(w, dst)
}

func (rs *Responder) check(w http.ResponseWriter, dst any) bool {
	v := validate.Struct(dst)
	v.StopOnError = true
	if !v.Validate() {
		rs.badRequest(w, v.Errors.One())
		return false
	}
	return true
}

// cached serves a GET from the response cache. The key carries the store
// revision, so a write anywhere invalidates every cached view.
func (rs *Responder) cached(w http.ResponseWriter, r *http.Request, compute func() (any, error)) {
	key := providers.RevisionKey(rs.store.Revision(), r.URL.Path, r.URL.RawQuery)
	if data, ok := rs.cache.Get(key); ok {
		rs.writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		rs.writeError(w, r, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		rs.writeError(w, r, err)
		return
	}
	rs.cache.Set(key, gson)
	rs.writeRaw(w, http.StatusOK, gson)
}

func (rs *Responder) respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		rs.writeError(w, r, err)
		return
	}
	rs.writeJSON(w, status, v)
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func queryBool(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}
