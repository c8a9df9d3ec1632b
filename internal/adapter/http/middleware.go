package httpadapter

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"adops/internal/core/domain"
)

type ctxKey string

const (
	actorKey      ctxKey = "actor"
	requestLogKey ctxKey = "request_log"
)

// requestLog collects fields that inner middleware learns after
// requestLogger has started, such as the authenticated user.
type requestLog struct {
	userID string
}

func withActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// actorFrom returns the actor stored by the authenticate middleware.
func actorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// requestLogger logs one line per request once the response is written.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		entry := &requestLog{}
		r = r.WithContext(context.WithValue(r.Context(), requestLogKey, entry))
		defer func() {
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			}
			if entry.userID != "" {
				fields = append(fields, zap.String("user_id", entry.userID))
			}
			h.logger.Info("http request", fields...)
		}()
		next.ServeHTTP(ww, r)
	})
}

// authenticate resolves the bearer token into an actor. Revocation checks
// that fail because the session store is down answer 500.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			h.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		actor, err := h.svc.Auth.Authenticate(r.Context(), raw)
		if err != nil {
			if domain.KindOf(err) == domain.KindUnauthorized {
				h.logger.Debug("token rejected",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.Error(err))
			}
			h.writeError(w, r, err)
			return
		}
		if entry, ok := r.Context().Value(requestLogKey).(*requestLog); ok {
			entry.userID = actor.UserID.String()
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// rateLimit is a fixed-window limiter keyed by client address. Redis
// failures let the request through.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	limit, window := h.opts.RateLimit.Requests, h.opts.RateLimit.Window
	if h.rdb == nil || limit <= 0 || window <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		bucket := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("rl:%s:%d", clientIP(r), bucket)

		var incr *redis.IntCmd
		_, err := h.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			// Keys change every window, so refreshing the TTL never extends one.
			pipe.Expire(ctx, key, window)
			return nil
		})
		if err != nil {
			h.logger.Warn("rate limit check failed",
				zap.String("request_id", middleware.GetReqID(ctx)),
				zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		count := incr.Val()

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if count > int64(limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			h.fail(w, r, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP has
// already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
