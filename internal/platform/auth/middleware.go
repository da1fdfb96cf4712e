package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/cardfolio/api/internal/platform/logging"
)

// identityContextKey is the context key for the authenticated identity.
type identityContextKey struct{}

// Options tunes middleware behavior.
type Options struct {
	// AllowAnonymous injects a guest identity instead of rejecting
	// requests without an Authorization header. Used in local mode where
	// cards live in the per-process file store.
	AllowAnonymous bool
}

// NewMiddleware creates Huma middleware for bearer authentication. It checks
// the operation's Security requirements and validates tokens.
func NewMiddleware(api huma.API, verifier Verifier, opts Options) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, err := ExtractBearerToken(ctx.Header("Authorization"))
		if err != nil {
			if errors.Is(err, ErrNoToken) && opts.AllowAnonymous {
				ctx = huma.WithValue(ctx, identityContextKey{}, &Identity{Anonymous: true})
				next(ctx)
				return
			}
			applog.LogWarn(ctx.Context(), "auth failed: missing or invalid header",
				zap.String("reason", "no_token"))
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}

		identity, err := verifier.Verify(ctx.Context(), token)
		if err != nil {
			reason := categorizeAuthError(err)
			applog.LogWarn(ctx.Context(), "auth failed: token verification failed",
				zap.String("reason", reason))

			if errors.Is(err, ErrCertificateFetch) {
				ctx.SetHeader("Retry-After", "30")
				_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable,
					"authentication service temporarily unavailable")
				return
			}
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx = huma.WithValue(ctx, identityContextKey{}, identity)
		next(ctx)
	}
}

// categorizeAuthError returns a safe category string for logging.
func categorizeAuthError(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrTokenRevoked):
		return "token_revoked"
	case errors.Is(err, ErrUserDisabled):
		return "user_disabled"
	case errors.Is(err, ErrCertificateFetch):
		return "certificate_fetch_failed"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	default:
		return "unknown"
	}
}

// IdentityFromContext retrieves the caller identity from context.
// Returns nil if the request was not authenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityContextKey{}).(*Identity)
	return identity
}

// OwnerEmail returns the tenant key for the request, or "" for anonymous
// or missing identities.
func OwnerEmail(ctx context.Context) string {
	identity := IdentityFromContext(ctx)
	if identity == nil || identity.Anonymous {
		return ""
	}
	return identity.Email
}
