package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/northbeamhq/portal/internal/portal/service"
	"github.com/northbeamhq/portal/internal/portal/store"
	"github.com/northbeamhq/portal/pkg/httpx"
	"github.com/northbeamhq/portal/pkg/jwtx"
	"github.com/northbeamhq/portal/pkg/slogx"

	_ "github.com/northbeamhq/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	InvitationService   *service.InvitationService
	ProvisioningService *service.ProvisioningService
	Notifier            service.Notifier
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portal Provisioning Service API
//	@version		0.1.0
//	@description	Invitation-driven client onboarding: staff mint single-use, time-limited invitation tokens;
//	@description	invitees redeem them to provision an organization, project, user, and credential account atomically.
//	@description
//	@description				Staff endpoints require a bearer token issued by the external auth service (EdDSA-signed JWT).
//
//	@contact.name				Northbeam Platform Team
//	@contact.url				https://github.com/northbeamhq/portal
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvitations() {
	// GET /validate - public token check, strict rate limit by IP to slow
	// down token enumeration.
	validateHandler := &InvitationValidateHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("GET /v1/invitations/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /accept - public provisioning endpoint, strict rate limit by IP.
	acceptHandler := &InvitationAcceptHandler{
		ProvisioningService: r.ProvisioningService,
		Notifier:            r.Notifier,
	}
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/invitations - staff mint operation, moderate rate limit by user.
	createHandler := &InvitationCreateHandler{
		InvitationService: r.InvitationService,
		Notifier:          r.Notifier,
	}
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("invitations:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/invitations - staff listing, lenient rate limit by user.
	listHandler := &InvitationListHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("invitations:read", "invitations:write"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// DELETE /v1/invitations/{id} - staff revoke, moderate rate limit by user.
	revokeHandler := &InvitationRevokeHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("DELETE /v1/invitations/{id}",
		httpx.Chain(revokeHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("invitations:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
}
