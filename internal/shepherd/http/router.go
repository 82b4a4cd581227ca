package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"

	_ "github.com/aussiebroadwan/shepherd/api/shepherd" // Swagger docs
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
	AccessService       *service.AccessService
	TokenService        *service.TokenService
	UserService         *service.UserService
	RolesService        *service.RolesService
	BootstrapService    *service.BootstrapService
	MemberService       *service.MemberService
	EventService        *service.EventService
	AttendanceService   *service.AttendanceService
	DiscipleshipService *service.DiscipleshipService
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

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRoles()
	r.registerMembers()
	r.registerEvents()
	r.registerAttendance()
	r.registerDiscipleship()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Shepherd Church Administration API
//	@version		0.1.0
//	@description	Member records, events, attendance and discipleship tracking for a local church.
//	@description
//	@description				Access is role based. Tokens are EdDSA signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/shepherd
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

// authenticated is the middleware every signed-in route starts with:
// verify the token, resolve the principal, then apply guards.
func (r *Router) authenticated(limit httpx.RateLimitConfig, guards ...httpx.Guard) []httpx.Middleware {
	all := append([]httpx.Guard{principalGuard(r.AccessService)}, guards...)
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
		httpx.Guarded(all...),
	}
}

func (r *Router) handle(pattern string, h http.HandlerFunc, mws []httpx.Middleware) {
	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		TokenService: r.TokenService,
		UserService:  r.UserService,
	}

	// Credential endpoints are limited by IP and the submitted email.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/auth/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.handle("GET /v1/auth/me", h.HandleMe, r.authenticated(httpx.LenientLimit))
	r.handle("POST /v1/auth/change-password", h.HandleChangePassword, r.authenticated(httpx.StrictLimit))

	r.handle("PUT /v1/users/{id}/roles", h.HandleAssignRoles,
		r.authenticated(httpx.ModerateLimit, requirePermission("roles", domain.ActionUpdate)))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	seniorPastor := requireRole(rbac.RoleSeniorPastor)
	readers := requireRole(rbac.RoleSeniorPastor, rbac.RolePastor, rbac.RoleElder)

	r.handle("POST /v1/roles/initialize", h.HandleInitialize, r.authenticated(httpx.ModerateLimit, seniorPastor))
	r.handle("GET /v1/roles", h.HandleList, r.authenticated(httpx.LenientLimit, readers))
	r.handle("GET /v1/roles/{id}", h.HandleGet, r.authenticated(httpx.LenientLimit, readers))
	r.handle("POST /v1/roles", h.HandleCreate, r.authenticated(httpx.ModerateLimit, seniorPastor))
	r.handle("PUT /v1/roles/{id}", h.HandleUpdate, r.authenticated(httpx.ModerateLimit, seniorPastor))
	r.handle("DELETE /v1/roles/{id}", h.HandleDelete, r.authenticated(httpx.ModerateLimit, seniorPastor))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	readers := requirePermission("members", domain.ActionRead)
	editors := requireRole(
		rbac.RoleSeniorPastor, rbac.RolePastor, rbac.RoleElder,
		rbac.RoleDeacon, rbac.RoleLaneLeader, rbac.RoleITOfficer,
	)
	archivers := requireRole(rbac.RoleSeniorPastor, rbac.RolePastor, rbac.RoleElder)

	r.handle("GET /v1/members", h.HandleList, r.authenticated(httpx.LenientLimit, readers))
	r.handle("GET /v1/members/{id}", h.HandleGet, r.authenticated(httpx.LenientLimit, readers))
	r.handle("POST /v1/members", h.HandleRegister, r.authenticated(httpx.ModerateLimit, editors))
	r.handle("PATCH /v1/members/{id}", h.HandleUpdate, r.authenticated(httpx.ModerateLimit, editors))
	r.handle("PATCH /v1/members/{id}/archive", h.HandleArchive, r.authenticated(httpx.ModerateLimit, archivers))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService}

	r.handle("GET /v1/events", h.HandleList, r.authenticated(httpx.LenientLimit))
	r.handle("GET /v1/events/upcoming", h.HandleUpcoming, r.authenticated(httpx.LenientLimit))
	r.handle("GET /v1/events/department/{department}", h.HandleByDepartment,
		r.authenticated(httpx.LenientLimit, requireDepartmentPath("department")))
	r.handle("GET /v1/events/{id}", h.HandleGet, r.authenticated(httpx.LenientLimit))

	// Ownership and host department checks need the event, so the service
	// finishes what these guards start.
	r.handle("POST /v1/events", h.HandleCreate, r.authenticated(httpx.ModerateLimit, requireEventManager(domain.ActionCreate)))
	r.handle("PATCH /v1/events/{id}", h.HandleUpdate, r.authenticated(httpx.ModerateLimit, requireEventManager(domain.ActionUpdate)))
	r.handle("DELETE /v1/events/{id}", h.HandleDelete,
		r.authenticated(httpx.ModerateLimit, requireRole(rbac.RoleSeniorPastor, rbac.RolePastor)))
	// A literal "checkin-code" segment would overlap the department listing
	// without either pattern being more specific, which ServeMux rejects.
	r.handle("GET /v1/events/{id}/{resource}", h.HandleCheckInCode,
		r.authenticated(httpx.ModerateLimit, requireEventManager(domain.ActionUpdate)))
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService}

	managers := requireEventManager(domain.ActionUpdate)

	r.handle("POST /v1/attendance", h.HandleRecord, r.authenticated(httpx.ModerateLimit, managers))
	// Code guessing is bounded by the strict limit.
	r.handle("POST /v1/attendance/self-checkin", h.HandleSelfCheckIn, r.authenticated(httpx.StrictLimit))
	r.handle("PATCH /v1/attendance/{id}/checkout", h.HandleCheckOut, r.authenticated(httpx.ModerateLimit, managers))
	r.handle("PATCH /v1/attendance/{id}/status", h.HandleUpdateStatus, r.authenticated(httpx.ModerateLimit, managers))

	r.handle("GET /v1/attendance/event/{eventId}", h.HandleEventAttendance, r.authenticated(httpx.LenientLimit))
	r.handle("GET /v1/attendance/event/{eventId}/stats", h.HandleEventStats, r.authenticated(httpx.LenientLimit))
	r.handle("GET /v1/attendance/member/{memberId}", h.HandleMemberHistory, r.authenticated(httpx.LenientLimit))
	r.handle("GET /v1/attendance/department/{department}/report", h.HandleDepartmentReport,
		r.authenticated(httpx.LenientLimit, managers, requireDepartmentPath("department")))
}

func (r *Router) registerDiscipleship() {
	h := &DiscipleshipHandler{DiscipleshipService: r.DiscipleshipService}

	mentors := requireLevel(service.MentorLevel)

	r.handle("POST /v1/discipleship/start", h.HandleStart, r.authenticated(httpx.ModerateLimit, mentors))
	r.handle("PATCH /v1/discipleship/{id}", h.HandleUpdate, r.authenticated(httpx.ModerateLimit, mentors))
	r.handle("PATCH /v1/discipleship/{id}/add-note", h.HandleAddNote, r.authenticated(httpx.ModerateLimit, mentors))

	// Self access is decided by the service.
	r.handle("GET /v1/discipleship/member/{memberId}", h.HandleMemberJourney, r.authenticated(httpx.LenientLimit))
	r.handle("GET /v1/discipleship/mentor/{mentorId}", h.HandleMentees, r.authenticated(httpx.LenientLimit))

	r.handle("DELETE /v1/discipleship/{id}", h.HandleDelete,
		r.authenticated(httpx.ModerateLimit, requireRole(rbac.RoleSeniorPastor)))
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
