package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"

	_ "github.com/aussiebroadwan/medbook/api/booking" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	BookingService   *service.BookingService
	UserService      *service.UserService
	BootstrapService *service.BootstrapService

	// Dispatcher and Mirror are only consulted by /readyz.
	Dispatcher calendar.Dispatcher
	Mirror     *calendar.Mirror
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Logging runs first so rejected preflights are still recorded.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerDoctors()
	r.registerAppointments()
	r.registerUsers()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Medbook Appointment Booking API
//	@version		0.1.0
//	@description	Patients book appointments with doctors; doctors record the outcome.
//	@description
//	@description				Access tokens are HS256 JWTs issued by POST /login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/medbook
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

func (r *Router) registerAccounts() {
	register := &RegisterHandler{AuthService: r.AuthService}
	login := &LoginHandler{AuthService: r.AuthService}

	// Keyed by IP + email so one address cannot be brute forced from many
	// accounts' worth of budget.
	r.Mux.Handle("POST /register",
		httpx.Chain(register,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerDoctors() {
	h := &DoctorsHandler{AuthService: r.AuthService, UserService: r.UserService}

	r.Mux.Handle("GET /doctors",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("PATCH /doctors/{id}/calendar",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateCalendar),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleDoctor.String()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AuthService: r.AuthService, BookingService: r.BookingService}

	r.Mux.Handle("POST /appointments",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RolePatient.String()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /appointments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// No RequireRole here: an unknown appointment is a 404 for everyone,
	// the role check happens in the service after the lookup.
	r.Mux.Handle("PATCH /appointments/{id}/status",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AuthService: r.AuthService, UserService: r.UserService}

	r.Mux.Handle("PATCH /users/{id}/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(IndexHandler(r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Dispatcher, r.Mirror),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
