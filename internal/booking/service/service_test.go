package service_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/internal/booking/store/drivers/sqlite"
	"github.com/aussiebroadwan/medbook/pkg/cryptox"
	"github.com/aussiebroadwan/medbook/pkg/idx"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// recordingDispatcher keeps dispatched events in memory.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []calendar.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, ev calendar.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
}
func (d *recordingDispatcher) Start()                        {}
func (d *recordingDispatcher) Stop()                         {}
func (d *recordingDispatcher) Ready(_ context.Context) error { return nil }

type fixture struct {
	store      store.Store
	auth       *service.AuthService
	booking    *service.BookingService
	users      *service.UserService
	bootstrap  *service.BootstrapService
	dispatcher *recordingDispatcher
	verifier   jwtx.Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)

	d := &recordingDispatcher{}
	return &fixture{
		store:      st,
		auth:       &service.AuthService{Store: st, Signer: signer, Issuer: "medbook", AccessTTL: 15 * time.Minute},
		booking:    &service.BookingService{Store: st, Dispatcher: d},
		users:      &service.UserService{Store: st},
		bootstrap:  &service.BootstrapService{Store: st, Token: "boot-token"},
		dispatcher: d,
		verifier:   signer.Verifier(jwtx.VerifyOptions{Issuer: "medbook"}),
	}
}

func (f *fixture) patient(t *testing.T, email, name string) domain.Identity {
	t.Helper()
	u, err := f.auth.Register(context.Background(), service.RegisterInput{Email: email, Password: "secret", Name: name})
	require.NoError(t, err)
	return domain.Identity{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func (f *fixture) doctor(t *testing.T, email string) domain.Identity {
	t.Helper()
	hash, err := cryptox.HashPassword("secret")
	require.NoError(t, err)
	u := domain.User{ID: idx.New().String(), Email: email, PasswordHash: hash, Role: domain.RoleDoctor}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return domain.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}
