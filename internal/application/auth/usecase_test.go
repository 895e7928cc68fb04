package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sigec-api/internal/application/auth"
	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/pkg/jwt"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakeEmployees struct {
	mu   sync.Mutex
	byID map[int64]*entity.Employee
}

func newFakeEmployees(es ...*entity.Employee) *fakeEmployees {
	f := &fakeEmployees{byID: map[int64]*entity.Employee{}}
	for _, e := range es {
		f.byID[e.Legajo] = e
	}
	return f
}

func (f *fakeEmployees) Create(_ context.Context, e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[e.Legajo]; ok {
		return domain.ErrLegajoAlreadyExists
	}
	for _, o := range f.byID {
		if o.Email == e.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *e
	f.byID[e.Legajo] = &cp
	return nil
}

func (f *fakeEmployees) GetByLegajo(_ context.Context, legajo int64) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[legajo]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEmployees) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.byID {
		if strings.EqualFold(e.Email, email) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployees) GetByResetTokenHash(_ context.Context, hash string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.byID {
		if hash != "" && e.ResetTokenHash == hash {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployees) Update(_ context.Context, e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[e.Legajo]; !ok {
		return domain.ErrEmployeeNotFound
	}
	cp := *e
	f.byID[e.Legajo] = &cp
	return nil
}

func (f *fakeEmployees) List(_ context.Context, _, _ int) ([]*entity.Employee, error) {
	return nil, nil
}

type fakeMailer struct {
	sent []ports.MailMessage
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg ports.MailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

const (
	testSecret   = "test-secret"
	testFrontend = "https://sigec.test"
)

func newUseCase(repo *fakeEmployees, mailer *fakeMailer) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, mailer, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "sigec"}, testFrontend, logger.Nop())
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func activeEmployee(t *testing.T, legajo int64, role string) *entity.Employee {
	return &entity.Employee{
		Legajo:         legajo,
		FirstName:      "Ana",
		LastName:       "Gómez",
		Email:          "ana@sigec.test",
		PasswordHash:   hashed(t, "secreto1"),
		Role:           role,
		Status:         entity.EmployeeStatusActive,
		EmailConfirmed: true,
	}
}

func registerRequest() dto.RegisterEmployeeRequest {
	return dto.RegisterEmployeeRequest{
		Legajo:    1001,
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "Juan.Perez@sigec.test",
		Password:  "secreto1",
	}
}

// ─── Register / ConfirmEmail ─────────────────────────────────────────────────

func TestRegister_CreaInactivoYEnviaActivacion(t *testing.T) {
	repo := newFakeEmployees()
	mailer := &fakeMailer{}
	uc := newUseCase(repo, mailer)

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdvisor, out.Role)
	assert.Equal(t, entity.EmployeeStatusInactive, out.Status)
	assert.False(t, out.EmailConfirmed)
	assert.Equal(t, "juan.perez@sigec.test", out.Email)

	stored, _ := repo.GetByLegajo(context.Background(), 1001)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "juan.perez@sigec.test", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].HTML, testFrontend+"/confirm-email/1001")
}

func TestRegister_FalloDeMailNoRevierteElAlta(t *testing.T) {
	repo := newFakeEmployees()
	uc := newUseCase(repo, &fakeMailer{err: errors.New("smtp caído")})

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	stored, _ := repo.GetByLegajo(context.Background(), 1001)
	assert.NotNil(t, stored)
}

func TestRegister_Validaciones(t *testing.T) {
	sup := activeEmployee(t, 50, entity.RoleAdvisor)
	cases := []struct {
		name string
		mod  func(r *dto.RegisterEmployeeRequest)
		want error
	}{
		{"legajo cero", func(r *dto.RegisterEmployeeRequest) { r.Legajo = 0 }, domain.ErrInvalidInput},
		{"sin nombre", func(r *dto.RegisterEmployeeRequest) { r.FirstName = " " }, domain.ErrInvalidInput},
		{"password corta", func(r *dto.RegisterEmployeeRequest) { r.Password = "123" }, domain.ErrInvalidInput},
		{"email inválido", func(r *dto.RegisterEmployeeRequest) { r.Email = "no-es-email" }, domain.ErrInvalidInput},
		{"rol desconocido", func(r *dto.RegisterEmployeeRequest) { r.Role = "gerente" }, domain.ErrInvalidInput},
		{"supervisor que es asesor", func(r *dto.RegisterEmployeeRequest) { id := int64(50); r.SupervisorLegajo = &id }, domain.ErrInvalidInput},
		{"legajo existente", func(r *dto.RegisterEmployeeRequest) { r.Legajo = 50 }, domain.ErrLegajoAlreadyExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newUseCase(newFakeEmployees(sup), &fakeMailer{})
			req := registerRequest()
			tc.mod(&req)
			_, err := uc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfirmEmail(t *testing.T) {
	e := activeEmployee(t, 7, entity.RoleAdvisor)
	e.EmailConfirmed = false
	repo := newFakeEmployees(e)
	uc := newUseCase(repo, &fakeMailer{})

	require.NoError(t, uc.ConfirmEmail(context.Background(), 7))
	stored, _ := repo.GetByLegajo(context.Background(), 7)
	assert.True(t, stored.EmailConfirmed)

	assert.ErrorIs(t, uc.ConfirmEmail(context.Background(), 7), domain.ErrConflict)
	assert.ErrorIs(t, uc.ConfirmEmail(context.Background(), 999), domain.ErrEmployeeNotFound)
}

// ─── Login ───────────────────────────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	uc := newUseCase(newFakeEmployees(activeEmployee(t, 10, entity.RoleSupervisor)), &fakeMailer{})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Legajo: 10, Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Employee.Legajo)

	legajo, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), legajo)
	assert.Equal(t, entity.RoleSupervisor, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(newFakeEmployees(activeEmployee(t, 10, entity.RoleAdvisor)), &fakeMailer{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Legajo: 10, Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Legajo: 99, Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Legajo: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CuentaNoHabilitada(t *testing.T) {
	inactive := activeEmployee(t, 11, entity.RoleAdvisor)
	inactive.Status = entity.EmployeeStatusInactive
	unconfirmed := activeEmployee(t, 12, entity.RoleAdvisor)
	unconfirmed.Email = "otro@sigec.test"
	unconfirmed.EmailConfirmed = false
	uc := newUseCase(newFakeEmployees(inactive, unconfirmed), &fakeMailer{})

	for _, legajo := range []int64{11, 12} {
		_, err := uc.Login(context.Background(), dto.LoginRequest{Legajo: legajo, Password: "secreto1"})
		assert.ErrorIs(t, err, domain.ErrAccountInactive, "legajo %d", legajo)
	}
}

// ─── Recuperación de contraseña ──────────────────────────────────────────────

func resetTokenFrom(t *testing.T, msg ports.MailMessage) string {
	t.Helper()
	marker := testFrontend + "/reset-password/"
	i := strings.Index(msg.HTML, marker)
	require.GreaterOrEqual(t, i, 0, "el email no trae el enlace de recuperación")
	rest := msg.HTML[i+len(marker):]
	return rest[:36] // uuid
}

func TestForgotAndResetPassword(t *testing.T) {
	repo := newFakeEmployees(activeEmployee(t, 20, entity.RoleAdvisor))
	mailer := &fakeMailer{}
	uc := newUseCase(repo, mailer)
	ctx := context.Background()

	require.NoError(t, uc.ForgotPassword(ctx, "ANA@sigec.test"))
	require.Len(t, mailer.sent, 1)
	token := resetTokenFrom(t, mailer.sent[0])

	stored, _ := repo.GetByLegajo(ctx, 20)
	assert.NotEqual(t, token, stored.ResetTokenHash, "solo se guarda el hash")
	require.NotNil(t, stored.ResetTokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(auth.ResetTokenTTL), *stored.ResetTokenExpiresAt, time.Minute)

	require.NoError(t, uc.ResetPassword(ctx, token, "nueva-clave"))
	_, err := uc.Login(ctx, dto.LoginRequest{Legajo: 20, Password: "nueva-clave"})
	require.NoError(t, err)

	// El token queda invalidado.
	assert.ErrorIs(t, uc.ResetPassword(ctx, token, "otra-clave"), domain.ErrTokenExpired)
}

func TestForgotPassword_EmailInexistenteNoRevela(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newUseCase(newFakeEmployees(), mailer)

	require.NoError(t, uc.ForgotPassword(context.Background(), "nadie@sigec.test"))
	assert.Empty(t, mailer.sent)
}

func TestForgotPassword_FalloDeMail(t *testing.T) {
	uc := newUseCase(newFakeEmployees(activeEmployee(t, 20, entity.RoleAdvisor)), &fakeMailer{err: errors.New("smtp")})
	assert.Error(t, uc.ForgotPassword(context.Background(), "ana@sigec.test"))
}

func TestResetPassword_TokenVencido(t *testing.T) {
	repo := newFakeEmployees(activeEmployee(t, 20, entity.RoleAdvisor))
	mailer := &fakeMailer{}
	uc := newUseCase(repo, mailer)
	ctx := context.Background()

	require.NoError(t, uc.ForgotPassword(ctx, "ana@sigec.test"))
	token := resetTokenFrom(t, mailer.sent[0])

	stored, _ := repo.GetByLegajo(ctx, 20)
	past := time.Now().Add(-time.Minute)
	stored.ResetTokenExpiresAt = &past
	require.NoError(t, repo.Update(ctx, stored))

	assert.ErrorIs(t, uc.ResetPassword(ctx, token, "nueva-clave"), domain.ErrTokenExpired)
}

func TestResetPassword_Validaciones(t *testing.T) {
	uc := newUseCase(newFakeEmployees(), &fakeMailer{})
	assert.ErrorIs(t, uc.ResetPassword(context.Background(), "x", "123"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.ResetPassword(context.Background(), "", "secreto1"), domain.ErrTokenExpired)
	assert.ErrorIs(t, uc.ResetPassword(context.Background(), "desconocido", "secreto1"), domain.ErrTokenExpired)
}
