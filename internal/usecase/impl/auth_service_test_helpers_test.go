package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher does reversible "hashing" so tests stay fast and deterministic.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues sequence-numbered opaque strings and remembers the
// claims behind each one, so every issued token is unique and verifiable.
type fakeTokenService struct {
	mu      sync.Mutex
	counter int
	access  map[string]*service.AccessClaims
	refresh map[string]*service.RefreshClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		access:  make(map[string]*service.AccessClaims),
		refresh: make(map[string]*service.RefreshClaims),
	}
}

func (f *fakeTokenService) GenerateAccessToken(identity *entity.Identity) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	token := fmt.Sprintf("access-%d", f.counter)
	f.access[token] = &service.AccessClaims{
		UserID:  identity.ID,
		Email:   identity.Email,
		Name:    identity.Name,
		Role:    identity.Role,
		Company: identity.Company,
	}

	return token, nil
}

func (f *fakeTokenService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	token := fmt.Sprintf("refresh-%d", f.counter)
	f.refresh[token] = &service.RefreshClaims{UserID: userID}

	return token, nil
}

func (f *fakeTokenService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if claims, ok := f.access[tokenString]; ok {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func (f *fakeTokenService) ValidateRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if claims, ok := f.refresh[tokenString]; ok {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func (f *fakeTokenService) RefreshTokenTTL() time.Duration {
	return time.Hour
}

// fakeUserRepo is an in-memory user directory.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		copied := *user

		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash

	return nil
}

// fakeRoleRepo is an in-memory role directory.
type fakeRoleRepo struct {
	roles map[uuid.UUID]*entity.Role
}

func newFakeRoleRepo(roles ...*entity.Role) *fakeRoleRepo {
	repo := &fakeRoleRepo{roles: make(map[uuid.UUID]*entity.Role)}
	for _, role := range roles {
		repo.roles[role.ID] = role
	}

	return repo
}

func (r *fakeRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Role, error) {
	if role, ok := r.roles[id]; ok {
		return role, nil
	}

	return nil, repository.ErrRoleNotFound
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}

	return nil, repository.ErrRoleNotFound
}

// fakeLedger is an in-memory single-slot refresh ledger.
type fakeLedger struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{slots: make(map[uuid.UUID]*string)}
}

func (l *fakeLedger) Store(_ context.Context, userID uuid.UUID, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slots[userID] = &token

	return nil
}

func (l *fakeLedger) Check(_ context.Context, userID uuid.UUID, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	stored, ok := l.slots[userID]
	if !ok || stored == nil {
		return false, nil
	}

	return *stored == token, nil
}

func (l *fakeLedger) Clear(_ context.Context, userID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slots[userID] = nil

	return nil
}

func (l *fakeLedger) slot(userID uuid.UUID) *string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.slots[userID]
}

// fakeTxManager runs the callback directly against the shared fakes. Tests
// do not exercise rollback.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

type fakeRepoFactory struct {
	userRepo *fakeUserRepo
	roleRepo *fakeRoleRepo
	ledger   *fakeLedger
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) RoleRepo() repository.RoleRepository { return f.roleRepo }
func (f *fakeRepoFactory) Ledger() repository.RefreshLedger    { return f.ledger }

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *fakeUserRepo
	roleRepo     *fakeRoleRepo
	ledger       *fakeLedger
	tokenService *fakeTokenService
	defaultRole  *entity.Role
}

func createTestAuthService() authServiceFixtures {
	defaultRole := &entity.Role{
		ID:     uuid.New(),
		Name:   entity.RoleNormalUser,
		Active: true,
		Permissions: []*entity.Permission{
			{ID: uuid.New(), Name: "List companies", APIPath: "/companies", Method: "GET", Module: "COMPANIES"},
		},
	}

	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo(defaultRole)
	ledger := newFakeLedger()
	tokenService := newFakeTokenService()

	service := NewAuthService(AuthServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo, roleRepo: roleRepo, ledger: ledger}},
		UserRepo:     userRepo,
		RoleRepo:     roleRepo,
		Ledger:       ledger,
		Hasher:       fakeHasher{},
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		ledger:       ledger,
		tokenService: tokenService,
		defaultRole:  defaultRole,
	}
}

// seedUser registers a user directly in the fake directory.
func (fx authServiceFixtures) seedUser(email, password string) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Seeded User",
		Email:        email,
		PasswordHash: "hashed:" + password,
		Role:         &entity.RoleRef{ID: fx.defaultRole.ID, Name: fx.defaultRole.Name},
	}
	copied := *user
	fx.userRepo.users[user.ID] = &copied

	return user
}
