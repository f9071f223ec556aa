package services

import (
	"context"
	"testing"

	"orchid-shop/models"
	"orchid-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAccountStore struct {
	accounts map[string]*models.Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[string]*models.Account)}
}

func (f *fakeAccountStore) FindAll(_ context.Context) ([]models.Account, error) {
	out := make([]models.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountStore) FindByID(_ context.Context, id string) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return account, nil
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAccountStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeAccountStore) Insert(_ context.Context, account *models.Account) error {
	account.ID = primitive.NewObjectID()
	f.accounts[account.ID.Hex()] = account
	return nil
}

func (f *fakeAccountStore) Update(_ context.Context, account *models.Account) error {
	if _, ok := f.accounts[account.ID.Hex()]; !ok {
		return mongo.ErrNoDocuments
	}
	f.accounts[account.ID.Hex()] = account
	return nil
}

func (f *fakeAccountStore) Delete(_ context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.accounts)), nil
}

func (f *fakeAccountStore) seed(t *testing.T, name, email, password string, role models.Role) *models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	account := &models.Account{
		ID:          primitive.NewObjectID(),
		AccountName: name,
		Email:       email,
		Password:    hash,
		Role:        role,
	}
	f.accounts[account.ID.Hex()] = account
	return account
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAccountService(store)
	ctx := context.Background()

	resp, err := svc.Register(ctx, models.RegisterRequest{
		AccountName: "Dewi",
		Email:       "dewi@example.com",
		Password:    "s3cret-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dewi", resp.AccountName)

	account := store.accounts[resp.AccountID]
	require.NotNil(t, account)
	assert.Equal(t, models.RoleUser, account.Role)
	assert.NotEqual(t, "s3cret-pw", account.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeAccountStore()
	store.seed(t, "Dewi", "dewi@example.com", "first-pw", models.RoleUser)
	svc := NewAccountService(store)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		AccountName: "Other",
		Email:       "dewi@example.com",
		Password:    "other-pw",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newFakeAccountStore()
	store.seed(t, "Dewi", "dewi@example.com", "s3cret-pw", models.RoleAdmin)
	svc := NewAccountService(store)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "dewi@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Admin", resp.RoleName)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AccountID, claims.AccountID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "dewi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAssignRolePolicy(t *testing.T) {
	store := newFakeAccountStore()
	target := store.seed(t, "Target", "target@example.com", "pw123456", models.RoleUser)
	super := store.seed(t, "Root", "root@example.com", "pw123456", models.RoleSuperAdmin)
	svc := NewAccountService(store)
	ctx := context.Background()

	// admin may promote a user to admin
	dto, err := svc.AssignRole(ctx, models.RoleAdmin, target.ID.Hex(), models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Admin", dto.RoleName)

	// admin may not touch a superadmin
	_, err = svc.AssignRole(ctx, models.RoleAdmin, super.ID.Hex(), models.RoleUser)
	assert.ErrorIs(t, err, ErrRoleNotAssignable)

	// superadmin may
	dto, err = svc.AssignRole(ctx, models.RoleSuperAdmin, super.ID.Hex(), models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Admin", dto.RoleName)

	_, err = svc.AssignRole(ctx, models.RoleSuperAdmin, primitive.NewObjectID().Hex(), models.RoleUser)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUpdateAccountEmailUniqueness(t *testing.T) {
	store := newFakeAccountStore()
	account := store.seed(t, "Dewi", "dewi@example.com", "pw123456", models.RoleUser)
	store.seed(t, "Other", "other@example.com", "pw123456", models.RoleUser)
	svc := NewAccountService(store)
	ctx := context.Background()

	_, err := svc.UpdateAccount(ctx, account.ID.Hex(), models.AccountRequest{
		AccountName: "Dewi",
		Email:       "other@example.com",
		Role:        "User",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	// keeping the same email is fine, and the password survives when omitted
	oldHash := account.Password
	dto, err := svc.UpdateAccount(ctx, account.ID.Hex(), models.AccountRequest{
		AccountName: "Dewi Renamed",
		Email:       "dewi@example.com",
		Role:        "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dewi Renamed", dto.AccountName)
	assert.Equal(t, oldHash, store.accounts[account.ID.Hex()].Password)
}

func TestEnsureDefaultAccountsIdempotent(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAccountService(store)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAccounts(ctx))
	require.NoError(t, svc.EnsureDefaultAccounts(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	seeded, err := store.FindByEmail(ctx, "superadmin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, seeded.Role)
	assert.True(t, utils.VerifyPassword(seeded.Password, "123456"))
}
