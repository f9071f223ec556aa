package services

import (
	"context"
	"errors"

	"orchid-shop/models"
	"orchid-shop/utils"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrRoleNotAssignable  = errors.New("insufficient permission to assign role")
)

// AccountStore is the persistence port. Satisfied by
// *repositories.AccountRepository.
type AccountStore interface {
	FindAll(ctx context.Context) ([]models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type AccountService struct {
	accountRepo AccountStore
}

func NewAccountService(accountRepo AccountStore) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// Register creates a customer account. New registrations always get the User
// role.
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		AccountName: req.AccountName,
		Email:       req.Email,
		Password:    hash,
		Role:        models.RoleUser,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}

	return &models.RegisterResponse{
		AccountID:   account.ID.Hex(),
		AccountName: account.AccountName,
		Email:       account.Email,
		Message:     "Registration successful",
	}, nil
}

func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(account.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID.Hex(), account.Email, string(account.Role))
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:       token,
		AccountID:   account.ID.Hex(),
		AccountName: account.AccountName,
		Email:       account.Email,
		RoleName:    string(account.Role),
		Message:     "Login successful",
	}, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id string) (*models.AccountDTO, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	return toAccountDTO(account), nil
}

func (s *AccountService) GetAllAccounts(ctx context.Context) ([]models.AccountDTO, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.AccountDTO, 0, len(accounts))
	for i := range accounts {
		dtos = append(dtos, *toAccountDTO(&accounts[i]))
	}
	return dtos, nil
}

func (s *AccountService) CountAccounts(ctx context.Context) (int64, error) {
	return s.accountRepo.Count(ctx)
}

// CreateAccount is the admin-side create with an explicit role.
func (s *AccountService) CreateAccount(ctx context.Context, req models.AccountRequest) (*models.AccountDTO, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	exists, err := s.accountRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		AccountName: req.AccountName,
		Email:       req.Email,
		Password:    hash,
		Role:        role,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}
	return toAccountDTO(account), nil
}

// UpdateAccount rewrites name, email and role; the password is only re-hashed
// when the request carries one.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, req models.AccountRequest) (*models.AccountDTO, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	if account.Email != req.Email {
		exists, err := s.accountRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
	}

	account.AccountName = req.AccountName
	account.Email = req.Email
	account.Role = role
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		account.Password = hash
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return toAccountDTO(account), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

// AssignRole applies the role-hierarchy policy before changing the target's
// role.
func (s *AccountService) AssignRole(ctx context.Context, actingRole models.Role, targetID string, newRole models.Role) (*models.AccountDTO, error) {
	target, err := s.accountRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if !models.CanAssign(actingRole, target.Role, newRole) {
		return nil, ErrRoleNotAssignable
	}

	target.Role = newRole
	if err := s.accountRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	return toAccountDTO(target), nil
}

// EnsureDefaultAccounts seeds the bootstrap SuperAdmin when absent.
func (s *AccountService) EnsureDefaultAccounts(ctx context.Context) error {
	exists, err := s.accountRepo.ExistsByEmail(ctx, "superadmin@gmail.com")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := utils.HashPassword("123456")
	if err != nil {
		return err
	}

	account := &models.Account{
		AccountName: "SuperAdmin",
		Email:       "superadmin@gmail.com",
		Password:    hash,
		Role:        models.RoleSuperAdmin,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return err
	}

	log.Info().Str("email", account.Email).Msg("seeded default SuperAdmin account")
	return nil
}

func toAccountDTO(account *models.Account) *models.AccountDTO {
	return &models.AccountDTO{
		AccountID:   account.ID.Hex(),
		AccountName: account.AccountName,
		Email:       account.Email,
		RoleName:    string(account.Role),
	}
}
