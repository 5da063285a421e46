package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/models"
)

// authService is the concrete implementation of AuthService.
// It performs a one-shot credential check: a customer lookup by email
// followed by a bcrypt comparison against the stored hash.
type authService struct {
	// customerRepository is the data-access layer used to look up customers.
	customerRepository store.CustomerRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CustomerRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(customerRepository store.CustomerRepository, logger *logger.Logger) AuthService {
	return &authService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

// Login authenticates a customer.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and compares the supplied password against the stored
// bcrypt hash.
//
// Returns the customer record (with the hash cleared) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository lookup fails (customer not
//     found — see store.ErrCustomerNotFound — keeps its distinct status
//     mapping for compatibility with historical clients).
//   - ErrWrongPassword if the password does not match.
//
// Note: repeated failures are not rate limited and there is no lockout;
// that hardening belongs to a fronting gateway.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.Customer{}, ErrInvalidDataProvided
	}

	foundCustomer, err := a.customerRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("customer search by email failed")
		return models.Customer{}, fmt.Errorf("customer search by email failed: %w", err)
	}

	if !verifyPassword(request.Password, foundCustomer.PasswordHash) {
		log.Error().
			Int64("id", foundCustomer.CustomerID).
			Str("email", foundCustomer.Email).
			Msg("wrong password")
		return models.Customer{}, ErrWrongPassword
	}

	// never hand the hash back to callers
	foundCustomer.PasswordHash = ""

	return foundCustomer, nil
}

// verifyPassword compares a plaintext password against a stored bcrypt
// hash. The salt is encoded inside the hash itself and the comparison is
// constant time.
func verifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
