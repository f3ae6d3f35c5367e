package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"plantstore_server/database"
	"plantstore_server/lib"
	"plantstore_server/structs"
	"plantstore_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Login authenticates by customer name or email. Whatever goes wrong, the
// caller only ever sees ErrInvalidCredentials; nothing about account
// existence leaks.
func (as *AuthService) Login(ctx context.Context, form *structs.LoginForm) (*tables.Customer, error) {
	startTime := time.Now()

	customer := &tables.Customer{}
	err := as.db.NewSelect().
		Model(customer).
		Where("name = ?", form.Username).
		WhereOr("email = ?", form.Username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", lib.MapDBError(err)),
				gecho.Field("identifier", form.Username),
			)
		} else {
			as.logger.Debug("Unknown customer during login attempt", gecho.Field("identifier", form.Username))
		}
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(form.Password, customer.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("customer_id", customer.CustomerID),
		)
		return nil, lib.ErrInvalidCredentials
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", form.Username),
			gecho.Field("customer_id", customer.CustomerID),
		)
		return nil, lib.ErrInvalidCredentials
	}

	as.logger.Debug("Customer logged in",
		gecho.Field("customer_id", customer.CustomerID),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	customer.PasswordHash = ""
	return customer, nil
}

// Register creates a customer account with the fixed 'customer' role.
// A duplicate email surfaces as lib.ErrConflict.
func (as *AuthService) Register(ctx context.Context, form *structs.RegisterForm) (*tables.Customer, error) {
	exists, err := as.db.NewSelect().
		Model((*tables.Customer)(nil)).
		Where("email = ?", form.Email).
		Exists(ctx)
	if err != nil {
		as.logger.Error("Database error during registration email check",
			gecho.Field("error", err),
			gecho.Field("email", form.Email),
		)
		return nil, lib.MapDBError(err)
	}
	if exists {
		as.logger.Warn("Registration failed - duplicate email", gecho.Field("email", form.Email))
		return nil, lib.ErrConflict
	}

	passwordHash, err := as.HashPassword(form.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	customer := &tables.Customer{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Address:      form.Address,
		PasswordHash: passwordHash,
		Role:         structs.RoleCustomer,
	}

	_, err = as.db.NewInsert().Model(customer).Exec(ctx)
	if err != nil {
		mappedErr := lib.MapDBError(err)

		// The unique constraint can still fire between the check and the
		// insert; treat it the same as the pre-check.
		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate email", gecho.Field("email", form.Email))
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("email", form.Email),
			)
		}
		return nil, mappedErr
	}

	as.logger.Debug("Customer registered", gecho.Field("customer_id", customer.CustomerID))

	customer.PasswordHash = ""
	return customer, nil
}

// HashPassword hashes a plain-text password and returns a string and possible error
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	params := fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	encoded := fmt.Sprintf("$argon2id$v=19$%s$%s$%s", params, b64Salt, b64Hash)
	return encoded, nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(hashedPassword)
	if err != nil {
		return false, err
	}

	hash := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	return lib.SecureCompare(hash, parts.Hash), nil
}
