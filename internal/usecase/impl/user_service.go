package impl

import (
	"context"
	"log/slog"

	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"
)

// CreateUser validates and stores a new user. Email uniqueness is left to the
// caller unless strict mode is configured.
func (srv *catalogService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(entity.UserParams{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hash,
		IsAdmin:   input.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.checkEmailAvailable(ctx, user.Email, ""); err != nil {
		return nil, err
	}

	if err := srv.userRepo.Add(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to add user")
	}

	srv.log(ctx).Info("User created", slog.String("userID", user.ID))

	return user, nil
}

func (srv *catalogService) GetUser(ctx context.Context, id string) *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	user, _ := srv.userRepo.Get(ctx, id)

	return user
}

// GetUserByEmail trims and lower-cases email before the lookup.
func (srv *catalogService) GetUserByEmail(ctx context.Context, email string) *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	user, _ := srv.userRepo.GetByAttribute(ctx, "email", entity.NormalizeEmail(email))

	return user
}

func (srv *catalogService) GetAllUsers(ctx context.Context) []*entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.userRepo.GetAll(ctx)
}

func (srv *catalogService) UpdateUser(ctx context.Context, id string, input *usecase.UpdateUserInput) (*entity.User, error) {
	patch := entity.UserPatch{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IsAdmin:   input.IsAdmin,
	}
	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.userRepo.Get(ctx, id); !ok {
		return nil, nil
	}

	if input.Email != nil {
		if err := srv.checkEmailAvailable(ctx, entity.NormalizeEmail(*input.Email), id); err != nil {
			return nil, err
		}
	}

	user, err := srv.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("User updated", slog.String("userID", id))

	return user, nil
}

// hashPassword validates and hashes a plaintext password. The empty password
// stays empty.
func (srv *catalogService) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	if err := entity.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// checkEmailAvailable enforces email uniqueness in strict mode. selfID is
// the user being updated, empty on create. Callers hold the write lock.
func (srv *catalogService) checkEmailAvailable(ctx context.Context, email, selfID string) error {
	if !srv.strictEmail {
		return nil
	}

	existing, ok := srv.userRepo.GetByAttribute(ctx, "email", email)
	if ok && existing.ID != selfID {
		return domainerrors.NewConflictError(entity.KindUser, "email", email)
	}

	return nil
}
