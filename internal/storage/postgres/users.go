package postgres

import (
	"context"
	"fmt"
	"log"

	"talentbridge/ent"
	entuser "talentbridge/ent/user"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepo implements the storage.UserRepository interface using Ent.
type UserRepo struct {
	client *ent.Client
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *ent.Client) *UserRepo {
	return &UserRepo{client: client}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest, passwordHash string) (*ent.User, error) {
	create := r.client.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPasswordHash(passwordHash).
		SetRole(entuser.Role(req.Role)).
		SetNillableEnterpriseID(req.EnterpriseID).
		SetNillableSchoolID(req.SchoolID)

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating user (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create user: %w", storage.ErrDuplicateEmail)
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	user, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	user, err := r.client.User.Query().
		Where(entuser.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
