package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mission-review-service/internal/database"
	"mission-review-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create создает пользователя. Уникальность email обеспечивает БД.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	dbUser, err := r.queries.CreateUser(ctx, database.CreateUserParams{
		Email:    user.Email,
		Username: user.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toDomainUser(dbUser), nil
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	dbUser, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(dbUser), nil
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	dbUser, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(dbUser), nil
}

// GetAll возвращает всех пользователей.
func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	dbUsers, err := r.queries.ListUsers(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, toDomainUser(dbUser))
	}
	return users, nil
}

func toDomainUser(dbUser database.User) *domain.User {
	return &domain.User{
		ID:       dbUser.ID,
		Email:    dbUser.Email,
		Username: dbUser.Username,
	}
}
