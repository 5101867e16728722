// Package repository provides data access interfaces and implementations
// for the news service.
//
// # Overview
//
// This package defines repository interfaces and their PostgreSQL implementations
// following the repository pattern to abstract data persistence from business logic.
//
// # Repository Interfaces
//
// The package provides the following repository interfaces:
//
//   - ArticleRepository: Manages articles, their votes, and sorted/paginated listings
//   - CommentRepository: Manages comments tied to articles
//   - TopicRepository: Manages topic creation and listing
//   - UserRepository: Read-only access to users
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use by multiple goroutines.
// The underlying pgxpool handles connection pooling and synchronization.
//
// # Error Handling
//
// All methods return domain-specific errors from the domain package.
// Wrap database errors with context using fmt.Errorf with %w verb.
// Common errors include:
//
//   - domain.ErrNotFound: Resource does not exist
//   - domain.ErrAlreadyExists: Unique constraint violation
//   - domain.ErrInvalidInput: Invalid parameters provided
//
// # Referential Preconditions
//
// Writes that reference other entities (comment on an article, article in a
// topic) probe the referenced row first via Checker and fail with
// domain.ErrNotFound when it is absent. The probe and the write are not
// atomic; foreign key violations raised by the store in the gap are mapped
// to the same domain errors.
//
// # Usage Pattern
//
// Repositories are typically created at application startup and passed to handlers:
//
//	db, _ := database.New(ctx, cfg, logger)
//	articleRepo := repository.NewPgArticleRepository(db)
//	commentRepo := repository.NewPgCommentRepository(db)
//	topicRepo := repository.NewPgTopicRepository(db)
//	userRepo := repository.NewPgUserRepository(db)
package repository

import (
	"github.com/Masterminds/squirrel"

	"github.com/pressroom/news-service/internal/database"
)

// DBTX is the database interface supporting both pool and transaction contexts.
// This allows repositories to work with both direct pool connections and transactions.
//
// Repository implementations follow a constructor pattern that accepts DBTX:
//
//	type PgTopicRepository struct {
//	    db DBTX
//	}
//
//	func NewPgTopicRepository(db DBTX) *PgTopicRepository {
//	    return &PgTopicRepository{db: db}
//	}
//
// This design enables:
//   - Direct usage with a connection pool for standard operations
//   - Transaction support by passing a transaction (pgx.Tx) instead
//   - Easy testing with mock implementations of DBTX
type DBTX = database.DBTX

// Listing pagination defaults.
const (
	// DefaultPageSize is the number of rows returned when no limit is given.
	DefaultPageSize = 10

	// DefaultPage is the 1-based page used when no page is given.
	DefaultPage = 1
)

// psql is the statement builder for PostgreSQL positional placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
