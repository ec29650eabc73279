package graph

import (
	"strconv"

	"inkwell/auth"
	"inkwell/repository"

	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver for GraphQL queries and mutations. It holds
// the repositories and the token service every operation depends on.
type Resolver struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	posts    repository.PostRepository
	tokens   *auth.TokenService
}

// NewResolver creates a new root resolver with the given dependencies.
func NewResolver(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	posts repository.PostRepository,
	tokens *auth.TokenService,
) *Resolver {
	return &Resolver{
		users:    users,
		profiles: profiles,
		posts:    posts,
		tokens:   tokens,
	}
}

// parseID converts a GraphQL ID into a store identifier. A malformed ID is
// reported as not-ok rather than an error so callers can treat it like a
// missing record.
func parseID(id graphql.ID) (uint, bool) {
	n, err := strconv.ParseUint(string(id), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
