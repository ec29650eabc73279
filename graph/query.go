package graph

import (
	"context"

	"inkwell/auth"

	graphql "github.com/graph-gophers/graphql-go"
)

// Me returns the current user, or null for anonymous callers.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	userInfo := auth.UserInfoFromContext(ctx)
	if userInfo == nil {
		return nil, nil
	}

	user, err := r.users.GetByID(ctx, userInfo.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{r: r, user: user}, nil
}

// Profile returns the profile owned by the given user, or null when there is
// none.
func (r *Resolver) Profile(ctx context.Context, args struct {
	UserID graphql.ID
}) (*profileResolver, error) {
	userID, ok := parseID(args.UserID)
	if !ok {
		return nil, nil
	}

	profile, err := r.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return &profileResolver{r: r, profile: profile}, nil
}

// Posts returns every post, newest first.
func (r *Resolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := r.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &postResolver{r: r, post: p})
	}
	return resolvers, nil
}
