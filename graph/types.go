package graph

import (
	"context"
	"strconv"

	"inkwell/models"

	graphql "github.com/graph-gophers/graphql-go"
)

func toID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

// userResolver resolves the User type.
type userResolver struct {
	r    *Resolver
	user *models.User
}

func (r *userResolver) ID() graphql.ID {
	return toID(r.user.ID)
}

func (r *userResolver) Email() string {
	return r.user.Email
}

func (r *userResolver) Name() string {
	return r.user.Name
}

func (r *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := r.r.posts.ListByAuthor(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &postResolver{r: r.r, post: p})
	}
	return resolvers, nil
}

// profileResolver resolves the Profile type.
type profileResolver struct {
	r       *Resolver
	profile *models.Profile
}

func (r *profileResolver) ID() graphql.ID {
	return toID(r.profile.ID)
}

func (r *profileResolver) Bio() string {
	return r.profile.Bio
}

func (r *profileResolver) User(ctx context.Context) (*userResolver, error) {
	user, err := r.r.users.GetByID(ctx, r.profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{r: r.r, user: user}, nil
}

// postResolver resolves the Post type.
type postResolver struct {
	r    *Resolver
	post *models.Post
}

func (r *postResolver) ID() graphql.ID {
	return toID(r.post.ID)
}

func (r *postResolver) Title() string {
	return r.post.Title
}

func (r *postResolver) Content() string {
	return r.post.Content
}

func (r *postResolver) Published() bool {
	return r.post.Published
}

func (r *postResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.post.CreatedAt}
}

func (r *postResolver) Author(ctx context.Context) (*userResolver, error) {
	user, err := r.r.users.GetByID(ctx, r.post.AuthorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{r: r.r, user: user}, nil
}
