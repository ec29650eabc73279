package graph

import "inkwell/models"

// userErrorResolver resolves a single business-rule failure message.
type userErrorResolver struct {
	message string
}

func (r *userErrorResolver) Message() string {
	return r.message
}

func userErrors(messages ...string) []*userErrorResolver {
	resolvers := make([]*userErrorResolver, 0, len(messages))
	for _, m := range messages {
		resolvers = append(resolvers, &userErrorResolver{message: m})
	}
	return resolvers
}

// authPayloadResolver resolves the { userErrors, token } shape returned by
// signup and signin. The token is nil exactly when userErrors is non-empty.
type authPayloadResolver struct {
	errors []*userErrorResolver
	token  *string
}

func (r *authPayloadResolver) UserErrors() []*userErrorResolver {
	return r.errors
}

func (r *authPayloadResolver) Token() *string {
	return r.token
}

func authSuccess(token string) *authPayloadResolver {
	return &authPayloadResolver{errors: userErrors(), token: &token}
}

func authFailure(message string) *authPayloadResolver {
	return &authPayloadResolver{errors: userErrors(message)}
}

// postPayloadResolver resolves the { userErrors, post } shape returned by
// every post mutation. The post is nil exactly when userErrors is non-empty.
type postPayloadResolver struct {
	r      *Resolver
	errors []*userErrorResolver
	post   *models.Post
}

func (r *postPayloadResolver) UserErrors() []*userErrorResolver {
	return r.errors
}

func (r *postPayloadResolver) Post() *postResolver {
	if r.post == nil {
		return nil
	}
	return &postResolver{r: r.r, post: r.post}
}

func (r *Resolver) postSuccess(post *models.Post) *postPayloadResolver {
	return &postPayloadResolver{r: r, errors: userErrors(), post: post}
}

func (r *Resolver) postFailure(message string) *postPayloadResolver {
	return &postPayloadResolver{r: r, errors: userErrors(message)}
}
