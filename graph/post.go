package graph

import (
	"context"

	"inkwell/auth"
	"inkwell/models"
	"inkwell/repository"

	graphql "github.com/graph-gophers/graphql-go"
)

type postInput struct {
	Title   *string
	Content *string
}

// present reports whether an optional input field carries a usable value; an
// empty string counts as absent.
func present(s *string) bool {
	return s != nil && *s != ""
}

// PostCreate creates a post owned by the current user. No authorization gate:
// ownership is set by the actor, not checked.
func (r *Resolver) PostCreate(ctx context.Context, args struct {
	Post postInput
}) (*postPayloadResolver, error) {
	userInfo := auth.UserInfoFromContext(ctx)
	if userInfo == nil {
		return r.postFailure("Forbidden access (unauthenticated)"), nil
	}

	if !present(args.Post.Title) || !present(args.Post.Content) {
		return r.postFailure("You must provide a title and a content to create a post"), nil
	}

	post := &models.Post{
		Title:    *args.Post.Title,
		Content:  *args.Post.Content,
		AuthorID: userInfo.UserID,
	}
	if err := r.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return r.postSuccess(post), nil
}

// PostUpdate applies a partial update to a post owned by the current user.
// Omitted or empty fields keep their prior value.
func (r *Resolver) PostUpdate(ctx context.Context, args struct {
	PostID graphql.ID
	Post   postInput
}) (*postPayloadResolver, error) {
	userInfo := auth.UserInfoFromContext(ctx)
	if userInfo == nil {
		return r.postFailure("Forbidden access (unauthenticated)"), nil
	}

	postID, ok := parseID(args.PostID)
	if !ok {
		return r.postFailure("Post does not exist"), nil
	}

	if denied, err := r.canUserMutatePost(ctx, userInfo.UserID, postID); err != nil {
		return nil, err
	} else if denied != nil {
		return denied, nil
	}

	if !present(args.Post.Title) && !present(args.Post.Content) {
		return r.postFailure("Need to have at least one field to update"), nil
	}

	// Defensive re-check; the gate already confirmed existence.
	existing, err := r.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return r.postFailure("Post does not exist"), nil
	}

	changes := repository.PostChanges{}
	if present(args.Post.Title) {
		changes.Title = args.Post.Title
	}
	if present(args.Post.Content) {
		changes.Content = args.Post.Content
	}

	updated, err := r.posts.Update(ctx, postID, changes)
	if err != nil {
		return nil, err
	}

	return r.postSuccess(updated), nil
}

// PostDelete removes a post owned by the current user and returns its
// pre-deletion snapshot.
func (r *Resolver) PostDelete(ctx context.Context, args struct {
	PostID graphql.ID
}) (*postPayloadResolver, error) {
	userInfo := auth.UserInfoFromContext(ctx)
	if userInfo == nil {
		return r.postFailure("Forbidden access (unauthenticated)"), nil
	}

	postID, ok := parseID(args.PostID)
	if !ok {
		return r.postFailure("Post does not exist"), nil
	}

	if denied, err := r.canUserMutatePost(ctx, userInfo.UserID, postID); err != nil {
		return nil, err
	} else if denied != nil {
		return denied, nil
	}

	post, err := r.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return r.postFailure("Post does not exist"), nil
	}

	if err := r.posts.Delete(ctx, postID); err != nil {
		return nil, err
	}

	return r.postSuccess(post), nil
}

// PostPublish marks a post owned by the current user as published.
func (r *Resolver) PostPublish(ctx context.Context, args struct {
	PostID graphql.ID
}) (*postPayloadResolver, error) {
	return r.setPublished(ctx, args.PostID, true)
}

// PostUnpublish reverts a post owned by the current user to a draft.
func (r *Resolver) PostUnpublish(ctx context.Context, args struct {
	PostID graphql.ID
}) (*postPayloadResolver, error) {
	return r.setPublished(ctx, args.PostID, false)
}

func (r *Resolver) setPublished(ctx context.Context, id graphql.ID, published bool) (*postPayloadResolver, error) {
	userInfo := auth.UserInfoFromContext(ctx)
	if userInfo == nil {
		return r.postFailure("Forbidden access (unauthenticated)"), nil
	}

	postID, ok := parseID(id)
	if !ok {
		return r.postFailure("Post does not exist"), nil
	}

	if denied, err := r.canUserMutatePost(ctx, userInfo.UserID, postID); err != nil {
		return nil, err
	} else if denied != nil {
		return denied, nil
	}

	post, err := r.posts.SetPublished(ctx, postID, published)
	if err != nil {
		return nil, err
	}

	return r.postSuccess(post), nil
}
