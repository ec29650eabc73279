package graph

import "context"

// canUserMutatePost is the single authorization gate for post mutations. It
// returns a non-nil failure payload when the post is missing or owned by
// someone else; a nil payload means the caller may proceed. Callers must
// return the failure unchanged without touching the store.
func (r *Resolver) canUserMutatePost(ctx context.Context, userID, postID uint) (*postPayloadResolver, error) {
	post, err := r.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return r.postFailure("Post does not exist"), nil
	}
	if post.AuthorID != userID {
		return r.postFailure("Post(s) that belongs to you"), nil
	}
	return nil, nil
}
