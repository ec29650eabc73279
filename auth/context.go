package auth

import "context"

// UserInfo is the identity decoded from a request's session token.
type UserInfo struct {
	UserID uint
}

type userInfoKey struct{}

// WithUserInfo returns a context carrying the given identity.
func WithUserInfo(ctx context.Context, info *UserInfo) context.Context {
	return context.WithValue(ctx, userInfoKey{}, info)
}

// UserInfoFromContext returns the identity attached to the request, or nil
// when the request is anonymous.
func UserInfoFromContext(ctx context.Context) *UserInfo {
	info, _ := ctx.Value(userInfoKey{}).(*UserInfo)
	return info
}
