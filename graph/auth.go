package graph

import (
	"context"

	"inkwell/auth"
	"inkwell/models"
	"inkwell/validation"
)

type credentialsInput struct {
	Email    string
	Password string
}

// Signup creates a user and its profile, then issues a session token.
// Validation short-circuits in order: email, password, then name/bio. The
// user and profile inserts are not wrapped in a transaction; a profile
// failure leaves the user row behind.
func (r *Resolver) Signup(ctx context.Context, args struct {
	Credentials credentialsInput
	Name        string
	Bio         string
}) (*authPayloadResolver, error) {
	email, password := args.Credentials.Email, args.Credentials.Password

	if !validation.IsValidEmail(email) {
		return authFailure("invalid email"), nil
	}

	if !validation.IsValidPassword(password) {
		return authFailure("invalid password"), nil
	}

	if args.Name == "" || args.Bio == "" {
		return authFailure("Invalid name or bio"), nil
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Name:     args.Name,
		Password: hashedPassword,
	}
	if err := r.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := r.profiles.Create(ctx, &models.Profile{
		Bio:    args.Bio,
		UserID: user.ID,
	}); err != nil {
		return nil, err
	}

	token, err := r.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return authSuccess(token), nil
}

// Signin verifies credentials and issues a session token.
func (r *Resolver) Signin(ctx context.Context, args struct {
	Credentials credentialsInput
}) (*authPayloadResolver, error) {
	email, password := args.Credentials.Email, args.Credentials.Password

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return authFailure("Invalid credentials"), nil
	}

	if !auth.CheckPassword(password, user.Password) {
		return authFailure("Invalid Credentials"), nil
	}

	token, err := r.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return authSuccess(token), nil
}
