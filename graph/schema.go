// Package graph defines the GraphQL schema and its resolvers.
package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the GraphQL schema served by the API. Every mutation returns a
// payload carrying userErrors instead of raising for expected business
// conditions.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type Query {
		me: User
		profile(userId: ID!): Profile
		posts: [Post!]!
	}

	type Mutation {
		signup(credentials: CredentialsInput!, name: String!, bio: String!): AuthPayload!
		signin(credentials: CredentialsInput!): AuthPayload!
		postCreate(post: PostInput!): PostPayload!
		postUpdate(postId: ID!, post: PostInput!): PostPayload!
		postDelete(postId: ID!): PostPayload!
		postPublish(postId: ID!): PostPayload!
		postUnpublish(postId: ID!): PostPayload!
	}

	input CredentialsInput {
		email: String!
		password: String!
	}

	input PostInput {
		title: String
		content: String
	}

	type UserError {
		message: String!
	}

	type AuthPayload {
		userErrors: [UserError!]!
		token: String
	}

	type PostPayload {
		userErrors: [UserError!]!
		post: Post
	}

	type User {
		id: ID!
		email: String!
		name: String!
		posts: [Post!]!
	}

	type Profile {
		id: ID!
		bio: String!
		user: User
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		published: Boolean!
		createdAt: Time!
		author: User
	}
`

// NewSchema parses the schema against the given root resolver.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r)
}
