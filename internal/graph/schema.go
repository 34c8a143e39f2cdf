package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/userdock/apiserver/types"
)

// roleEnum exposes the role column's enumerated values.
var roleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "UserRole",
	Description: "User role in the system",
	Values: graphql.EnumValueConfigMap{
		"ADMIN":   &graphql.EnumValueConfig{Value: types.RoleAdmin},
		"USER":    &graphql.EnumValueConfig{Value: types.RoleUser},
		"MANAGER": &graphql.EnumValueConfig{Value: types.RoleManager},
	},
})

// userType is the API projection of types.User. Each field maps
// explicitly onto the entity; the password digest has no field here.
var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).ID, nil
			},
		},
		"username": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).Username, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).Email, nil
			},
		},
		"role": &graphql.Field{
			Type: graphql.NewNonNull(roleEnum),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).Role, nil
			},
		},
		"isActive": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).IsActive, nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return optionalString(userSource(p).FirstName), nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return optionalString(userSource(p).LastName), nil
			},
		},
		"phoneNumber": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return optionalString(userSource(p).PhoneNumber), nil
			},
		},
		"lastLoginAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if at := userSource(p).LastLoginAt; at != nil {
					return *at, nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return userSource(p).UpdatedAt, nil
			},
		},
	},
})

// userResponseType is the write-operation envelope: callers must check
// the error field even on a successful transport response.
var userResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserResponse",
	Fields: graphql.Fields{
		"error": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return optionalString(p.Source.(UserResponse).Error), nil
			},
		},
		"user": &graphql.Field{
			Type: userType,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if user := p.Source.(UserResponse).User; user != nil {
					return *user, nil
				}
				return nil, nil
			},
		},
	},
})

var loginResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LoginResponse",
	Fields: graphql.Fields{
		"error": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return optionalString(p.Source.(LoginResponse).Error), nil
			},
		},
		"token": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return optionalString(p.Source.(LoginResponse).Token), nil
			},
		},
		"user": &graphql.Field{
			Type: userType,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if user := p.Source.(LoginResponse).User; user != nil {
					return *user, nil
				}
				return nil, nil
			},
		},
	},
})

// NewSchema builds the executable schema over the given resolver.
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: resolver.Users,
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: resolver.User,
			},
			"testPassword": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolver.TestPassword,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(loginResponseType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolver.Login,
			},
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"username":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"firstName":   &graphql.ArgumentConfig{Type: graphql.String},
					"lastName":    &graphql.ArgumentConfig{Type: graphql.String},
					"phoneNumber": &graphql.ArgumentConfig{Type: graphql.String},
					"role":        &graphql.ArgumentConfig{Type: roleEnum},
				},
				Resolve: resolver.CreateUser,
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"firstName":   &graphql.ArgumentConfig{Type: graphql.String},
					"lastName":    &graphql.ArgumentConfig{Type: graphql.String},
					"phoneNumber": &graphql.ArgumentConfig{Type: graphql.String},
					"isActive":    &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: resolver.UpdateUser,
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: resolver.DeleteUser,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func userSource(p graphql.ResolveParams) types.User {
	switch source := p.Source.(type) {
	case types.User:
		return source
	case *types.User:
		if source != nil {
			return *source
		}
	}
	return types.User{}
}

// optionalString maps "" to a GraphQL null.
func optionalString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
