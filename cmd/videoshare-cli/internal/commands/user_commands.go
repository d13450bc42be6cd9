package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/bootstrap"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler manages accounts without going through the HTTP API
type UserCommandHandler struct{}

// CreateUserCmd creates a user with the given roles, User by default
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	userName, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	roles, err := cmd.Flags().GetStringSlice("role")
	if err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}

	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error {
		if err := c.Services.Roles.EnsureRoles(ctx); err != nil {
			return fmt.Errorf("failed to ensure roles: %w", err)
		}

		user, err := c.Services.AccountDetails.CreateUser(ctx, &users.RegisterRequest{
			UserName: userName,
			Email:    email,
			Password: password,
		}, roles)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		log.Info("Created user ", user.UserName, " (", user.ID, ") with roles ", strings.Join(user.Roles, ","))
		return nil
	})
}

// SetRolesCmd replaces the roles of an existing user
func (commandHandler *UserCommandHandler) SetRolesCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}
	roles, err := cmd.Flags().GetStringSlice("role")
	if err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}

	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error {
		user, err := c.Services.AccountDetails.SetRoles(ctx, userID, roles)
		if err != nil {
			return fmt.Errorf("failed to set roles: %w", err)
		}
		log.Info("User ", user.UserName, " now has roles ", strings.Join(user.Roles, ","))
		return nil
	})
}

// ListUsersCmd prints users matching the optional filters
func (commandHandler *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) error {
	query := users.NewUserQuery()
	var err error
	if query.Role, err = cmd.Flags().GetString("role"); err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}

	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, _ logger.Logger) error {
		list, err := c.Services.AccountDetails.List(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, u := range list {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", u.ID, u.UserName, u.Email, strings.Join(u.Roles, ","))
		}
		return nil
	})
}

// InitUserCommands registers the users command group
func InitUserCommands(rootCmd *cobra.Command) error {
	handler := &UserCommandHandler{}

	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var createUserCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE:  handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("username", "", "", "User name")
	createUserCmd.Flags().StringP("email", "", "", "Email address")
	createUserCmd.Flags().StringP("password", "", "", "Password satisfying the configured policy")
	createUserCmd.Flags().StringSliceP("role", "", nil, "Roles of the new user, User when omitted (repeatable)")
	for _, name := range []string{"username", "email", "password"} {
		if err := createUserCmd.MarkFlagRequired(name); err != nil {
			return err
		}
	}
	usersCmd.AddCommand(createUserCmd)

	var setRolesCmd = &cobra.Command{
		Use:   "set-roles",
		Short: "Replace the roles of a user",
		RunE:  handler.SetRolesCmd,
	}
	setRolesCmd.Flags().StringP("id", "", "", "User ID")
	setRolesCmd.Flags().StringSliceP("role", "", nil, "Roles to assign (repeatable)")
	for _, name := range []string{"id", "role"} {
		if err := setRolesCmd.MarkFlagRequired(name); err != nil {
			return err
		}
	}
	usersCmd.AddCommand(setRolesCmd)

	var listUsersCmd = &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE:  handler.ListUsersCmd,
	}
	listUsersCmd.Flags().StringP("role", "", "", "Only users having this role")
	listUsersCmd.Flags().IntP("limit", "", 100, "Maximum number of users")
	usersCmd.AddCommand(listUsersCmd)

	rootCmd.AddCommand(usersCmd)
	return nil
}
