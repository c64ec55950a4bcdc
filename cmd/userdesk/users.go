package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/jrammler/userdesk/internal/entity"
	"github.com/jrammler/userdesk/internal/service"
)

var UsageError = errors.New("Missing argument")

// userCommands prints command output to out only; failures are logged by
// the users client and returned.
type userCommands struct {
	users service.UserService
	out   io.Writer
}

func parseId(args []string) (int, error) {
	if len(args) < 1 {
		return 0, UsageError
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", args[0])
	}
	return id, nil
}

func (c *userCommands) list(ctx context.Context) error {
	all, err := c.users.GetAll(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE")
	for _, user := range all {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", user.Id, user.Email, user.DisplayName(), user.Role)
	}
	return tw.Flush()
}

func (c *userCommands) get(ctx context.Context, args []string) error {
	id, err := parseId(args)
	if err != nil {
		return err
	}
	user, err := c.users.GetOne(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "ID:         %d\n", user.Id)
	fmt.Fprintf(c.out, "Email:      %s\n", user.Email)
	fmt.Fprintf(c.out, "First name: %s\n", user.FirstName)
	fmt.Fprintf(c.out, "Last name:  %s\n", user.LastName)
	fmt.Fprintf(c.out, "Role:       %s\n", user.Role)
	fmt.Fprintf(c.out, "Created:    %s\n", user.CreatedAt)
	fmt.Fprintf(c.out, "Updated:    %s\n", user.UpdatedAt)
	return nil
}

func (c *userCommands) delete(ctx context.Context, args []string) error {
	id, err := parseId(args)
	if err != nil {
		return err
	}
	err = c.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted user %d\n", id)
	return nil
}

// create takes the password from readPassword so that it is only prompted
// for once the arguments are known to be valid.
func (c *userCommands) create(ctx context.Context, args []string, readPassword func() (string, error)) error {
	if len(args) < 1 {
		return UsageError
	}
	payload := entity.UserPayload{Email: args[0]}
	if len(args) > 1 {
		payload.Role = entity.Role(args[1])
	}
	password, err := readPassword()
	if err != nil {
		return err
	}
	payload.Password = password

	err = c.users.Create(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created user %s\n", payload.Email)
	return nil
}
