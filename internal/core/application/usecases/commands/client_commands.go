package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/client"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrDeleteClientCommandIsNotConstructed = errors.New(
		"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
	)
)

type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	phone    string

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(clientID kernel.UUID, name, phone string) (CreateClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{clientID: clientID, name: name, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
	retry      RetryPolicy
}

func NewCreateClientCommandHandler(uowFactory ClientUoWFactory, retry RetryPolicy) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory, retry: retry}
}

// Handle stores a client with empty financial totals.
func (h CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *client.Client
	err := inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow ClientUoW) error {
		c, err := client.NewClient(cmd.clientID, cmd.name, cmd.phone)
		if err != nil {
			return err
		}

		if err = uow.ClientRepository().Add(ctx, c); err != nil {
			return err
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(clientID kernel.UUID) (DeleteClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return DeleteClientCommand{}, err
	}

	return DeleteClientCommand{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

// DeleteClientCommandHandler removes clients. Orders and payments that
// referenced the client keep their copy of the contact details.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
	retry      RetryPolicy
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory, retry RetryPolicy) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory, retry: retry}
}

func (h DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.retry, h.uowFactory.Create, func(uow ClientUoW) error {
		return uow.ClientRepository().Delete(ctx, cmd.clientID)
	})
}
