package queries

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetClientQueryIsNotConstructed = errors.New(
		"GetClientQuery must be created via NewGetClientQuery constructor",
	)
	ErrListClientsQueryIsNotConstructed = errors.New(
		"ListClientsQuery must be created via NewListClientsQuery constructor",
	)
)

const clientColumns = "id, name, phone, total_spent, remaining_balance, created_at, updated_at"

type GetClientQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

type GetClientQueryHandler struct {
	db *gorm.DB
}

func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientView, error) {
	if err := query.Validate(); err != nil {
		return ClientView{}, err
	}

	var rows []clientRow
	err := h.db.WithContext(ctx).
		Raw("SELECT "+clientColumns+" FROM clients WHERE id = ?", query.clientID.Bytes()).
		Scan(&rows).Error
	if err != nil {
		return ClientView{}, err
	}
	if len(rows) == 0 {
		return ClientView{}, errs.NewObjectNotFoundError("client", query.clientID.String())
	}

	return rows[0].view()
}

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

// Handle returns all clients sorted by name.
func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []clientRow
	err := h.db.WithContext(ctx).
		Raw("SELECT " + clientColumns + " FROM clients ORDER BY name, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	clients := make([]ClientView, 0, len(rows))
	for _, row := range rows {
		v, viewErr := row.view()
		if viewErr != nil {
			return nil, viewErr
		}
		clients = append(clients, v)
	}

	return clients, nil
}
