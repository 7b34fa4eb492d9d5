package client

import (
	"errors"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Client is a buyer with a ledger. RemainingBalance is what unpaid payments
// still owe; TotalSpent sums the payments marked paid.
type Client struct {
	id               kernel.UUID
	name             string
	phone            string
	totalSpent       kernel.Money
	remainingBalance kernel.Money
	createdAt        time.Time
	updatedAt        time.Time

	guard guard.ConstructorGuard
}

func NewClient(id kernel.UUID, name, phone string) (*Client, error) {
	now := time.Now().UTC()
	c := &Client{
		totalSpent:       kernel.ZeroMoney(),
		remainingBalance: kernel.ZeroMoney(),
		createdAt:        now,
		updatedAt:        now,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func RestoreClient(
	id kernel.UUID,
	name, phone string,
	totalSpent, remainingBalance kernel.Money,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	c := &Client{
		totalSpent:       totalSpent,
		remainingBalance: remainingBalance,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.UUID                { return c.id }
func (c *Client) Name() string                   { return c.name }
func (c *Client) Phone() string                  { return c.phone }
func (c *Client) TotalSpent() kernel.Money       { return c.totalSpent }
func (c *Client) RemainingBalance() kernel.Money { return c.remainingBalance }
func (c *Client) CreatedAt() time.Time           { return c.createdAt }
func (c *Client) UpdatedAt() time.Time           { return c.updatedAt }

// ChargeBalance adds an amount the client owes.
func (c *Client) ChargeBalance(amount kernel.Money) {
	c.remainingBalance = c.remainingBalance.Add(amount)
	c.touch()
}

// ReverseCharge takes back a charge that will never be paid.
func (c *Client) ReverseCharge(amount kernel.Money) {
	c.remainingBalance = c.remainingBalance.SubFloor(amount)
	c.touch()
}

// RecordPayment moves a paid amount from the remaining balance to the total spent.
// The balance never goes below zero.
//
// Example:
//
//	c.ChargeBalance(kernel.MustMoney("500"))  // payment created
//	c.RecordPayment(kernel.MustMoney("500"))  // payment marked paid
//	// c.TotalSpent() == 500.00, c.RemainingBalance() == 0.00
func (c *Client) RecordPayment(amount kernel.Money) {
	c.totalSpent = c.totalSpent.Add(amount)
	c.remainingBalance = c.remainingBalance.SubFloor(amount)
	c.touch()
}

func (c *Client) touch() {
	c.updatedAt = time.Now().UTC()
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
