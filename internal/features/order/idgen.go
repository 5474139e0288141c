package order

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// idSource is the slice of the repository the generator reads from.
type idSource interface {
	FindLatest(ctx context.Context) (*Order, error)
	FindOneByEmail(ctx context.Context, email string) (*Order, error)
	FindTopCustomer(ctx context.Context) (*Order, error)
}

// IDGenerator allocates the human-readable sequential identifiers.
//
// Allocation is read-then-insert and is NOT safe under concurrent order
// creation: two simultaneous creates can compute the same next number, and the
// unique index on orderId rejects the second writer. Serializing allocation
// (transaction or an atomically incremented counter) would fix it at the cost
// of the current single-writer contract.
type IDGenerator struct {
	source idSource
}

func NewIDGenerator(repo OrderRepository) *IDGenerator {
	return &IDGenerator{source: repo}
}

// NextOrderID returns the next sequential order ID in the format ORD-0001.
func (g *IDGenerator) NextOrderID(ctx context.Context) (string, error) {
	last, err := g.source.FindLatest(ctx)
	if err != nil {
		return "", err
	}

	next := 1
	if last != nil && last.OrderID != "" {
		next = parseSeq(last.OrderID) + 1
	}

	return fmt.Sprintf("ORD-%04d", next), nil
}

// NextCustomerID returns the customer ID for the given email: the existing one
// when any order was already placed with that email, otherwise the next
// sequential ID in the format CUST-0001.
func (g *IDGenerator) NextCustomerID(ctx context.Context, email string) (string, error) {
	existing, err := g.source.FindOneByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.CustomerID != "" {
		return existing.CustomerID, nil
	}

	top, err := g.source.FindTopCustomer(ctx)
	if err != nil {
		return "", err
	}

	next := 1
	if top != nil && top.CustomerID != "" {
		next = parseSeq(top.CustomerID) + 1
	}

	return fmt.Sprintf("CUST-%04d", next), nil
}

// parseSeq extracts the numeric suffix after the last '-' ("ORD-0042" -> 42).
func parseSeq(id string) int {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0
	}
	return n
}
