// Package payment abstracts how a purchase gets paid. The real site
// settles through Mobile Money or card providers; the client ships with a
// mock processor so the flow can run end to end without a gateway.
package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result describes a settled payment
type Result struct {
	TransactionID string
	Method        string
}

// Processor settles a payment and returns its transaction record
type Processor interface {
	Process(amount float64, currency string) (*Result, error)
}

// MockProcessor simulates a payment gateway: it waits for the configured
// delay and issues a fresh transaction id. Fail makes every payment
// bounce, for exercising the error path.
type MockProcessor struct {
	Delay  time.Duration
	Method string
	Fail   bool
}

// NewMockProcessor returns a mock gateway with the defaults the original
// flow used: a two second settling delay, paid by card.
func NewMockProcessor() *MockProcessor {
	return &MockProcessor{
		Delay:  2 * time.Second,
		Method: "CARD",
	}
}

// Process settles the payment after the configured delay
func (p *MockProcessor) Process(amount float64, currency string) (*Result, error) {
	if p.Delay > 0 {
		time.Sleep(p.Delay)
	}

	if p.Fail {
		return nil, fmt.Errorf("payment of %.2f %s declined", amount, currency)
	}

	return &Result{
		TransactionID: "txn_" + uuid.NewString(),
		Method:        p.Method,
	}, nil
}
