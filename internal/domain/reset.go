// File: internal/domain/reset.go
// License: Apache-2.0

package domain

import (
	"sync/atomic"

	"github.com/jagan3954/asyncfifo/api"
)

// ResetLine is the shared reset signal. While asserted, each domain
// spends its ticks zeroing its pointer, clearing its outbound crossing,
// and acknowledging. Releasing the line before both domains have
// acknowledged is a reset protocol violation.
type ResetLine struct {
	asserted atomic.Bool
	prodAck  atomic.Bool
	consAck  atomic.Bool
}

// NewResetLine returns a deasserted line.
func NewResetLine() *ResetLine {
	return &ResetLine{}
}

// Assert raises reset and clears both acknowledgements.
func (l *ResetLine) Assert() {
	l.prodAck.Store(false)
	l.consAck.Store(false)
	l.asserted.Store(true)
}

// Asserted reports whether reset is currently raised.
func (l *ResetLine) Asserted() bool {
	return l.asserted.Load()
}

// Acked returns the per-domain acknowledgement state.
func (l *ResetLine) Acked() (producer, consumer bool) {
	return l.prodAck.Load(), l.consAck.Load()
}

// Release lowers reset. Fails without lowering if either domain has not
// acknowledged, since resuming one side against a half-reset peer lets
// it misread full/empty from a stale pointer.
func (l *ResetLine) Release() error {
	p, c := l.Acked()
	if !p || !c {
		return api.NewError(api.ErrCodeResetProtocol,
			"reset released before both domains acknowledged").
			WithContext("producer_acked", p).
			WithContext("consumer_acked", c)
	}
	l.asserted.Store(false)
	return nil
}

func (l *ResetLine) ackProducer() { l.prodAck.Store(true) }
func (l *ResetLine) ackConsumer() { l.consAck.Store(true) }
