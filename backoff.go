package smpp

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DialWithBackoff wraps a BindTx/BindRx/BindTRx-style bind call, retrying
// transient dial/bind failures with exponential backoff. Pass
// backoff.NewExponentialBackOff() for the usual capped-retry behavior, or
// &backoff.StopBackOff{} to disable retries entirely. notify, if non-nil, is called
// before each retry with the failed attempt's error and the computed delay.
func DialWithBackoff(bo backoff.BackOff, notify backoff.Notify, dial func() (*Session, error)) (*Session, error) {
	var sess *Session
	op := func() error {
		s, err := dial()
		if err != nil {
			return err
		}
		sess = s
		return nil
	}
	if notify == nil {
		notify = func(error, time.Duration) {}
	}
	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return nil, err
	}
	return sess, nil
}
