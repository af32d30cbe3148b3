package smpp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/smppcore/smpp"
	"github.com/smppcore/smpp/mock"
	"github.com/smppcore/smpp/pdu"
)

func TestSendHonorsRateLimiter(t *testing.T) {
	sess := smpp.NewSession(mock.NewConn().Closed(), smpp.SessionConf{
		RateLimiter: rate.NewLimiter(rate.Every(time.Hour), 1),
	})
	defer sess.Close()

	// First send drains the single burst token immediately.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _ = sess.Send(ctx, &pdu.EnquireLink{})

	// Second send has no token left and the limiter's next refill is an
	// hour away, so it must fail on the context deadline rather than
	// reach the (closed) transport.
	ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel2()
	_, err := sess.Send(ctx2, &pdu.EnquireLink{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
