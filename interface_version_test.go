package smpp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smppcore/smpp"
	"github.com/smppcore/smpp/mock"
	"github.com/smppcore/smpp/pdu"
)

func TestSessionInterfaceVersionDefaultsToPackageVersion(t *testing.T) {
	sess := smpp.NewSession(mock.NewConn().Closed(), smpp.SessionConf{})
	defer sess.Close()
	assert.Equal(t, pdu.InterfaceVersion(smpp.Version), sess.InterfaceVersion())
}

func TestSessionSetInterfaceVersion(t *testing.T) {
	sess := smpp.NewSession(mock.NewConn().Closed(), smpp.SessionConf{})
	defer sess.Close()
	sess.SetInterfaceVersion(pdu.InterfaceVersion50)
	assert.Equal(t, pdu.InterfaceVersion50, sess.InterfaceVersion())
}

func TestBroadcastSmRejectedBelowInterfaceVersion50(t *testing.T) {
	sess := smpp.NewSession(mock.NewConn().Closed(), smpp.SessionConf{})
	defer sess.Close()
	sess.SetInterfaceVersion(pdu.InterfaceVersion34)
	_, err := smpp.SendBroadcastSm(context.Background(), sess, &pdu.BroadcastSm{})
	require.Error(t, err)
}
