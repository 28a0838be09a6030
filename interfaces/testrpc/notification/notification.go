// Package notification holds the notifications of the test RPC interface,
// the Handler capability they dispatch to, and the function id keyed factory.
package notification

import (
	"github.com/reoring/rpcbase"
	"github.com/reoring/rpcbase/interfaces/testrpc"
)

// Handler has one method per notification of the interface.
type Handler interface {
	HandleOnAppInterfaceUnregistered(params *OnAppInterfaceUnregistered)
	HandleOnAudioPassThru(params *OnAudioPassThru)
}

// Notification is implemented by every notification of the interface.
type Notification interface {
	rpcbase.Message
	HandleWith(h Handler)
}

var registry = rpcbase.NewRegistry[Notification](rpcbase.KindNotification)

func init() {
	registry.Register(testrpc.OnAppInterfaceUnregisteredID, "OnAppInterfaceUnregistered", func() Notification { return NewOnAppInterfaceUnregistered() })
	registry.Register(testrpc.OnAudioPassThruID, "OnAudioPassThru", func() Notification { return NewOnAudioPassThru() })
}

func Registry() *rpcbase.Registry[Notification] { return registry }

func NewFromJSON(node any, id rpcbase.FunctionID) (Notification, error) {
	return registry.NewFromJSON(node, id)
}

type OnAppInterfaceUnregistered struct {
	rpcbase.Struct
	Reason rpcbase.Mandatory[*rpcbase.Enum[testrpc.AppInterfaceUnregisteredReason]]
}

func NewOnAppInterfaceUnregistered() *OnAppInterfaceUnregistered {
	s := &OnAppInterfaceUnregistered{
		Reason: rpcbase.MandatoryOf(rpcbase.NewEnum(testrpc.AppInterfaceUnregisteredReasonDef)),
	}
	s.Define(rpcbase.F("reason", &s.Reason))
	return s
}

func (*OnAppInterfaceUnregistered) FunctionID() rpcbase.FunctionID {
	return testrpc.OnAppInterfaceUnregisteredID
}

func (*OnAppInterfaceUnregistered) Kind() rpcbase.MessageKind { return rpcbase.KindNotification }

func (s *OnAppInterfaceUnregistered) HandleWith(h Handler) { h.HandleOnAppInterfaceUnregistered(s) }

// OnAudioPassThru carries no parameters.
type OnAudioPassThru struct {
	rpcbase.Struct
}

func NewOnAudioPassThru() *OnAudioPassThru {
	s := &OnAudioPassThru{}
	s.Define()
	return s
}

func (*OnAudioPassThru) FunctionID() rpcbase.FunctionID { return testrpc.OnAudioPassThruID }

func (*OnAudioPassThru) Kind() rpcbase.MessageKind { return rpcbase.KindNotification }

func (s *OnAudioPassThru) HandleWith(h Handler) { h.HandleOnAudioPassThru(s) }
