// Package request holds the requests of the test RPC interface, the Handler
// capability they dispatch to, and the function id keyed factory.
package request

import (
	"github.com/reoring/rpcbase"
	"github.com/reoring/rpcbase/interfaces/testrpc"
)

// Handler has one method per request of the interface.
type Handler interface {
	HandleAddSubMenu(params *AddSubMenu)
	HandleDiagnosticMessage(params *DiagnosticMessage)
}

// Request is implemented by every request of the interface.
type Request interface {
	rpcbase.Message
	// HandleWith calls the Handler method matching the concrete request.
	HandleWith(h Handler)
}

var registry = rpcbase.NewRegistry[Request](rpcbase.KindRequest)

func init() {
	registry.Register(testrpc.AddSubMenuID, "AddSubMenu", func() Request { return NewAddSubMenu() })
	registry.Register(testrpc.DiagnosticMessageID, "DiagnosticMessage", func() Request { return NewDiagnosticMessage() })
}

// Registry exposes the request factory.
func Registry() *rpcbase.Registry[Request] { return registry }

// NewFromJSON builds the request registered for id from a JSON tree node.
// An unknown id yields an error matching rpcbase.ErrUnknownMessageType.
func NewFromJSON(node any, id rpcbase.FunctionID) (Request, error) {
	return registry.NewFromJSON(node, id)
}

type AddSubMenu struct {
	rpcbase.Struct
	MenuID   rpcbase.Mandatory[*rpcbase.Integer[int32]]
	Position rpcbase.Mandatory[*rpcbase.Integer[int32]]
	MenuName rpcbase.Mandatory[*rpcbase.String]
}

func NewAddSubMenu() *AddSubMenu {
	s := &AddSubMenu{
		MenuID:   rpcbase.MandatoryOf(rpcbase.NewInteger[int32](1, 2000000000)),
		Position: rpcbase.MandatoryOf(rpcbase.NewInteger[int32](0, 1000)).WithDefault(rpcbase.Number("1000")),
		MenuName: rpcbase.MandatoryOf(rpcbase.NewString(1, 500)),
	}
	s.Define(
		rpcbase.F("menuID", &s.MenuID),
		rpcbase.F("position", &s.Position),
		rpcbase.F("menuName", &s.MenuName),
	)
	return s
}

func (*AddSubMenu) FunctionID() rpcbase.FunctionID { return testrpc.AddSubMenuID }

func (*AddSubMenu) Kind() rpcbase.MessageKind { return rpcbase.KindRequest }

func (s *AddSubMenu) HandleWith(h Handler) { h.HandleAddSubMenu(s) }

type DiagnosticMessage struct {
	rpcbase.Struct
	TargetID      rpcbase.Mandatory[*rpcbase.Integer[int32]]
	MessageLength rpcbase.Mandatory[*rpcbase.Integer[int32]]
	MessageData   rpcbase.Mandatory[*rpcbase.Array[*rpcbase.Integer[uint8]]]
}

func NewDiagnosticMessage() *DiagnosticMessage {
	s := &DiagnosticMessage{
		TargetID:      rpcbase.MandatoryOf(rpcbase.NewInteger[int32](0, 65535)),
		MessageLength: rpcbase.MandatoryOf(rpcbase.NewInteger[int32](0, 65535)),
		MessageData: rpcbase.MandatoryOf(rpcbase.NewArray(func() *rpcbase.Integer[uint8] {
			return rpcbase.NewInteger[uint8](0, 255)
		}, 1, 65535)),
	}
	s.Define(
		rpcbase.F("targetID", &s.TargetID),
		rpcbase.F("messageLength", &s.MessageLength),
		rpcbase.F("messageData", &s.MessageData),
	)
	return s
}

func (*DiagnosticMessage) FunctionID() rpcbase.FunctionID { return testrpc.DiagnosticMessageID }

func (*DiagnosticMessage) Kind() rpcbase.MessageKind { return rpcbase.KindRequest }

func (s *DiagnosticMessage) HandleWith(h Handler) { h.HandleDiagnosticMessage(s) }
