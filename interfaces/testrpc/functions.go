// Package testrpc holds the types of the test RPC interface: function ids,
// enumerations, typedefs, and the structs shared by its requests and
// notifications. Requests and notifications live in the request and
// notification subpackages.
package testrpc

import "github.com/reoring/rpcbase"

// Function ids.
const (
	AddSubMenuID                 rpcbase.FunctionID = 7
	DiagnosticMessageID          rpcbase.FunctionID = 37
	OnAppInterfaceUnregisteredID rpcbase.FunctionID = 32769
	OnAudioPassThruID            rpcbase.FunctionID = 32779
)
