// Command rpcbind checks, re-encodes, and describes the messages of the test
// RPC interface.
//
//	rpcbind list
//	rpcbind check AddSubMenu request.json
//	rpcbind encode 37 < message.yaml
//	rpcbind schema DiagnosticMessage
package main

func main() { Execute() }
