package testrpc

import "github.com/reoring/rpcbase"

type Result int32

const (
	RSuccess Result = iota
	RInvalidData
	RUnsupportedRequest
	ROutOfMemory
	RTooManyPendingRequests
	RInvalidID
	RDuplicateName
	RGenericError
)

var ResultDef = rpcbase.NewEnumDef("Result", map[Result]string{
	RSuccess:                "SUCCESS",
	RInvalidData:            "INVALID_DATA",
	RUnsupportedRequest:     "UNSUPPORTED_REQUEST",
	ROutOfMemory:            "OUT_OF_MEMORY",
	RTooManyPendingRequests: "TOO_MANY_PENDING_REQUESTS",
	RInvalidID:              "INVALID_ID",
	RDuplicateName:          "DUPLICATE_NAME",
	RGenericError:           "GENERIC_ERROR",
})

func (r Result) String() string {
	if s, ok := ResultDef.String(r); ok {
		return s
	}
	return "Result(?)"
}

type AppInterfaceUnregisteredReason int32

const (
	AiurIgnitionOff AppInterfaceUnregisteredReason = iota
	AiurBluetoothOff
	AiurUSBDisconnected
	AiurRequestWhileInNoneHMILevel
	AiurTooManyRequests
	AiurDriverDistractionViolation
	AiurLanguageChange
	AiurMasterReset
	AiurFactoryDefaults
)

var AppInterfaceUnregisteredReasonDef = rpcbase.NewEnumDef("AppInterfaceUnregisteredReason", map[AppInterfaceUnregisteredReason]string{
	AiurIgnitionOff:                "IGNITION_OFF",
	AiurBluetoothOff:               "BLUETOOTH_OFF",
	AiurUSBDisconnected:            "USB_DISCONNECTED",
	AiurRequestWhileInNoneHMILevel: "REQUEST_WHILE_IN_NONE_HMI_LEVEL",
	AiurTooManyRequests:            "TOO_MANY_REQUESTS",
	AiurDriverDistractionViolation: "DRIVER_DISTRACTION_VIOLATION",
	AiurLanguageChange:             "LANGUAGE_CHANGE",
	AiurMasterReset:                "MASTER_RESET",
	AiurFactoryDefaults:            "FACTORY_DEFAULTS",
})

type ImageType int32

const (
	ITStatic ImageType = iota
	ITDynamic
)

var ImageTypeDef = rpcbase.NewEnumDef("ImageType", map[ImageType]string{
	ITStatic:  "STATIC",
	ITDynamic: "DYNAMIC",
})
