package socketerr

import (
	"strconv"
)

// Category is a socket error condition. The numbering matches the WinRT
// SocketErrorStatus enumeration.
type Category int32

const (
	Unknown Category = iota
	OperationAborted
	HTTPInvalidServerResponse
	ConnectionTimedOut
	AddressFamilyNotSupported
	SocketTypeNotSupported
	HostNotFound
	NoDataRecordOfRequestedType
	NonAuthoritativeHostNotFound
	ClassTypeNotFound
	AddressAlreadyInUse
	CannotAssignRequestedAddress
	ConnectionRefused
	NetworkIsUnreachable
	UnreachableHost
	NetworkIsDown
	NetworkDroppedConnectionOnReset
	SoftwareCausedConnectionAbort
	ConnectionResetByPeer
	HostIsDown
	NoAddressesFound
	TooManyOpenFiles
	MessageTooLong
)

var categoryNames = [...]string{
	Unknown:                         `unknown`,
	OperationAborted:                `operation aborted`,
	HTTPInvalidServerResponse:       `invalid http server response`,
	ConnectionTimedOut:              `connection timed out`,
	AddressFamilyNotSupported:       `address family not supported`,
	SocketTypeNotSupported:          `socket type not supported`,
	HostNotFound:                    `host not found`,
	NoDataRecordOfRequestedType:     `no data record of requested type`,
	NonAuthoritativeHostNotFound:    `non-authoritative host not found`,
	ClassTypeNotFound:               `class type not found`,
	AddressAlreadyInUse:             `address already in use`,
	CannotAssignRequestedAddress:    `cannot assign requested address`,
	ConnectionRefused:               `connection refused`,
	NetworkIsUnreachable:            `network is unreachable`,
	UnreachableHost:                 `unreachable host`,
	NetworkIsDown:                   `network is down`,
	NetworkDroppedConnectionOnReset: `network dropped connection on reset`,
	SoftwareCausedConnectionAbort:   `software caused connection abort`,
	ConnectionResetByPeer:           `connection reset by peer`,
	HostIsDown:                      `host is down`,
	NoAddressesFound:                `no addresses found`,
	TooManyOpenFiles:                `too many open files`,
	MessageTooLong:                  `message too long`,
}

// Known returns true if x is a defined category, other than Unknown.
func (x Category) Known() bool {
	return x > Unknown && int(x) < len(categoryNames)
}

func (x Category) String() string {
	if x >= 0 && int(x) < len(categoryNames) {
		return categoryNames[x]
	}
	return `category(` + strconv.FormatInt(int64(x), 10) + `)`
}
