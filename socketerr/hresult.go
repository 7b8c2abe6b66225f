package socketerr

// Win32 and Winsock error codes, with a socket error category. These are
// the codes WinRT surfaces, wrapped as HRESULTs.
const (
	errorOperationAborted          = 995
	errorHTTPInvalidServerResponse = 12152
	dnsInfoNoRecords               = 9501
	wsaEMFILE                      = 10024
	wsaEMSGSIZE                    = 10040
	wsaESOCKTNOSUPPORT             = 10044
	wsaEAFNOSUPPORT                = 10047
	wsaEADDRINUSE                  = 10048
	wsaEADDRNOTAVAIL               = 10049
	wsaENETDOWN                    = 10050
	wsaENETUNREACH                 = 10051
	wsaENETRESET                   = 10052
	wsaECONNABORTED                = 10053
	wsaECONNRESET                  = 10054
	wsaETIMEDOUT                   = 10060
	wsaECONNREFUSED                = 10061
	wsaEHOSTDOWN                   = 10064
	wsaEHOSTUNREACH                = 10065
	wsaTYPENOTFOUND                = 10109
	wsaHOSTNOTFOUND                = 11001
	wsaTRYAGAIN                    = 11002
	wsaNODATA                      = 11004
)

var win32Categories = map[uint32]Category{
	errorOperationAborted:          OperationAborted,
	errorHTTPInvalidServerResponse: HTTPInvalidServerResponse,
	dnsInfoNoRecords:               NoAddressesFound,
	wsaEMFILE:                      TooManyOpenFiles,
	wsaEMSGSIZE:                    MessageTooLong,
	wsaESOCKTNOSUPPORT:             SocketTypeNotSupported,
	wsaEAFNOSUPPORT:                AddressFamilyNotSupported,
	wsaEADDRINUSE:                  AddressAlreadyInUse,
	wsaEADDRNOTAVAIL:               CannotAssignRequestedAddress,
	wsaENETDOWN:                    NetworkIsDown,
	wsaENETUNREACH:                 NetworkIsUnreachable,
	wsaENETRESET:                   NetworkDroppedConnectionOnReset,
	wsaECONNABORTED:                SoftwareCausedConnectionAbort,
	wsaECONNRESET:                  ConnectionResetByPeer,
	wsaETIMEDOUT:                   ConnectionTimedOut,
	wsaECONNREFUSED:                ConnectionRefused,
	wsaEHOSTDOWN:                   HostIsDown,
	wsaEHOSTUNREACH:                UnreachableHost,
	wsaTYPENOTFOUND:                ClassTypeNotFound,
	wsaHOSTNOTFOUND:                HostNotFound,
	wsaTRYAGAIN:                    NonAuthoritativeHostNotFound,
	wsaNODATA:                      NoDataRecordOfRequestedType,
}

var hresultTable = func() MapTable {
	t := make(MapTable, len(win32Categories))
	for code, category := range win32Categories {
		t[HResultFromWin32(code)] = category
	}
	return t
}()

// HResultTable returns a Table of the HRESULT codes reported by WinRT
// socket operations, i.e. HRESULT_FROM_WIN32 of the Winsock errors. It is
// platform independent.
func HResultTable() Table { return hresultTable }
