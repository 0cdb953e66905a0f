package hbase

import "fmt"

// Op names a gateway call in error messages and severity policy.
type Op string

const (
	OpConnect           Op = "connect"
	OpListTables        Op = "getTableNames"
	OpIsTableEnabled    Op = "isTableEnabled"
	OpColumnDescriptors Op = "getColumnDescriptors"
	OpTableRegions      Op = "getTableRegions"
)

// CallError wraps a failed gateway call with the operation, the table it was
// issued for (empty for connect and listing calls), and the endpoint. Every
// error returned by the Thrift client is a *CallError.
type CallError struct {
	Op     Op
	Table  string
	Target string
	Err    error
}

func (e *CallError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s failed on %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s failed for table '%s' on %s: %v", e.Op, e.Table, e.Target, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// IOError is the exception the gateway raises for storage-level failures,
// kept distinct from transport errors.
type IOError struct {
	Message string
}

func (e *IOError) Error() string {
	return "IOError: " + e.Message
}
