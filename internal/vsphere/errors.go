// Package vsphere is the inventory layer: it owns the session against
// the vCenter/ESXi SOAP endpoint and exposes typed read-only views of
// hosts, virtual machines and host networking. Nothing here mutates
// platform state.
package vsphere

import "fmt"

// AuthError means session establishment was rejected. It is fatal and
// occurs before any control executes.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError means the inventory layer could not be reached or a
// query failed mid-flight. It aborts the whole run: continuing would
// silently misreport missing data as compliance.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vsphere: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
