package faulty

import "github.com/nspcc-dev/neo-go/pkg/interop"

// Controller always fails instead of returning an address.
func Controller() interop.Hash160 {
	panic("no controller here")
}
