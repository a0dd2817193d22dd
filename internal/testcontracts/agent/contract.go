package agent

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

// Register registers registrant in the filter registry. The agent is
// expected to be the controller of registrant.
func Register(registry, registrant interop.Hash160) {
	contract.Call(registry, "register", contract.All, registrant)
}

// UpdateOperator toggles operator on the operator list of registrant.
func UpdateOperator(registry, registrant, operator interop.Hash160, filtered bool) {
	contract.Call(registry, "updateOperator", contract.All, registrant, operator, filtered)
}
