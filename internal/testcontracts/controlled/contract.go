package controlled

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const controllerKey = "controller"

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.([]any)
	storage.Put(storage.GetContext(), controllerKey, args[0].(interop.Hash160))
}

// Controller returns the address managing this contract's registry entries.
func Controller() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), controllerKey).(interop.Hash160)
}

// SetController replaces the controller address with the given one.
func SetController(controller interop.Hash160) {
	storage.Put(storage.GetContext(), controllerKey, controller)
}

// RegisterSelf registers this contract in the filter registry on its own
// behalf.
func RegisterSelf(registry interop.Hash160) {
	contract.Call(registry, "register", contract.All, runtime.GetExecutingScriptHash())
}
