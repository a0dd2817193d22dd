package opfilter

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/opfilter-contract/common"
	cst "github.com/nspcc-dev/opfilter-contract/contracts/opfilter/opfilterconst"
)

const (
	// ErrNotSelfNorController is thrown on an attempt to act for an address
	// that is neither witnessed nor vouched for by its controller.
	ErrNotSelfNorController = "NotSelfNorController"
	// ErrTargetNotControllable is thrown on an attempt to act for an
	// unwitnessed address that has no deployed contract exposing the
	// controller method.
	ErrTargetNotControllable = "TargetNotControllable"
	// ErrAlreadyRegistered is thrown when the registrant is already present
	// in the registry.
	ErrAlreadyRegistered = "AlreadyRegistered"
	// ErrNotRegistered is thrown when the address expected to be present in
	// the registry is not. The message carries the address.
	ErrNotRegistered = "NotRegistered"
	// ErrCannotSubscribeToSelf is thrown on subscribing to own address.
	ErrCannotSubscribeToSelf = "CannotSubscribeToSelf"
	// ErrCannotSubscribeToZeroTarget is thrown on subscribing to the zero
	// address.
	ErrCannotSubscribeToZeroTarget = "CannotSubscribeToZeroTarget"
	// ErrAlreadySubscribed is thrown on subscribing to the current
	// subscription target again. The message carries the target.
	ErrAlreadySubscribed = "AlreadySubscribed"
	// ErrCannotSubscribeToRegistrantWithSubscription is thrown on
	// subscribing to a registrant that itself follows somebody else's
	// lists. The message carries the target.
	ErrCannotSubscribeToRegistrantWithSubscription = "CannotSubscribeToRegistrantWithSubscription"
	// ErrNotSubscribed is thrown by unsubscribe when there is no
	// subscription to drop.
	ErrNotSubscribed = "NotSubscribed"
	// ErrCannotUpdateWhileSubscribed is thrown on filter list modifications
	// of a subscribed registrant. The message carries the subscription
	// target.
	ErrCannotUpdateWhileSubscribed = "CannotUpdateWhileSubscribed"
	// ErrCannotCopyFromSelf is thrown on copying entries from own address.
	ErrCannotCopyFromSelf = "CannotCopyFromSelf"
	// ErrAddressAlreadyFiltered is thrown when the operator being added to
	// the list is already there. The message carries the operator.
	ErrAddressAlreadyFiltered = "AddressAlreadyFiltered"
	// ErrAddressNotFiltered is thrown when the operator being removed from
	// the list is not there. The message carries the operator.
	ErrAddressNotFiltered = "AddressNotFiltered"
	// ErrCodeHashAlreadyFiltered is thrown when the code hash being added
	// to the list is already there. The message carries the code hash.
	ErrCodeHashAlreadyFiltered = "CodeHashAlreadyFiltered"
	// ErrCodeHashNotFiltered is thrown when the code hash being removed
	// from the list is not there. The message carries the code hash.
	ErrCodeHashNotFiltered = "CodeHashNotFiltered"
	// ErrCannotFilterZeroCodeHash is thrown on filtering the zero code
	// hash that marks contract-less addresses.
	ErrCannotFilterZeroCodeHash = "CannotFilterZeroCodeHash"

	// ErrInvalidRegistrant is thrown when a registry address argument is
	// not a slice of 20 bytes.
	ErrInvalidRegistrant = "invalid registrant"
	// ErrInvalidOperator is thrown when an operator address argument is
	// not a slice of 20 bytes.
	ErrInvalidOperator = "invalid operator"
	// ErrInvalidCodeHash is thrown when a code hash argument is not a
	// slice of 32 bytes.
	ErrInvalidCodeHash = "invalid code hash"
	// ErrIndexOutOfRange is thrown by indexed accessors when the index is
	// negative or not less than the list length.
	ErrIndexOutOfRange = "index out of range"
)

const (
	registrationPrefix = 'r'
	operatorPrefix     = 'o'
	codeHashPrefix     = 'h'
	subscriberPrefix   = 's'
)

// controllerMethod is the parameterless method a deployed contract must
// expose to let another party act for its address in the registry.
const controllerMethod = "controller"

// Zero values mark "no subscription" and "no code" respectively.
var (
	zeroAddress  = interop.Hash160(make([]byte, interop.Hash160Len))
	zeroCodeHash = interop.Hash256(make([]byte, interop.Hash256Len))
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("operator filter contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("operator filter contract updated")
}

// Register adds registrant to the registry with no subscription. Filter
// lists retained from a previous registration become effective again. Must
// be witnessed by registrant or authorized by its controller.
//
// It produces RegistrationUpdated notification.
func Register(registrant interop.Hash160) {
	checkRegistrant(registrant)

	ctx := storage.GetContext()
	if getRegistration(ctx, registrant) != nil {
		panic(ErrAlreadyRegistered)
	}

	storage.Put(ctx, registrationKey(registrant), registrant)
	runtime.Notify("RegistrationUpdated", registrant, true)
}

// Unregister removes registrant from the registry, dropping its
// subscription if there is one. Filter lists are kept and become effective
// again on re-registration. Must be witnessed by registrant or authorized
// by its controller.
//
// It produces RegistrationUpdated notification and, if a subscription was
// dropped, SubscriptionUpdated notification.
func Unregister(registrant interop.Hash160) {
	checkRegistrant(registrant)

	ctx := storage.GetContext()
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrant))
	}

	if !common.BytesEqual(registration, registrant) {
		subscriberSet(registration).Remove(ctx, registrant)
		runtime.Notify("SubscriptionUpdated", registrant, registration, false)
	}

	storage.Delete(ctx, registrationKey(registrant))
	runtime.Notify("RegistrationUpdated", registrant, false)
}

// RegisterAndSubscribe adds registrant to the registry immediately following
// the lists of subscription. The target must be registered and must not
// have a subscription of its own. Must be witnessed by registrant or
// authorized by its controller.
//
// It produces RegistrationUpdated and SubscriptionUpdated notifications.
func RegisterAndSubscribe(registrant, subscription interop.Hash160) {
	checkRegistrant(registrant)
	if len(subscription) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetContext()
	if getRegistration(ctx, registrant) != nil {
		panic(ErrAlreadyRegistered)
	}
	if common.BytesEqual(registrant, subscription) {
		panic(ErrCannotSubscribeToSelf)
	}

	targetRegistration := getRegistration(ctx, subscription)
	if targetRegistration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(subscription))
	}
	if !common.BytesEqual(targetRegistration, subscription) {
		panic(ErrCannotSubscribeToRegistrantWithSubscription + ": " + std.Base64Encode(subscription))
	}

	setSubscription(ctx, registrant, nil, subscription)
	runtime.Notify("RegistrationUpdated", registrant, true)
	runtime.Notify("SubscriptionUpdated", registrant, subscription, true)
}

// RegisterAndCopyEntries adds registrant to the registry with no
// subscription and copies the own filter lists of registrantToCopy into
// registrant's lists. The source must be a registered address other than
// registrant itself. Must be witnessed by registrant or authorized by its
// controller.
//
// It produces RegistrationUpdated notification plus OperatorUpdated and
// CodeHashUpdated notifications for every copied entry.
func RegisterAndCopyEntries(registrant, registrantToCopy interop.Hash160) {
	checkRegistrant(registrant)
	if len(registrantToCopy) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}
	if common.BytesEqual(registrant, registrantToCopy) {
		panic(ErrCannotCopyFromSelf)
	}

	ctx := storage.GetContext()
	if getRegistration(ctx, registrant) != nil {
		panic(ErrAlreadyRegistered)
	}
	if getRegistration(ctx, registrantToCopy) == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrantToCopy))
	}

	storage.Put(ctx, registrationKey(registrant), registrant)
	runtime.Notify("RegistrationUpdated", registrant, true)

	copyEntries(ctx, registrant, registrantToCopy)
}

// UpdateOperator adds operator to (filtered is true) or removes it from
// (filtered is false) the operator list of registrant. Exact toggles only:
// adding a present operator or removing an absent one fails. Subscribed
// registrants cannot modify lists. Must be witnessed by registrant or
// authorized by its controller.
//
// It produces OperatorUpdated notification.
func UpdateOperator(registrant, operator interop.Hash160, filtered bool) {
	checkRegistrant(registrant)
	if len(operator) != interop.Hash160Len {
		panic(ErrInvalidOperator)
	}

	ctx := storage.GetContext()
	requireOwnListControl(ctx, registrant)
	updateOperator(ctx, registrant, operator, filtered)
}

// UpdateOperators is like [UpdateOperator] but for a list of operators
// applied in the given order. The first failing element aborts the whole
// call, discarding all previous changes and notifications.
//
// It produces OperatorUpdated notification for every list element.
func UpdateOperators(registrant interop.Hash160, operators []interop.Hash160, filtered bool) {
	checkRegistrant(registrant)

	ctx := storage.GetContext()
	requireOwnListControl(ctx, registrant)

	for i := range operators {
		op := operators[i]
		if len(op) != interop.Hash160Len {
			panic(ErrInvalidOperator)
		}
		updateOperator(ctx, registrant, op, filtered)
	}
}

// UpdateCodeHash adds codeHash to (filtered is true) or removes it from
// (filtered is false) the code hash list of registrant. The zero code hash
// marking contract-less addresses is rejected before any registration
// checks. Exact toggles only. Subscribed registrants cannot modify lists.
// Must be witnessed by registrant or authorized by its controller.
//
// It produces CodeHashUpdated notification.
func UpdateCodeHash(registrant interop.Hash160, codeHash interop.Hash256, filtered bool) {
	checkRegistrant(registrant)
	if len(codeHash) != interop.Hash256Len {
		panic(ErrInvalidCodeHash)
	}
	if common.BytesEqual(codeHash, zeroCodeHash) {
		panic(ErrCannotFilterZeroCodeHash)
	}

	ctx := storage.GetContext()
	requireOwnListControl(ctx, registrant)
	updateCodeHash(ctx, registrant, codeHash, filtered)
}

// UpdateCodeHashes is like [UpdateCodeHash] but for a list of code hashes
// applied in the given order. The zero code hash is rejected only when
// adding: it can never be on the list, so its removal fails with
// CodeHashNotFiltered. The first failing element aborts the whole call,
// discarding all previous changes and notifications.
//
// It produces CodeHashUpdated notification for every list element.
func UpdateCodeHashes(registrant interop.Hash160, codeHashes []interop.Hash256, filtered bool) {
	checkRegistrant(registrant)

	ctx := storage.GetContext()
	requireOwnListControl(ctx, registrant)

	for i := range codeHashes {
		h := codeHashes[i]
		if len(h) != interop.Hash256Len {
			panic(ErrInvalidCodeHash)
		}
		if filtered && common.BytesEqual(h, zeroCodeHash) {
			panic(ErrCannotFilterZeroCodeHash)
		}
		updateCodeHash(ctx, registrant, h, filtered)
	}
}

// Subscribe makes registrant follow the filter lists of newSubscription,
// replacing the current subscription if there is one. The target must be
// registered and must not have a subscription of its own. Must be
// witnessed by registrant or authorized by its controller.
//
// It produces SubscriptionUpdated notification, preceded by another one
// when a previous subscription is replaced.
func Subscribe(registrant, newSubscription interop.Hash160) {
	checkRegistrant(registrant)
	if len(newSubscription) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	if common.BytesEqual(registrant, newSubscription) {
		panic(ErrCannotSubscribeToSelf)
	}
	if common.BytesEqual(newSubscription, zeroAddress) {
		panic(ErrCannotSubscribeToZeroTarget)
	}

	ctx := storage.GetContext()
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrant))
	}
	if common.BytesEqual(registration, newSubscription) {
		panic(ErrAlreadySubscribed + ": " + std.Base64Encode(newSubscription))
	}

	targetRegistration := getRegistration(ctx, newSubscription)
	if targetRegistration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(newSubscription))
	}
	if !common.BytesEqual(targetRegistration, newSubscription) {
		panic(ErrCannotSubscribeToRegistrantWithSubscription + ": " + std.Base64Encode(newSubscription))
	}

	var oldSubscription interop.Hash160
	if !common.BytesEqual(registration, registrant) {
		oldSubscription = registration
	}

	setSubscription(ctx, registrant, oldSubscription, newSubscription)
	if oldSubscription != nil {
		runtime.Notify("SubscriptionUpdated", registrant, oldSubscription, false)
	}
	runtime.Notify("SubscriptionUpdated", registrant, newSubscription, true)
}

// Unsubscribe drops the subscription of registrant, making its own filter
// lists effective again, and returns the former subscription target. With
// copyExistingEntries set, the former target's own lists are copied into
// registrant's lists first. Must be witnessed by registrant or authorized
// by its controller.
//
// It produces SubscriptionUpdated notification plus, when copying,
// OperatorUpdated and CodeHashUpdated notifications for every copied entry.
func Unsubscribe(registrant interop.Hash160, copyExistingEntries bool) interop.Hash160 {
	checkRegistrant(registrant)

	ctx := storage.GetContext()
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrant))
	}
	if common.BytesEqual(registration, registrant) {
		panic(ErrNotSubscribed)
	}

	setSubscription(ctx, registrant, registration, nil)
	runtime.Notify("SubscriptionUpdated", registrant, registration, false)

	if copyExistingEntries {
		copyEntries(ctx, registrant, registration)
	}

	return registration
}

// CopyEntriesOf copies the own filter lists of registrantToCopy into
// registrant's lists, skipping entries already present. The source must be
// a registered address other than registrant itself, registrant must be
// registered and not subscribed. Must be witnessed by registrant or
// authorized by its controller.
//
// It produces OperatorUpdated and CodeHashUpdated notifications for every
// newly added entry only.
func CopyEntriesOf(registrant, registrantToCopy interop.Hash160) {
	checkRegistrant(registrant)
	if len(registrantToCopy) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}
	if common.BytesEqual(registrant, registrantToCopy) {
		panic(ErrCannotCopyFromSelf)
	}

	ctx := storage.GetContext()
	requireOwnListControl(ctx, registrant)
	if getRegistration(ctx, registrantToCopy) == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrantToCopy))
	}

	copyEntries(ctx, registrant, registrantToCopy)
}

// IsOperatorAllowed returns true if operator passes the effective filter
// lists of registrant. For an unregistered registrant any operator passes.
// A filtered operator address fails the call with AddressFiltered, an
// operator running a contract with a filtered code hash fails it with
// CodeHashFiltered.
func IsOperatorAllowed(registrant, operator interop.Hash160) bool {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}
	if len(operator) != interop.Hash160Len {
		panic(ErrInvalidOperator)
	}

	ctx := storage.GetReadOnlyContext()
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		return true
	}

	if operatorSet(registration).Contains(ctx, operator) {
		panic(cst.ErrAddressFiltered + ": " + std.Base64Encode(operator))
	}

	c := management.GetContract(operator)
	if c != nil {
		codeHash := crypto.Sha256(c.NEF)
		if codeHashSet(registration).Contains(ctx, codeHash) {
			panic(cst.ErrCodeHashFiltered + ": " + std.Base64Encode(operator) + ", " + std.Base64Encode(codeHash))
		}
	}

	return true
}

// SubscriptionOf returns the subscription target of registrant or the zero
// address if registrant keeps its own lists. Fails for unregistered
// addresses.
func SubscriptionOf(registrant interop.Hash160) interop.Hash160 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrant))
	}
	if common.BytesEqual(registration, registrant) {
		return zeroAddress
	}

	return registration
}

// Subscribers returns the list of registrants currently subscribed to
// registrant, in storage order. No registration requirement: the list is
// empty for unknown addresses.
func Subscribers(registrant interop.Hash160) []interop.Hash160 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	subs := []interop.Hash160{}
	it := subscriberSet(registrant).Iterate(ctx)
	for iterator.Next(it) {
		subs = append(subs, iterator.Value(it).(interop.Hash160))
	}

	return subs
}

// SubscriberAt returns the subscriber of registrant at the given index in
// storage order.
func SubscriberAt(registrant interop.Hash160, index int) interop.Hash160 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	sub := subscriberSet(registrant).At(ctx, index)
	if sub == nil {
		panic(ErrIndexOutOfRange)
	}

	return interop.Hash160(sub)
}

// IterateSubscribers is like [Subscribers] but returns an iterator over
// the subscribers of registrant.
func IterateSubscribers(registrant interop.Hash160) iterator.Iterator {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	return subscriberSet(registrant).Iterate(storage.GetReadOnlyContext())
}

// IsOperatorFiltered returns true if operator is on the effective operator
// list of registrant.
func IsOperatorFiltered(registrant, operator interop.Hash160) bool {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}
	if len(operator) != interop.Hash160Len {
		panic(ErrInvalidOperator)
	}

	ctx := storage.GetReadOnlyContext()
	return operatorSet(effectiveListOwner(ctx, registrant)).Contains(ctx, operator)
}

// IsCodeHashFiltered returns true if codeHash is on the effective code
// hash list of registrant.
func IsCodeHashFiltered(registrant interop.Hash160, codeHash interop.Hash256) bool {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}
	if len(codeHash) != interop.Hash256Len {
		panic(ErrInvalidCodeHash)
	}

	ctx := storage.GetReadOnlyContext()
	return codeHashSet(effectiveListOwner(ctx, registrant)).Contains(ctx, codeHash)
}

// IsCodeHashOfFiltered returns true if the code hash of the contract
// deployed at operatorWithCode is on the effective code hash list of
// registrant. Contract-less addresses have the zero code hash which is
// never on a list.
func IsCodeHashOfFiltered(registrant, operatorWithCode interop.Hash160) bool {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}
	if len(operatorWithCode) != interop.Hash160Len {
		panic(ErrInvalidOperator)
	}

	ctx := storage.GetReadOnlyContext()
	return codeHashSet(effectiveListOwner(ctx, registrant)).Contains(ctx, codeHashOf(operatorWithCode))
}

// IsRegistered returns true if addr is present in the registry.
func IsRegistered(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	return getRegistration(storage.GetReadOnlyContext(), addr) != nil
}

// CodeHashOf returns the SHA-256 hash of the executable deployed at addr
// or the zero code hash if there is no contract.
func CodeHashOf(addr interop.Hash160) interop.Hash256 {
	if len(addr) != interop.Hash160Len {
		panic(ErrInvalidOperator)
	}

	return codeHashOf(addr)
}

// FilteredOperators returns the effective operator list of registrant in
// storage order: the own list, or the subscription target's one for
// subscribed registrants. Unregistered addresses expose empty lists even
// when they have retained entries.
func FilteredOperators(registrant interop.Hash160) []interop.Hash160 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	ops := []interop.Hash160{}
	it := operatorSet(effectiveListOwner(ctx, registrant)).Iterate(ctx)
	for iterator.Next(it) {
		ops = append(ops, iterator.Value(it).(interop.Hash160))
	}

	return ops
}

// FilteredCodeHashes returns the effective code hash list of registrant in
// storage order, resolved the same way as in [FilteredOperators].
func FilteredCodeHashes(registrant interop.Hash160) []interop.Hash256 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	hashes := []interop.Hash256{}
	it := codeHashSet(effectiveListOwner(ctx, registrant)).Iterate(ctx)
	for iterator.Next(it) {
		hashes = append(hashes, iterator.Value(it).(interop.Hash256))
	}

	return hashes
}

// FilteredOperatorAt returns the element of the effective operator list of
// registrant at the given index in storage order.
func FilteredOperatorAt(registrant interop.Hash160, index int) interop.Hash160 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	op := operatorSet(effectiveListOwner(ctx, registrant)).At(ctx, index)
	if op == nil {
		panic(ErrIndexOutOfRange)
	}

	return interop.Hash160(op)
}

// FilteredCodeHashAt returns the element of the effective code hash list
// of registrant at the given index in storage order.
func FilteredCodeHashAt(registrant interop.Hash160, index int) interop.Hash256 {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	h := codeHashSet(effectiveListOwner(ctx, registrant)).At(ctx, index)
	if h == nil {
		panic(ErrIndexOutOfRange)
	}

	return interop.Hash256(h)
}

// IterateFilteredOperators is like [FilteredOperators] but returns an
// iterator over the effective operator list of registrant.
func IterateFilteredOperators(registrant interop.Hash160) iterator.Iterator {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	return operatorSet(effectiveListOwner(ctx, registrant)).Iterate(ctx)
}

// IterateFilteredCodeHashes is like [FilteredCodeHashes] but returns an
// iterator over the effective code hash list of registrant.
func IterateFilteredCodeHashes(registrant interop.Hash160) iterator.Iterator {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	ctx := storage.GetReadOnlyContext()
	return codeHashSet(effectiveListOwner(ctx, registrant)).Iterate(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkRegistrant ensures the invocation is entitled to act for
// registrant: it is witnessed by registrant (which includes calls made by
// the contract at registrant's address) or by the controller of that
// contract. The controller is queried with read-only call flags, so the
// queried contract can neither change registry state nor emit
// notifications. Its panic, if any, propagates to the caller as is.
func checkRegistrant(registrant interop.Hash160) {
	if len(registrant) != interop.Hash160Len {
		panic(ErrInvalidRegistrant)
	}

	if runtime.CheckWitness(registrant) {
		return
	}

	if !management.HasMethod(registrant, controllerMethod, 0) {
		panic(ErrTargetNotControllable)
	}

	controller := contract.Call(registrant, controllerMethod, contract.ReadOnly).(interop.Hash160)
	if len(controller) != interop.Hash160Len {
		panic(ErrNotSelfNorController)
	}
	if !runtime.CheckWitness(controller) {
		panic(ErrNotSelfNorController)
	}
}

// requireOwnListControl ensures registrant is registered and keeps its own
// filter lists rather than following a subscription.
func requireOwnListControl(ctx storage.Context, registrant interop.Hash160) {
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		panic(ErrNotRegistered + ": " + std.Base64Encode(registrant))
	}
	if !common.BytesEqual(registration, registrant) {
		panic(ErrCannotUpdateWhileSubscribed + ": " + std.Base64Encode(registration))
	}
}

// getRegistration returns the stored registration of registrant: the
// registrant itself when it keeps its own lists, its subscription target
// otherwise. Nil means registrant is not registered.
func getRegistration(ctx storage.Context, registrant interop.Hash160) interop.Hash160 {
	raw := storage.Get(ctx, registrationKey(registrant))
	if raw == nil {
		return nil
	}

	return raw.(interop.Hash160)
}

// effectiveListOwner resolves whose filter lists serve the given address:
// the address itself for registrants keeping their own lists, the
// subscription target for registrants following one. Unregistered
// addresses resolve to the zero address whose lists are permanently
// empty, so their retained entries stay invisible until re-registration.
func effectiveListOwner(ctx storage.Context, registrant interop.Hash160) interop.Hash160 {
	registration := getRegistration(ctx, registrant)
	if registration == nil {
		return zeroAddress
	}

	return registration
}

// setSubscription rewrites the registration of registrant together with
// the subscriber index entries of both affected targets. Every
// subscription link change of a live registration goes through here, which
// keeps the index exactly matching the registration records within any
// transaction.
func setSubscription(ctx storage.Context, registrant, oldTarget, newTarget interop.Hash160) {
	if oldTarget != nil {
		subscriberSet(oldTarget).Remove(ctx, registrant)
	}

	registration := registrant
	if newTarget != nil {
		subscriberSet(newTarget).Add(ctx, registrant)
		registration = newTarget
	}

	storage.Put(ctx, registrationKey(registrant), registration)
}

func updateOperator(ctx storage.Context, registrant, operator interop.Hash160, filtered bool) {
	ops := operatorSet(registrant)
	if filtered {
		if !ops.Add(ctx, operator) {
			panic(ErrAddressAlreadyFiltered + ": " + std.Base64Encode(operator))
		}
	} else {
		if !ops.Remove(ctx, operator) {
			panic(ErrAddressNotFiltered + ": " + std.Base64Encode(operator))
		}
	}

	runtime.Notify("OperatorUpdated", registrant, operator, filtered)
}

func updateCodeHash(ctx storage.Context, registrant interop.Hash160, codeHash interop.Hash256, filtered bool) {
	hashes := codeHashSet(registrant)
	if filtered {
		if !hashes.Add(ctx, codeHash) {
			panic(ErrCodeHashAlreadyFiltered + ": " + std.Base64Encode(codeHash))
		}
	} else {
		if !hashes.Remove(ctx, codeHash) {
			panic(ErrCodeHashNotFiltered + ": " + std.Base64Encode(codeHash))
		}
	}

	runtime.Notify("CodeHashUpdated", registrant, codeHash, filtered)
}

// copyEntries merges the own filter lists of src into the lists of dst,
// notifying about newly added entries only. Repeated copying is therefore
// observationally idempotent.
func copyEntries(ctx storage.Context, dst, src interop.Hash160) {
	dstOperators := operatorSet(dst)
	it := operatorSet(src).Iterate(ctx)
	for iterator.Next(it) {
		op := iterator.Value(it).(interop.Hash160)
		if dstOperators.Add(ctx, op) {
			runtime.Notify("OperatorUpdated", dst, op, true)
		}
	}

	dstCodeHashes := codeHashSet(dst)
	it = codeHashSet(src).Iterate(ctx)
	for iterator.Next(it) {
		h := iterator.Value(it).(interop.Hash256)
		if dstCodeHashes.Add(ctx, h) {
			runtime.Notify("CodeHashUpdated", dst, h, true)
		}
	}
}

func codeHashOf(addr interop.Hash160) interop.Hash256 {
	c := management.GetContract(addr)
	if c == nil {
		return zeroCodeHash
	}

	return crypto.Sha256(c.NEF)
}

func registrationKey(registrant interop.Hash160) []byte {
	return append([]byte{registrationPrefix}, registrant...)
}

func operatorSet(registrant interop.Hash160) common.Set {
	return common.NewSet(append([]byte{operatorPrefix}, registrant...))
}

func codeHashSet(registrant interop.Hash160) common.Set {
	return common.NewSet(append([]byte{codeHashPrefix}, registrant...))
}

func subscriberSet(target interop.Hash160) common.Set {
	return common.NewSet(append([]byte{subscriberPrefix}, target...))
}
