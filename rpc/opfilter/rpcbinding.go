// Package opfilter contains RPC wrappers for Operator Filter contract.
package opfilter

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// RegistrationUpdatedEvent represents "RegistrationUpdated" event emitted by the contract.
type RegistrationUpdatedEvent struct {
	Registrant util.Uint160
	Registered bool
}

// OperatorUpdatedEvent represents "OperatorUpdated" event emitted by the contract.
type OperatorUpdatedEvent struct {
	Registrant util.Uint160
	Operator util.Uint160
	Filtered bool
}

// CodeHashUpdatedEvent represents "CodeHashUpdated" event emitted by the contract.
type CodeHashUpdatedEvent struct {
	Registrant util.Uint160
	CodeHash util.Uint256
	Filtered bool
}

// SubscriptionUpdatedEvent represents "SubscriptionUpdated" event emitted by the contract.
type SubscriptionUpdatedEvent struct {
	Registrant util.Uint160
	Subscription util.Uint160
	Subscribed bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CodeHashOf invokes `codeHashOf` method of contract.
func (c *ContractReader) CodeHashOf(addr util.Uint160) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "codeHashOf", addr))
}

// FilteredCodeHashAt invokes `filteredCodeHashAt` method of contract.
func (c *ContractReader) FilteredCodeHashAt(registrant util.Uint160, index *big.Int) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "filteredCodeHashAt", registrant, index))
}

// FilteredCodeHashes invokes `filteredCodeHashes` method of contract.
func (c *ContractReader) FilteredCodeHashes(registrant util.Uint160) ([]util.Uint256, error) {
	return unwrap.ArrayOfUint256(c.invoker.Call(c.hash, "filteredCodeHashes", registrant))
}

// FilteredOperatorAt invokes `filteredOperatorAt` method of contract.
func (c *ContractReader) FilteredOperatorAt(registrant util.Uint160, index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "filteredOperatorAt", registrant, index))
}

// FilteredOperators invokes `filteredOperators` method of contract.
func (c *ContractReader) FilteredOperators(registrant util.Uint160) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "filteredOperators", registrant))
}

// IsCodeHashFiltered invokes `isCodeHashFiltered` method of contract.
func (c *ContractReader) IsCodeHashFiltered(registrant util.Uint160, codeHash util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isCodeHashFiltered", registrant, codeHash))
}

// IsCodeHashOfFiltered invokes `isCodeHashOfFiltered` method of contract.
func (c *ContractReader) IsCodeHashOfFiltered(registrant util.Uint160, operatorWithCode util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isCodeHashOfFiltered", registrant, operatorWithCode))
}

// IsOperatorAllowed invokes `isOperatorAllowed` method of contract.
func (c *ContractReader) IsOperatorAllowed(registrant util.Uint160, operator util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isOperatorAllowed", registrant, operator))
}

// IsOperatorFiltered invokes `isOperatorFiltered` method of contract.
func (c *ContractReader) IsOperatorFiltered(registrant util.Uint160, operator util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isOperatorFiltered", registrant, operator))
}

// IsRegistered invokes `isRegistered` method of contract.
func (c *ContractReader) IsRegistered(addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isRegistered", addr))
}

// IterateFilteredCodeHashes invokes `iterateFilteredCodeHashes` method of contract.
func (c *ContractReader) IterateFilteredCodeHashes(registrant util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateFilteredCodeHashes", registrant))
}

// IterateFilteredCodeHashesExpanded is similar to IterateFilteredCodeHashes (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateFilteredCodeHashesExpanded(registrant util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateFilteredCodeHashes", _numOfIteratorItems, registrant))
}

// IterateFilteredOperators invokes `iterateFilteredOperators` method of contract.
func (c *ContractReader) IterateFilteredOperators(registrant util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateFilteredOperators", registrant))
}

// IterateFilteredOperatorsExpanded is similar to IterateFilteredOperators (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateFilteredOperatorsExpanded(registrant util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateFilteredOperators", _numOfIteratorItems, registrant))
}

// IterateSubscribers invokes `iterateSubscribers` method of contract.
func (c *ContractReader) IterateSubscribers(registrant util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateSubscribers", registrant))
}

// IterateSubscribersExpanded is similar to IterateSubscribers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateSubscribersExpanded(registrant util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateSubscribers", _numOfIteratorItems, registrant))
}

// SubscriberAt invokes `subscriberAt` method of contract.
func (c *ContractReader) SubscriberAt(registrant util.Uint160, index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "subscriberAt", registrant, index))
}

// Subscribers invokes `subscribers` method of contract.
func (c *ContractReader) Subscribers(registrant util.Uint160) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "subscribers", registrant))
}

// SubscriptionOf invokes `subscriptionOf` method of contract.
func (c *ContractReader) SubscriptionOf(registrant util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "subscriptionOf", registrant))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CopyEntriesOf creates a transaction invoking `copyEntriesOf` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CopyEntriesOf(registrant util.Uint160, registrantToCopy util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "copyEntriesOf", registrant, registrantToCopy)
}

// CopyEntriesOfTransaction creates a transaction invoking `copyEntriesOf` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CopyEntriesOfTransaction(registrant util.Uint160, registrantToCopy util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "copyEntriesOf", registrant, registrantToCopy)
}

// CopyEntriesOfUnsigned creates a transaction invoking `copyEntriesOf` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CopyEntriesOfUnsigned(registrant util.Uint160, registrantToCopy util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "copyEntriesOf", nil, registrant, registrantToCopy)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(registrant util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", registrant)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(registrant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", registrant)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(registrant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, registrant)
}

// RegisterAndCopyEntries creates a transaction invoking `registerAndCopyEntries` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterAndCopyEntries(registrant util.Uint160, registrantToCopy util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerAndCopyEntries", registrant, registrantToCopy)
}

// RegisterAndCopyEntriesTransaction creates a transaction invoking `registerAndCopyEntries` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterAndCopyEntriesTransaction(registrant util.Uint160, registrantToCopy util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerAndCopyEntries", registrant, registrantToCopy)
}

// RegisterAndCopyEntriesUnsigned creates a transaction invoking `registerAndCopyEntries` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterAndCopyEntriesUnsigned(registrant util.Uint160, registrantToCopy util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerAndCopyEntries", nil, registrant, registrantToCopy)
}

// RegisterAndSubscribe creates a transaction invoking `registerAndSubscribe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterAndSubscribe(registrant util.Uint160, subscription util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerAndSubscribe", registrant, subscription)
}

// RegisterAndSubscribeTransaction creates a transaction invoking `registerAndSubscribe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterAndSubscribeTransaction(registrant util.Uint160, subscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerAndSubscribe", registrant, subscription)
}

// RegisterAndSubscribeUnsigned creates a transaction invoking `registerAndSubscribe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterAndSubscribeUnsigned(registrant util.Uint160, subscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerAndSubscribe", nil, registrant, subscription)
}

// Subscribe creates a transaction invoking `subscribe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Subscribe(registrant util.Uint160, newSubscription util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "subscribe", registrant, newSubscription)
}

// SubscribeTransaction creates a transaction invoking `subscribe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubscribeTransaction(registrant util.Uint160, newSubscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "subscribe", registrant, newSubscription)
}

// SubscribeUnsigned creates a transaction invoking `subscribe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubscribeUnsigned(registrant util.Uint160, newSubscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "subscribe", nil, registrant, newSubscription)
}

// Unregister creates a transaction invoking `unregister` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unregister(registrant util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unregister", registrant)
}

// UnregisterTransaction creates a transaction invoking `unregister` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnregisterTransaction(registrant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unregister", registrant)
}

// UnregisterUnsigned creates a transaction invoking `unregister` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnregisterUnsigned(registrant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unregister", nil, registrant)
}

// Unsubscribe creates a transaction invoking `unsubscribe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unsubscribe(registrant util.Uint160, copyExistingEntries bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unsubscribe", registrant, copyExistingEntries)
}

// UnsubscribeTransaction creates a transaction invoking `unsubscribe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnsubscribeTransaction(registrant util.Uint160, copyExistingEntries bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unsubscribe", registrant, copyExistingEntries)
}

// UnsubscribeUnsigned creates a transaction invoking `unsubscribe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnsubscribeUnsigned(registrant util.Uint160, copyExistingEntries bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unsubscribe", nil, registrant, copyExistingEntries)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// UpdateCodeHash creates a transaction invoking `updateCodeHash` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateCodeHash(registrant util.Uint160, codeHash util.Uint256, filtered bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateCodeHash", registrant, codeHash, filtered)
}

// UpdateCodeHashTransaction creates a transaction invoking `updateCodeHash` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateCodeHashTransaction(registrant util.Uint160, codeHash util.Uint256, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateCodeHash", registrant, codeHash, filtered)
}

// UpdateCodeHashUnsigned creates a transaction invoking `updateCodeHash` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateCodeHashUnsigned(registrant util.Uint160, codeHash util.Uint256, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateCodeHash", nil, registrant, codeHash, filtered)
}

// UpdateCodeHashes creates a transaction invoking `updateCodeHashes` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateCodeHashes(registrant util.Uint160, codeHashes []util.Uint256, filtered bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateCodeHashes", registrant, codeHashes, filtered)
}

// UpdateCodeHashesTransaction creates a transaction invoking `updateCodeHashes` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateCodeHashesTransaction(registrant util.Uint160, codeHashes []util.Uint256, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateCodeHashes", registrant, codeHashes, filtered)
}

// UpdateCodeHashesUnsigned creates a transaction invoking `updateCodeHashes` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateCodeHashesUnsigned(registrant util.Uint160, codeHashes []util.Uint256, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateCodeHashes", nil, registrant, codeHashes, filtered)
}

// UpdateOperator creates a transaction invoking `updateOperator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateOperator(registrant util.Uint160, operator util.Uint160, filtered bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateOperator", registrant, operator, filtered)
}

// UpdateOperatorTransaction creates a transaction invoking `updateOperator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateOperatorTransaction(registrant util.Uint160, operator util.Uint160, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateOperator", registrant, operator, filtered)
}

// UpdateOperatorUnsigned creates a transaction invoking `updateOperator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateOperatorUnsigned(registrant util.Uint160, operator util.Uint160, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateOperator", nil, registrant, operator, filtered)
}

// UpdateOperators creates a transaction invoking `updateOperators` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateOperators(registrant util.Uint160, operators []util.Uint160, filtered bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateOperators", registrant, operators, filtered)
}

// UpdateOperatorsTransaction creates a transaction invoking `updateOperators` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateOperatorsTransaction(registrant util.Uint160, operators []util.Uint160, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateOperators", registrant, operators, filtered)
}

// UpdateOperatorsUnsigned creates a transaction invoking `updateOperators` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateOperatorsUnsigned(registrant util.Uint160, operators []util.Uint160, filtered bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateOperators", nil, registrant, operators, filtered)
}

// RegistrationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "RegistrationUpdated" name from the provided [result.ApplicationLog].
func RegistrationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RegistrationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RegistrationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RegistrationUpdated" {
				continue
			}
			event := new(RegistrationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RegistrationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RegistrationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *RegistrationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Registrant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Registrant: %w", err)
	}

	index++
	e.Registered, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Registered: %w", err)
	}

	return nil
}

// OperatorUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "OperatorUpdated" name from the provided [result.ApplicationLog].
func OperatorUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OperatorUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OperatorUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OperatorUpdated" {
				continue
			}
			event := new(OperatorUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OperatorUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OperatorUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *OperatorUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Registrant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Registrant: %w", err)
	}

	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Filtered, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Filtered: %w", err)
	}

	return nil
}

// CodeHashUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "CodeHashUpdated" name from the provided [result.ApplicationLog].
func CodeHashUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CodeHashUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CodeHashUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CodeHashUpdated" {
				continue
			}
			event := new(CodeHashUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CodeHashUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CodeHashUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *CodeHashUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Registrant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Registrant: %w", err)
	}

	index++
	e.CodeHash, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CodeHash: %w", err)
	}

	index++
	e.Filtered, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Filtered: %w", err)
	}

	return nil
}

// SubscriptionUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubscriptionUpdated" name from the provided [result.ApplicationLog].
func SubscriptionUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubscriptionUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubscriptionUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubscriptionUpdated" {
				continue
			}
			event := new(SubscriptionUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubscriptionUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubscriptionUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *SubscriptionUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Registrant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Registrant: %w", err)
	}

	index++
	e.Subscription, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Subscribed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Subscribed: %w", err)
	}

	return nil
}
