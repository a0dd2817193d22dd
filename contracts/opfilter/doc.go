/*
Package opfilter implements Operator Filter contract, a registry of
per-address deny lists consulted before token transfers.

Any address can register and maintain two filter lists: a list of operator
addresses and a list of contract code hashes (SHA-256 of the executable)
that must not be allowed to act on its tokens. Instead of maintaining own
lists, a registrant can subscribe to another registrant and follow its
lists; subscription links are one level deep, a registrant followed by
others cannot subscribe itself. Token contracts call IsOperatorAllowed to
check an operator against the effective lists of a registrant: the call
fails for filtered operators and returns true otherwise, including for
registrants unknown to the registry.

Registry entries are managed by the registrant itself, by the contract
deployed at the registrant address or by the controller of that contract,
that is, the address returned by its parameterless controller method. The
controller is queried with read-only flags, so the queried contract can
not change registry state during the check.

# Contract notifications

RegistrationUpdated notification. This notification is produced when an
address is added to or removed from the registry.

	RegistrationUpdated:
	  - name: registrant
	    type: Hash160
	  - name: registered
	    type: Boolean

OperatorUpdated notification. This notification is produced when an
operator is added to or removed from the operator list of a registrant,
including entries added by list copying.

	OperatorUpdated:
	  - name: registrant
	    type: Hash160
	  - name: operator
	    type: Hash160
	  - name: filtered
	    type: Boolean

CodeHashUpdated notification. This notification is produced when a code
hash is added to or removed from the code hash list of a registrant,
including entries added by list copying.

	CodeHashUpdated:
	  - name: registrant
	    type: Hash160
	  - name: codeHash
	    type: Hash256
	  - name: filtered
	    type: Boolean

SubscriptionUpdated notification. This notification is produced when a
registrant starts or stops following the lists of another registrant.
Replacing a subscription produces two notifications, one for the dropped
target and one for the new target.

	SubscriptionUpdated:
	  - name: registrant
	    type: Hash160
	  - name: subscription
	    type: Hash160
	  - name: subscribed
	    type: Boolean
*/
package opfilter

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'r<20-byte-registrant>' -> interop.Hash160
   registration record: the registrant address itself for registrants
   keeping own lists, the subscription target for subscribed ones; the
   key is present for registered addresses only
 - 'o<20-byte-registrant><20-byte-operator>' -> 1
   operator list membership of fixed registrant
 - 'h<20-byte-registrant><32-byte-code-hash>' -> 1
   code hash list membership of fixed registrant
 - 's<20-byte-target><20-byte-subscriber>' -> 1
   subscriber index: all registrants following the lists of fixed target

# Filter lists
Operator and code hash entries are kept under the address that owns them
and survive both unregistration and subscription, although they have no
effect until the owner is registered and subscription-free again.
*/
