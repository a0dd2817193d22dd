package opfilter

import (
	"errors"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Errors produced by [ContractReader.CheckOperator] for denied operators.
// The contract reports a denial with an exception, so over RPC the reason
// arrives as a FAULT with a text marker; CheckOperator maps the markers back
// to errors usable with [errors.Is].
var (
	// ErrAddressDenied means the operator address itself is on the
	// effective operator list of the checked registrant.
	ErrAddressDenied = errors.New("operator address is filtered")
	// ErrCodeDenied means the code hash of the contract deployed at the
	// operator address is on the effective code hash list of the checked
	// registrant.
	ErrCodeDenied = errors.New("operator code hash is filtered")
)

// CheckOperator calls isOperatorAllowed and classifies the outcome. It
// returns nil if the operator passes the registrant's effective filter
// lists, [ErrAddressDenied] or [ErrCodeDenied] if the registry denied the
// operator, and the error as is for anything else (transport or
// deserialization problems).
func (c *ContractReader) CheckOperator(registrant util.Uint160, operator util.Uint160) error {
	_, err := c.IsOperatorAllowed(registrant, operator)
	switch {
	case err == nil:
		return nil
	case strings.Contains(err.Error(), AddressFilteredError):
		return ErrAddressDenied
	case strings.Contains(err.Error(), CodeHashFilteredError):
		return ErrCodeDenied
	}
	return err
}
