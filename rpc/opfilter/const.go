package opfilter

import (
	"github.com/nspcc-dev/opfilter-contract/contracts/opfilter/opfilterconst"
)

const (
	// AddressFilteredError prefixes the exception isOperatorAllowed throws
	// for operators present on the effective operator list.
	AddressFilteredError = opfilterconst.ErrAddressFiltered
	// CodeHashFilteredError prefixes the exception isOperatorAllowed throws
	// for operators whose contract code hash is present on the effective
	// code hash list.
	CodeHashFilteredError = opfilterconst.ErrCodeHashFiltered
)
