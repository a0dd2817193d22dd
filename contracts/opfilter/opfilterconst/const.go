package opfilterconst

const (
	// ErrAddressFiltered is thrown by isOperatorAllowed for operators
	// present on the effective operator list. The message carries the
	// operator.
	ErrAddressFiltered = "AddressFiltered"
	// ErrCodeHashFiltered is thrown by isOperatorAllowed for operators
	// whose contract code hash is present on the effective code hash list.
	// The message carries the operator and the code hash.
	ErrCodeHashFiltered = "CodeHashFiltered"
)
