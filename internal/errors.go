package internal

import "errors"

var (
	ErrEmptyRawTx       = errors.New("raw transaction is empty")
	ErrEmptySignature   = errors.New("issuer signature is empty")
	ErrSignatureInvalid = errors.New("issuer signature invalid")
	ErrPayoutMismatch   = errors.New("transaction does not pay the expected customer amount")

	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrRPCFailed            = errors.New("node rpc call failed")
)
