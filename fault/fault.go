// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse          = ExistsError("account already in use")
	ErrAccountDiscriminatorMismatch = RecordError("account discriminator mismatch")
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAccountNotWritable           = InvalidError("account is not writable")
	ErrAirdropNotAllowed            = InvalidError("airdrop is not allowed on this chain")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAlreadyNotified              = ExistsError("payer already notified")
	ErrAmountOverflow               = ProcessError("amount overflow")
	ErrCannotDecodeKey              = InvalidError("cannot decode key")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCloseIntoSelf                = InvalidError("cannot close an account into itself")
	ErrConnectionLimit              = ProcessError("connection limit reached")
	ErrContactNotFound              = NotFoundError("contact not found")
	ErrCredentialNotFound           = NotFoundError("credential not found")
	ErrDerivedAddressMismatch       = InvalidError("derived address mismatch")
	ErrDuplicateSignature           = InvalidError("duplicate signature")
	ErrDuplicateTransaction         = ExistsError("transaction already processed")
	ErrHashTooLong                  = InvalidError("the provided hash should be 64 characters long maximum")
	ErrIllegalOwner                 = InvalidError("account data modified by a program that does not own it")
	ErrInsufficientFunds            = ProcessError("insufficient funds")
	ErrInvalidAccountCount          = InvalidError("invalid account count")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidConfiguration         = InvalidError("configuration file must return a table")
	ErrInvalidContentType           = RecordError("invalid content type")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidEmail                 = InvalidError("invalid email")
	ErrInvalidEventType             = RecordError("invalid event type")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidInstructionData       = InvalidError("invalid instruction data")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidRent                  = InvalidError("rent schedule must charge a non-zero deposit")
	ErrInvalidSalt                  = InvalidError("invalid salt")
	ErrInvalidSeeds                 = InvalidError("seeds derive a point on the curve")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidSystemProgram         = InvalidError("invalid system program")
	ErrInvalidText                  = InvalidError("text is not valid UTF-8")
	ErrInvalidTopic                 = InvalidError("topic contains control characters")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMaxSeedLengthExceeded        = LengthError("seed length exceeded")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingSignature             = InvalidError("missing required signature")
	ErrNoViableBump                 = ProcessError("unable to find a viable bump")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotPending                   = ProcessError("transfer request is not pending")
	ErrNotificationInProgress       = ProcessError("notification in progress")
	ErrPayerMismatch                = InvalidError("payer does not match transfer request")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrReadOnlyAccountModified      = InvalidError("read-only account modified")
	ErrRecentSlotOutOfRange         = InvalidError("recent slot is too old or in the future")
	ErrRecordTooLarge               = LengthError("record too large for its layout")
	ErrRecordTruncated              = LengthError("record truncated")
	ErrRequesterMismatch            = InvalidError("requester does not match transfer request")
	ErrSignatureCount               = InvalidError("signature count does not match signers")
	ErrTooManySeeds                 = LengthError("too many seeds")
	ErrTopicTooLong                 = InvalidError("the provided topic should be 50 characters long maximum")
	ErrTransactionClosed            = ProcessError("transaction already closed")
	ErrTransferNotFound             = NotFoundError("transfer request not found")
	ErrUnbalancedInstruction        = ProcessError("sum of account balances changed")
	ErrUnknownInstruction           = InvalidError("unknown instruction")
	ErrUnknownProgram               = NotFoundError("unknown program")
	ErrWrongDataLength              = LengthError("wrong data length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
