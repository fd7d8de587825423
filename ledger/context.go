// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/derivation"
	"github.com/bitmark-inc/sharedledger/fault"
)

// Context - host services available to a program during one call
type Context struct {
	programID account.Key
	slot      uint64
	rent      Rent

	// accounts assigned by CreateAccount during this call
	created map[account.Key]bool

	// lamports moved by system operations during this call
	debits  map[account.Key]uint64
	credits map[account.Key]uint64
}

func newContext(programID account.Key, slot uint64, rent Rent) *Context {
	return &Context{
		programID: programID,
		slot:      slot,
		rent:      rent,
		created:   make(map[account.Key]bool),
		debits:    make(map[account.Key]uint64),
		credits:   make(map[account.Key]uint64),
	}
}

// ProgramID - the program being run
func (c *Context) ProgramID() account.Key {
	return c.programID
}

// Slot - coarse monotonic counter identifying this call
func (c *Context) Slot() uint64 {
	return c.slot
}

// Rent - the deposit schedule
func (c *Context) Rent() Rent {
	return c.rent
}

// CreateAccount - allocate space zero bytes in target, assign it to owner
// and fund its rent deposit from payer
//
// target must either sign the call or be the address derived from seeds
// under the calling program
func (c *Context) CreateAccount(payer *AccountInfo, target *AccountInfo, space int, owner account.Key, seeds ...[]byte) error {
	if !payer.IsSigner {
		return fault.ErrMissingSignature
	}
	if !payer.IsWritable || !target.IsWritable {
		return fault.ErrAccountNotWritable
	}
	if !target.IsEmpty() {
		return fault.ErrAccountAlreadyInUse
	}
	if !target.IsSigner {
		if 0 == len(seeds) {
			return fault.ErrMissingSignature
		}
		address, err := derivation.CreateAddress(seeds, c.programID)
		if nil != err {
			return err
		}
		if address != target.Key {
			return fault.ErrDerivedAddressMismatch
		}
	}

	deposit := c.rent.MinimumBalance(space)
	if err := c.move(payer, target, deposit); nil != err {
		return err
	}

	target.Data = make([]byte, space)
	target.Owner = owner
	c.created[target.Key] = true
	return nil
}

// Transfer - move amount from a signing account to another account
func (c *Context) Transfer(from *AccountInfo, to *AccountInfo, amount uint64) error {
	if !from.IsSigner {
		return fault.ErrMissingSignature
	}
	if !from.IsWritable || !to.IsWritable {
		return fault.ErrAccountNotWritable
	}
	return c.move(from, to, amount)
}

// Close - delete an account owned by the calling program and refund its
// balance to destination
func (c *Context) Close(target *AccountInfo, destination *AccountInfo) error {
	if target.Owner != c.programID {
		return fault.ErrIllegalOwner
	}
	if !target.IsWritable || !destination.IsWritable {
		return fault.ErrAccountNotWritable
	}
	if target.Key == destination.Key {
		return fault.ErrCloseIntoSelf
	}
	if err := c.move(target, destination, target.Lamports); nil != err {
		return err
	}

	target.Data = nil
	target.Owner = SystemProgramID
	return nil
}

func (c *Context) move(from *AccountInfo, to *AccountInfo, amount uint64) error {
	if from.Lamports < amount {
		return fault.ErrInsufficientFunds
	}
	if from.Key != to.Key && to.Lamports+amount < to.Lamports {
		return fault.ErrAmountOverflow
	}
	from.Lamports -= amount
	to.Lamports += amount
	c.debits[from.Key] += amount
	c.credits[to.Key] += amount
	return nil
}
