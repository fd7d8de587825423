// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"math/bits"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/chain"
	"github.com/bitmark-inc/sharedledger/counter"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/storage"
)

// Program - an on-ledger program
//
// Process receives the accounts in instruction order; an account listed
// twice appears as the same pointer
type Program interface {
	Process(ctx *Context, accounts []*AccountInfo, data []byte) error
}

// Reader - read access to committed ledger state
type Reader interface {
	Account(key account.Key) (*AccountInfo, error)
	ProgramAccounts(programID account.Key, filters ...Filter) ([]*AccountInfo, error)
}

// Filter - match Bytes at Offset of an account's data
type Filter struct {
	Offset int
	Bytes  []byte
}

// Receipt - outcome of a committed transaction
type Receipt struct {
	Slot      uint64            `json:"slot"`
	Signature account.Signature `json:"signature"`
	Accounts  []account.Key     `json:"accounts"` // accounts written
}

// MaximumSlotAge - slots a transaction's RecentSlot may trail the ledger
const MaximumSlotAge = 4096

// key of the last committed slot in the state pool
var slotKey = []byte("slot")

// prefix of processed transaction digests in the state pool
var seenPrefix = []byte("tx:")

// state pool key recording that this message has been committed
func seenKey(in *instruction.Instruction) []byte {
	digest := sha3.Sum256(in.Message())
	return append(append([]byte{}, seenPrefix...), digest[:]...)
}

// Ledger - executes transactions against the account pool
type Ledger struct {
	sync.RWMutex
	log      *logger.L
	chain    string
	rent     Rent
	programs map[account.Key]Program
	accounts *storage.PoolHandle
	state    *storage.PoolHandle
	locks    *lockTable
	slot     counter.Counter

	// serialises the slot high-water mark update with the batch write
	commit sync.Mutex
}

// New - ledger over the opened storage pools
func New(chainName string, rent Rent) (*Ledger, error) {
	if !chain.Valid(chainName) {
		return nil, fault.ErrInvalidChain
	}
	if err := rent.Validate(); nil != err {
		return nil, err
	}
	if nil == storage.Pool.Accounts {
		return nil, fault.ErrNotInitialised
	}

	l := &Ledger{
		log:      logger.New("ledger"),
		chain:    chainName,
		rent:     rent,
		programs: make(map[account.Key]Program),
		accounts: storage.Pool.Accounts,
		state:    storage.Pool.State,
		locks:    newLockTable(),
	}
	if n, found := l.state.GetN(slotKey); found {
		l.slot.Set(n)
	}
	l.log.Infof("chain: %s  slot: %d", chainName, l.slot.Uint64())
	return l, nil
}

// Register - install a program under its id
func (l *Ledger) Register(programID account.Key, program Program) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.programs[programID]; ok {
		return fault.ErrAlreadyInitialised
	}
	l.programs[programID] = program
	l.log.Infof("registered program: %s", programID)
	return nil
}

// Chain - name of the chain this ledger serves
func (l *Ledger) Chain() string {
	return l.chain
}

// Rent - deposit schedule in force
func (l *Ledger) Rent() Rent {
	return l.rent
}

// Slot - last slot handed out
func (l *Ledger) Slot() uint64 {
	return l.slot.Uint64()
}

// Execute - run one signed transaction, applying all of its effects or none
func (l *Ledger) Execute(tx *instruction.Transaction) (*Receipt, error) {
	if err := tx.Verify(); nil != err {
		return nil, err
	}
	in := &tx.Instruction

	current := l.slot.Uint64()
	if in.RecentSlot > current || current-in.RecentSlot > MaximumSlotAge {
		return nil, fault.ErrRecentSlotOutOfRange
	}
	seen := seenKey(in)
	if l.state.Has(seen) {
		return nil, fault.ErrDuplicateTransaction
	}

	l.RLock()
	program, ok := l.programs[in.ProgramID]
	l.RUnlock()
	if !ok {
		return nil, fault.ErrUnknownProgram
	}

	// an account named more than once gets the union of its flags
	writable := make(map[account.Key]bool, len(in.Accounts))
	signer := make(map[account.Key]bool, len(in.Accounts))
	for _, meta := range in.Accounts {
		writable[meta.Key] = writable[meta.Key] || meta.IsWritable
		signer[meta.Key] = signer[meta.Key] || meta.IsSigner
	}

	release := l.locks.acquire(writable)
	defer release()

	slot := l.slot.Increment()

	loaded := make(map[account.Key]*AccountInfo, len(writable))
	before := make(map[account.Key]snapshot, len(writable))
	infos := make([]*AccountInfo, len(in.Accounts))
	for i, meta := range in.Accounts {
		a, ok := loaded[meta.Key]
		if !ok {
			var err error
			a, err = l.load(meta.Key)
			if nil != err {
				return nil, err
			}
			a.IsSigner = signer[meta.Key]
			a.IsWritable = writable[meta.Key]
			loaded[meta.Key] = a
			before[meta.Key] = snapshotOf(a)
		}
		infos[i] = a
	}

	ctx := newContext(in.ProgramID, slot, l.rent)
	err := program.Process(ctx, infos, in.Data)
	if nil != err {
		l.log.Debugf("slot: %d  program: %s  failed: %s", slot, in.ProgramID, err)
		return nil, err
	}

	changed, err := checkEffects(ctx, loaded, before)
	if nil != err {
		l.log.Warnf("slot: %d  program: %s  rejected: %s", slot, in.ProgramID, err)
		return nil, err
	}

	err = l.write(slot, loaded, changed, seen)
	if fault.ErrDuplicateTransaction == err {
		l.log.Warnf("slot: %d  program: %s  duplicate transaction", slot, in.ProgramID)
		return nil, err
	} else if nil != err {
		l.log.Errorf("slot: %d  commit error: %s", slot, err)
		return nil, err
	}

	l.log.Infof("slot: %d  program: %s  accounts written: %d", slot, in.ProgramID, len(changed))
	receipt := &Receipt{
		Slot:     slot,
		Accounts: changed,
	}
	if len(tx.Signatures) > 0 {
		receipt.Signature = tx.Signatures[0]
	}
	return receipt, nil
}

// Account - committed state of one account
func (l *Ledger) Account(key account.Key) (*AccountInfo, error) {
	buffer := l.accounts.Get(key[:])
	if nil == buffer {
		return nil, fault.ErrAccountNotFound
	}
	return unpackAccount(key, buffer)
}

// Balance - lamports held by an account, zero if it does not exist
func (l *Ledger) Balance(key account.Key) uint64 {
	a, err := l.Account(key)
	if nil != err {
		return 0
	}
	return a.Lamports
}

// ProgramAccounts - every account owned by programID whose data matches
// all filters
func (l *Ledger) ProgramAccounts(programID account.Key, filters ...Filter) ([]*AccountInfo, error) {
	results := make([]*AccountInfo, 0)
	err := l.accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		k, err := account.KeyFromBytes(key)
		if nil != err {
			return err
		}
		a, err := unpackAccount(k, value)
		if nil != err {
			return err
		}
		if a.Owner != programID {
			return nil
		}
		for _, f := range filters {
			if f.Offset < 0 || f.Offset+len(f.Bytes) > len(a.Data) {
				return nil
			}
			if !bytes.Equal(a.Data[f.Offset:f.Offset+len(f.Bytes)], f.Bytes) {
				return nil
			}
		}
		results = append(results, a)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return results, nil
}

// Airdrop - credit lamports from nothing, test chains only
func (l *Ledger) Airdrop(key account.Key, amount uint64) (uint64, error) {
	if !chain.AirdropAllowed(l.chain) {
		return 0, fault.ErrAirdropNotAllowed
	}

	release := l.locks.acquire(map[account.Key]bool{key: true})
	defer release()

	a, err := l.load(key)
	if nil != err {
		return 0, err
	}
	if a.Lamports+amount < a.Lamports {
		return 0, fault.ErrAmountOverflow
	}
	a.Lamports += amount

	slot := l.slot.Increment()
	err = l.write(slot, map[account.Key]*AccountInfo{key: a}, []account.Key{key}, nil)
	if nil != err {
		return 0, err
	}
	l.log.Infof("slot: %d  airdrop: %d to: %s", slot, amount, key)
	return a.Lamports, nil
}

// committed account, or an empty system account if none is stored
func (l *Ledger) load(key account.Key) (*AccountInfo, error) {
	buffer := l.accounts.Get(key[:])
	if nil == buffer {
		return &AccountInfo{Key: key, Owner: SystemProgramID}, nil
	}
	return unpackAccount(key, buffer)
}

// single batch: changed accounts, the transaction's seen marker and the
// slot high-water mark
//
// TODO: prune seen markers whose slot is older than MaximumSlotAge
func (l *Ledger) write(slot uint64, loaded map[account.Key]*AccountInfo, changed []account.Key, seen []byte) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, key := range changed {
		a := loaded[key]
		if a.IsEmpty() {
			trx.Delete(l.accounts, key[:])
		} else {
			trx.Put(l.accounts, key[:], packAccount(a))
		}
	}

	l.commit.Lock()
	defer l.commit.Unlock()

	if nil != seen {
		if _, found := trx.GetN(l.state, seen); found {
			trx.Abort()
			return fault.ErrDuplicateTransaction
		}
		trx.PutN(l.state, seen, slot)
	}
	if n, _ := trx.GetN(l.state, slotKey); slot > n {
		trx.PutN(l.state, slotKey, slot)
	}
	return trx.Commit()
}

// enforce the runtime rules, returning the accounts to write
func checkEffects(ctx *Context, loaded map[account.Key]*AccountInfo, before map[account.Key]snapshot) ([]account.Key, error) {
	changed := make([]account.Key, 0, len(loaded))

	var sumBefore, sumAfter, carryBefore, carryAfter uint64
	for key, a := range loaded {
		b := before[key]

		var c uint64
		sumBefore, c = bits.Add64(sumBefore, b.lamports, 0)
		carryBefore += c
		sumAfter, c = bits.Add64(sumAfter, a.Lamports, 0)
		carryAfter += c

		if !b.changed(a) {
			continue
		}
		if !a.IsWritable {
			return nil, fault.ErrReadOnlyAccountModified
		}

		owned := b.owner == ctx.programID
		if b.contentChanged(a) && !owned {
			if !ctx.created[key] || !b.isEmpty() {
				return nil, fault.ErrIllegalOwner
			}
		}

		// only system operations may take lamports from accounts the
		// program does not own
		if !owned {
			expected := b.lamports + ctx.credits[key] - ctx.debits[key]
			if a.Lamports < expected {
				return nil, fault.ErrIllegalOwner
			}
		}

		changed = append(changed, key)
	}

	if sumBefore != sumAfter || carryBefore != carryAfter {
		return nil, fault.ErrUnbalancedInstruction
	}
	sort.Slice(changed, func(i, j int) bool {
		return changed[i].Compare(changed[j]) < 0
	})
	return changed, nil
}
