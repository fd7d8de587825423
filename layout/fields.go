// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
)

// Field - one entry of a record layout, in persisted order
type Field struct {
	Name     string
	Size     int  // budgeted bytes
	Variable bool // encoded length may be less than Size
}

// Layout - ordered field list of one record type
type Layout struct {
	Name   string
	Fields []Field
}

// the persisted field order of both records
var (
	TransferRequest = Layout{
		Name: "TransferRequest",
		Fields: []Field{
			{Name: "discriminator", Size: DiscriminatorSize},
			{Name: "from", Size: KeySize},
			{Name: "to", Size: KeySize},
			{Name: "uuid", Size: KeySize},
			{Name: "amount", Size: Uint64Size},
			{Name: "events", Size: NumTransactionEvents * TransactionEventSize},
			{Name: "topic", Size: TopicSize, Variable: true},
			{Name: "bump", Size: BumpSize},
		},
	}

	ContentCredential = Layout{
		Name: "ContentCredential",
		Fields: []Field{
			{Name: "discriminator", Size: DiscriminatorSize},
			{Name: "owner", Size: KeySize},
			{Name: "content", Size: EnumSize},
			{Name: "hash", Size: HashSize, Variable: true},
		},
	}
)

// Size - total budget of the layout
func (l Layout) Size() int {
	n := 0
	for _, f := range l.Fields {
		n += f.Size
	}
	return n
}

// Offset - byte position of a field in the encoded record
//
// only fields that are not preceded by a variable length field have a
// fixed position
func (l Layout) Offset(name string) (int, error) {
	offset := 0
	for _, f := range l.Fields {
		if f.Name == name {
			return offset, nil
		}
		if f.Variable {
			return 0, fmt.Errorf("%s.%s follows variable field %s", l.Name, name, f.Name)
		}
		offset += f.Size
	}
	return 0, fmt.Errorf("%s has no field %s", l.Name, name)
}
