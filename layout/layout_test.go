// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/layout"
)

func TestRecordSizes(t *testing.T) {
	// 8 + 3*32 + 8 + 2*(4+1) + (4+50*4) + 1
	assert.Equal(t, 327, layout.TransferRequestSize, "wrong transfer request size")
	// 8 + 32 + 1 + (4+64*4)
	assert.Equal(t, 301, layout.ContentCredentialSize, "wrong credential size")

	assert.Equal(t, layout.TransferRequestSize, layout.TransferRequest.Size(), "field list disagrees with constant")
	assert.Equal(t, layout.ContentCredentialSize, layout.ContentCredential.Size(), "field list disagrees with constant")
}

func TestTextSize(t *testing.T) {
	assert.Equal(t, 4, layout.MaxBytesPerScalar, "scalar multiplier")
	assert.Equal(t, layout.TopicSize, layout.TextSize(layout.MaxTopicScalars), "topic budget")
	assert.Equal(t, layout.HashSize, layout.TextSize(layout.MaxHashScalars), "hash budget")
	assert.Equal(t, 4, layout.TextSize(0), "empty text still has a prefix")
}

func TestOffsets(t *testing.T) {
	offsets := []struct {
		l      layout.Layout
		field  string
		offset int
	}{
		{layout.TransferRequest, "from", 8},
		{layout.TransferRequest, "to", 40},
		{layout.TransferRequest, "uuid", 72},
		{layout.TransferRequest, "amount", 104},
		{layout.TransferRequest, "events", 112},
		{layout.TransferRequest, "topic", 122},
		{layout.ContentCredential, "owner", 8},
		{layout.ContentCredential, "content", 40},
		{layout.ContentCredential, "hash", 41},
	}
	for i, item := range offsets {
		offset, err := item.l.Offset(item.field)
		assert.Nil(t, err, "%d: offset error", i)
		assert.Equal(t, item.offset, offset, "%d: %s.%s", i, item.l.Name, item.field)
	}
}

func TestOffsetAfterVariable(t *testing.T) {
	_, err := layout.TransferRequest.Offset("bump")
	assert.NotNil(t, err, "bump follows the topic and has no fixed offset")

	_, err = layout.ContentCredential.Offset("nothing")
	assert.NotNil(t, err, "unknown field")
}
