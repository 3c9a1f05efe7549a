//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package lcd

import (
	"github.com/gogo/protobuf/proto"
)

const (
	wireVarint = 0
	wireBytes  = 2

	typeMsgExecuteContract = "/cosmwasm.wasm.v1.MsgExecuteContract"
	typeSecp256k1PubKey    = "/cosmos.crypto.secp256k1.PubKey"

	signModeDirect = 1
)

// message is a minimal protobuf writer for the handful of Cosmos SDK types a
// transaction needs. Fields must be written in field number order.
type message struct {
	buf *proto.Buffer
}

func newMessage() *message {
	return &message{buf: proto.NewBuffer(nil)}
}

func (m *message) key(field int, wire int) {
	_ = m.buf.EncodeVarint(uint64(field<<3 | wire))
}

// bytes writes a length-delimited field. Empty values are omitted.
func (m *message) bytes(field int, v []byte) *message {
	if len(v) == 0 {
		return m
	}
	return m.repeated(field, v)
}

// repeated writes a length-delimited field even when empty, as needed for
// elements of repeated fields.
func (m *message) repeated(field int, v []byte) *message {
	m.key(field, wireBytes)
	_ = m.buf.EncodeRawBytes(v)
	return m
}

func (m *message) str(field int, v string) *message {
	return m.bytes(field, []byte(v))
}

func (m *message) varint(field int, v uint64) *message {
	if v == 0 {
		return m
	}
	m.key(field, wireVarint)
	_ = m.buf.EncodeVarint(v)
	return m
}

func (m *message) msg(field int, sub *message) *message {
	return m.repeated(field, sub.encode())
}

func (m *message) encode() []byte {
	return m.buf.Bytes()
}

func anyMessage(typeURL string, value []byte) *message {
	return newMessage().str(1, typeURL).bytes(2, value)
}
