// Copyright 2025 Poiesic Systems
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


package storage

import (
	"github.com/poiesic/carelog/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalTriageItem serializes a TriageItem to bytes.
func MarshalTriageItem(item *core.TriageItem) []byte {
	buf := make([]byte, core.TriageItemMUS.Size(*item))
	core.TriageItemMUS.Marshal(*item, buf)
	return buf
}

// UnmarshalTriageItem deserializes a TriageItem from bytes.
func UnmarshalTriageItem(data []byte) (*core.TriageItem, error) {
	item, _, err := core.TriageItemMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// MarshalClientDigest serializes a ClientDigest to bytes.
func MarshalClientDigest(digest *core.ClientDigest) []byte {
	buf := make([]byte, core.ClientDigestMUS.Size(*digest))
	core.ClientDigestMUS.Marshal(*digest, buf)
	return buf
}

// UnmarshalClientDigest deserializes a ClientDigest from bytes.
func UnmarshalClientDigest(data []byte) (*core.ClientDigest, error) {
	digest, _, err := core.ClientDigestMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &digest, nil
}
