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

package store

import (
	"context"

	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

// CachedQuerier keeps cw2 contract metadata in an LRU cache. Smart queries
// always reach the backend, since stake and claims change with every block.
type CachedQuerier struct {
	backend recovery.Querier
	cache   *lru.Cache
}

func NewCachedQuerier(backend recovery.Querier, size int) (*CachedQuerier, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init cache")
	}
	store := &CachedQuerier{
		backend: backend,
		cache:   cache,
	}
	return store, nil
}

type cacheKey struct {
	chainID  string
	contract recovery.Address
}

func (c *CachedQuerier) SmartQuery(ctx context.Context, network *recovery.Network, contract recovery.Address, msg interface{}, out interface{}) error {
	return c.backend.SmartQuery(ctx, network, contract, msg, out)
}

func (c *CachedQuerier) ContractMetadata(ctx context.Context, network *recovery.Network, contract recovery.Address) (recovery.ContractMetadata, error) {
	if network == nil {
		return c.backend.ContractMetadata(ctx, network, contract)
	}
	key := cacheKey{chainID: network.ChainID, contract: contract}
	if meta, ok := c.getCache(key); ok {
		return meta, nil
	}

	meta, err := c.backend.ContractMetadata(ctx, network, contract)
	if err != nil {
		return recovery.ContractMetadata{}, err
	}
	_ = c.cache.Add(key, meta)
	return meta, nil
}

func (c *CachedQuerier) getCache(key cacheKey) (recovery.ContractMetadata, bool) {
	val, ok := c.cache.Get(key)
	if !ok {
		return recovery.ContractMetadata{}, false
	}
	meta, ok := val.(recovery.ContractMetadata)
	if !ok {
		return recovery.ContractMetadata{}, false
	}
	return meta, true
}
