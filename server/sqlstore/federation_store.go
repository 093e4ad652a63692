package sqlstore

import (
	"sort"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

// FederationRegistry caches the remote servers that still have users on this server.
type FederationRegistry struct {
	store *SQLStore

	mu      sync.RWMutex
	servers []string
}

func NewFederationRegistry(store *SQLStore) *FederationRegistry {
	return &FederationRegistry{store: store, servers: []string{}}
}

// Refresh recomputes the server list from the remaining users.
func (r *FederationRegistry) Refresh() error {
	query := r.store.builder.
		Select("DISTINCT RemoteId").
		From("Users").
		Where(sq.And{sq.NotEq{"RemoteId": nil}, sq.NotEq{"RemoteId": ""}})

	servers := []string{}
	if err := r.store.selectBuilder(r.store.db, &servers, query); err != nil {
		return errors.Wrap(err, "failed to get federated servers")
	}
	sort.Strings(servers)

	r.mu.Lock()
	r.servers = servers
	r.mu.Unlock()

	r.store.log.Debugf("Offboard: federated servers refreshed. servers:%d", len(servers))
	return nil
}

func (r *FederationRegistry) Servers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.servers...)
}
