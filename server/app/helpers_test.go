package app_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	mock_app "github.com/ericzzh/mattermost-plugin-offboard/server/app/mocks"
	gomock "github.com/golang/mock/gomock"
)

type testLogger struct {
	t *testing.T
}

func (l testLogger) Debugf(format string, args ...interface{}) { l.t.Logf("DEBUG "+format, args...) }
func (l testLogger) Errorf(format string, args ...interface{}) { l.t.Logf("ERROR "+format, args...) }
func (l testLogger) Warnf(format string, args ...interface{})  { l.t.Logf("WARN "+format, args...) }
func (l testLogger) Infof(format string, args ...interface{})  { l.t.Logf("INFO "+format, args...) }

// memIntentStore keeps intents in memory and remembers every save.
type memIntentStore struct {
	mu         sync.Mutex
	intents    map[string]*app.DeletionIntent
	saves      int
	failDelete bool
}

func newMemIntentStore() *memIntentStore {
	return &memIntentStore{intents: map[string]*app.DeletionIntent{}}
}

func (s *memIntentStore) Save(intent *app.DeletionIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intents[intent.UserId] = intent
	s.saves++
	return nil
}

func (s *memIntentStore) Get(userId string) (*app.DeletionIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intents[userId], nil
}

func (s *memIntentStore) Delete(userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errors.New("kv unavailable")
	}
	delete(s.intents, userId)
	return nil
}

func (s *memIntentStore) List() ([]*app.DeletionIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*app.DeletionIntent{}
	for _, i := range s.intents {
		out = append(out, i)
	}
	return out, nil
}

type harness struct {
	users        *mock_app.MockUserStore
	subs         *mock_app.MockSubscriptionStore
	roles        *mock_app.MockRoleStore
	rooms        *mock_app.MockRoomStore
	messages     *mock_app.MockMessageStore
	integrations *mock_app.MockIntegrationStore
	blobs        *mock_app.MockBlobStore
	notifier     *mock_app.MockNotifier
	federation   *mock_app.MockFederationRegistry
	intents      *memIntentStore
	service      app.DeletionService
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)

	h := &harness{
		users:        mock_app.NewMockUserStore(ctrl),
		subs:         mock_app.NewMockSubscriptionStore(ctrl),
		roles:        mock_app.NewMockRoleStore(ctrl),
		rooms:        mock_app.NewMockRoomStore(ctrl),
		messages:     mock_app.NewMockMessageStore(ctrl),
		integrations: mock_app.NewMockIntegrationStore(ctrl),
		blobs:        mock_app.NewMockBlobStore(ctrl),
		notifier:     mock_app.NewMockNotifier(ctrl),
		federation:   mock_app.NewMockFederationRegistry(ctrl),
		intents:      newMemIntentStore(),
	}

	h.service = app.NewDeletionService(app.Stores{
		Users:         h.users,
		Subscriptions: h.subs,
		Roles:         h.roles,
		Rooms:         h.rooms,
		Messages:      h.messages,
		Integrations:  h.integrations,
	}, h.blobs, h.intents, h.notifier, h.federation, testLogger{t})

	return h
}

// expectUserCleanup expects the user level steps that run after the room cascade.
func (h *harness) expectUserCleanup(userId string) {
	gomock.InOrder(
		h.subs.EXPECT().DeleteSubscriptionsForUser(userId).Return(int64(1), nil),
		h.rooms.EXPECT().GetDirectRoomIdsForUser(userId).Return([]string{}, nil),
		h.integrations.EXPECT().DisableIntegrationsForUser(userId).Return(int64(0), nil),
		h.users.EXPECT().DeleteUser(userId).Return(nil),
		h.notifier.EXPECT().NotifyUserDeleted(userId),
		h.federation.EXPECT().Refresh().Return(nil),
	)
}

var deleteOpts = app.Options{Mode: app.ErasureDelete}

var unlinkOpts = app.Options{
	Mode:             app.ErasureUnlink,
	SystemUserId:     "bot_id",
	RemovedUserAlias: "Removed User",
}
