package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ericzzh/mattermost-plugin-offboard/server/bot"
	"github.com/im7mortal/kmutex"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ericzzh/mattermost-plugin-offboard/server/app"

type DeletionService interface {
	// Plan returns the decisions a deletion of the user would take, without mutating anything.
	Plan(userId string) (*Plan, error)
	// DeleteUser removes the user. An unfinished earlier deletion of the same user is resumed.
	DeleteUser(userId string, opts Options) (*Result, error)
	// Resume continues an unfinished deletion with the options and plan it started with.
	Resume(userId string) (*Result, error)
	PendingIntents() ([]*DeletionIntent, error)
}

type deletionService struct {
	logger     bot.Logger
	stores     Stores
	blobs      BlobStore
	intents    IntentStore
	notifier   Notifier
	federation FederationRegistry
	locks      *kmutex.Kmutex
	tracer     trace.Tracer
	now        func() time.Time
}

func NewDeletionService(stores Stores, blobs BlobStore, intents IntentStore, notifier Notifier,
	federation FederationRegistry, logger bot.Logger) DeletionService {

	return &deletionService{
		logger:     logger,
		stores:     stores,
		blobs:      blobs,
		intents:    intents,
		notifier:   notifier,
		federation: federation,
		locks:      kmutex.New(),
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
	}
}

// deletionObject holds the state of one deletion run.
type deletionObject struct {
	*deletionService
	ctx    context.Context
	intent *DeletionIntent
	res    Result
}

type stepFunc func(do *deletionObject, stats *Stats) error

var stepFuncs = map[Step]stepFunc{
	StepTransferOwnership:   (*deletionObject).transferOwnership,
	StepEraseMessages:       (*deletionObject).eraseMessages,
	StepRemoveRooms:         (*deletionObject).removeRooms,
	StepRemoveSubscriptions: (*deletionObject).removeSubscriptions,
	StepRemoveDirectRooms:   (*deletionObject).removeDirectRooms,
	StepRemoveAvatar:        (*deletionObject).removeAvatar,
	StepDisableIntegrations: (*deletionObject).disableIntegrations,
	StepRemoveUser:          (*deletionObject).removeUser,
	StepNotify:              (*deletionObject).notify,
}

func (ds *deletionService) DeleteUser(userId string, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ds.locks.Lock(userId)
	defer ds.locks.Unlock(userId)

	intent, err := ds.intents.Get(userId)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get deletion intent of user %s", userId)
	}
	if intent != nil {
		if len(intent.Pending()) == 0 {
			ds.discardFinished(intent)
			return nil, fmt.Errorf("%w user:%v", ErrUserNotFound, userId)
		}
		ds.logger.Infof("Offboard: resuming deletion of user %s, pending steps: %v", userId, intent.Pending())
		return ds.run(intent, true)
	}

	plan, err := ds.plan(userId)
	if err != nil {
		return nil, err
	}

	now := model.GetMillisForTime(ds.now())
	intent = &DeletionIntent{
		UserId:    userId,
		Options:   opts,
		Plan:      plan,
		Completed: []Step{},
		StartedAt: now,
		UpdatedAt: now,
	}

	// Nothing is mutated before the intent is durable.
	if err := ds.intents.Save(intent); err != nil {
		return nil, errors.Wrapf(err, "failed to save deletion intent of user %s", userId)
	}

	return ds.run(intent, false)
}

func (ds *deletionService) Resume(userId string) (*Result, error) {
	ds.locks.Lock(userId)
	defer ds.locks.Unlock(userId)

	intent, err := ds.intents.Get(userId)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get deletion intent of user %s", userId)
	}
	if intent == nil {
		return nil, fmt.Errorf("%w user:%v", ErrNoDeletionIntent, userId)
	}
	if len(intent.Pending()) == 0 {
		ds.discardFinished(intent)
		return nil, fmt.Errorf("%w user:%v", ErrNoDeletionIntent, userId)
	}

	ds.logger.Infof("Offboard: resuming deletion of user %s, pending steps: %v", userId, intent.Pending())
	return ds.run(intent, true)
}

// discardFinished drops an intent left behind by a run that finished every step but could
// not delete it.
func (ds *deletionService) discardFinished(intent *DeletionIntent) {
	ds.logger.Infof("Offboard: deletion of user %s finished before, dropping its intent.", intent.UserId)
	if err := ds.intents.Delete(intent.UserId); err != nil {
		ds.logger.Warnf("Offboard: failed to delete the deletion intent of user %s. err:%v", intent.UserId, err)
	}
}

func (ds *deletionService) PendingIntents() ([]*DeletionIntent, error) {
	intents, err := ds.intents.List()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list deletion intents")
	}
	return intents, nil
}

func (ds *deletionService) run(intent *DeletionIntent, resumed bool) (*Result, error) {
	start := ds.now()
	ctx, span := ds.tracer.Start(context.Background(), "offboard.DeleteUser",
		trace.WithAttributes(
			attribute.String("user_id", intent.UserId),
			attribute.String("erasure_mode", string(intent.Options.Mode)),
			attribute.Bool("resumed", resumed),
		))
	defer span.End()

	do := &deletionObject{
		deletionService: ds,
		ctx:             ctx,
		intent:          intent,
		res: Result{
			UserId:    intent.UserId,
			Username:  intent.Plan.User.Username,
			Mode:      intent.Options.Mode,
			Transfers: intent.Plan.Transfers(),
			Removed:   intent.Plan.RoomsToRemove(),
			Resumed:   resumed,
		},
	}

	// The registry is refreshed whatever the outcome, once mutations may have happened.
	defer do.refreshFederation()

	ds.logger.Infof("Offboard: deleting user %s(%s). mode:%s transfers:%d removals:%d",
		intent.UserId, intent.Plan.User.Username, intent.Options.Mode, len(do.res.Transfers), len(do.res.Removed))

	for _, step := range deletionSteps {
		if intent.IsDone(step) {
			ds.logger.Debugf("Offboard: step %s of user %s was done before.", step, intent.UserId)
			continue
		}

		if err := do.runStep(step); err != nil {
			intent.LastError = err.Error()
			intent.UpdatedAt = model.GetMillisForTime(ds.now())
			if serr := ds.intents.Save(intent); serr != nil {
				ds.logger.Errorf("Offboard: failed to save deletion intent of user %s. err:%v", intent.UserId, serr)
			}

			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, errors.Wrapf(err, "failed to run step %s for user %s", step, intent.UserId)
		}

		intent.markDone(step)
		intent.LastError = ""
		intent.UpdatedAt = model.GetMillisForTime(ds.now())
		if err := ds.intents.Save(intent); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, errors.Wrapf(err, "failed to save deletion intent of user %s after step %s", intent.UserId, step)
		}
	}

	// The user is gone at this point. A stale intent is dropped by the next attempt.
	if err := ds.intents.Delete(intent.UserId); err != nil {
		ds.logger.Warnf("Offboard: failed to delete the deletion intent of user %s. err:%v", intent.UserId, err)
	}

	do.res.Stats = intent.Stats
	do.res.Elapsed = ds.now().Sub(start)

	ds.logger.Infof("Offboard: user %s deleted. stats:%+v", intent.UserId, do.res.Stats)
	return &do.res, nil
}

func (do *deletionObject) runStep(step Step) error {
	_, span := do.tracer.Start(do.ctx, "offboard."+string(step))
	defer span.End()

	// A failed step keeps the counts of the work it did.
	var stats Stats
	err := stepFuncs[step](do, &stats)
	do.intent.Stats.add(stats)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (do *deletionObject) user() *User {
	return do.intent.Plan.User
}

func (do *deletionObject) transferOwnership(stats *Stats) error {
	for _, rp := range do.intent.Plan.Rooms {
		if rp.NewOwnerId == "" {
			continue
		}

		if err := do.stores.Roles.GrantRole(rp.NewOwnerId, RoleOwner, rp.RoomId); err != nil {
			return errors.Wrapf(err, "failed to grant owner of room %s to user %s", rp.RoomId, rp.NewOwnerId)
		}

		do.logger.Debugf("Offboard: room %s ownership transferred to user %s.", rp.RoomId, rp.NewOwnerId)
		stats.OwnershipTransfers++
	}
	return nil
}

func (do *deletionObject) eraseMessages(stats *Stats) error {
	user := do.user()
	if !user.HasUsername() {
		return nil
	}

	switch do.intent.Options.Mode {
	case ErasureDelete:
		files, err := do.stores.Messages.GetFilesForUser(user.Id)
		if err != nil {
			return errors.Wrapf(err, "failed to get files of user %s", user.Id)
		}

		n, err := do.removeFiles(files)
		stats.FilesRemoved += n
		if err != nil {
			return err
		}

		removed, err := do.stores.Messages.DeleteMessagesForUser(user.Id)
		if err != nil {
			return errors.Wrapf(err, "failed to delete messages of user %s", user.Id)
		}
		stats.MessagesRemoved = removed
		do.logger.Debugf("Offboard: %d messages and %d files of user %s deleted.", removed, n, user.Id)

	case ErasureUnlink:
		unlinked, err := do.stores.Messages.UnlinkMessagesForUser(user.Id,
			do.intent.Options.SystemUserId, do.intent.Options.RemovedUserAlias)
		if err != nil {
			return errors.Wrapf(err, "failed to unlink messages of user %s", user.Id)
		}
		stats.MessagesUnlinked = unlinked
		do.logger.Debugf("Offboard: %d messages of user %s unlinked.", unlinked, user.Id)

	default:
		return fmt.Errorf("%w mode:%v", ErrInvalidErasureMode, do.intent.Options.Mode)
	}

	return nil
}

// removeFiles removes the blobs first and the file records after, so a failed blob removal
// can be retried from the records.
func (do *deletionObject) removeFiles(files []*FileRef) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	var removed int
	for _, f := range files {
		if err := do.blobs.RemoveUpload(f); err != nil {
			return removed, errors.Wrapf(err, "failed to remove file %s", f.Id)
		}
		removed++
	}

	if _, err := do.stores.Messages.DeleteFileInfos(fileIds(files)); err != nil {
		return removed, errors.Wrapf(err, "failed to delete file infos")
	}

	return removed, nil
}

func (do *deletionObject) removeRooms(stats *Stats) error {
	for _, rp := range do.intent.Plan.Rooms {
		if !rp.IsRemoved() {
			continue
		}

		if err := do.removeRoom(rp.RoomId, stats); err != nil {
			return err
		}

		do.logger.Debugf("Offboard: room %s removed. reason:%s", rp.RoomId, rp.Remove)
		stats.RoomsRemoved++
	}
	return nil
}

// removeRoom cascades a room removal: subscriptions, files, messages, then the room.
func (do *deletionObject) removeRoom(roomId string, stats *Stats) error {
	subs, err := do.stores.Subscriptions.DeleteSubscriptionsForRoom(roomId)
	if err != nil {
		return errors.Wrapf(err, "failed to delete subscriptions of room %s", roomId)
	}
	stats.RoomSubscriptions += subs

	files, err := do.stores.Messages.GetFilesForRoom(roomId)
	if err != nil {
		return errors.Wrapf(err, "failed to get files of room %s", roomId)
	}

	n, err := do.removeFiles(files)
	stats.FilesRemoved += n
	if err != nil {
		return err
	}

	msgs, err := do.stores.Messages.DeleteMessagesForRoom(roomId)
	if err != nil {
		return errors.Wrapf(err, "failed to delete messages of room %s", roomId)
	}
	stats.RoomMessages += msgs

	if _, err := do.stores.Rooms.DeleteRoom(roomId); err != nil {
		return errors.Wrapf(err, "failed to delete room %s", roomId)
	}

	return nil
}

func (do *deletionObject) removeSubscriptions(stats *Stats) error {
	n, err := do.stores.Subscriptions.DeleteSubscriptionsForUser(do.intent.UserId)
	if err != nil {
		return errors.Wrapf(err, "failed to delete subscriptions of user %s", do.intent.UserId)
	}
	stats.UserSubscriptions = n
	return nil
}

// removeDirectRooms cascades the direct rooms the plan did not see, the ones the user had
// left or was never subscribed to.
func (do *deletionObject) removeDirectRooms(stats *Stats) error {
	ids, err := do.stores.Rooms.GetDirectRoomIdsForUser(do.intent.UserId)
	if err != nil {
		return errors.Wrapf(err, "failed to get direct rooms of user %s", do.intent.UserId)
	}

	for _, roomId := range ids {
		if err := do.removeRoom(roomId, stats); err != nil {
			return err
		}
		stats.DirectRoomsRemoved++
	}
	return nil
}

func (do *deletionObject) removeAvatar(stats *Stats) error {
	user := do.user()
	if !user.HasAvatar() {
		return nil
	}

	if err := do.blobs.RemoveAvatar(user); err != nil {
		return errors.Wrapf(err, "failed to remove avatar of user %s", user.Id)
	}
	stats.AvatarRemoved = true
	return nil
}

func (do *deletionObject) disableIntegrations(stats *Stats) error {
	n, err := do.stores.Integrations.DisableIntegrationsForUser(do.intent.UserId)
	if err != nil {
		return errors.Wrapf(err, "failed to disable integrations of user %s", do.intent.UserId)
	}
	stats.IntegrationsDisabled = n
	return nil
}

func (do *deletionObject) removeUser(_ *Stats) error {
	if err := do.stores.Users.DeleteUser(do.intent.UserId); err != nil {
		return errors.Wrapf(err, "failed to delete user %s", do.intent.UserId)
	}
	return nil
}

// notify runs after the user record is gone, so clients never see a deleted user that
// still exists.
func (do *deletionObject) notify(_ *Stats) error {
	do.notifier.NotifyUserDeleted(do.intent.UserId)
	return nil
}

func (do *deletionObject) refreshFederation() {
	if err := do.federation.Refresh(); err != nil {
		do.logger.Errorf("Offboard: failed to refresh federation servers. err:%v", err)
	}
}
