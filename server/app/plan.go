package app

import (
	"fmt"

	"github.com/pkg/errors"
)

func (ds *deletionService) Plan(userId string) (*Plan, error) {
	return ds.plan(userId)
}

// plan loads the user, checks the preconditions, and classifies every room the user is
// subscribed to. It only reads.
func (ds *deletionService) plan(userId string) (*Plan, error) {
	ds.logger.Debugf("Offboard: planning deletion of user %s.", userId)

	user, err := ds.stores.Users.GetUser(userId)
	if err != nil {
		return nil, err
	}

	if user.IsFederated() {
		n, err := ds.stores.Subscriptions.CountSubscriptionsForUser(userId)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count subscriptions of user %s", userId)
		}
		if n > 0 {
			return nil, fmt.Errorf("%w user:%v subscriptions:%d", ErrFederationConstraintViolation, userId, n)
		}
	}

	plan := &Plan{User: user, Rooms: []*RoomPlan{}}

	if !user.HasUsername() {
		ds.logger.Debugf("Offboard: user %s has no username, skipping rooms.", userId)
		return plan, nil
	}

	subs, err := ds.stores.Subscriptions.GetSubscriptionsForUser(userId)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subscriptions of user %s", userId)
	}

	for _, sub := range subs {
		rp, err := ds.planRoom(user, sub)
		if err != nil {
			return nil, err
		}
		plan.Rooms = append(plan.Rooms, rp)
	}

	ds.logger.Debugf("Offboard: planned user %s. rooms:%d transfers:%d removals:%d",
		userId, len(plan.Rooms), len(plan.Transfers()), len(plan.RoomsToRemove()))

	return plan, nil
}

func (ds *deletionService) planRoom(user *User, sub *Subscription) (*RoomPlan, error) {
	rp := &RoomPlan{
		RoomId:      sub.RoomId,
		RoomType:    sub.RoomType,
		Subscribers: SubscribersUnknown,
	}

	if rp.RoomType != RoomTypeDirect {
		if err := ds.planOwnership(user, rp); err != nil {
			return nil, err
		}
	}

	if rp.Subscribers == SubscribersUnknown && rp.RoomType == RoomTypeOther {
		n, err := ds.stores.Subscriptions.CountSubscriptionsForRoom(rp.RoomId)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count subscribers of room %s", rp.RoomId)
		}
		rp.Subscribers = n
	}

	if rp.Remove == RemovalNone {
		switch {
		case rp.RoomType == RoomTypeDirect:
			rp.Remove = RemovalDirect
		case rp.RoomType == RoomTypeOther && rp.Subscribers <= 1:
			rp.Remove = RemovalSoleMember
		}
	}

	return rp, nil
}

// planOwnership looks for a successor when the user is the only owner of the room.
func (ds *deletionService) planOwnership(user *User, rp *RoomPlan) error {
	isOwner, err := ds.stores.Roles.HasRole(user.Id, RoleOwner, rp.RoomId)
	if err != nil {
		return errors.Wrapf(err, "failed to check owner role of user %s in room %s", user.Id, rp.RoomId)
	}
	if !isOwner {
		return nil
	}

	owners, err := ds.stores.Roles.CountRoleHolders(RoleOwner, rp.RoomId)
	if err != nil {
		return errors.Wrapf(err, "failed to count owners of room %s", rp.RoomId)
	}
	if owners != 1 {
		return nil
	}

	members, err := ds.stores.Subscriptions.GetSubscriptionsForRoom(rp.RoomId)
	if err != nil {
		return errors.Wrapf(err, "failed to get subscribers of room %s", rp.RoomId)
	}
	rp.Subscribers = len(members)

	candidates := otherMemberIds(members, user.Id)
	active := map[string]bool{}
	if len(candidates) > 0 {
		if active, err = ds.stores.Users.GetActiveUserIds(candidates); err != nil {
			return errors.Wrapf(err, "failed to get active subscribers of room %s", rp.RoomId)
		}
	}

	if successor, ok := SelectSuccessor(members, user.Id, active); ok {
		rp.NewOwnerId = successor
		return nil
	}

	rp.Remove = RemovalNoSuccessor
	return nil
}
