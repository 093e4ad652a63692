// Package app deletes user accounts.
//
// A deletion is planned before anything is changed. The plan records, per room the user is
// subscribed to, whether ownership moves to another member or the room goes away with the
// user. The plan is saved as a deletion intent together with the run options, and every
// finished step is added to the intent, so an interrupted deletion continues where it stopped
// with the decisions it started with.
//
// Steps, in order:
//    transfer_ownership    sole owner rooms get the earliest joined active member as owner
//    erase_messages        messages are deleted with their files, or unlinked to the bot
//    remove_rooms          direct rooms, rooms without successor, rooms with no other member
//    remove_subscriptions  remaining memberships of the user
//    remove_direct_rooms   direct rooms the subscriptions did not reach
//    remove_avatar
//    disable_integrations  webhooks and slash commands the user created
//    remove_user
//    notify                clients are told after the record is gone
//
// Users still federated on rooms are rejected before planning finishes.
package app
