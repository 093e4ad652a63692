package app

// Step is one idempotent stage of a user deletion. Steps run in the order of deletionSteps and
// each finished step is recorded in the intent before the next one starts.
type Step string

const (
	StepTransferOwnership   Step = "transfer_ownership"
	StepEraseMessages       Step = "erase_messages"
	StepRemoveRooms         Step = "remove_rooms"
	StepRemoveSubscriptions Step = "remove_subscriptions"
	StepRemoveDirectRooms   Step = "remove_direct_rooms"
	StepRemoveAvatar        Step = "remove_avatar"
	StepDisableIntegrations Step = "disable_integrations"
	StepRemoveUser          Step = "remove_user"
	StepNotify              Step = "notify"
)

var deletionSteps = []Step{
	StepTransferOwnership,
	StepEraseMessages,
	StepRemoveRooms,
	StepRemoveSubscriptions,
	StepRemoveDirectRooms,
	StepRemoveAvatar,
	StepDisableIntegrations,
	StepRemoveUser,
	StepNotify,
}

// Steps returns the deletion steps in execution order.
func Steps() []Step {
	return append([]Step(nil), deletionSteps...)
}

// DeletionIntent is the durable record of a deletion in progress.
type DeletionIntent struct {
	UserId    string
	Options   Options
	Plan      *Plan
	Completed []Step
	Stats     Stats
	StartedAt int64
	UpdatedAt int64
	LastError string `json:",omitempty"`
}

func (di *DeletionIntent) IsDone(s Step) bool {
	for _, c := range di.Completed {
		if c == s {
			return true
		}
	}
	return false
}

func (di *DeletionIntent) markDone(s Step) {
	if !di.IsDone(s) {
		di.Completed = append(di.Completed, s)
	}
}

// Pending returns the steps not finished yet, in execution order.
func (di *DeletionIntent) Pending() []Step {
	pending := []Step{}
	for _, s := range deletionSteps {
		if !di.IsDone(s) {
			pending = append(pending, s)
		}
	}
	return pending
}

func (s *Stats) add(o Stats) {
	s.OwnershipTransfers += o.OwnershipTransfers
	s.MessagesRemoved += o.MessagesRemoved
	s.MessagesUnlinked += o.MessagesUnlinked
	s.FilesRemoved += o.FilesRemoved
	s.RoomsRemoved += o.RoomsRemoved
	s.RoomSubscriptions += o.RoomSubscriptions
	s.RoomMessages += o.RoomMessages
	s.UserSubscriptions += o.UserSubscriptions
	s.DirectRoomsRemoved += o.DirectRoomsRemoved
	s.AvatarRemoved = s.AvatarRemoved || o.AvatarRemoved
	s.IntegrationsDisabled += o.IntegrationsDisabled
}

// IntentKeyPrefix prefixes the key value store keys of deletion intents.
const IntentKeyPrefix = "deletion_intent_"

func IntentKey(userId string) string {
	return IntentKeyPrefix + userId
}
