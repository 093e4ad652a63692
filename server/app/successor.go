package app

// SelectSuccessor picks the new owner of a room: the earliest joined member, other than the
// deleted user, whose account is active. members must be ordered by join time.
func SelectSuccessor(members []*Subscription, userId string, active map[string]bool) (string, bool) {
	for _, m := range members {
		if m.UserId == userId {
			continue
		}
		if active[m.UserId] {
			return m.UserId, true
		}
	}
	return "", false
}

func otherMemberIds(members []*Subscription, userId string) []string {
	ids := []string{}
	for _, m := range members {
		if m.UserId != userId {
			ids = append(ids, m.UserId)
		}
	}
	return ids
}
