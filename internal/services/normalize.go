package services

import "sessionizemcp/internal/domain"

// flattenSessionGroups flattens the grouped Sessions view into one session
// list, preserving group order and in-group order. Nil groups, nil session
// lists, and nil sessions are dropped. Sessionize interleaves nulls with
// valid entries, so every level is checked.
func flattenSessionGroups(groups []*domain.SessionGroup) []*domain.Session {
	var sessions []*domain.Session
	for _, group := range groups {
		if group == nil || group.Sessions == nil {
			continue
		}
		for _, session := range group.Sessions {
			if session == nil {
				continue
			}
			sessions = append(sessions, session)
		}
	}
	return sessions
}
