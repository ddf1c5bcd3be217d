package ws

import (
	"encoding/json"

	ucmatch "mentor-match/internal/usecase/match"
)

// MatchNotifier adapts the hub to the match usecase's Notifier interface.
type MatchNotifier struct {
	hub *Hub
}

func NewMatchNotifier(hub *Hub) *MatchNotifier {
	return &MatchNotifier{hub: hub}
}

func (n *MatchNotifier) NotifyUser(userID int64, event ucmatch.Event) {
	if n == nil || n.hub == nil || userID <= 0 {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		return
	}
	n.hub.SendToUser(userID, b)
}
