package models

// GameAction captures one state change applied to a game, in order.
type GameAction struct {
	Index      int                    `json:"index"`
	ActionType string                 `json:"action_type"`
	Payload    map[string]interface{} `json:"payload"`
	Timestamp  int64                  `json:"timestamp"` // unix millis
}
