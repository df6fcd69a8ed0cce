package events

import (
	"encoding/json"
	"time"
)

// Event names carried in ChangeMessage and appended to the routing key.
const (
	EventExpenseCreated  = "expense.created"
	EventExpenseDeleted  = "expense.deleted"
	EventCategoryAdded   = "category.added"
	EventCategoryDeleted = "category.deleted"
	EventIncomeUpdated   = "income.updated"
)

// ChangeMessage is a lightweight notification that part of the expense
// document changed. Consumers interested in the full record are
// expected to fetch it; only the identifying fields travel here.
type ChangeMessage struct {
	Event     string    `json:"event"`
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(event string, id int64, name string) *ChangeMessage {
	return &ChangeMessage{
		Event:     event,
		ID:        id,
		Name:      name,
		Timestamp: time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
