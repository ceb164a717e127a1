package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"caixa/internal/core"
)

const (
	EventMovementRecorded = "movement.recorded"
	EventDayFileSent      = "dayfile.sent"
)

// MovementRecordedMessage announces a line appended to a day file.
type MovementRecordedMessage struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Day         string          `json:"day"`
	Time        time.Time       `json:"time"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Path        string          `json:"path"`
}

// DayFileSentMessage announces that a day file was emailed.
type DayFileSentMessage struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Day       string    `json:"day"`
	Recipient string    `json:"recipient"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMovementRecordedMessage(m core.Movement, path string) *MovementRecordedMessage {
	return &MovementRecordedMessage{
		ID:          uuid.NewString(),
		Type:        EventMovementRecorded,
		Day:         m.Time.Format("2006-01-02"),
		Time:        m.Time,
		Amount:      m.Amount,
		Kind:        m.Kind.String(),
		Description: m.Description,
		Path:        path,
	}
}

func NewDayFileSentMessage(day time.Time, recipient, path string, size int64) *DayFileSentMessage {
	return &DayFileSentMessage{
		ID:        uuid.NewString(),
		Type:      EventDayFileSent,
		Day:       day.Format("2006-01-02"),
		Recipient: recipient,
		Path:      path,
		Size:      size,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *MovementRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ToJSON converts the message to JSON bytes
func (m *DayFileSentMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MovementRecordedMessageFromJSON creates a message from JSON bytes
func MovementRecordedMessageFromJSON(data []byte) (*MovementRecordedMessage, error) {
	var msg MovementRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
