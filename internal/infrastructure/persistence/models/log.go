package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/packetery/backend/internal/domain/packetlog"
)

// LogRecordModel is the GORM model for the packetery_log table
type LogRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Action     string    `gorm:"type:varchar(64);not null;index"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	ParamsJSON string    `gorm:"column:params;type:jsonb"`
	Error      string    `gorm:"column:error;type:text"`
	OrderID    *int64    `gorm:"column:order_id;index"`
	Date       time.Time `gorm:"not null;index"`
}

// TableName returns the table name for LogRecordModel
func (LogRecordModel) TableName() string {
	return "packetery_log"
}

// ToDomain converts LogRecordModel to domain Record
func (m *LogRecordModel) ToDomain() *packetlog.Record {
	r := &packetlog.Record{
		ID:      m.ID,
		Action:  packetlog.Action(m.Action),
		Status:  packetlog.Status(m.Status),
		Title:   m.Title,
		Params:  map[string]any{},
		Error:   m.Error,
		OrderID: m.OrderID,
		Date:    m.Date,
	}
	if m.ParamsJSON != "" {
		_ = json.Unmarshal([]byte(m.ParamsJSON), &r.Params)
	}
	return r
}

// FromDomain populates LogRecordModel from domain Record
func (m *LogRecordModel) FromDomain(r *packetlog.Record) {
	m.ID = r.ID
	m.Action = string(r.Action)
	m.Status = string(r.Status)
	m.Title = r.Title
	m.Error = r.Error
	m.OrderID = r.OrderID
	m.Date = r.Date
	m.ParamsJSON = "{}"
	if len(r.Params) > 0 {
		if jsonBytes, err := json.Marshal(r.Params); err == nil {
			m.ParamsJSON = string(jsonBytes)
		}
	}
}

// LogRecordModelFromDomain creates a new LogRecordModel from domain Record
func LogRecordModelFromDomain(r *packetlog.Record) *LogRecordModel {
	m := &LogRecordModel{}
	m.FromDomain(r)
	return m
}
