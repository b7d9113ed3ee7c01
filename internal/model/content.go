package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a []string stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// ContentItem is one record of the content catalog. The engine only ever
// reads this table; authoring and ingestion happen upstream.
// swagger:model ContentItem
type ContentItem struct {
	UUIDBase
	Title              string          `gorm:"size:255;not null" json:"title"`
	Type               MediumType      `gorm:"size:20;not null" json:"type"`
	Difficulty         DifficultyLevel `gorm:"size:20;not null" json:"difficulty"`
	Duration           int             `gorm:"default:0" json:"duration"` // minutes
	Category           string          `gorm:"size:100" json:"category"`
	Tags               StringList      `gorm:"type:json" json:"tags"`
	Prerequisites      StringList      `gorm:"type:json" json:"prerequisites"`
	LearningObjectives StringList      `gorm:"type:json" json:"learningObjectives"`
}

func (ContentItem) TableName() string {
	return "content_items"
}
