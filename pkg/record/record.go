// Package record holds the diary record and settings models and the rules that
// decide whether user input may become a record.
package record

import (
	"strings"

	"tableflip.dev/nomilog/pkg/category"
)

// Storage keys for the two persisted values.
const (
	RecordsKey  = "alcohol_records"
	SettingsKey = "user_settings"
)

// Record is one logged drinking event.
type Record struct {
	ID        string            `json:"id"`
	Date      Timestamp         `json:"date"`
	Category  category.Category `json:"category"`
	Name      string            `json:"name"`
	Rating    int               `json:"rating"`
	Store     Optional[string]  `json:"store,omitzero"`
	Memo      Optional[string]  `json:"memo,omitzero"`
	CreatedAt Timestamp         `json:"createdAt"`
	UpdatedAt Timestamp         `json:"updatedAt"`
}

// Apply copies validated fields onto the record, leaving identity and
// timestamps alone.
func (r *Record) Apply(f Fields) {
	r.Date = f.Date
	r.Category = f.Category
	r.Name = f.Name
	r.Rating = f.Rating
	r.Store = f.Store
	r.Memo = f.Memo
}

// Input renders the record back into raw input, for re-validation and edits.
func (r *Record) Input() Input {
	return Input{
		Date:     r.Date.DateString(),
		Category: r.Category.Key(),
		Name:     r.Name,
		Rating:   r.Rating,
		Store:    r.Store.Or(""),
		Memo:     r.Memo.Or(""),
	}
}

// Clone returns a copy that shares nothing mutable with r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// Matches reports whether the name contains query, ignoring case.
func (r *Record) Matches(query string) bool {
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(query))
}

// Settings is the single user settings object.
type Settings struct {
	IsPremium           bool                `json:"isPremium"`
	PremiumPurchaseDate Optional[Timestamp] `json:"premiumPurchaseDate,omitzero"`
}
