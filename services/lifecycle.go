package services

import (
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

var LandSizeUnits = []string{"sqft", "sqm", "acres", "hectares"}

func ValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

// CanTransition reports whether an admin may move a listing from one status
// to another. A listing only ever leaves pending; repeating the current
// status is allowed so that identical requests stay idempotent.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return from == StatusPending
}

// ListingFilters are the public-browse predicates. A zero value on any
// dimension means no constraint for that dimension; active predicates
// are conjunctive.
type ListingFilters struct {
	Location string
	MinPrice float64
	MaxPrice float64
	MinSize  float64
	MaxSize  float64
}

// ApplyListingFilters chains the active predicates onto a property query.
// Bounds are inclusive, location matches as a case-insensitive substring.
func ApplyListingFilters(q *gorm.DB, f ListingFilters) *gorm.DB {
	if loc := strings.TrimSpace(f.Location); loc != "" {
		q = q.Where("lower(location) LIKE ?", "%"+strings.ToLower(loc)+"%")
	}
	if f.MinPrice > 0 {
		q = q.Where("asking_price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("asking_price <= ?", f.MaxPrice)
	}
	if f.MinSize > 0 {
		q = q.Where("land_size >= ?", f.MinSize)
	}
	if f.MaxSize > 0 {
		q = q.Where("land_size <= ?", f.MaxSize)
	}
	return q
}
