package services

import (
	"strings"
	"testing"

	"himalayan-estate-server/models"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, true},
		{StatusApproved, StatusApproved, true},
		{StatusRejected, StatusRejected, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusPending, false},
		{"live", StatusApproved, false},
		{StatusPending, "live", false},
		{"", StatusApproved, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "live", "draft", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

func TestApplyListingFiltersConjunction(t *testing.T) {
	db := dryRunDB(t)

	filters := ListingFilters{
		Location: "Mussoorie",
		MinPrice: 100000,
		MaxPrice: 25000000,
		MinSize:  0.5,
		MaxSize:  10,
	}

	q := db.Model(&models.Property{}).Where("status = ?", StatusApproved)
	q = ApplyListingFilters(q, filters)

	stmt := q.Find(&[]models.Property{}).Statement
	sql := stmt.SQL.String()

	for _, fragment := range []string{
		"status = ?",
		"lower(location) LIKE ?",
		"asking_price >= ?",
		"asking_price <= ?",
		"land_size >= ?",
		"land_size <= ?",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("expected query to contain %q, got: %s", fragment, sql)
		}
	}

	// Location must match case-insensitively as a substring.
	found := false
	for _, v := range stmt.Vars {
		if s, ok := v.(string); ok && s == "%mussoorie%" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected lowered substring pattern in vars, got: %v", stmt.Vars)
	}
}

func TestApplyListingFiltersAbsentMeansUnconstrained(t *testing.T) {
	db := dryRunDB(t)

	q := db.Model(&models.Property{}).Where("status = ?", StatusApproved)
	q = ApplyListingFilters(q, ListingFilters{})

	stmt := q.Find(&[]models.Property{}).Statement
	sql := stmt.SQL.String()

	for _, fragment := range []string{"LIKE", "asking_price", "land_size"} {
		if strings.Contains(sql, fragment) {
			t.Errorf("zero-value filters must add no predicate, found %q in: %s", fragment, sql)
		}
	}
	if !strings.Contains(sql, "status = ?") {
		t.Errorf("status pin must survive empty filters, got: %s", sql)
	}
}
