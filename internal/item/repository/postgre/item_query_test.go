package postgre

import (
	"reflect"
	"testing"

	repo "item-catalog/internal/item/repository"
)

func TestBuildFilterQuery(t *testing.T) {
	r := &implRepository{}

	cases := []struct {
		name      string
		opt       repo.ListItemsOptions
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			opt:       repo.ListItemsOptions{},
			wantWhere: "1=1",
			wantArgs:  nil,
		},
		{
			name:      "title only",
			opt:       repo.ListItemsOptions{TitleContains: "chair"},
			wantWhere: "title ILIKE '%' || $1 || '%'",
			wantArgs:  []any{"chair"},
		},
		{
			name:      "description only",
			opt:       repo.ListItemsOptions{DescriptionContains: "wood"},
			wantWhere: "description ILIKE '%' || $1 || '%'",
			wantArgs:  []any{"wood"},
		},
		{
			name:      "both filters ANDed",
			opt:       repo.ListItemsOptions{TitleContains: "chair", DescriptionContains: "wood"},
			wantWhere: "title ILIKE '%' || $1 || '%' AND description ILIKE '%' || $2 || '%'",
			wantArgs:  []any{"chair", "wood"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := r.buildFilterQuery(tc.opt)
			if where != tc.wantWhere {
				t.Errorf("where = %q, want %q", where, tc.wantWhere)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("args = %v, want %v", args, tc.wantArgs)
			}
		})
	}
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("full clause", func(t *testing.T) {
		clause, args := r.buildListQuery(repo.ListItemsOptions{
			TitleContains: "chair",
			OrderBy:       "title ASC",
			Limit:         5,
			Offset:        10,
		})

		want := "WHERE title ILIKE '%' || $1 || '%' ORDER BY title ASC LIMIT $2 OFFSET $3"
		if clause != want {
			t.Errorf("clause = %q, want %q", clause, want)
		}
		if !reflect.DeepEqual(args, []any{"chair", 5, 10}) {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		clause, args := r.buildListQuery(repo.ListItemsOptions{})

		want := "WHERE 1=1 ORDER BY created_at DESC"
		if clause != want {
			t.Errorf("clause = %q, want %q", clause, want)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("first page omits offset", func(t *testing.T) {
		clause, args := r.buildListQuery(repo.ListItemsOptions{Limit: 10})

		want := "WHERE 1=1 ORDER BY created_at DESC LIMIT $1"
		if clause != want {
			t.Errorf("clause = %q, want %q", clause, want)
		}
		if !reflect.DeepEqual(args, []any{10}) {
			t.Errorf("args = %v", args)
		}
	})
}
