package services

import (
	"testing"

	"sessionizemcp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenSessionGroups(t *testing.T) {
	s1 := &domain.Session{ID: "1", Title: "First"}
	s2 := &domain.Session{ID: "2", Title: "Second"}
	s3 := &domain.Session{ID: "3", Title: "Third"}

	tests := []struct {
		name   string
		groups []*domain.SessionGroup
		want   []*domain.Session
	}{
		{
			name: "preserves group order and in-group order",
			groups: []*domain.SessionGroup{
				{GroupName: "Day 1", Sessions: []*domain.Session{s1, s2}},
				{GroupName: "Day 2", Sessions: []*domain.Session{s3}},
			},
			want: []*domain.Session{s1, s2, s3},
		},
		{
			name: "drops nil groups, nil session lists, and nil sessions",
			groups: []*domain.SessionGroup{
				nil,
				{GroupName: "Empty", Sessions: nil},
				{GroupName: "Mixed", Sessions: []*domain.Session{nil, s1, nil, s2}},
			},
			want: []*domain.Session{s1, s2},
		},
		{
			name:   "nil input yields empty output",
			groups: nil,
			want:   nil,
		},
		{
			name: "all-null content yields empty output",
			groups: []*domain.SessionGroup{
				{GroupName: "A", Sessions: []*domain.Session{nil}},
				nil,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flattenSessionGroups(tt.groups)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}
