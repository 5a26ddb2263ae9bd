package study_test

import (
	"context"
	"testing"

	"docsum/src/core/study"
)

func TestStaticEntitlement(t *testing.T) {
	tests := []struct {
		name        string
		enforce     bool
		subscribers []string
		userID      string
		want        bool
	}{
		{name: "enforcement off allows anyone", enforce: false, userID: "stranger", want: true},
		{name: "enforcement off allows anonymous", enforce: false, userID: "anonymous", want: true},
		{name: "subscriber allowed", enforce: true, subscribers: []string{"alice", "bob"}, userID: "alice", want: true},
		{name: "non-subscriber denied", enforce: true, subscribers: []string{"alice"}, userID: "bob", want: false},
		{name: "empty subscriber list denies all", enforce: true, userID: "alice", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := study.NewStaticEntitlement(tt.enforce, tt.subscribers)
			if got := checker.Allowed(context.Background(), tt.userID); got != tt.want {
				t.Errorf("Allowed(%q) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}
