package action

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		create  bool
		migrate bool
		want    Action
	}{
		{name: "no flags", want: None},
		{name: "create only", create: true, want: Create},
		{name: "migrate only", migrate: true, want: Migrate},
		{name: "both flags", create: true, migrate: true, want: Conflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.create, tt.migrate); got != tt.want {
				t.Errorf("Select(%v, %v) = %v, want %v", tt.create, tt.migrate, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Action(42).String(); got != "unknown" {
		t.Errorf("got %q, want %q", got, "unknown")
	}
	if got := Conflict.String(); got != "conflict" {
		t.Errorf("got %q, want %q", got, "conflict")
	}
}
