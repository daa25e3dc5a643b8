package commands

import (
	"errors"
	"strings"
	"testing"
)

func TestEnhanceError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New("NoCredentialProviders"), "No AWS credentials found"},
		{errors.New("SlowDown: please reduce your request rate"), "rate limit exceeded"},
		{errors.New("open domains.txt: no such file or directory"), "Input file not found"},
		{errors.New("something else"), "operation failed"},
	}

	for _, tt := range tests {
		got := enhanceError("operation", tt.err, 5)
		if got == nil {
			t.Fatal("expected non-nil error")
		}
		if !strings.Contains(got.Error(), tt.want) {
			t.Fatalf("expected %q in %q", tt.want, got.Error())
		}
		if !errors.Is(got, tt.err) {
			t.Fatalf("expected original error to be wrapped: %v", got)
		}
	}
}

func TestEnhanceError_Nil(t *testing.T) {
	if err := enhanceError("operation", nil, 5); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
