package controllers

import (
	"testing"
)

func TestValidateSignUp(t *testing.T) {
	valid := SignUpInput{
		Name:            "Juan Dela Cruz",
		Email:           "juan@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "09171234567",
	}
	if msg := validateSignUp(valid); msg != "" {
		t.Fatalf("expected valid input, got %q", msg)
	}

	cases := []struct {
		name  string
		input SignUpInput
		want  string
	}{
		{
			name:  "missing fields",
			input: SignUpInput{Email: "juan@example.com", Password: "secret1", Phone: "09171234567"},
			want:  "Fill all fields",
		},
		{
			name: "password mismatch",
			input: SignUpInput{
				Name: "Juan", Email: "juan@example.com",
				Password: "secret1", ConfirmPassword: "secret2", Phone: "09171234567",
			},
			want: "Passwords do not match",
		},
		{
			name: "short password",
			input: SignUpInput{
				Name: "Juan", Email: "juan@example.com",
				Password: "abc", ConfirmPassword: "abc", Phone: "09171234567",
			},
			want: "Password must be at least 6 characters",
		},
	}

	for _, c := range cases {
		if msg := validateSignUp(c.input); msg != c.want {
			t.Fatalf("%s: expected %q, got %q", c.name, c.want, msg)
		}
	}
}
