package dto

import "testing"

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name   string
		req    SignupRequest
		fields []string
	}{
		{"ok", SignupRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}, nil},
		{"ok with dob", SignupRequest{Username: "alice", Email: "alice@example.com", Password: "secret1", DateOfBirth: "1990-02-03"}, nil},
		{"blank", SignupRequest{}, []string{"username", "email", "password"}},
		{"bad email", SignupRequest{Username: "alice", Email: "nope", Password: "secret1"}, []string{"email"}},
		{"short password", SignupRequest{Username: "alice", Email: "a@b.io", Password: "123"}, []string{"password"}},
		{"long username", SignupRequest{Username: "abcdefghijklmnopqrstuvwxyz", Email: "a@b.io", Password: "secret1"}, []string{"username"}},
		{"bad dob", SignupRequest{Username: "alice", Email: "a@b.io", Password: "secret1", DateOfBirth: "03/02/1990"}, []string{"dob"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.req)
			if len(got) != len(tt.fields) {
				t.Fatalf("got %v, want fields %v", got, tt.fields)
			}
			for _, f := range tt.fields {
				if _, ok := got[f]; !ok {
					t.Errorf("missing field %q in %v", f, got)
				}
			}
		})
	}
}

func TestValidateNewsAndUser(t *testing.T) {
	if errs := Validate(NewsRequest{Title: "t", TitleAr: "ت", Description: "d", DescriptionAr: "د"}); errs != nil {
		t.Errorf("valid news rejected: %v", errs)
	}
	errs := Validate(NewsRequest{Title: "t"})
	for _, f := range []string{"titleAr", "description", "descriptionAr"} {
		if _, ok := errs[f]; !ok {
			t.Errorf("missing %s in %v", f, errs)
		}
	}

	errs = Validate(UserRequest{Username: "bob", Email: "bob@example.com"})
	if _, ok := errs["roles"]; !ok || len(errs) != 1 {
		t.Errorf("want only roles error, got %v", errs)
	}
	if errs := Validate(UserRequest{Username: "bob", Email: "bob@example.com", Roles: []string{"ROLE_ADMIN"}}); errs != nil {
		t.Errorf("blank password should pass request validation: %v", errs)
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-05-06")
	if err != nil || d == nil {
		t.Fatalf("parse: %v", err)
	}
	if got := *FormatDate(d); got != "2024-05-06" {
		t.Errorf("format = %s", got)
	}
	if d, err := ParseDate(""); d != nil || err != nil {
		t.Errorf("empty date = %v, %v", d, err)
	}
	if FormatDate(nil) != nil {
		t.Error("nil date should format to nil")
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Error("bad month accepted")
	}
}
