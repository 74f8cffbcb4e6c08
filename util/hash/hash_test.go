package hash

import "testing"

func TestHashCheck(t *testing.T) {
	h, err := HashPassword("supersecret")
	if err != nil {
		t.Fatal(err)
	}
	if h == "supersecret" {
		t.Fatal("password stored in plain text")
	}
	if !Check(h, "supersecret") {
		t.Fatal("correct password rejected")
	}
	if Check(h, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
