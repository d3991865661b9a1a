package accounts

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMasked(t *testing.T) {
	a := Account{
		ID:           "acct-1",
		Phone:        "08012345678",
		Pass:         "hunter2secret",
		DeviceUUID:   "4fae13b1-9f74-4c6e-9d2b-17f3a1579a10",
		ClientUUID:   "beaf00d1-1111-2222-3333-444455556666",
		AccessToken:  "at-value",
		RefreshToken: "",
		Proxy:        "",
	}

	got := a.Masked()

	want := Masked{
		ID:              "acct-1",
		Phone:           PhoneMask,
		Pass:            PassMask,
		DeviceUUID:      "4fae13b1...",
		ClientUUID:      "beaf00d1...",
		HasAccessToken:  true,
		HasRefreshToken: false,
		Proxy:           "none",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected masked view (-want +got):\n%s", diff)
	}
}

func TestMaskedNeverLeaksSecrets(t *testing.T) {
	a := Account{
		ID:           "acct-1",
		Phone:        "08012345678",
		Pass:         "hunter2secret",
		DeviceUUID:   "4fae13b1-9f74-4c6e-9d2b-17f3a1579a10",
		ClientUUID:   "beaf00d1-1111-2222-3333-444455556666",
		AccessToken:  "at-value",
		RefreshToken: "rt-value",
		Proxy:        "http://user:pw@proxy.example:8080",
	}

	m := a.Masked()
	rendered := strings.Join([]string{
		m.ID, m.Phone, m.Pass, m.DeviceUUID, m.ClientUUID, m.Proxy,
	}, "\n")

	for _, secret := range []string{a.Phone, a.Pass, a.AccessToken, a.RefreshToken} {
		if strings.Contains(rendered, secret) {
			t.Errorf("masked view leaks %q", secret)
		}
	}

	if strings.Contains(m.DeviceUUID, a.DeviceUUID) {
		t.Error("device uuid not truncated")
	}
}

func TestMaskedAbsentFields(t *testing.T) {
	m := Account{ID: "empty"}.Masked()

	if m.DeviceUUID != "none" || m.ClientUUID != "none" || m.Proxy != "none" {
		t.Errorf("expected absent markers, got %+v", m)
	}

	if m.HasAccessToken || m.HasRefreshToken {
		t.Error("expected token presence flags to be false")
	}
}

func TestTruncateUUIDShortValue(t *testing.T) {
	if got := truncateUUID("abc"); got != "abc..." {
		t.Errorf(`expected "abc...", got %q`, got)
	}
}
