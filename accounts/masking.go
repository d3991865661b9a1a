package accounts

// Fixed-width placeholders shown instead of login secrets.
const (
	PhoneMask = "================="
	PassMask  = "============="

	uuidPrefixLen = 8
	absentValue   = "none"
)

// Masked is the display form of an Account. It never carries a
// secret: phone and password are fixed masks, UUIDs are truncated
// prefixes, tokens are reduced to presence flags.
type Masked struct {
	ID              string `json:"id"`
	Phone           string `json:"phone"`
	Pass            string `json:"pass"`
	DeviceUUID      string `json:"duuid"`
	ClientUUID      string `json:"cuuid"`
	HasAccessToken  bool   `json:"accessToken"`
	HasRefreshToken bool   `json:"refreshToken"`
	Proxy           string `json:"proxy"`
}

func (a Account) Masked() Masked {
	return Masked{
		ID:              a.ID,
		Phone:           PhoneMask,
		Pass:            PassMask,
		DeviceUUID:      truncateUUID(a.DeviceUUID),
		ClientUUID:      truncateUUID(a.ClientUUID),
		HasAccessToken:  a.AccessToken != "",
		HasRefreshToken: a.RefreshToken != "",
		Proxy:           orAbsent(a.Proxy),
	}
}

func truncateUUID(s string) string {
	if s == "" {
		return absentValue
	}
	if len(s) > uuidPrefixLen {
		s = s[:uuidPrefixLen]
	}
	return s + "..."
}

func orAbsent(s string) string {
	if s == "" {
		return absentValue
	}
	return s
}
