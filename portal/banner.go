package portal

import "time"

// BannerTTL is how long a transient banner stays visible.
const BannerTTL = 5 * time.Second

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is a transient user-facing message that expires on its own.
type Banner struct {
	Kind      BannerKind
	Message   string
	ExpiresAt time.Time
}

func NewBanner(kind BannerKind, message string, now time.Time) *Banner {
	return &Banner{
		Kind:      kind,
		Message:   message,
		ExpiresAt: now.Add(BannerTTL),
	}
}

// Expired reports whether the banner should be dismissed.
func (b *Banner) Expired(now time.Time) bool {
	return b == nil || !now.Before(b.ExpiresAt)
}
