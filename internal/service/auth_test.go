package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"yuancity-finance-portal/internal/config"
	"yuancity-finance-portal/internal/model"
)

func newAuthFixture(userRepo *mockUserRepo) (AuthService, *mockOTPStore, *mockSMSClient) {
	otpStore := newMockOTPStore()
	sms := &mockSMSClient{}
	svc := NewAuthService(
		config.JWT{
			Secret:     "test-secret",
			AccessTTL:  time.Hour,
			RefreshTTL: 720 * time.Hour,
			Issuer:     "yuancity",
		},
		config.OTP{TTL: 10 * time.Minute, Length: 8},
		userRepo,
		otpStore,
		sms,
	)
	return svc, otpStore, sms
}

func TestFinanceLoginProvisionsStaffUser(t *testing.T) {
	userRepo := newMockUserRepo()
	svc, _, _ := newAuthFixture(userRepo)

	out, err := svc.FinanceLogin(context.Background(), "  Finanzas@YuanCity.com ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Access == "" || out.Refresh == "" {
		t.Error("missing token pair")
	}
	if out.User.Email != "finanzas@yuancity.com" {
		t.Errorf("email = %q, want lowercased trimmed", out.User.Email)
	}

	if len(userRepo.created) != 1 {
		t.Fatalf("created users = %d, want 1", len(userRepo.created))
	}
	user := userRepo.created[0]
	if !user.IsStaff || !user.IsActive || user.Rol != model.RoleAdmin {
		t.Errorf("user not promoted to staff admin: %+v", user)
	}
}

func TestFinanceLoginPromotesExistingUser(t *testing.T) {
	existing := &model.User{ID: "u1", Email: "cliente@yuancity.com", Rol: model.RoleClient}
	userRepo := newMockUserRepo(existing)
	svc, _, _ := newAuthFixture(userRepo)

	if _, err := svc.FinanceLogin(context.Background(), "cliente@yuancity.com"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(userRepo.created) != 0 {
		t.Error("new user created for an existing email")
	}
	if !existing.IsStaff || existing.Rol != model.RoleAdmin {
		t.Errorf("existing user not promoted: %+v", existing)
	}
}

func TestFinanceLoginRejectsBadEmails(t *testing.T) {
	svc, _, _ := newAuthFixture(newMockUserRepo())

	for _, email := range []string{"", "   ", "not-an-email"} {
		if _, err := svc.FinanceLogin(context.Background(), email); !errors.Is(err, model.ErrInvalidCredentials) {
			t.Errorf("login(%q): err = %v, want ErrInvalidCredentials", email, err)
		}
	}
}

func TestRequestOTPByPhone(t *testing.T) {
	userRepo := newMockUserRepo()
	svc, otpStore, sms := newAuthFixture(userRepo)

	out, err := svc.RequestOTP(context.Background(), "+573001234567")
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}
	if out.Detail != "OTP enviado." {
		t.Errorf("detail = %q, want OTP enviado.", out.Detail)
	}
	if !out.IsNewUser {
		t.Error("is_new_user = false for a first-time phone")
	}

	code, ok := otpStore.codes["+573001234567"]
	if !ok {
		t.Fatal("no code stored for the identifier")
	}
	if len(code) != 8 {
		t.Errorf("code length = %d, want 8", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("code %q contains a non-digit", code)
			break
		}
	}
	if otpStore.ttls["+573001234567"] != 10*time.Minute {
		t.Errorf("code ttl = %v, want 10m", otpStore.ttls["+573001234567"])
	}

	if len(sms.sent) != 1 || sms.sent[0].To != "+573001234567" {
		t.Fatalf("sms = %+v, want one message to the phone", sms.sent)
	}
	if !strings.Contains(sms.sent[0].Body, code) {
		t.Errorf("sms body %q does not carry the code", sms.sent[0].Body)
	}
}

func TestRequestOTPByEmailSkipsSMS(t *testing.T) {
	existing := &model.User{ID: "u1", Email: "ana@example.com"}
	userRepo := newMockUserRepo(existing)
	svc, otpStore, sms := newAuthFixture(userRepo)

	out, err := svc.RequestOTP(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}
	if out.IsNewUser {
		t.Error("is_new_user = true for an existing account")
	}
	if len(sms.sent) != 0 {
		t.Errorf("sms sent for a user without a phone: %+v", sms.sent)
	}
	if _, ok := otpStore.codes["ana@example.com"]; !ok {
		t.Error("no code stored for the email identifier")
	}
}

func TestVerifyOTPFlow(t *testing.T) {
	user := &model.User{ID: "u1", Email: "+573001234567@phone.local", Phone: "+573001234567"}
	userRepo := newMockUserRepo(user)
	svc, otpStore, _ := newAuthFixture(userRepo)
	otpStore.codes["+573001234567"] = "12345678"

	// Wrong code first: rejected and the stored code survives.
	if _, err := svc.VerifyOTP(context.Background(), "+573001234567", "00000000"); !errors.Is(err, model.ErrInvalidOTP) {
		t.Fatalf("wrong code err = %v, want ErrInvalidOTP", err)
	}
	if _, ok := otpStore.codes["+573001234567"]; !ok {
		t.Fatal("stored code consumed by a failed attempt")
	}

	out, err := svc.VerifyOTP(context.Background(), "+573001234567", "12345678")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if out.Access == "" || out.Refresh == "" {
		t.Error("missing token pair")
	}
	if !user.PhoneVerified {
		t.Error("phone not marked verified")
	}

	// The code is single use.
	if _, err := svc.VerifyOTP(context.Background(), "+573001234567", "12345678"); !errors.Is(err, model.ErrInvalidOTP) {
		t.Errorf("replayed code err = %v, want ErrInvalidOTP", err)
	}
}

func TestVerifyOTPUnknownIdentifier(t *testing.T) {
	svc, _, _ := newAuthFixture(newMockUserRepo())

	if _, err := svc.VerifyOTP(context.Background(), "nadie@example.com", "12345678"); !errors.Is(err, model.ErrInvalidOTP) {
		t.Errorf("err = %v, want ErrInvalidOTP", err)
	}
}

func TestRefreshAndParseAccess(t *testing.T) {
	userRepo := newMockUserRepo()
	svc, _, _ := newAuthFixture(userRepo)

	login, err := svc.FinanceLogin(context.Background(), "finanzas@yuancity.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	userID, err := svc.ParseAccess(login.Access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if userID != login.User.ID {
		t.Errorf("parsed user = %q, want %q", userID, login.User.ID)
	}

	// A refresh token is not an access token and vice versa.
	if _, err := svc.ParseAccess(login.Refresh); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("ParseAccess(refresh) err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Refresh(context.Background(), login.Access); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("Refresh(access) err = %v, want ErrInvalidCredentials", err)
	}

	access, err := svc.Refresh(context.Background(), login.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if gotID, err := svc.ParseAccess(access); err != nil || gotID != login.User.ID {
		t.Errorf("refreshed access parse = %q/%v", gotID, err)
	}
}

func TestRefreshRejectsInactiveUser(t *testing.T) {
	userRepo := newMockUserRepo()
	svc, _, _ := newAuthFixture(userRepo)

	login, err := svc.FinanceLogin(context.Background(), "finanzas@yuancity.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	userRepo.users[login.User.ID].IsActive = false
	if _, err := svc.Refresh(context.Background(), login.Refresh); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("garbage token err = %v, want ErrInvalidCredentials", err)
	}
}
