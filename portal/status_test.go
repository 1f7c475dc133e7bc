package portal

import "testing"

func TestNextPayoutAction(t *testing.T) {
	cases := []struct {
		status string
		label  string
		target string
	}{
		{"waiting_confirmation", "Marcar en verificación", "pending_clearance"},
		{"pending_clearance", "Liberar fondos", "available"},
		{"available", "Confirmar transferencia", "released"},
	}

	for _, tc := range cases {
		action := NextPayoutAction(tc.status)
		if action == nil {
			t.Fatalf("NextPayoutAction(%q) = nil", tc.status)
		}
		if action.Label != tc.label {
			t.Errorf("NextPayoutAction(%q).Label = %q, want %q", tc.status, action.Label, tc.label)
		}
		if action.Target != tc.target {
			t.Errorf("NextPayoutAction(%q).Target = %q, want %q", tc.status, action.Target, tc.target)
		}
	}
}

func TestNextPayoutActionNone(t *testing.T) {
	for _, status := range []string{"released", "cancelled", "bogus", ""} {
		if action := NextPayoutAction(status); action != nil {
			t.Errorf("NextPayoutAction(%q) = %+v, want nil", status, action)
		}
	}
}

func TestStatusVariantFallback(t *testing.T) {
	if got := PayoutStatusVariant("unknown"); got != VariantOutline {
		t.Errorf("PayoutStatusVariant(unknown) = %q, want %q", got, VariantOutline)
	}
	if got := OrderStatusVariant("unknown"); got != VariantOutline {
		t.Errorf("OrderStatusVariant(unknown) = %q, want %q", got, VariantOutline)
	}
	if got := PayoutStatusVariant("cancelled"); got != VariantDestructive {
		t.Errorf("PayoutStatusVariant(cancelled) = %q, want %q", got, VariantDestructive)
	}
}

func TestStatusOptionsIncludeAll(t *testing.T) {
	last := PayoutStatusOptions[len(PayoutStatusOptions)-1]
	if last.Value != FilterAll || last.Label != "Todos" {
		t.Errorf("payout options last = %+v, want all/Todos", last)
	}
	last = OrderStatusOptions[len(OrderStatusOptions)-1]
	if last.Value != FilterAll || last.Label != "Todos" {
		t.Errorf("order options last = %+v, want all/Todos", last)
	}
}
