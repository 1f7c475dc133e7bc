package portal

// BadgeVariant is the visual emphasis category a status renders with.
type BadgeVariant string

const (
	VariantDefault     BadgeVariant = "default"
	VariantSecondary   BadgeVariant = "secondary"
	VariantOutline     BadgeVariant = "outline"
	VariantDestructive BadgeVariant = "destructive"
)

// FilterAll is the sentinel filter value that omits the status parameter.
const FilterAll = "all"

// StatusOption is one entry of a filter dropdown.
type StatusOption struct {
	Value string
	Label string
}

var PayoutStatusOptions = []StatusOption{
	{Value: "waiting_confirmation", Label: "Esperando confirmación"},
	{Value: "pending_clearance", Label: "En verificación"},
	{Value: "available", Label: "Liberados"},
	{Value: "released", Label: "Pagados"},
	{Value: FilterAll, Label: "Todos"},
}

var OrderStatusOptions = []StatusOption{
	{Value: "not_processed", Label: "Recibidos"},
	{Value: "processed", Label: "Empacando"},
	{Value: "shipping", Label: "En camino"},
	{Value: "delivered", Label: "Entregados"},
	{Value: "cancelled", Label: "Cancelados"},
	{Value: FilterAll, Label: "Todos"},
}

var payoutStatusVariants = map[string]BadgeVariant{
	"waiting_confirmation": VariantSecondary,
	"pending_clearance":    VariantOutline,
	"available":            VariantDefault,
	"released":             VariantSecondary,
	"cancelled":            VariantDestructive,
}

var orderStatusVariants = map[string]BadgeVariant{
	"not_processed": VariantSecondary,
	"processed":     VariantDefault,
	"shipping":      VariantDefault,
	"delivered":     VariantSecondary,
	"cancelled":     VariantDestructive,
}

func PayoutStatusVariant(status string) BadgeVariant {
	if variant, ok := payoutStatusVariants[status]; ok {
		return variant
	}
	return VariantOutline
}

func OrderStatusVariant(status string) BadgeVariant {
	if variant, ok := orderStatusVariants[status]; ok {
		return variant
	}
	return VariantOutline
}

// PayoutAction is the single forward transition offered for a payout.
type PayoutAction struct {
	Label  string
	Target string
}

var nextPayoutAction = map[string]PayoutAction{
	"waiting_confirmation": {Label: "Marcar en verificación", Target: "pending_clearance"},
	"pending_clearance":    {Label: "Liberar fondos", Target: "available"},
	"available":            {Label: "Confirmar transferencia", Target: "released"},
}

// NextPayoutAction returns the one action the UI offers for the current
// status; nil for released, cancelled and unknown statuses.
func NextPayoutAction(status string) *PayoutAction {
	if action, ok := nextPayoutAction[status]; ok {
		return &action
	}
	return nil
}
