package models

// Document types as the inventory service reports them.
const (
	DocTypeReceipt    = "Receipt"
	DocTypeDelivery   = "Delivery"
	DocTypeInternal   = "Internal"
	DocTypeAdjustment = "Adjustment"
)

// Document statuses as the inventory service reports them.
const (
	StatusDraft    = "Draft"
	StatusWaiting  = "Waiting"
	StatusReady    = "Ready"
	StatusDone     = "Done"
	StatusCanceled = "Canceled"
)

// DocumentTypes is the fixed option list for the document-type filter group.
// The order matters: it is the display order in the filter bar.
var DocumentTypes = []string{
	DocTypeReceipt,
	DocTypeDelivery,
	DocTypeInternal,
	DocTypeAdjustment,
}

// DocumentStatuses is the fixed option list for the status filter group.
var DocumentStatuses = []string{
	StatusDraft,
	StatusWaiting,
	StatusReady,
	StatusDone,
	StatusCanceled,
}

// ProductCategories is the fixed option list for the category filter group.
var ProductCategories = []string{
	"Electronics",
	"Peripherals",
	"Components",
	"Apparel",
	"Home Goods",
}

// DocumentLine is one line item on an inventory document. Adjustment lines
// may carry negative quantities.
type DocumentLine struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Category  string `json:"category"`
}

// Document is one inventory operation record (receipt, delivery, internal
// transfer, or adjustment) as returned by the inventory service. Documents
// are never mutated on this side.
type Document struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"`
	Status         string         `json:"status"`
	CreatedBy      string         `json:"created_by"`
	CreatedAt      APITime        `json:"created_at"`
	Lines          []DocumentLine `json:"lines"`
	SourceLocation string         `json:"source_location,omitempty"`
	TargetLocation string         `json:"target_location,omitempty"`
	CategoryList   []string       `json:"category_list,omitempty"`
}

// ProductCount returns the total quantity moved by this document: the sum
// of qty across all lines.
func (d Document) ProductCount() int {
	total := 0
	for _, l := range d.Lines {
		total += l.Qty
	}
	return total
}

// Route describes the document's movement as "source → target". Either side
// may be absent (receipts have no source; adjustments have neither).
func (d Document) Route() string {
	switch {
	case d.SourceLocation != "" && d.TargetLocation != "":
		return d.SourceLocation + " → " + d.TargetLocation
	case d.SourceLocation != "":
		return d.SourceLocation
	case d.TargetLocation != "":
		return d.TargetLocation
	default:
		return "—"
	}
}

// StatusColor maps a document status to the badge color class used in the
// operations table. Unknown statuses fall back to blue.
func StatusColor(status string) string {
	switch status {
	case StatusDone:
		return "green"
	case StatusReady:
		return "yellow"
	case StatusWaiting:
		return "orange"
	case StatusDraft:
		return "gray"
	case StatusCanceled:
		return "red"
	default:
		return "blue"
	}
}
