package http

import "time"

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// NewOrder is the request body for order registration.
type NewOrder struct {
	CustomerRef   string         `json:"customer_ref"`
	Items         []NewOrderItem `json:"items"`
	PaymentMethod string         `json:"payment_method"`
	Actor         string         `json:"actor"`
}

// NewOrderItem is one line of a new order.
type NewOrderItem struct {
	ServiceType    string `json:"service_type"`
	WeightGrams    int64  `json:"weight_grams"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Express        bool   `json:"express"`
}

// Order is one row of the active order listing.
type Order struct {
	ID               string     `json:"id"`
	CustomerRef      string     `json:"customer_ref"`
	ServiceType      string     `json:"service_type"`
	BusinessStatus   string     `json:"business_status"`
	CurrentStage     string     `json:"current_stage"`
	SortingStatus    string     `json:"sorting_status"`
	Express          bool       `json:"express"`
	TotalGrams       int64      `json:"total_grams"`
	EstimatedReadyAt *time.Time `json:"estimated_ready_at,omitempty"`
}

// BindTagRequest is the request body for tag binding. With Lost set the
// server issues a fallback code and Code/Type are ignored.
type BindTagRequest struct {
	Code  string `json:"code"`
	Type  string `json:"type"`
	Actor string `json:"actor"`
	Lost  bool   `json:"lost"`
}

// TransitionRequest is the request body for a workflow stage transition.
type TransitionRequest struct {
	TargetStage string `json:"target_stage"`
	Actor       string `json:"actor"`
	Note        string `json:"note"`
}

// CancelRequest is the request body for order cancellation. Approved marks
// supervisor approval for orders already grouped into a bag.
type CancelRequest struct {
	Actor    string `json:"actor"`
	Note     string `json:"note"`
	Approved bool   `json:"approved"`
}

// AdmitRequest is the request body for bag admission. An empty BagID lets
// the picker choose the bag.
type AdmitRequest struct {
	BagID string `json:"bag_id"`
}

// AdmissionResponse reports the outcome of an admission, including the
// mixed-priority warning.
type AdmissionResponse struct {
	Priority    string `json:"priority"`
	BecameMixed bool   `json:"became_mixed"`
}

// NewBag is the request body for opening a transport bag. A zero capacity
// selects the default.
type NewBag struct {
	Priority      string `json:"priority"`
	Destination   string `json:"destination"`
	CapacityGrams int64  `json:"capacity_grams"`
}

// Bag is one row of the filling bag listing.
type Bag struct {
	ID            string `json:"id"`
	Seq           int    `json:"seq"`
	Name          string `json:"name"`
	Priority      string `json:"priority"`
	Destination   string `json:"destination"`
	MemberCount   int    `json:"member_count"`
	TotalGrams    int64  `json:"total_grams"`
	CapacityGrams int64  `json:"capacity_grams"`
}

// FinalizeRequest is the request body for bag finalization.
type FinalizeRequest struct {
	Actor string `json:"actor"`
}

// FinalizeResponse reports the issued manifest code and the over-capacity
// warning.
type FinalizeResponse struct {
	ManifestCode string `json:"manifest_code"`
	OverCapacity bool   `json:"over_capacity"`
	OverageGrams int64  `json:"overage_grams"`
}

// HandoverRequest is the request body for courier handover. Every member
// must appear in ScannedOrderIDs.
type HandoverRequest struct {
	Courier         string   `json:"courier"`
	ScannedOrderIDs []string `json:"scanned_order_ids"`
}

// IncompleteScanResponse lists the members missing scan confirmation when a
// handover is rejected.
type IncompleteScanResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing"`
}

// ReceiveRequest is the request body for arrival confirmation.
type ReceiveRequest struct {
	Actor string `json:"actor"`
}
