package bag

import "time"

// Manifest is the serializable summary of a finalized bag handed to
// presentation and reporting collaborators. The core exposes the structure
// only; rendering and printing happen elsewhere.
type Manifest struct {
	BagID        string         `json:"bag_id"`
	Name         string         `json:"name"`
	ManifestCode string         `json:"manifest_code"`
	Destination  string         `json:"destination"`
	Priority     string         `json:"priority"`
	Items        []ManifestItem `json:"items"`
	TotalGrams   int64          `json:"total_grams"`
	CapacityGrams int64         `json:"capacity_grams"`
	ReadyAt      *time.Time     `json:"ready_at,omitempty"`
	Courier      string         `json:"courier,omitempty"`
	HandedOverAt *time.Time     `json:"handed_over_at,omitempty"`
}

// ManifestItem is one member line of a manifest.
type ManifestItem struct {
	OrderID string `json:"order_id"`
	TagCode string `json:"tag_code"`
	Grams   int64  `json:"grams"`
	Express bool   `json:"express"`
}

// Manifest builds the manifest snapshot for the bag's current state. Called
// after finalization; a filling bag has no manifest code yet.
func (b *Bag) Manifest() Manifest {
	items := make([]ManifestItem, 0, len(b.members))
	for _, m := range b.members {
		items = append(items, ManifestItem{
			OrderID: m.OrderID.String(),
			TagCode: m.TagCode,
			Grams:   m.Weight.Grams(),
			Express: m.Express,
		})
	}

	manifest := Manifest{
		BagID:         b.id.String(),
		Name:          b.name,
		ManifestCode:  b.manifestCode,
		Destination:   b.destination.String(),
		Priority:      b.priority.String(),
		Items:         items,
		TotalGrams:    b.totalWeight.Grams(),
		CapacityGrams: b.capacity.Grams(),
		ReadyAt:       b.ReadyAt(),
	}
	if b.handover != nil {
		manifest.Courier = b.handover.Courier
		at := b.handover.At
		manifest.HandedOverAt = &at
	}
	return manifest
}
