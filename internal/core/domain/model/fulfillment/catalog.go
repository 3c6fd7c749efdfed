package fulfillment

// StatusInfo carries the display metadata for one canonical status.
// Label is the Indonesian admin-panel label; Color is the badge color.
type StatusInfo struct {
	Status Status
	Label  string
	Color  string
}

// allStatusInfos is the fixed display table. Order matters: it defines both
// UI ordering and the iteration order relied upon in tests.
func allStatusInfos() []StatusInfo {
	return []StatusInfo{
		{Status: AwaitingProcessing, Label: "Menunggu Diproses", Color: "#9E9E9E"},
		{Status: Packed, Label: "Dikemas", Color: "#FF9800"},
		{Status: ReadyToShip, Label: "Siap Dikirim", Color: "#2196F3"},
		{Status: ReadyForPickup, Label: "Siap Diambil", Color: "#009688"},
		{Status: InTransit, Label: "Sedang Dikirim", Color: "#3F51B5"},
		{Status: Received, Label: "Diterima", Color: "#4CAF50"},
	}
}

// AllStatuses returns the ordered catalog of canonical statuses with their
// display metadata. The returned slice is a fresh copy on every call.
func AllStatuses() []StatusInfo {
	return allStatusInfos()
}

// StatusesForArea returns the ordered status subset meaningful for the
// given shipping area. Inter-city fulfillment is handed to third-party
// freight after packing, so only ready_to_ship, in_transit, and received
// apply; intra-city orders use the full set.
func StatusesForArea(area Area) []StatusInfo {
	if area != InterCity {
		return allStatusInfos()
	}

	subset := make([]StatusInfo, 0, 3)
	for _, info := range allStatusInfos() {
		switch info.Status {
		case ReadyToShip, InTransit, Received:
			subset = append(subset, info)
		case AwaitingProcessing, Packed, ReadyForPickup, StatusUnknown:
			// intra-city-only semantics, skipped for freight
		}
	}
	return subset
}

// Label returns the display label for the status, or the canonical token
// for values outside the catalog.
func (s Status) Label() string {
	for _, info := range allStatusInfos() {
		if info.Status == s {
			return info.Label
		}
	}
	return s.String()
}

// Color returns the display badge color for the status.
func (s Status) Color() string {
	for _, info := range allStatusInfos() {
		if info.Status == s {
			return info.Color
		}
	}
	return "#9E9E9E"
}
