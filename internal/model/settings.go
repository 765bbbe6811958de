package model

// Settings holds the editable system configuration shown in the admin
// panel.  A single row lives in the `settings` table.
//
// Fields:
//  AutoReservePrice – suggested price in rials offered when the
//                     auto-reservation fallback is proposed.
//  AutoReserveDesc  – description of the auto-reserve service shown to
//                     travelers before they confirm a request.
type Settings struct {
    AutoReservePrice float64 `json:"auto_reserve_price"`
    AutoReserveDesc  string  `json:"auto_reserve_desc"`
}
