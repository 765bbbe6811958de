package model

// Auto-reservation status values stored in auto_reservations.status.
// This service only ever creates pending requests; matching a pending
// request to a real flight is performed elsewhere.
const (
    AutoReservationPending = "pending"
    AutoReservationMatched = "matched"
    AutoReservationExpired = "expired"
)

// AutoReservation is a standing request registered when a searched
// route has no direct flights.  The supervisory layer is expected to
// fulfil it once a matching flight opens; until then it stays pending.
//
// Fields:
//  ID             – external identifier (AR- prefixed).
//  UserID         – requesting user.
//  Origin         – requested departure province.
//  Destination    – requested arrival province.
//  DesiredDate    – Shamsi travel date the user asked for.
//  SuggestedPrice – system-suggested price in rials.
//  Status         – pending, matched or expired.
//  CreatedAt      – creation timestamp string.
type AutoReservation struct {
    ID             string  `json:"id"`
    UserID         string  `json:"user_id"`
    Origin         string  `json:"origin"`
    Destination    string  `json:"destination"`
    DesiredDate    string  `json:"desired_date"`
    SuggestedPrice float64 `json:"suggested_price"`
    Status         string  `json:"status"`
    CreatedAt      string  `json:"created_at"`
}
