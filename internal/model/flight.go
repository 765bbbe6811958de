package model

import "time"

// Fare class values stored in flights.class_type.
const (
    ClassEconomy  = "Economy"
    ClassBusiness = "Business"
    ClassFirst    = "First"
)

// ScenarioTag carries the authored research metadata attached to a
// generated or admin-injected flight.  It drives the demonstrable
// risk/quality variety of the corpus and contributes the regret
// penalty to match scoring.
//
// Fields:
//  SimulatedDelayMinutes – delay injected at decision time, >= 0.
//  RegretIndex           – predicted regret in [0,1].
//  SupervisorNote        – advisory note shown alongside the flight.
//  TargetPersonality     – optional authoring aid naming the profile
//                          the scenario was designed for.
type ScenarioTag struct {
    SimulatedDelayMinutes int                `json:"simulated_delay_minutes"`
    RegretIndex           float64            `json:"regret_index"`
    SupervisorNote        string             `json:"supervisor_note"`
    TargetPersonality     *PersonalityVector `json:"target_personality,omitempty"`
}

// Flight represents a bookable flight as stored in the `flights`
// table.  Flights are immutable after generation; administrators may
// only insert or delete them.  Departure and arrival times are kept as
// Shamsi calendar strings (e.g. "1404/10/15T09:00:00") because the
// demo operates entirely on the Iranian calendar.
//
// Fields:
//  ID             – external identifier (FL- prefixed).
//  Airline        – operating airline name.
//  Origin         – province of departure.
//  Destination    – province of arrival; must differ from Origin.
//  DepartureTime  – Shamsi departure timestamp.
//  ArrivalTime    – Shamsi arrival timestamp.
//  Price          – final ticket price in rials.
//  AvailableSeats – remaining seat count.
//  QualityScore   – base quality in [0,1], the scoring baseline.
//  AircraftType   – aircraft model flown by the airline.
//  ClassType      – fare class (Economy, Business, First).
//  AllowedLuggage – luggage allowance label (e.g. "20kg").
//  Scenario       – optional authored scenario metadata.
//  CreatedAt      – timestamp of insertion.
type Flight struct {
    ID             string       `json:"id"`
    Airline        string       `json:"airline"`
    Origin         string       `json:"origin"`
    Destination    string       `json:"destination"`
    DepartureTime  string       `json:"departure_time"`
    ArrivalTime    string       `json:"arrival_time"`
    Price          int64        `json:"price"`
    AvailableSeats int          `json:"available_seats"`
    QualityScore   float64      `json:"quality_score"`
    AircraftType   string       `json:"aircraft_type"`
    ClassType      string       `json:"class_type"`
    AllowedLuggage string       `json:"allowed_luggage"`
    Scenario       *ScenarioTag `json:"scenario,omitempty"`
    CreatedAt      time.Time    `json:"created_at"`
}
