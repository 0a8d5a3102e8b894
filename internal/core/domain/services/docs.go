// Package services provides the stateless domain services of the rental
// system.
//
//   - ResourceStates: the single definition of how an order's status maps to
//     the status of its vehicle and driver. Every use case that touches a
//     vehicle or driver status goes through it.
//   - RentalPricer: the price of a booking from the vehicle rate, the rental
//     days and the chauffeur fee.
//
// Both are pure: no I/O, no clock, no shared state.
package services
