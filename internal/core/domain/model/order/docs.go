// Package order provides the Order aggregate: a single rental booking and its
// lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the rented vehicle, the optional
//     driver assignment, the customer and the price of a booking
//   - Status: the lifecycle state machine
//   - ServiceType: whether the booking is self-drive or chauffeured
//   - Customer and RentalPeriod: validated booking details
//
// Key business rules:
//   - Orders are created in Pending
//   - Pending -> Approved | Rejected, Approved -> Completed
//   - Rejected and Completed are terminal
//   - A driver can only be assigned while the order is active and only when
//     the service type requires one
//   - The vehicle of an order never changes after creation
package order
