// Package kernel holds the value objects shared by every aggregate of the
// rental domain: UUID identifiers and Money amounts.
//
// Both are immutable and reject their zero value in Validate, so an
// aggregate that embeds them can detect values that bypassed a constructor.
package kernel
