// Package kernel provides the value objects shared by the restaurant domain:
//   - UUID: identifier of menu items, orders and order items
//   - Price: a non-negative money amount with two fractional digits
//
// Values are immutable; their zero values are invalid and are caught by Validate.
package kernel
