// Package order provides the Order aggregate and its status workflow.
//
// The package includes:
//   - Order: the aggregate root owning its items, total and timestamps
//   - Item: one line of an order (menu item reference and quantity)
//   - Status: the state machine Pending -> Cooking -> Ready -> Delivered
//   - DomainEvent: facts recorded by the aggregate for publication after commit
//
// Key business rules:
//   - An order cannot be placed without items
//   - The total is fixed when the order is placed
//   - Status moves forward one step at a time; Delivered is terminal
//   - The delivery time is stamped once, on entering Delivered
package order
